// Package notify delivers reminders as desktop notifications.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
)

// DesktopNotifier shows operating system notifications via the platform
// notification service. Delivery is bounded by a timeout so a hung
// notification daemon cannot stall a dispatch tick.
type DesktopNotifier struct {
	title   string
	timeout time.Duration
	send    func(title, message string) error
}

// Option configures the notifier.
type Option func(*DesktopNotifier)

// WithSendFunc replaces the platform send call, used by tests.
func WithSendFunc(send func(title, message string) error) Option {
	return func(n *DesktopNotifier) {
		n.send = send
	}
}

// NewDesktopNotifier returns a notifier that titles every notification with
// the given title. Timeouts <= 0 default to 10 seconds.
func NewDesktopNotifier(title string, timeout time.Duration, opts ...Option) *DesktopNotifier {
	if title == "" {
		title = "提醒"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	n := &DesktopNotifier{
		title:   title,
		timeout: timeout,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify shows the message as a desktop notification. The platform call runs
// on its own goroutine; when it exceeds the timeout or the context is
// cancelled the error is returned and the call abandoned.
func (n *DesktopNotifier) Notify(ctx context.Context, message string) error {
	done := make(chan error, 1)
	go func() {
		done <- n.send(n.title, message)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("notify: show notification: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notify: show notification: %w", ctx.Err())
	case <-time.After(n.timeout):
		return fmt.Errorf("notify: show notification timed out after %s", n.timeout)
	}
}
