package notify

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNotifyDeliversTitleAndMessage(t *testing.T) {
	var gotTitle, gotMessage string
	notifier := NewDesktopNotifier("提醒小幫手", time.Second, WithSendFunc(func(title, message string) error {
		gotTitle = title
		gotMessage = message
		return nil
	}))

	if err := notifier.Notify(context.Background(), "交週報"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTitle != "提醒小幫手" || gotMessage != "交週報" {
		t.Fatalf("unexpected notification: title=%q message=%q", gotTitle, gotMessage)
	}
}

func TestNotifyPropagatesSendError(t *testing.T) {
	sendErr := errors.New("no notification daemon")
	notifier := NewDesktopNotifier("提醒", time.Second, WithSendFunc(func(string, string) error {
		return sendErr
	}))

	err := notifier.Notify(context.Background(), "交週報")
	if !errors.Is(err, sendErr) {
		t.Fatalf("expected send error, got %v", err)
	}
}

func TestNotifyTimesOutOnHungSend(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	notifier := NewDesktopNotifier("提醒", 20*time.Millisecond, WithSendFunc(func(string, string) error {
		<-block
		return nil
	}))

	start := time.Now()
	err := notifier.Notify(context.Background(), "交週報")
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout took too long: %s", elapsed)
	}
}

func TestNotifyHonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	notifier := NewDesktopNotifier("提醒", time.Minute, WithSendFunc(func(string, string) error {
		<-block
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Notify(ctx, "交週報")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
