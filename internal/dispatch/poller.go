package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TickRunner is the engine surface driven by the poller.
type TickRunner interface {
	RunTick(ctx context.Context, now time.Time) error
}

// Poller drives the dispatch engine at a fixed interval from a single
// background goroutine, so ticks never overlap. It is the engine's only
// clock source: every tick receives the instant observed by the poller.
type Poller struct {
	engine   TickRunner
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// NewPoller returns a poller for the given engine. Intervals <= 0 default to
// 30 seconds; a nil now falls back to time.Now.
func NewPoller(engine TickRunner, interval time.Duration, now func() time.Time, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		engine:   engine,
		interval: interval,
		now:      now,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling goroutine. The first tick runs immediately,
// then on every interval boundary. Start is idempotent.
func (p *Poller) Start(ctx context.Context) {
	if p == nil || p.engine == nil {
		return
	}

	p.startOnce.Do(func() {
		go p.run(ctx)
	})
}

// Stop halts polling and blocks until the in-flight tick, if any, has
// completed, so no tick is left half-applied. Stop is idempotent and safe to
// call before Start.
func (p *Poller) Stop() {
	if p == nil {
		return
	}

	p.stopOnce.Do(func() {
		close(p.stop)
	})

	p.startOnce.Do(func() {
		// Start never ran; nothing is in flight.
		close(p.done)
	})
	<-p.done
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	p.logger.InfoContext(ctx, "poll scheduler started", "interval", p.interval)

	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			p.logger.InfoContext(ctx, "poll scheduler stopped")
			return
		case <-ctx.Done():
			p.logger.InfoContext(ctx, "poll scheduler stopped", "reason", ctx.Err())
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if err := p.engine.RunTick(ctx, p.now()); err != nil {
		// A failed tick is logged and dropped; the next tick proceeds.
		p.logger.ErrorContext(ctx, "tick failed", "error", err)
	}
}
