// Package worker runs background jobs against the campaign usecase.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"promo-ads/internal/core/domain"
)

// Ender ends campaigns whose end date passed. Implemented by the campaign
// usecase.
type Ender interface {
	EndExpired(ctx context.Context, today time.Time) (int, error)
}

// Expirer periodically ends expired campaigns. It runs once on start and
// then on every tick.
type Expirer struct {
	ender    Ender
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time
	logger   *slog.Logger

	stopCh chan struct{}
	done   sync.WaitGroup
	once   sync.Once
}

// NewExpirer creates an expirer. A zero interval defaults to one hour and a
// zero timeout to 30 seconds.
func NewExpirer(ender Ender, interval, timeout time.Duration, logger *slog.Logger) *Expirer {
	if interval <= 0 {
		interval = time.Hour
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Expirer{
		ender:    ender,
		interval: interval,
		timeout:  timeout,
		now:      time.Now,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the loop in its own goroutine.
func (e *Expirer) Start() {
	e.logger.Info("starting expiry worker", slog.Duration("interval", e.interval))
	e.done.Add(1)
	go e.loop()
}

// Stop ends the loop and waits for a running check to finish. It is safe to
// call more than once.
func (e *Expirer) Stop() {
	e.once.Do(func() {
		e.logger.Info("stopping expiry worker")
		close(e.stopCh)
	})
	e.done.Wait()
}

func (e *Expirer) loop() {
	defer e.done.Done()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	e.RunOnce()

	for {
		select {
		case <-ticker.C:
			e.RunOnce()
		case <-e.stopCh:
			return
		}
	}
}

// RunOnce ends every campaign expired as of today and returns how many
// were ended.
func (e *Expirer) RunOnce() int {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	today := domain.DateOf(e.now())
	n, err := e.ender.EndExpired(ctx, today)
	if err != nil {
		e.logger.Error("failed to end expired campaigns", slog.Any("error", err))
	}
	if n > 0 {
		e.logger.Info("ended expired campaigns",
			slog.Int("count", n),
			slog.String("today", today.Format(domain.DateLayout)))
	}
	return n
}
