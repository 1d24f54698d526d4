// Package operation polls the batch jobs of a provider until they settle. Providers never poll on their own; this
// is the caller side of fileprovider.FileProvider.OperationStatus.
package operation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/MCPEngu/fileprovider"
)

// DefaultInterval is the poll interval used when Wait is given a non-positive one.
const DefaultInterval = time.Second

// StatusChecker is the part of fileprovider.FileProvider Wait needs.
type StatusChecker interface {
	OperationStatus(ctx context.Context) (fileprovider.Operation, error)
}

// Option is a functional option for configuring Wait.
type Option func(*waiter)

// WithProgress registers fn to be called every time the observed status changes.
func WithProgress(fn func(fileprovider.Operation)) Option {
	return func(w *waiter) {
		w.progress = fn
	}
}

// WithLogger sets the logger poll results are reported to at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(w *waiter) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithBurst lets the first n polls go out without waiting for the interval. Default is 1.
func WithBurst(n int) Option {
	return func(w *waiter) {
		if n > 0 {
			w.burst = n
		}
	}
}

type waiter struct {
	progress func(fileprovider.Operation)
	logger   *zap.Logger
	burst    int
}

// Wait polls s at most once per interval until its operation reaches a terminal state or ctx is done. The reported
// progress never goes backwards: a poll answering less than what was already seen is clamped to the previous
// value. A Failed operation is returned together with its error.
func Wait(ctx context.Context, s StatusChecker, interval time.Duration, opts ...Option) (fileprovider.Operation, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	w := &waiter{logger: zap.NewNop(), burst: 1}
	for _, opt := range opts {
		opt(w)
	}

	limiter := rate.NewLimiter(rate.Every(interval), w.burst)
	last := fileprovider.OperationPending("")
	polls := 0
	for {
		if err := limiter.Wait(ctx); err != nil {
			return last, fmt.Errorf("waiting for operation: %w", contextErr(ctx, err))
		}
		op, err := s.OperationStatus(ctx)
		polls++
		if err != nil {
			return last, err
		}
		op = monotonic(last, op)
		w.logger.Debug("operation status", zap.Int("poll", polls), zap.Stringer("operation", op))
		if changed(last, op) && w.progress != nil {
			w.progress(op)
		}
		last = op
		switch op.State {
		case fileprovider.StateDone:
			return op, nil
		case fileprovider.StateFailed:
			return op, op.Err
		}
	}
}

// monotonic keeps the progress of next at or above the progress of prev while the job is still running.
func monotonic(prev, next fileprovider.Operation) fileprovider.Operation {
	if next.Terminal() {
		return next
	}
	if prev.State == fileprovider.StateInProgress {
		if next.State == fileprovider.StatePending || next.Progress < prev.Progress {
			next.State = fileprovider.StateInProgress
			next.Progress = prev.Progress
		}
		if next.ID == "" {
			next.ID = prev.ID
		}
	}
	return next
}

func changed(a, b fileprovider.Operation) bool {
	return a.State != b.State || a.Progress != b.Progress
}

// contextErr prefers the context's own error over the limiter's wording when the context is the cause.
func contextErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
