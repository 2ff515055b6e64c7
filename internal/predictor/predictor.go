// Package predictor wraps the estimator with the simulated "computing" delay
// shown by the dashboards. The delay is always cancellable.
package predictor

import (
	"context"
	"sync"
	"time"

	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
)

// DefaultDelay is how long a prediction pretends to compute
const DefaultDelay = 1200 * time.Millisecond

// Observer is told about every prediction that completes
type Observer interface {
	ObserveEstimate(est models.Estimate, waited time.Duration)
}

// Option configures a Predictor
type Option func(*Predictor)

// WithObserver registers an observer for completed predictions
func WithObserver(o Observer) Option {
	return func(p *Predictor) {
		p.observer = o
	}
}

// Predictor produces estimates after a fixed delay
type Predictor struct {
	delay    time.Duration
	observer Observer
}

// New creates a Predictor. A negative delay is treated as zero.
func New(delay time.Duration, opts ...Option) *Predictor {
	if delay < 0 {
		delay = 0
	}
	p := &Predictor{delay: delay}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Delay returns the configured delay
func (p *Predictor) Delay() time.Duration {
	return p.delay
}

// Predict waits for the delay and returns the estimate. It returns ctx.Err()
// if the context ends first; the timer is released either way.
func (p *Predictor) Predict(ctx context.Context, req models.EstimateRequest) (models.Estimate, error) {
	start := time.Now()
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.Estimate{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return models.Estimate{}, err
	}
	return p.finish(req, time.Since(start)), nil
}

// Schedule runs fn with the estimate once the delay has passed, unless the
// returned Pending is cancelled first. fn runs on its own goroutine.
func (p *Predictor) Schedule(req models.EstimateRequest, fn func(models.Estimate)) *Pending {
	start := time.Now()
	pending := &Pending{done: make(chan struct{})}
	pending.timer = time.AfterFunc(p.delay, func() {
		defer close(pending.done)
		if !pending.claim() {
			return
		}
		fn(p.finish(req, time.Since(start)))
	})
	return pending
}

func (p *Predictor) finish(req models.EstimateRequest, waited time.Duration) models.Estimate {
	est := estimator.Explain(req)
	if p.observer != nil {
		p.observer.ObserveEstimate(est, waited)
	}
	return est
}

// Pending is a scheduled prediction
type Pending struct {
	timer *time.Timer
	done  chan struct{}

	mu      sync.Mutex
	settled bool
}

// claim marks the pending prediction as settled; only the first caller wins
func (p *Pending) claim() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.settled {
		return false
	}
	p.settled = true
	return true
}

// Cancel prevents the callback from running. It reports false if the
// callback already started or the prediction was already cancelled.
func (p *Pending) Cancel() bool {
	if !p.claim() {
		return false
	}
	if p.timer.Stop() {
		close(p.done)
	}
	return true
}

// Done is closed once the prediction has either run or been cancelled
func (p *Pending) Done() <-chan struct{} {
	return p.done
}
