// Package poller runs a refresh on a fixed interval for as long as the
// view that asked for it is open.
package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Poller runs fn once immediately and then every interval until stopped.
// A Poller owns at most one timer no matter how often Start is called.
type Poller struct {
	interval time.Duration
	fn       func(context.Context)
	logger   *zap.SugaredLogger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	runs   int
}

func New(interval time.Duration, fn func(context.Context), logger *zap.SugaredLogger) *Poller {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Poller{interval: interval, fn: fn, logger: logger}
}

// Start begins polling. It is a no-op while already running.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel, p.done = cancel, done

	go func() {
		defer close(done)
		defer p.finish(done, cancel)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		// Run once immediately
		p.tick(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.tick(ctx)
			}
		}
	}()
}

// finish clears the run state when the parent context ends the run, so a
// later Start begins a fresh one. A newer run is left alone.
func (p *Poller) finish(done chan struct{}, cancel context.CancelFunc) {
	cancel()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == done {
		p.cancel, p.done = nil, nil
	}
}

func (p *Poller) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	p.fn(ctx)
	p.mu.Lock()
	p.runs++
	p.mu.Unlock()
	p.logger.Debugw("poll complete", "at", time.Now().Format(time.RFC3339))
}

// Stop cancels the timer and waits for an in-flight run to return. Safe to
// call more than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Runs counts completed refreshes.
func (p *Poller) Runs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.runs
}

// Registry binds pollers to named views. Binding a view that already has
// a poller stops the old one first, so remounting never stacks timers.
type Registry struct {
	mu    sync.Mutex
	views map[string]*Poller
}

func NewRegistry() *Registry {
	return &Registry{views: make(map[string]*Poller)}
}

func (r *Registry) Bind(ctx context.Context, view string, p *Poller) {
	r.mu.Lock()
	old := r.views[view]
	r.views[view] = p
	r.mu.Unlock()

	if old != nil && old != p {
		old.Stop()
	}
	p.Start(ctx)
}

// Release stops the view's poller, if any.
func (r *Registry) Release(view string) {
	r.mu.Lock()
	p := r.views[view]
	delete(r.views, view)
	r.mu.Unlock()

	if p != nil {
		p.Stop()
	}
}

func (r *Registry) StopAll() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*Poller)
	r.mu.Unlock()

	for _, p := range views {
		p.Stop()
	}
}

// Active counts views with a running poller.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.views {
		if p.Running() {
			n++
		}
	}
	return n
}
