package astirecorder

import (
	"context"
	"sync"
)

// RunFunc represents a func run by a controller until its context is cancelled
type RunFunc func(ctx context.Context) error

// Controller runs a RunFunc in its own goroutine and stops it on demand.
// The RunFunc owns everything it touches: the only shared state is the cancellation and the done channel.
type Controller struct {
	cancel context.CancelFunc
	ctx    context.Context
	done   chan struct{}
	err    error
	fn     RunFunc
	m      sync.Mutex // Locks cancel, ctx and done
}

// NewController creates a new controller
func NewController(fn RunFunc) *Controller {
	return &Controller{fn: fn}
}

// NewRecorderController creates a controller running the recorder
func NewRecorderController(r *Recorder) *Controller {
	return NewController(r.Run)
}

// isRunningUnsafe returns whether the controller is running while making the assumption that the mutex is locked
func (c *Controller) isRunningUnsafe() bool {
	if c.done == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Start starts the run func in a goroutine. It's a no-op if it's already running.
func (c *Controller) Start(ctx context.Context) {
	// Lock
	c.m.Lock()
	defer c.m.Unlock()

	// Already running
	if c.isRunningUnsafe() {
		return
	}

	// Reset
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})
	c.err = nil

	// Execute in a go routine
	go func(ctx context.Context, done chan struct{}) {
		err := c.fn(ctx)
		c.m.Lock()
		c.err = err
		c.m.Unlock()
		close(done)
	}(c.ctx, c.done)
}

// Stop signals the run func to exit and waits for it. It can be called several times,
// from any goroutine, and before Start.
func (c *Controller) Stop() {
	// Lock
	c.m.Lock()
	cancel, done := c.cancel, c.done
	c.m.Unlock()

	// Not started
	if done == nil {
		return
	}

	// Cancel and wait
	cancel()
	<-done
}

// Done returns a channel closed once the run func has returned. It's nil before Start.
func (c *Controller) Done() <-chan struct{} {
	c.m.Lock()
	defer c.m.Unlock()
	return c.done
}

// Err returns the error returned by the last run
func (c *Controller) Err() error {
	c.m.Lock()
	defer c.m.Unlock()
	return c.err
}
