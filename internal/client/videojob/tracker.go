package videojob

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Result is the outcome of a tracked poll
type Result struct {
	Job *Job
	Err error
}

// Tracker runs at most one poll at a time. Starting a new poll, Reset and
// Stop all cancel the poll in flight.
type Tracker struct {
	poller   *Poller
	onUpdate func(*Job)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

// NewTracker creates a Tracker; onUpdate receives every status of the current poll
// and must not call back into the Tracker.
func NewTracker(poller *Poller, onUpdate func(*Job)) *Tracker {
	return &Tracker{poller: poller, onUpdate: onUpdate}
}

// Start cancels any poll in flight and polls id. The returned channel yields
// one Result and is then closed. After Stop, Start returns a closed channel.
func (t *Tracker) Start(ctx context.Context, id uuid.UUID) <-chan Result {
	results := make(chan Result, 1)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	if t.closed {
		close(results)
		return results
	}

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go func() {
		defer close(done)
		defer close(results)
		defer cancel()

		job, err := t.poller.Poll(pollCtx, id, t.onUpdate)
		results <- Result{Job: job, Err: err}
	}()

	return results
}

// Reset cancels the poll in flight; the tracker can be started again
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Stop cancels the poll in flight and refuses further polls
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.closed = true
}

// stopLocked cancels the running poll and waits for its goroutine to exit
func (t *Tracker) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
	t.done = nil
}
