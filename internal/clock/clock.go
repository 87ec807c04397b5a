// Package clock arms periodic tasks whose firings are executed one at a time
// on a single logical run-queue. Game code never runs two callbacks at once,
// no matter how many tasks are armed.
package clock

import (
	"context"
	"time"
)

// Task is an armed periodic job.
type Task interface {
	// Stop cancels the task. Firings that are already queued are dropped.
	// Calling Stop more than once is a no-op.
	Stop()
}

// Scheduler arms periodic tasks.
type Scheduler interface {
	// Every runs fn once per interval until the returned task is stopped.
	Every(interval time.Duration, fn func()) Task
}

// Queue is the run-queue shared by every task of a Realtime scheduler.
// Exactly one consumer should drain it.
type Queue struct {
	jobs chan func()
}

// NewQueue creates a run-queue that buffers up to size pending firings.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{jobs: make(chan func(), size)}
}

// Jobs exposes the pending firings to a consumer that runs its own loop,
// such as a Bubble Tea command.
func (q *Queue) Jobs() <-chan func() {
	return q.jobs
}

// Run executes queued jobs until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-q.jobs:
			fn()
		}
	}
}

// drain executes every job that is already queued and returns how many ran.
func (q *Queue) drain() int {
	n := 0
	for {
		select {
		case fn := <-q.jobs:
			fn()
			n++
		default:
			return n
		}
	}
}

// post blocks until the job is queued or ctx is cancelled.
func (q *Queue) post(ctx context.Context, fn func()) bool {
	select {
	case q.jobs <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}
