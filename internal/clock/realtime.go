package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Realtime fires tasks on wall-clock tickers and posts each firing onto a Queue.
type Realtime struct {
	queue *Queue

	mu     sync.Mutex
	tasks  map[*realtimeTask]struct{}
	closed bool
}

// NewRealtime creates a scheduler that feeds q.
func NewRealtime(q *Queue) *Realtime {
	return &Realtime{
		queue: q,
		tasks: make(map[*realtimeTask]struct{}),
	}
}

// Every arms a periodic task. After Close it returns an already stopped task.
func (r *Realtime) Every(interval time.Duration, fn func()) Task {
	ctx, cancel := context.WithCancel(context.Background())
	t := &realtimeTask{cancel: cancel, owner: r}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		t.stopped.Store(true)
		cancel()
		return t
	}
	r.tasks[t] = struct{}{}
	r.mu.Unlock()

	go t.loop(ctx, r.queue, interval, fn)
	return t
}

// active returns the number of armed tasks.
func (r *Realtime) active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// Close stops every task and refuses new ones.
func (r *Realtime) Close() {
	r.mu.Lock()
	r.closed = true
	tasks := make([]*realtimeTask, 0, len(r.tasks))
	for t := range r.tasks {
		tasks = append(tasks, t)
	}
	r.mu.Unlock()

	for _, t := range tasks {
		t.Stop()
	}
}

func (r *Realtime) forget(t *realtimeTask) {
	r.mu.Lock()
	delete(r.tasks, t)
	r.mu.Unlock()
}

type realtimeTask struct {
	stopped  atomic.Bool
	cancel   context.CancelFunc
	stopOnce sync.Once
	owner    *Realtime
}

func (t *realtimeTask) loop(ctx context.Context, q *Queue, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// The stopped check runs on the consumer, so a firing queued
	// before Stop never reaches fn.
	run := func() {
		if t.stopped.Load() {
			return
		}
		fn()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !q.post(ctx, run) {
				return
			}
		}
	}
}

func (t *realtimeTask) Stop() {
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		t.cancel()
		t.owner.forget(t)
	})
}
