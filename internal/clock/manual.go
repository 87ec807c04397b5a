package clock

import "time"

// Manual is a virtual-time scheduler. Tasks fire only inside Advance, on the
// caller's goroutine, so a Manual must be driven from a single goroutine.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	interval time.Duration
	next     time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

func (t *manualTask) Stop() {
	t.stopped = true
}

// NewManual creates a scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every arms a task whose first firing is one interval from now.
func (m *Manual) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		panic("clock: non-positive interval for Manual.Every")
	}
	t := &manualTask{
		interval: interval,
		next:     m.now + interval,
		seq:      m.seq,
		fn:       fn,
	}
	m.seq++
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Active returns the number of armed tasks.
func (m *Manual) Active() int {
	n := 0
	for _, t := range m.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, firing every task that comes due
// in due-time order. Ties fire in the order the tasks were armed.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.next
		t.next += t.interval
		t.fn()
	}
	m.now = target
	m.compact()
}

func (m *Manual) nextDue(target time.Duration) *manualTask {
	var due *manualTask
	for _, t := range m.tasks {
		if t.stopped || t.next > target {
			continue
		}
		if due == nil || t.next < due.next || (t.next == due.next && t.seq < due.seq) {
			due = t
		}
	}
	return due
}

func (m *Manual) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.tasks); i++ {
		m.tasks[i] = nil
	}
	m.tasks = live
}
