package clock

import "time"

// Pending describes a task waiting to be fired by an event loop.
type Pending struct {
	ID    uint64
	Delay time.Duration
}

// Queue is a Scheduler for single-threaded event loops. Scheduled tasks are
// handed to the loop via Drain; the loop calls Fire when the delay elapses.
// Callbacks only ever run inside Fire, on the caller's goroutine.
type Queue struct {
	nextID  uint64
	tasks   map[uint64]func()
	drained []Pending
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{tasks: map[uint64]func(){}}
}

type queueTask struct {
	q  *Queue
	id uint64
}

func (t queueTask) Stop() bool {
	if _, ok := t.q.tasks[t.id]; !ok {
		return false
	}
	delete(t.q.tasks, t.id)
	return true
}

// AfterFunc implements Scheduler.
func (q *Queue) AfterFunc(d time.Duration, fn func()) Task {
	q.nextID++
	id := q.nextID
	q.tasks[id] = fn
	q.drained = append(q.drained, Pending{ID: id, Delay: d})
	return queueTask{q: q, id: id}
}

// Drain returns tasks scheduled since the previous call.
func (q *Queue) Drain() []Pending {
	out := q.drained
	q.drained = nil
	return out
}

// Fire runs the task's callback if it is still pending. Canceled or already
// fired tasks are ignored.
func (q *Queue) Fire(id uint64) bool {
	fn, ok := q.tasks[id]
	if !ok {
		return false
	}
	delete(q.tasks, id)
	fn()
	return true
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

