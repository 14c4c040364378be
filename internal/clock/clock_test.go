package clock

import (
	"testing"
	"time"
)

func TestQueueFireSkipsStoppedTasks(t *testing.T) {
	q := NewQueue()
	fired := 0
	first := q.AfterFunc(time.Second, func() { fired++ })
	q.AfterFunc(2*time.Second, func() { fired += 10 })

	pending := q.Drain()
	if len(pending) != 2 {
		t.Fatalf("expected 2 drained tasks, got %d", len(pending))
	}
	if pending[0].Delay != time.Second || pending[1].Delay != 2*time.Second {
		t.Fatalf("unexpected delays: %+v", pending)
	}
	if len(q.Drain()) != 0 {
		t.Fatalf("expected drain to be empty after first call")
	}
	if !first.Stop() {
		t.Fatalf("expected first stop to report pending")
	}
	if first.Stop() {
		t.Fatalf("expected second stop to report not pending")
	}
	if q.Fire(pending[0].ID) {
		t.Fatalf("expected stopped task not to fire")
	}
	if !q.Fire(pending[1].ID) {
		t.Fatalf("expected live task to fire")
	}
	if q.Fire(pending[1].ID) {
		t.Fatalf("expected task to fire only once")
	}
	if fired != 10 {
		t.Fatalf("expected only second callback, got %d", fired)
	}
	if q.Len() != 0 {
		t.Fatalf("expected no pending tasks, got %d", q.Len())
	}
}

func TestFakeAdvanceFiresInOrder(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	var order []string
	f.AfterFunc(300*time.Millisecond, func() { order = append(order, "b") })
	f.AfterFunc(100*time.Millisecond, func() {
		order = append(order, "a")
		f.AfterFunc(100*time.Millisecond, func() { order = append(order, "a2") })
	})
	stopped := f.AfterFunc(150*time.Millisecond, func() { order = append(order, "x") })
	stopped.Stop()

	f.Advance(250 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "a2" {
		t.Fatalf("unexpected order after first advance: %v", order)
	}
	if f.Pending() != 1 {
		t.Fatalf("expected 1 pending task, got %d", f.Pending())
	}
	f.Advance(100 * time.Millisecond)
	if len(order) != 3 || order[2] != "b" {
		t.Fatalf("unexpected order after second advance: %v", order)
	}
	if got := f.Now().Sub(time.Unix(0, 0)); got != 350*time.Millisecond {
		t.Fatalf("expected clock at 350ms, got %v", got)
	}
}
