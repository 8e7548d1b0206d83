package sched

import (
	"container/heap"
	"time"
)

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

type taskQueue []task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(task)) }
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	*q = old[:n-1]
	return t
}

// Virtual is a manual clock. Nothing runs until Advance is called.
// Not safe for concurrent use.
type Virtual struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) Now() time.Duration { return v.now }
func (v *Virtual) Pending() int       { return len(v.queue) }

func (v *Virtual) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	v.seq++
	heap.Push(&v.queue, task{due: v.now + d, seq: v.seq, fn: fn})
}

// Advance moves the clock forward by d, running every task that falls due
// in order. Tasks scheduled while advancing run too if they fall inside d.
func (v *Virtual) Advance(d time.Duration) {
	end := v.now + d
	for len(v.queue) > 0 && v.queue[0].due <= end {
		t := heap.Pop(&v.queue).(task)
		v.now = t.due
		t.fn()
	}
	v.now = end
}

// RunUntilIdle drains the queue, stopping after limit tasks to guard
// against repeating tasks. It returns the number of tasks run.
func (v *Virtual) RunUntilIdle(limit int) int {
	n := 0
	for len(v.queue) > 0 && n < limit {
		t := heap.Pop(&v.queue).(task)
		v.now = t.due
		t.fn()
		n++
	}
	return n
}
