package sched

import (
	"context"
	"sync"
	"time"
)

// Loop runs tasks in real time on the goroutine that calls Run. Timers fire
// on their own goroutines but only enqueue; execution is serial.
type Loop struct {
	ready chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoop() *Loop {
	return &Loop{
		ready: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

func (l *Loop) After(d time.Duration, fn func()) {
	if d <= 0 {
		go l.enqueue(fn)
		return
	}
	time.AfterFunc(d, func() { l.enqueue(fn) })
}

func (l *Loop) enqueue(fn func()) {
	select {
	case l.ready <- fn:
	case <-l.done:
	}
}

// Run executes tasks until ctx is done. Tasks that fall due afterwards are
// dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.ready:
			fn()
		}
	}
}
