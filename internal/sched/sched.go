// Package sched runs timer-driven tasks on a single cooperative thread.
//
// Tasks are plain funcs scheduled with [Scheduler.After]. A task runs to
// completion before the next one starts, so tasks never need locks between
// themselves. Two shapes cover everything the tree needs:
//
//   - [Every]: a repeating task at a fixed cadence
//   - [Chain]: a self-rescheduling task whose step picks its next delay
//
// [Virtual] drives tasks from a manual clock in tests; [Loop] drives them in
// real time.
package sched

import "time"

type Scheduler interface {
	After(d time.Duration, fn func())
}

// Every runs fn every d, starting d from now.
func Every(s Scheduler, d time.Duration, fn func()) {
	var tick func()
	tick = func() {
		fn()
		s.After(d, tick)
	}
	s.After(d, tick)
}

// Chain runs step immediately and keeps rescheduling it after the delay it
// returns until it reports no more work.
func Chain(s Scheduler, step func() (time.Duration, bool)) {
	var run func()
	run = func() {
		if next, more := step(); more {
			s.After(next, run)
		}
	}
	run()
}
