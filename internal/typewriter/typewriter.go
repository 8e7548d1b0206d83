// Package typewriter reveals a script of lines one character at a time.
//
// A [Typewriter] is a self-rescheduling task: each [Typewriter.Step] performs
// one reveal step and reports how long the caller should wait before the
// next one. It does not own a timer; pair it with sched.Chain or a
// tea.Tick loop.
package typewriter

import (
	"errors"
	"time"
)

const (
	DefaultCharDelay = 80 * time.Millisecond
	DefaultLineDelay = 500 * time.Millisecond
	LineBreak        = "\n"
)

var ErrAlreadyStarted = errors.New("typewriter: already started")

// Phase is the reveal state machine position.
type Phase int

const (
	Idle Phase = iota
	RevealingChar
	BreakingLine
	Done
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case RevealingChar:
		return "revealing"
	case BreakingLine:
		return "line-break"
	case Done:
		return "done"
	}
	return "unknown"
}

// State is the typing cursor. It only moves forward.
type State struct {
	Line int
	Char int
}

// Output is where revealed text goes.
type Output interface {
	Append(s string)
}

type Typewriter struct {
	lines     [][]rune
	out       Output
	charDelay time.Duration
	lineDelay time.Duration

	state State
	phase Phase
}

type Option func(*Typewriter)

func WithDelays(char, line time.Duration) Option {
	return func(t *Typewriter) {
		t.charDelay = char
		t.lineDelay = line
	}
}

func New(lines []string, out Output, opts ...Option) *Typewriter {
	t := &Typewriter{
		lines:     make([][]rune, len(lines)),
		out:       out,
		charDelay: DefaultCharDelay,
		lineDelay: DefaultLineDelay,
	}
	for i, l := range lines {
		t.lines[i] = []rune(l)
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Typewriter) Phase() Phase { return t.phase }
func (t *Typewriter) State() State { return t.state }

// Start runs the first reveal step. Only the first call does anything.
func (t *Typewriter) Start() (time.Duration, bool, error) {
	if t.phase != Idle {
		return 0, false, ErrAlreadyStarted
	}
	next, more := t.Step()
	return next, more, nil
}

// Step performs one reveal step: append the next character, or finish the
// current line with a break. more is false once the script is exhausted.
func (t *Typewriter) Step() (next time.Duration, more bool) {
	if t.state.Line >= len(t.lines) {
		t.phase = Done
		return 0, false
	}

	line := t.lines[t.state.Line]
	if t.state.Char < len(line) {
		t.phase = RevealingChar
		t.out.Append(string(line[t.state.Char]))
		t.state.Char++
		return t.charDelay, true
	}

	t.phase = BreakingLine
	t.out.Append(LineBreak)
	t.state.Line++
	t.state.Char = 0
	if t.state.Line < len(t.lines) {
		return t.lineDelay, true
	}
	t.phase = Done
	return 0, false
}
