package typewriter

import (
	"io"
	"strings"
	"sync"
)

// Buffer is an in-memory Output.
type Buffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (b *Buffer) Append(s string) {
	b.mu.Lock()
	b.b.WriteString(s)
	b.mu.Unlock()
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriterOutput streams revealed text to w. Write errors are dropped; a
// closed terminal has nowhere to report them.
type WriterOutput struct {
	W io.Writer
}

func (w WriterOutput) Append(s string) {
	io.WriteString(w.W, s)
}
