package logging

import (
	"strings"
	"sync"
)

// DefaultRingCapacity bounds the overlay history when no size is given.
const DefaultRingCapacity = 200

// Ring is a fixed-capacity ring of formatted log lines. It implements
// io.Writer so it can sit behind the logger through io.MultiWriter, and
// the log overlay reads its tail. Oldest lines are overwritten when the
// ring is full.
type Ring struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

// NewRing creates a ring holding up to capacity lines.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultRingCapacity
	}
	return &Ring{lines: make([]string, capacity)}
}

// Write splits p into lines and appends each non-empty one. Always
// reports full consumption; a log sink has nothing useful to do with a
// short-write error.
func (r *Ring) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line == "" {
			continue
		}
		r.Append(line)
	}
	return len(p), nil
}

// Append records one line, overwriting the oldest when full.
func (r *Ring) Append(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines[r.next] = line
	r.next++
	if r.next == len(r.lines) {
		r.next = 0
		r.full = true
	}
}

// Len returns the number of lines currently held.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.full {
		return len(r.lines)
	}
	return r.next
}

// Tail returns up to n lines, oldest first, newest last.
func (r *Ring) Tail(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.next
	start := 0
	if r.full {
		size = len(r.lines)
		start = r.next
	}
	if n > size {
		n = size
	}
	if n <= 0 {
		return nil
	}

	out := make([]string, 0, n)
	for i := size - n; i < size; i++ {
		out = append(out, r.lines[(start+i)%len(r.lines)])
	}
	return out
}
