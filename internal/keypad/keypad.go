// Package keypad models the 4x4 membrane keypad and the key sources the timer
// polls.
package keypad

import (
	"strings"
	"sync"
)

const (
	Rows = 4
	Cols = 4
)

// Layout is the symbol printed on each key, row by row.
var Layout = [Rows][Cols]rune{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

// Lookup returns the symbol at a matrix position.
func Lookup(row, col int) (rune, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0, false
	}
	return Layout[row][col], true
}

// Position finds the matrix position of a symbol.
func Position(r rune) (row, col int, ok bool) {
	for i := range Layout {
		for j := range Layout[i] {
			if Layout[i][j] == r {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Normalize maps a typed character to a keypad symbol. Letters are folded to
// upper case; anything not printed on the keypad is rejected.
func Normalize(r rune) (rune, bool) {
	s := strings.ToUpper(string(r))
	if len(s) != 1 {
		return 0, false
	}
	u := rune(s[0])
	if _, _, ok := Position(u); !ok {
		return 0, false
	}
	return u, true
}

// Queue is a FIFO of pressed keys. Press may be called from any goroutine;
// ReadKey hands out one key per poll.
type Queue struct {
	mu      sync.Mutex
	pending []rune
	limit   int
}

// NewQueue returns a queue holding at most limit keys; further presses are
// dropped. limit <= 0 means unbounded.
func NewQueue(limit int) *Queue {
	return &Queue{limit: limit}
}

// Press enqueues r and reports whether it was kept.
func (q *Queue) Press(r rune) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.limit > 0 && len(q.pending) >= q.limit {
		return false
	}
	q.pending = append(q.pending, r)
	return true
}

func (q *Queue) ReadKey() (rune, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return 0, false
	}
	r := q.pending[0]
	q.pending = q.pending[1:]
	return r, true
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Source is anything that can be polled for a key.
type Source interface {
	ReadKey() (rune, bool)
}

// EdgeFilter turns a level-triggered source into an edge-triggered one: a
// key equal to the previous poll's key is swallowed until a poll comes back
// empty.
type EdgeFilter struct {
	src  Source
	last rune
	held bool
}

func NewEdgeFilter(src Source) *EdgeFilter {
	return &EdgeFilter{src: src}
}

func (f *EdgeFilter) ReadKey() (rune, bool) {
	r, ok := f.src.ReadKey()
	if !ok {
		f.held = false
		return 0, false
	}
	if f.held && r == f.last {
		return 0, false
	}
	f.last, f.held = r, true
	return r, true
}
