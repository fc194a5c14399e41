// Package lcd is an in-memory character display matching the 16x2 module on
// the timer board.
package lcd

import (
	"strings"
	"sync"
)

const (
	Cols = 16
	Rows = 2
)

// Surface is a Cols x Rows character grid. Writes past the edge are clipped,
// like the controller chip drops characters outside the visible window.
// It is safe for concurrent use so a renderer can read while the timer writes.
type Surface struct {
	mu      sync.RWMutex
	cells   [Rows][Cols]rune
	version uint64
}

func New() *Surface {
	s := &Surface{}
	s.blank()
	return s
}

func (s *Surface) blank() {
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c] = ' '
		}
	}
}

// Clear blanks every cell.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.cells
	s.blank()
	if before != s.cells {
		s.version++
	}
}

// WriteAt writes text starting at (col, row).
func (s *Surface) WriteAt(col, row int, text string) {
	if row < 0 || row >= Rows {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for _, ch := range text {
		if col >= 0 && col < Cols && s.cells[row][col] != ch {
			s.cells[row][col] = ch
			changed = true
		}
		col++
	}
	if changed {
		s.version++
	}
}

// Version increases whenever the visible content changes.
func (s *Surface) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Lines returns each row padded to the full width.
func (s *Surface) Lines() [Rows]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out [Rows]string
	for r := range s.cells {
		out[r] = string(s.cells[r][:])
	}
	return out
}

// Line returns row r with trailing blanks removed.
func (s *Surface) Line(r int) string {
	if r < 0 || r >= Rows {
		return ""
	}
	return strings.TrimRight(s.Lines()[r], " ")
}

func (s *Surface) String() string {
	l := s.Lines()
	return strings.Join(l[:], "\n")
}
