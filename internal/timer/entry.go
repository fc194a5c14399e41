package timer

import (
	"errors"
	"fmt"
)

const (
	// MaxDigits is the number of digits that make up an MM:SS entry.
	MaxDigits = 4
	colonCol  = 2
	entryRow  = 0
)

var ErrIncompleteEntry = errors.New("entry needs 4 digits")

// Duration is an MM:SS value as keyed in. Seconds are not limited to 59.
type Duration struct {
	Minutes int
	Seconds int
}

func (d Duration) TotalSeconds() int { return d.Minutes*60 + d.Seconds }

func (d Duration) String() string { return fmt.Sprintf("%02d:%02d", d.Minutes, d.Seconds) }

// EntryBuffer collects up to four digits and echoes them to the display,
// inserting a colon after the second digit.
type EntryBuffer struct {
	digits [MaxDigits]int
	n      int
	col    int
	disp   Display
}

func NewEntryBuffer(d Display) *EntryBuffer {
	return &EntryBuffer{disp: d}
}

// Push appends a digit. It reports false and does nothing when the buffer is full.
func (b *EntryBuffer) Push(digit int) bool {
	if b.n >= MaxDigits {
		return false
	}
	b.digits[b.n] = digit
	b.n++
	b.disp.WriteAt(b.col, entryRow, string(rune('0'+digit)))
	b.col++
	if b.n == 2 {
		b.disp.WriteAt(colonCol, entryRow, ":")
		b.col = colonCol + 1
	}
	return true
}

// Reset empties the buffer and clears the display.
func (b *EntryBuffer) Reset() {
	b.n = 0
	b.col = 0
	b.disp.Clear()
}

func (b *EntryBuffer) Len() int       { return b.n }
func (b *EntryBuffer) Cursor() int    { return b.col }
func (b *EntryBuffer) Complete() bool { return b.n == MaxDigits }

// Digits returns the digits collected so far.
func (b *EntryBuffer) Digits() []int {
	out := make([]int, b.n)
	copy(out, b.digits[:b.n])
	return out
}

// Parse reads digits 0-1 as minutes and 2-3 as seconds.
func (b *EntryBuffer) Parse() (Duration, error) {
	if !b.Complete() {
		return Duration{}, ErrIncompleteEntry
	}
	return Duration{
		Minutes: b.digits[0]*10 + b.digits[1],
		Seconds: b.digits[2]*10 + b.digits[3],
	}, nil
}
