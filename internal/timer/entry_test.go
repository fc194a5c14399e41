package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryBufferColonAndCursor(t *testing.T) {
	d := newGridDisplay()
	b := NewEntryBuffer(d)

	require.True(t, b.Push(0))
	assert.Equal(t, 1, b.Cursor())
	require.True(t, b.Push(1))
	assert.Equal(t, 3, b.Cursor(), "colon column is skipped")
	assert.Equal(t, "01:", d.Row(0))
	require.True(t, b.Push(3))
	require.True(t, b.Push(0))
	assert.Equal(t, "01:30", d.Row(0))
	assert.True(t, b.Complete())

	dur, err := b.Parse()
	require.NoError(t, err)
	assert.Equal(t, Duration{Minutes: 1, Seconds: 30}, dur)
	assert.Equal(t, 90, dur.TotalSeconds())
}

func TestEntryBufferOverflowIsNoop(t *testing.T) {
	d := newGridDisplay()
	b := NewEntryBuffer(d)
	for _, digit := range []int{1, 2, 3, 4} {
		require.True(t, b.Push(digit))
	}
	assert.False(t, b.Push(5))
	assert.Equal(t, []int{1, 2, 3, 4}, b.Digits())
	assert.Equal(t, "12:34", d.Row(0))
}

func TestEntryBufferParseIncomplete(t *testing.T) {
	b := NewEntryBuffer(newGridDisplay())
	b.Push(9)
	_, err := b.Parse()
	assert.ErrorIs(t, err, ErrIncompleteEntry)
}

func TestEntryBufferNoRangeValidation(t *testing.T) {
	b := NewEntryBuffer(newGridDisplay())
	for i := 0; i < 4; i++ {
		b.Push(9)
	}
	dur, err := b.Parse()
	require.NoError(t, err)
	assert.Equal(t, 6039, dur.TotalSeconds())
	assert.Equal(t, "99:99", dur.String())
}

func TestEntryBufferReset(t *testing.T) {
	d := newGridDisplay()
	b := NewEntryBuffer(d)
	b.Push(4)
	b.Push(2)
	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cursor())
	assert.Empty(t, d.Row(0))
	assert.Equal(t, 1, d.clears)
}
