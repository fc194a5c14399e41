package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock(t *testing.T) {
	var c ManualClock
	assert.Equal(t, int64(0), c.Now())
	c.Advance(1500 * time.Millisecond)
	c.Advance(time.Second)
	assert.Equal(t, int64(2500), c.Now())
}

func TestSystemClockIsMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	time.Sleep(2 * time.Millisecond)
	b := c.Now()
	assert.GreaterOrEqual(t, a, int64(0))
	assert.Greater(t, b, a)
}
