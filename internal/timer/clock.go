package timer

import (
	"sync/atomic"
	"time"
)

type monotonicClock struct{ origin time.Time }

// NewSystemClock returns a Clock counting milliseconds from the moment it was
// created. time.Since uses the monotonic reading so wall clock jumps are ignored.
func NewSystemClock() Clock { return monotonicClock{origin: time.Now()} }

func (c monotonicClock) Now() int64 { return time.Since(c.origin).Milliseconds() }

// ManualClock only moves when told to. It is used for scripted runs.
type ManualClock struct{ ms atomic.Int64 }

func (c *ManualClock) Now() int64 { return c.ms.Load() }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.ms.Add(d.Milliseconds()) }
