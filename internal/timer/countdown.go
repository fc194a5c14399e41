package timer

import "fmt"

// Reading is the result of one countdown tick.
type Reading struct {
	Expired bool
	Minutes int
	Seconds int
}

// Clock renders the reading as MM:SS.
func (r Reading) Clock() string { return fmt.Sprintf("%02d:%02d", r.Minutes, r.Seconds) }

// Countdown derives remaining time from a start timestamp; nothing but the
// start and the total is stored.
type Countdown struct {
	start   int64
	total   int
	running bool
	expired bool
}

// Start arms the countdown at now, leaving any previous expiry behind.
func (c *Countdown) Start(d Duration, now int64) {
	c.start = now
	c.total = d.TotalSeconds()
	c.running = true
	c.expired = false
}

// Reset stops the countdown without expiring it.
func (c *Countdown) Reset() {
	*c = Countdown{}
}

func (c *Countdown) Running() bool     { return c.running }
func (c *Countdown) Expired() bool     { return c.expired }
func (c *Countdown) TotalSeconds() int { return c.total }

// Remaining returns whole seconds left at now, never below zero.
func (c *Countdown) Remaining(now int64) int {
	if !c.running {
		return 0
	}
	elapsed := now - c.start
	if elapsed < 0 {
		elapsed = 0
	}
	rem := c.total - int(elapsed/1000)
	if rem < 0 {
		return 0
	}
	return rem
}

// Tick advances the countdown. Once it reports expiry it keeps doing so
// until Reset or Start.
func (c *Countdown) Tick(now int64) Reading {
	if c.expired {
		return Reading{Expired: true}
	}
	if !c.running {
		return Reading{}
	}
	rem := c.Remaining(now)
	if rem <= 0 {
		c.running = false
		c.expired = true
		return Reading{Expired: true}
	}
	return Reading{Minutes: rem / 60, Seconds: rem % 60}
}
