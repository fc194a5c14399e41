package timer

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type Mode int

const (
	ModeBanner Mode = iota
	ModeEntry
	ModeCounting
	ModeAlarm
)

func (m Mode) String() string {
	switch m {
	case ModeBanner:
		return "banner"
	case ModeEntry:
		return "entry"
	case ModeCounting:
		return "counting"
	case ModeAlarm:
		return "alarm"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

const (
	DefaultFrequency      = 500
	DefaultBannerInterval = 150 // ms

	PromptText  = "Press any key..."
	TimeUpText  = "Time's up!"
	countPrefix = "Time left: "
	bannerRow   = 0
	promptRow   = 1
)

// Config holds the tunables of the controller. Zero values fall back to the
// defaults above.
type Config struct {
	BannerText     string
	BannerInterval int64 // ms between banner frames
	Frequency      int   // alarm tone in Hz
}

// Hardware bundles the collaborators the controller drives. Observer may be nil.
type Hardware struct {
	Keys     KeySource
	Display  Display
	Buzzer   Buzzer
	Clock    Clock
	Observer Observer
}

// Snapshot is a read-only view of the controller state.
type Snapshot struct {
	Mode         Mode
	Digits       []int
	Buzzing      bool
	Remaining    int // seconds, Counting only
	TotalSeconds int
	BannerCursor int
}

// Controller is the top-level state machine. It owns every piece of timer
// state and is advanced by calling Step once per scheduler tick.
type Controller struct {
	cfg Config
	hw  Hardware

	mode      Mode
	entry     *EntryBuffer
	countdown Countdown
	banner    *Banner
	buzzing   bool

	bannerDrawn bool
	lastBanner  int64
}

func New(cfg Config, hw Hardware) *Controller {
	if cfg.BannerInterval <= 0 {
		cfg.BannerInterval = DefaultBannerInterval
	}
	if cfg.Frequency <= 0 {
		cfg.Frequency = DefaultFrequency
	}
	if hw.Observer == nil {
		hw.Observer = nopObserver{}
	}
	c := &Controller{
		cfg:    cfg,
		hw:     hw,
		mode:   ModeBanner,
		entry:  NewEntryBuffer(hw.Display),
		banner: NewBanner(cfg.BannerText),
	}
	c.hw.Display.Clear()
	c.hw.Display.WriteAt(0, promptRow, PromptText)
	return c
}

func (c *Controller) Mode() Mode { return c.mode }

// Snapshot reports the current state, computing remaining time at the clock's
// current reading.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         c.mode,
		Digits:       c.entry.Digits(),
		Buzzing:      c.buzzing,
		TotalSeconds: c.countdown.TotalSeconds(),
		BannerCursor: c.banner.Cursor(),
	}
	if c.mode == ModeCounting {
		s.Remaining = c.countdown.Remaining(c.hw.Clock.Now())
	}
	return s
}

// Step runs one iteration: at most one key event, then the banner or the
// countdown display depending on the resulting mode.
func (c *Controller) Step() {
	now := c.hw.Clock.Now()
	if r, ok := c.hw.Keys.ReadKey(); ok {
		if k, ok := Classify(r); ok {
			c.handleKey(k, now)
		} else {
			log.Trace().Str("key", string(r)).Msg("key ignored")
		}
	}
	switch c.mode {
	case ModeBanner:
		c.scrollBanner(now)
	case ModeCounting:
		c.updateCountdown(now)
	case ModeEntry, ModeAlarm:
	}
}

func (c *Controller) handleKey(k Key, now int64) {
	log.Debug().Str("key", k.String()).Stringer("mode", c.mode).Msg("key accepted")
	c.hw.Observer.KeyAccepted(k, c.mode)

	if k.Kind == KeyClear {
		c.clear()
		return
	}
	switch c.mode {
	case ModeBanner:
		c.beginEntry()
		c.enter(k, now)
	case ModeEntry:
		c.enter(k, now)
	case ModeCounting:
		// the entry is locked until the countdown ends or is cleared
	case ModeAlarm:
		if c.buzzing {
			c.silence()
			return
		}
		c.beginEntry()
		c.enter(k, now)
	}
}

func (c *Controller) beginEntry() {
	c.countdown.Reset()
	c.entry.Reset()
	c.setMode(ModeEntry)
}

func (c *Controller) enter(k Key, now int64) {
	if k.Kind != KeyDigit {
		return
	}
	if !c.entry.Push(k.Digit) {
		return
	}
	if !c.entry.Complete() {
		return
	}
	d, err := c.entry.Parse()
	if err != nil {
		log.Error().Err(err).Msg("parse entry")
		return
	}
	c.entry.Reset()
	c.countdown.Start(d, now)
	log.Info().Stringer("duration", d).Int("seconds", d.TotalSeconds()).Msg("countdown started")
	c.hw.Observer.CountdownStarted(d)
	c.setMode(ModeCounting)
}

func (c *Controller) updateCountdown(now int64) {
	r := c.countdown.Tick(now)
	if !r.Expired {
		c.hw.Display.WriteAt(0, 0, countPrefix+r.Clock())
		return
	}
	c.hw.Display.Clear()
	c.hw.Display.WriteAt(0, 0, TimeUpText)
	c.setMode(ModeAlarm)
	c.buzzing = true
	c.hw.Buzzer.Start(c.cfg.Frequency)
	log.Info().Int("seconds", c.countdown.TotalSeconds()).Msg("countdown expired")
	c.hw.Observer.CountdownExpired(c.countdown.TotalSeconds())
}

func (c *Controller) silence() {
	c.buzzing = false
	c.hw.Buzzer.Stop()
	log.Debug().Msg("alarm silenced")
	c.hw.Observer.AlarmSilenced()
}

func (c *Controller) clear() {
	c.entry.Reset()
	c.countdown.Reset()
	c.buzzing = false
	c.hw.Buzzer.Stop()
	c.banner.Reset()
	c.bannerDrawn = false
	c.hw.Display.WriteAt(0, promptRow, PromptText)
	c.setMode(ModeBanner)
}

func (c *Controller) scrollBanner(now int64) {
	if c.bannerDrawn && now-c.lastBanner < c.cfg.BannerInterval {
		return
	}
	c.hw.Display.WriteAt(0, bannerRow, c.banner.Next())
	c.bannerDrawn = true
	c.lastBanner = now
}

func (c *Controller) setMode(m Mode) {
	if m == c.mode {
		return
	}
	log.Debug().Stringer("from", c.mode).Stringer("to", m).Msg("mode change")
	c.hw.Observer.ModeChanged(c.mode, m)
	c.mode = m
}
