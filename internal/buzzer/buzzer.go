// Package buzzer sounds the alarm through the host's beeper.
package buzzer

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog/log"
)

// BeepFunc plays one tone of freq Hz for ms milliseconds.
type BeepFunc func(freq float64, ms int) error

// Beeper repeats short tones until stopped, so a continuous alarm can be
// silenced between pulses.
type Beeper struct {
	pulse time.Duration
	gap   time.Duration
	beep  BeepFunc

	mu     sync.Mutex
	stop   chan struct{}
	freq   int
	warned bool
}

// New returns a Beeper playing pulse-long tones separated by gap.
func New(pulse, gap time.Duration) *Beeper {
	return NewWithFunc(pulse, gap, beeep.Beep)
}

// NewWithFunc is New with a custom tone generator.
func NewWithFunc(pulse, gap time.Duration, fn BeepFunc) *Beeper {
	if pulse <= 0 {
		pulse = 200 * time.Millisecond
	}
	return &Beeper{pulse: pulse, gap: gap, beep: fn}
}

// Start begins the alarm. Calling Start while sounding is a no-op.
func (b *Beeper) Start(freq int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop != nil {
		return
	}
	b.stop = make(chan struct{})
	b.freq = freq
	go b.loop(b.stop, freq)
}

// Stop silences the alarm after the pulse in flight.
func (b *Beeper) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop == nil {
		return
	}
	close(b.stop)
	b.stop = nil
}

// Sounding reports whether the alarm is on.
func (b *Beeper) Sounding() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stop != nil
}

func (b *Beeper) loop(stop <-chan struct{}, freq int) {
	ms := int(b.pulse / time.Millisecond)
	for {
		select {
		case <-stop:
			return
		default:
		}
		if err := b.beep(float64(freq), ms); err != nil {
			b.warnOnce(err)
			// keep the cadence even when the host cannot beep
			select {
			case <-stop:
				return
			case <-time.After(b.pulse):
			}
		}
		if b.gap > 0 {
			select {
			case <-stop:
				return
			case <-time.After(b.gap):
			}
		}
	}
}

func (b *Beeper) warnOnce(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.warned {
		return
	}
	b.warned = true
	log.Warn().Err(err).Int("freq", b.freq).Msg("buzzer unavailable")
}

// Silent satisfies the buzzer contract without making a sound.
type Silent struct{}

func (Silent) Start(freq int) { log.Debug().Int("freq", freq).Msg("buzzer start (silent)") }
func (Silent) Stop()          {}
