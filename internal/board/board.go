// Package board assembles the emulated timer board: keypad, display, buzzer
// and the timer controller, wired according to the configuration.
package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ramanasai/keytimer/internal/buzzer"
	"github.com/ramanasai/keytimer/internal/config"
	"github.com/ramanasai/keytimer/internal/db"
	"github.com/ramanasai/keytimer/internal/keypad"
	"github.com/ramanasai/keytimer/internal/lcd"
	"github.com/ramanasai/keytimer/internal/notify"
	"github.com/ramanasai/keytimer/internal/timer"
)

// Options override parts of the configured hardware. Zero values use the
// real thing.
type Options struct {
	Clock     timer.Clock
	Buzzer    timer.Buzzer
	NoJournal bool
	NoNotify  bool
}

// Board is one emulated timer.
type Board struct {
	Controller *timer.Controller
	Display    *lcd.Surface
	Keys       *keypad.Queue
	Buzzer     timer.Buzzer
	Journal    *db.Journal

	closers []func() error
}

// Build wires a board from cfg.
func Build(cfg config.Config, opts Options) (*Board, error) {
	b := &Board{
		Display: lcd.New(),
		Keys:    keypad.NewQueue(cfg.Keypad.QueueLimit),
	}

	var src timer.KeySource = b.Keys
	if cfg.Keypad.EdgeTriggered {
		src = keypad.NewEdgeFilter(b.Keys)
	}

	switch {
	case opts.Buzzer != nil:
		b.Buzzer = opts.Buzzer
	case cfg.Buzzer.Enabled:
		b.Buzzer = buzzer.New(cfg.Buzzer.Pulse, cfg.Buzzer.Gap)
	default:
		b.Buzzer = buzzer.Silent{}
	}

	clock := opts.Clock
	if clock == nil {
		clock = timer.NewSystemClock()
	}

	var observers timer.Observers
	if cfg.Journal.Enabled && !opts.NoJournal {
		path, err := cfg.JournalPath()
		if err != nil {
			return nil, fmt.Errorf("journal path: %w", err)
		}
		dbh, err := db.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		b.closers = append(b.closers, dbh.Close)
		b.Journal = db.NewJournal(dbh)
		observers = append(observers, b.Journal)
		log.Debug().Str("path", path).Str("session", b.Journal.Session()).Msg("journal open")
	}
	if cfg.Notify.Enabled && !opts.NoNotify {
		observers = append(observers, &alertObserver{n: notify.New()})
	}

	b.Controller = timer.New(timer.Config{
		BannerText:     cfg.Banner.Text,
		BannerInterval: cfg.Banner.Interval.Milliseconds(),
		Frequency:      cfg.Buzzer.Frequency,
	}, timer.Hardware{
		Keys:     src,
		Display:  b.Display,
		Buzzer:   b.Buzzer,
		Clock:    clock,
		Observer: observers,
	})
	return b, nil
}

// Press feeds a typed character to the keypad. Characters that are not on
// the keypad are rejected here; keypad symbols the timer ignores (A, B, D)
// are passed through like the hardware would.
func (b *Board) Press(r rune) bool {
	sym, ok := keypad.Normalize(r)
	if !ok {
		return false
	}
	return b.Keys.Press(sym)
}

// Close stops the buzzer and releases the journal.
func (b *Board) Close() error {
	b.Buzzer.Stop()
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}

// alertObserver posts a desktop notification when a countdown expires.
type alertObserver struct {
	n *notify.Notifier
}

func (a *alertObserver) CountdownExpired(total int) {
	// Desktop notifications can block on the session bus.
	go func() {
		if err := a.n.TimeUp(total); err != nil {
			log.Warn().Err(err).Msg("desktop alert failed")
		}
	}()
}

func (a *alertObserver) KeyAccepted(timer.Key, timer.Mode)  {}
func (a *alertObserver) ModeChanged(timer.Mode, timer.Mode) {}
func (a *alertObserver) CountdownStarted(timer.Duration)    {}
func (a *alertObserver) AlarmSilenced()                     {}
