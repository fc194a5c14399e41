package board

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ramanasai/keytimer/internal/lcd"
	"github.com/ramanasai/keytimer/internal/schedule"
	"github.com/ramanasai/keytimer/internal/timer"
)

// RunHeadless polls the board every interval until ctx is canceled. Keys are
// read from in, one rune at a time (newlines are ignored); every change of
// the display is printed to out.
func (b *Board) RunHeadless(ctx context.Context, in io.Reader, out io.Writer, interval time.Duration) {
	go b.feed(ctx, in)

	var shown uint64
	first := true
	schedule.Every(ctx, interval, func() {
		b.Controller.Step()
		if v := b.Display.Version(); first || v != shown {
			first = false
			shown = v
			fmt.Fprintf(out, "%s  [%s]\n", lcd.Plain(b.Display), b.Controller.Mode())
		}
	})
}

func (b *Board) feed(ctx context.Context, in io.Reader) {
	rd := bufio.NewReader(in)
	for {
		r, _, err := rd.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn().Err(err).Msg("key input closed")
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
		if r == '\n' || r == '\r' {
			continue
		}
		if !b.Press(r) {
			log.Debug().Str("key", string(r)).Msg("not a keypad key")
		}
	}
}

// Frame is one display state seen during a scripted run.
type Frame struct {
	At    time.Duration
	Lines [lcd.Rows]string
	Mode  timer.Mode
}

// Script drives a board with a manual clock. Each rune of keys is pressed on
// its own poll ('.' is an empty poll), the clock moving by step between polls;
// afterwards the board keeps polling until advance has elapsed in total.
// Every distinct display state is returned in order.
func (b *Board) Script(clock *timer.ManualClock, keys string, step, advance time.Duration) []Frame {
	if step <= 0 {
		step = 100 * time.Millisecond
	}
	var frames []Frame
	var elapsed time.Duration
	var shown uint64
	poll := func() {
		b.Controller.Step()
		if v := b.Display.Version(); len(frames) == 0 || v != shown {
			shown = v
			frames = append(frames, Frame{At: elapsed, Lines: b.Display.Lines(), Mode: b.Controller.Mode()})
		}
	}
	for _, r := range keys {
		if r != '.' {
			b.Press(r)
		}
		poll()
		clock.Advance(step)
		elapsed += step
	}
	for elapsed < advance {
		poll()
		clock.Advance(step)
		elapsed += step
	}
	poll()
	return frames
}
