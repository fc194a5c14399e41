package timer

import "strings"

type fakeClock struct{ ms int64 }

func (c *fakeClock) Now() int64           { return c.ms }
func (c *fakeClock) Advance(ms int64)     { c.ms += ms }
func (c *fakeClock) AdvanceSeconds(s int) { c.ms += int64(s) * 1000 }

// scriptKeys hands out one rune per poll; '.' means an empty poll.
type scriptKeys struct{ pending []rune }

func (s *scriptKeys) Type(keys string) { s.pending = append(s.pending, []rune(keys)...) }

func (s *scriptKeys) ReadKey() (rune, bool) {
	if len(s.pending) == 0 {
		return 0, false
	}
	r := s.pending[0]
	s.pending = s.pending[1:]
	if r == '.' {
		return 0, false
	}
	return r, true
}

type gridDisplay struct {
	rows   [2][16]rune
	clears int
}

func newGridDisplay() *gridDisplay {
	d := &gridDisplay{}
	d.Clear()
	d.clears = 0
	return d
}

func (d *gridDisplay) Clear() {
	for r := range d.rows {
		for c := range d.rows[r] {
			d.rows[r][c] = ' '
		}
	}
	d.clears++
}

func (d *gridDisplay) WriteAt(col, row int, text string) {
	for _, ch := range text {
		if row >= 0 && row < 2 && col >= 0 && col < 16 {
			d.rows[row][col] = ch
		}
		col++
	}
}

func (d *gridDisplay) Row(i int) string { return strings.TrimRight(string(d.rows[i][:]), " ") }

type fakeBuzzer struct {
	on    bool
	freqs []int
	stops int
}

func (b *fakeBuzzer) Start(freq int) {
	b.on = true
	b.freqs = append(b.freqs, freq)
}

func (b *fakeBuzzer) Stop() {
	b.on = false
	b.stops++
}

type recordingObserver struct {
	silenced int
	keys     []string
	modes    []Mode
	started  []Duration
	expired  []int
}

func (o *recordingObserver) KeyAccepted(k Key, _ Mode)   { o.keys = append(o.keys, k.String()) }
func (o *recordingObserver) ModeChanged(_, to Mode)      { o.modes = append(o.modes, to) }
func (o *recordingObserver) CountdownStarted(d Duration) { o.started = append(o.started, d) }
func (o *recordingObserver) CountdownExpired(total int)  { o.expired = append(o.expired, total) }
func (o *recordingObserver) AlarmSilenced()              { o.silenced++ }

type rig struct {
	ctl   *Controller
	keys  *scriptKeys
	disp  *gridDisplay
	buzz  *fakeBuzzer
	clock *fakeClock
	obs   *recordingObserver
}

func newRig() *rig {
	r := &rig{
		keys:  &scriptKeys{},
		disp:  newGridDisplay(),
		buzz:  &fakeBuzzer{},
		clock: &fakeClock{},
		obs:   &recordingObserver{},
	}
	r.ctl = New(Config{}, Hardware{Keys: r.keys, Display: r.disp, Buzzer: r.buzz, Clock: r.clock, Observer: r.obs})
	return r
}

// press types keys and steps once per key.
func (r *rig) press(keys string) {
	r.keys.Type(keys)
	for range []rune(keys) {
		r.ctl.Step()
	}
}

// wait advances the clock by ms and steps once.
func (r *rig) wait(ms int64) {
	r.clock.Advance(ms)
	r.ctl.Step()
}
