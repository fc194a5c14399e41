package timer

// KeySource is polled once per step. It returns immediately; ok is false when
// nothing is pressed.
type KeySource interface {
	ReadKey() (r rune, ok bool)
}

// Display is a character surface addressed by column and row.
type Display interface {
	Clear()
	WriteAt(col, row int, text string)
}

// Buzzer drives the alarm tone.
type Buzzer interface {
	Start(freqHz int)
	Stop()
}

// Clock is a monotonic millisecond counter.
type Clock interface {
	Now() int64
}

// Observer receives controller events for diagnostics. Implementations must
// not call back into the controller.
type Observer interface {
	KeyAccepted(k Key, mode Mode)
	ModeChanged(from, to Mode)
	CountdownStarted(d Duration)
	CountdownExpired(totalSeconds int)
	AlarmSilenced()
}

// Observers fans events out to several observers in order.
type Observers []Observer

func (o Observers) KeyAccepted(k Key, mode Mode) {
	for _, ob := range o {
		ob.KeyAccepted(k, mode)
	}
}

func (o Observers) ModeChanged(from, to Mode) {
	for _, ob := range o {
		ob.ModeChanged(from, to)
	}
}

func (o Observers) CountdownStarted(d Duration) {
	for _, ob := range o {
		ob.CountdownStarted(d)
	}
}

func (o Observers) CountdownExpired(totalSeconds int) {
	for _, ob := range o {
		ob.CountdownExpired(totalSeconds)
	}
}

func (o Observers) AlarmSilenced() {
	for _, ob := range o {
		ob.AlarmSilenced()
	}
}

type nopObserver struct{}

func (nopObserver) KeyAccepted(Key, Mode)     {}
func (nopObserver) ModeChanged(Mode, Mode)    {}
func (nopObserver) CountdownStarted(Duration) {}
func (nopObserver) CountdownExpired(int)      {}
func (nopObserver) AlarmSilenced()            {}
