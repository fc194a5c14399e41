package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerStartsInBanner(t *testing.T) {
	r := newRig()
	assert.Equal(t, ModeBanner, r.ctl.Mode())
	assert.Equal(t, PromptText, r.disp.Row(1))

	r.ctl.Step()
	assert.Equal(t, "Welcome to the", r.disp.Row(0)[1:])
	assert.Equal(t, 1, r.ctl.Snapshot().BannerCursor)
}

func TestControllerBannerRespectsInterval(t *testing.T) {
	r := newRig()
	r.ctl.Step()
	r.wait(DefaultBannerInterval - 1)
	assert.Equal(t, 1, r.ctl.Snapshot().BannerCursor)
	r.wait(1)
	assert.Equal(t, 2, r.ctl.Snapshot().BannerCursor)
	assert.Equal(t, "Welcome to the a", r.disp.Row(0))
}

func TestControllerForeignKeysStayInBanner(t *testing.T) {
	r := newRig()
	r.press("ABDxyz!ABD")
	assert.Equal(t, ModeBanner, r.ctl.Mode())
	assert.Empty(t, r.obs.keys)
}

func TestControllerFourDigitsStartCountdown(t *testing.T) {
	tests := []struct {
		keys  string
		total int
	}{
		{"0130", 90},
		{"9999", 6039},
		{"0001", 1},
		{"1000", 600},
		{"0075", 75},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			r := newRig()
			r.press(tt.keys)
			snap := r.ctl.Snapshot()
			require.Equal(t, ModeCounting, snap.Mode)
			assert.Equal(t, tt.total, snap.TotalSeconds)
			assert.Equal(t, tt.total, snap.Remaining)
			assert.Empty(t, snap.Digits)
		})
	}
}

func TestControllerEntryEchoesDigits(t *testing.T) {
	r := newRig()
	r.press("01")
	assert.Equal(t, ModeEntry, r.ctl.Mode())
	assert.Equal(t, "01:", r.disp.Row(0))
	assert.Empty(t, r.disp.Row(1), "entry starts from a clear display")

	r.press("3")
	assert.Equal(t, "01:3", r.disp.Row(0))
	assert.Equal(t, []int{0, 1, 3}, r.ctl.Snapshot().Digits)
}

func TestControllerStarAndHashDoNotEnterBuffer(t *testing.T) {
	r := newRig()
	r.press("#")
	assert.Equal(t, ModeEntry, r.ctl.Mode())
	assert.Empty(t, r.ctl.Snapshot().Digits)

	r.press("1*2#30")
	assert.Equal(t, ModeCounting, r.ctl.Mode())
	assert.Equal(t, 12*60+30, r.ctl.Snapshot().TotalSeconds)
}

func TestControllerFifthDigitIgnored(t *testing.T) {
	r := newRig()
	r.press("12345")
	snap := r.ctl.Snapshot()
	assert.Equal(t, ModeCounting, snap.Mode)
	assert.Equal(t, 12*60+34, snap.TotalSeconds)
	assert.Equal(t, []Duration{{Minutes: 12, Seconds: 34}}, r.obs.started)
	assert.Equal(t, "Time left: 12:34", r.disp.Row(0))
}

func TestControllerCountdownToAlarm(t *testing.T) {
	r := newRig()
	r.press("0130")
	assert.Equal(t, "Time left: 01:30", r.disp.Row(0))

	r.wait(1000)
	assert.Equal(t, "Time left: 01:29", r.disp.Row(0))

	r.wait(88_000)
	assert.Equal(t, "Time left: 00:01", r.disp.Row(0))
	assert.Equal(t, ModeCounting, r.ctl.Mode())

	r.wait(2000)
	assert.Equal(t, ModeAlarm, r.ctl.Mode())
	assert.Equal(t, TimeUpText, r.disp.Row(0))
	assert.True(t, r.buzz.on)
	assert.Equal(t, []int{DefaultFrequency}, r.buzz.freqs)
	assert.Equal(t, []int{90}, r.obs.expired)

	r.wait(5000)
	assert.Equal(t, []int{DefaultFrequency}, r.buzz.freqs, "alarm starts once")
}

func TestControllerDigitsIgnoredWhileCounting(t *testing.T) {
	r := newRig()
	r.press("0010")
	r.press("55")
	snap := r.ctl.Snapshot()
	assert.Equal(t, ModeCounting, snap.Mode)
	assert.Equal(t, 10, snap.TotalSeconds)
}

func TestControllerAlarmDismissThenNewEntry(t *testing.T) {
	r := newRig()
	r.press("0001")
	r.wait(1000)
	require.Equal(t, ModeAlarm, r.ctl.Mode())
	require.True(t, r.buzz.on)

	r.press("5")
	assert.Equal(t, ModeAlarm, r.ctl.Mode(), "first key only silences")
	assert.False(t, r.buzz.on)
	assert.False(t, r.ctl.Snapshot().Buzzing)
	assert.Equal(t, TimeUpText, r.disp.Row(0))

	r.press("0")
	assert.Equal(t, ModeEntry, r.ctl.Mode())
	assert.Equal(t, []int{0}, r.ctl.Snapshot().Digits)
	assert.Equal(t, "0", r.disp.Row(0))

	r.press("002")
	assert.Equal(t, ModeCounting, r.ctl.Mode())
	assert.Equal(t, 2, r.ctl.Snapshot().TotalSeconds)
}

func TestControllerClearFromEveryMode(t *testing.T) {
	setups := map[string]func(r *rig){
		"banner":   func(r *rig) { r.ctl.Step() },
		"entry":    func(r *rig) { r.press("12") },
		"counting": func(r *rig) { r.press("0500") },
		"alarm": func(r *rig) {
			r.press("0001")
			r.wait(1000)
		},
		"alarm silenced": func(r *rig) {
			r.press("0001")
			r.wait(1000)
			r.press("#")
		},
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			r := newRig()
			setup(r)
			for i := 0; i < 3; i++ {
				r.press("C")
				snap := r.ctl.Snapshot()
				require.Equal(t, ModeBanner, snap.Mode)
				assert.Empty(t, snap.Digits)
				assert.False(t, snap.Buzzing)
				assert.False(t, r.buzz.on)
				assert.Equal(t, 0, snap.TotalSeconds)
				assert.Equal(t, 1, snap.BannerCursor, "banner restarts from the first window")
				assert.Equal(t, " Welcome to the", r.disp.Row(0))
				assert.Equal(t, PromptText, r.disp.Row(1))
			}
		})
	}
}

func TestControllerClearedCountdownNeverAlarms(t *testing.T) {
	r := newRig()
	r.press("0002")
	r.press("C")
	r.wait(10_000)
	assert.Equal(t, ModeBanner, r.ctl.Mode())
	assert.Empty(t, r.buzz.freqs)
}

func TestControllerZeroDurationAlarmsAtOnce(t *testing.T) {
	r := newRig()
	r.press("0000")
	assert.Equal(t, ModeAlarm, r.ctl.Mode())
	assert.True(t, r.buzz.on)
}

func TestControllerCustomConfig(t *testing.T) {
	keys := &scriptKeys{}
	disp := newGridDisplay()
	buzz := &fakeBuzzer{}
	clock := &fakeClock{}
	ctl := New(Config{BannerText: "0123456789abcdefXYZ", Frequency: 880}, Hardware{
		Keys: keys, Display: disp, Buzzer: buzz, Clock: clock,
	})
	ctl.Step()
	assert.Equal(t, "0123456789abcdef", disp.Row(0))

	keys.Type("0000")
	for i := 0; i < 4; i++ {
		ctl.Step()
	}
	assert.Equal(t, []int{880}, buzz.freqs)
}

func TestControllerObserverSeesTransitions(t *testing.T) {
	r := newRig()
	r.press("A0001")
	r.wait(1000)
	r.press("9C")
	assert.Equal(t, []string{"0", "0", "0", "1", "9", "C"}, r.obs.keys)
	assert.Equal(t, []Mode{ModeEntry, ModeCounting, ModeAlarm, ModeBanner}, r.obs.modes)
	assert.Equal(t, 1, r.obs.silenced)
}

func TestObserversFanOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := Observers{a, b}
	obs.KeyAccepted(Key{Kind: KeyHash}, ModeBanner)
	obs.ModeChanged(ModeBanner, ModeEntry)
	obs.CountdownStarted(Duration{Seconds: 3})
	obs.CountdownExpired(3)
	obs.AlarmSilenced()
	for _, o := range []*recordingObserver{a, b} {
		assert.Equal(t, []string{"#"}, o.keys)
		assert.Equal(t, []Mode{ModeEntry}, o.modes)
		assert.Equal(t, []Duration{{Seconds: 3}}, o.started)
		assert.Equal(t, []int{3}, o.expired)
		assert.Equal(t, 1, o.silenced)
	}
}
