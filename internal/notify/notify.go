package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

const appName = "Kitchen timer"

// AlertFunc posts a desktop alert.
type AlertFunc func(title, message string, icon any) error

// Notifier posts desktop alerts when a countdown finishes.
type Notifier struct {
	alert AlertFunc
}

func New() *Notifier { return &Notifier{alert: beeep.Alert} }

// NewWithFunc is New with a custom alert sink.
func NewWithFunc(fn AlertFunc) *Notifier { return &Notifier{alert: fn} }

// TimeUp announces the end of a countdown of totalSeconds.
func (n *Notifier) TimeUp(totalSeconds int) error {
	title, msg := FormatTimeUp(totalSeconds)
	return n.alert(title, msg, "")
}

func FormatTimeUp(totalSeconds int) (string, string) {
	title := appName
	msg := fmt.Sprintf("Time's up! %02d:%02d has elapsed.", totalSeconds/60, totalSeconds%60)
	return title, msg
}
