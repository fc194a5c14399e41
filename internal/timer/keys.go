package timer

import "fmt"

type KeyKind int

const (
	KeyDigit KeyKind = iota
	KeyClear
	KeyStar
	KeyHash
)

// Key is a classified keypad press. Digit is only meaningful for KeyDigit.
type Key struct {
	Kind  KeyKind
	Digit int
}

// Rune returns the keypad symbol for k.
func (k Key) Rune() rune {
	switch k.Kind {
	case KeyDigit:
		return rune('0' + k.Digit)
	case KeyClear:
		return 'C'
	case KeyStar:
		return '*'
	case KeyHash:
		return '#'
	}
	return '?'
}

func (k Key) String() string { return string(k.Rune()) }

func (k KeyKind) String() string {
	switch k {
	case KeyDigit:
		return "digit"
	case KeyClear:
		return "clear"
	case KeyStar:
		return "star"
	case KeyHash:
		return "hash"
	}
	return fmt.Sprintf("KeyKind(%d)", int(k))
}

// Classify maps a raw keypad symbol to an allowed key. Anything outside
// 0-9, C, * and # is dropped.
func Classify(r rune) (Key, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Key{Kind: KeyDigit, Digit: int(r - '0')}, true
	case r == 'C':
		return Key{Kind: KeyClear}, true
	case r == '*':
		return Key{Kind: KeyStar}, true
	case r == '#':
		return Key{Kind: KeyHash}, true
	}
	return Key{}, false
}
