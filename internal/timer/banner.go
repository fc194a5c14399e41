package timer

// DefaultBanner is the welcome text scrolled while the timer is idle.
const DefaultBanner = " Welcome to the ardruino kitchen timer. "

// BannerWidth is the number of columns in one banner window.
const BannerWidth = 16

// Banner yields successive 16-column windows of a welcome string, one
// character further on each call, splicing the head of the string after the
// tail when the window reaches the end.
type Banner struct {
	text   []rune
	cursor int
}

func NewBanner(text string) *Banner {
	if text == "" {
		text = DefaultBanner
	}
	return &Banner{text: []rune(text)}
}

func (b *Banner) Cursor() int { return b.cursor }

// Reset rewinds the banner to its first window.
func (b *Banner) Reset() { b.cursor = 0 }

// Next returns the current window and advances the cursor.
func (b *Banner) Next() string {
	n := len(b.text)
	if n <= BannerWidth {
		b.cursor = 0
		return padRight(string(b.text), BannerWidth)
	}
	if b.cursor >= n-1 {
		b.cursor = 0
	}
	var w []rune
	if b.cursor < n-BannerWidth {
		w = b.text[b.cursor : b.cursor+BannerWidth]
	} else {
		// The final character is skipped at the splice, as on the board.
		w = append(append([]rune{}, b.text[b.cursor:n-1]...), b.text[:BannerWidth+1-(n-b.cursor)]...)
	}
	b.cursor++
	return string(w)
}

func padRight(s string, w int) string {
	r := []rune(s)
	for len(r) < w {
		r = append(r, ' ')
	}
	return string(r)
}
