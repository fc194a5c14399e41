package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Digits key.Binding
	Clear  key.Binding
	Symbol key.Binding
	Dead   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "enter MM:SS"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C", "esc", "backspace"),
			key.WithHelp("c/esc", "clear"),
		),
		Symbol: key.NewBinding(
			key.WithKeys("*", "#"),
			key.WithHelp("* #", "wake / silence"),
		),
		Dead: key.NewBinding(
			key.WithKeys("a", "A", "b", "B", "d", "D"),
			key.WithHelp("a b d", "unused keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Clear, k.Symbol, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Digits, k.Symbol}, {k.Clear, k.Dead, k.Quit}}
}
