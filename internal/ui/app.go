package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/keytimer/internal/board"
	"github.com/ramanasai/keytimer/internal/keypad"
	"github.com/ramanasai/keytimer/internal/lcd"
	"github.com/ramanasai/keytimer/internal/timer"
	"github.com/ramanasai/keytimer/internal/version"
)

// flashTicks is how long a pressed key stays highlighted.
const flashTicks = 4

type Model struct {
	board    *board.Board
	theme    Theme
	keys     keyMap
	help     help.Model
	interval time.Duration

	width, height int
	lastKey       rune
	flash         int
	quitting      bool
}

func NewModel(b *board.Board, interval time.Duration, theme Theme) Model {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return Model{
		board:    b,
		theme:    theme,
		keys:     defaultKeyMap(),
		help:     help.New(),
		interval: interval,
	}
}

// Run shows the board until the user quits.
func Run(b *board.Board, interval time.Duration, theme Theme) error {
	p := tea.NewProgram(NewModel(b, interval, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tickNow(m.interval)
}

// ---------- messages & commands ----------

type tickMsg struct{ now time.Time }

func tickNow(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg{now: t} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.board.Controller.Step()
		if m.flash > 0 {
			m.flash--
		}
		return m, tickNow(m.interval)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.press('C')
		case key.Matches(msg, m.keys.Digits, m.keys.Symbol, m.keys.Dead):
			if len(msg.Runes) > 0 {
				m.press(msg.Runes[0])
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) press(r rune) {
	if !m.board.Press(r) {
		return
	}
	m.lastKey = unicode.ToUpper(r)
	m.flash = flashTicks
}

// ---------- view ----------

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	title := m.theme.Title.Render("keytimer") + "  " + m.theme.Hint.Render(version.GetShortVersion())

	screen := lcd.Frame(m.board.Display, lcd.Style{Bezel: m.theme.LCDBezel, Glass: m.theme.LCDGlass, Border: true})
	left := lipgloss.JoinVertical(lipgloss.Left, screen, "", m.renderStatus())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", m.renderKeypad())

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", m.help.View(m.keys))
}

func (m Model) renderStatus() string {
	snap := m.board.Controller.Snapshot()
	rows := []string{
		m.theme.Label.Render("mode   ") + m.theme.Value.Render(snap.Mode.String()),
	}
	switch snap.Mode {
	case timer.ModeEntry:
		rows = append(rows, m.theme.Label.Render("digits ")+m.theme.Value.Render(fmt.Sprintf("%d/%d", len(snap.Digits), timer.MaxDigits)))
	case timer.ModeCounting:
		rows = append(rows, m.theme.Label.Render("left   ")+m.theme.Success.Render(fmt.Sprintf("%02d:%02d", snap.Remaining/60, snap.Remaining%60)))
	case timer.ModeAlarm:
		if snap.Buzzing {
			rows = append(rows, m.theme.Alarm.Render("BEEP! press any key to silence"))
		} else {
			rows = append(rows, m.theme.Hint.Render("silenced; type a new time or C"))
		}
	case timer.ModeBanner:
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderKeypad() string {
	rows := make([]string, 0, keypad.Rows)
	for r := 0; r < keypad.Rows; r++ {
		cells := make([]string, 0, keypad.Cols)
		for c := 0; c < keypad.Cols; c++ {
			sym, _ := keypad.Lookup(r, c)
			st := m.theme.Key
			if _, ok := timer.Classify(sym); !ok {
				st = m.theme.KeyDead
			}
			if m.flash > 0 && sym == m.lastKey {
				st = m.theme.KeyActive
			}
			cells = append(cells, st.Render(string(sym)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
