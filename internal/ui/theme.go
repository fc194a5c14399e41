package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Key       lipgloss.Style
	KeyActive lipgloss.Style
	KeyDead   lipgloss.Style
	Hint      lipgloss.Style
	Alarm     lipgloss.Style
	Success   lipgloss.Style
	LCDBezel  lipgloss.Style
	LCDGlass  lipgloss.Style
}

var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Key:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	KeyActive: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#A6E3A1")).Foreground(lipgloss.Color("#A6E3A1")).Bold(true).Padding(0, 1),
	KeyDead:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Faint(true).Padding(0, 1),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Alarm:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	LCDBezel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89B4FA")).Padding(0, 1),
	LCDGlass:  lipgloss.NewStyle().Background(lipgloss.Color("#1E3A5F")).Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
}

// MonoTheme draws without colour, for terminals that cannot show it.
var MonoTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true),
	Label:     lipgloss.NewStyle(),
	Value:     lipgloss.NewStyle(),
	Key:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	KeyActive: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1),
	KeyDead:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	Hint:      lipgloss.NewStyle(),
	Alarm:     lipgloss.NewStyle().Bold(true),
	Success:   lipgloss.NewStyle().Bold(true),
	LCDBezel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	LCDGlass:  lipgloss.NewStyle(),
}

// ThemeByName maps the config theme setting to a theme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono", "plain":
		return MonoTheme
	}
	return DefaultTheme
}
