package lcd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style controls how a surface is drawn in a terminal.
type Style struct {
	Bezel  lipgloss.Style
	Glass  lipgloss.Style
	Border bool
}

var DefaultStyle = Style{
	Bezel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89B4FA")).Padding(0, 1),
	Glass:  lipgloss.NewStyle().Background(lipgloss.Color("#1E3A5F")).Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
	Border: true,
}

// Frame renders the surface as a boxed two-line panel.
func Frame(s *Surface, st Style) string {
	l := s.Lines()
	rows := make([]string, 0, Rows)
	for _, line := range l {
		rows = append(rows, st.Glass.Render(line))
	}
	body := strings.Join(rows, "\n")
	if !st.Border {
		return body
	}
	return st.Bezel.Render(body)
}

// Plain renders the surface between ASCII rails, for logs and pipes.
func Plain(s *Surface) string { return PlainLines(s.Lines()) }

// PlainLines is Plain for a captured set of lines.
func PlainLines(l [Rows]string) string {
	rail := "+" + strings.Repeat("-", Cols) + "+"
	var b strings.Builder
	b.WriteString(rail + "\n")
	for _, line := range l {
		b.WriteString("|" + line + "|\n")
	}
	b.WriteString(rail)
	return b.String()
}
