package utils

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/keytimer/internal/db"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatCompact OutputFormat = "compact"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatDefault, nil
	case FormatDefault, FormatTable, FormatJSON, FormatCSV, FormatCompact:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want default, table, json, csv or compact)", s)
}

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format   OutputFormat
	Color    bool
	Location *time.Location
}

func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Format:   FormatDefault,
		Color:    true,
		Location: time.Local,
	}
}

type Styles struct {
	Time    lipgloss.Style
	Kind    map[string]lipgloss.Style
	Detail  lipgloss.Style
	Session lipgloss.Style
}

// Renderer turns journal events into text.
type Renderer struct {
	cfg    *RenderConfig
	styles *Styles
}

func NewRenderer(cfg *RenderConfig) *Renderer {
	if cfg == nil {
		cfg = DefaultRenderConfig()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Renderer{cfg: cfg, styles: initStyles(cfg.Color)}
}

func initStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{Time: plain, Kind: map[string]lipgloss.Style{}, Detail: plain, Session: plain}
	}
	return &Styles{
		Time: lipgloss.NewStyle().Faint(true),
		Kind: map[string]lipgloss.Style{
			db.KindKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
			db.KindStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
			db.KindExpire:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true),
			db.KindDismiss: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")),
			db.KindClear:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7")),
		},
		Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
		Session: lipgloss.NewStyle().Faint(true),
	}
}

// Render formats events according to the configured format.
func (r *Renderer) Render(events []db.Event) (string, error) {
	switch r.cfg.Format {
	case FormatJSON:
		return r.renderJSON(events)
	case FormatCSV:
		return r.renderCSV(events)
	case FormatTable:
		return r.renderTable(events), nil
	case FormatCompact:
		return r.renderCompact(events), nil
	default:
		return r.renderDefault(events), nil
	}
}

func (r *Renderer) kind(k string) string {
	if st, ok := r.styles.Kind[k]; ok {
		return st.Render(fmt.Sprintf("%-7s", k))
	}
	return fmt.Sprintf("%-7s", k)
}

func (r *Renderer) renderDefault(events []db.Event) string {
	if len(events) == 0 {
		return "No journal entries.\n"
	}
	var b strings.Builder
	for _, e := range events {
		b.WriteString(r.styles.Time.Render(e.At.In(r.cfg.Location).Format("2006-01-02 15:04:05")))
		b.WriteString("  ")
		b.WriteString(r.kind(e.Kind))
		b.WriteString("  ")
		b.WriteString(r.styles.Detail.Render(describe(e)))
		b.WriteString("  ")
		b.WriteString(r.styles.Session.Render(shortSession(e.Session)))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderCompact(events []db.Event) string {
	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b, "%s %s %s\n", e.At.In(r.cfg.Location).Format("15:04:05"), e.Kind, describe(e))
	}
	return b.String()
}

func (r *Renderer) renderTable(events []db.Event) string {
	header := fmt.Sprintf("%-6s %-19s %-7s %-9s %-12s %s", "ID", "TIME", "KIND", "MODE", "DETAIL", "SESSION")
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")
	for _, e := range events {
		fmt.Fprintf(&b, "%-6d %-19s %-7s %-9s %-12s %s\n",
			e.ID, e.At.In(r.cfg.Location).Format("2006-01-02 15:04:05"), e.Kind, e.Mode, describe(e), shortSession(e.Session))
	}
	return b.String()
}

func (r *Renderer) renderJSON(events []db.Event) (string, error) {
	if events == nil {
		events = []db.Event{}
	}
	out, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

func (r *Renderer) renderCSV(events []db.Event) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "time", "session", "kind", "mode", "detail", "seconds"})
	for _, e := range events {
		_ = w.Write([]string{
			strconv.FormatInt(e.ID, 10),
			e.At.UTC().Format(time.RFC3339),
			e.Session,
			e.Kind,
			e.Mode,
			e.Detail,
			strconv.Itoa(e.Seconds),
		})
	}
	w.Flush()
	return buf.String(), w.Error()
}

func describe(e db.Event) string {
	switch e.Kind {
	case db.KindKey:
		return "key " + e.Detail
	case db.KindStart:
		return "start " + e.Detail
	case db.KindExpire:
		return fmt.Sprintf("time's up after %02d:%02d", e.Seconds/60, e.Seconds%60)
	case db.KindDismiss:
		return "alarm silenced"
	case db.KindClear:
		return "cleared from " + e.Mode
	}
	return e.Detail
}

func shortSession(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
