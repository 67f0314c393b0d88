package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/thoreinstein/yamlint/internal/lint"
)

var (
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
	dim     = lipgloss.Color("#6B7280")
)

// Text renders one block per result followed by a summary banner.
type Text struct {
	displayCorrect bool

	okStyle   lipgloss.Style
	errStyle  lipgloss.Style
	fileStyle lipgloss.Style
	passStyle lipgloss.Style
	warnStyle lipgloss.Style
}

// NewText creates a Text formatter. Styles are plain unless opts.Color is set.
func NewText(opts Options) *Text {
	r := lipgloss.NewRenderer(io.Discard)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Text{
		displayCorrect: opts.DisplayCorrectFiles,
		okStyle:        r.NewStyle().Foreground(success),
		errStyle:       r.NewStyle().Foreground(danger).Bold(true),
		fileStyle:      r.NewStyle().Foreground(dim),
		passStyle:      r.NewStyle().Foreground(success).Bold(true),
		warnStyle:      r.NewStyle().Foreground(warning).Bold(true),
	}
}

// Format implements Formatter.
func (t *Text) Format(results []lint.Result, summary lint.Summary) (string, error) {
	var sb strings.Builder

	for _, res := range results {
		if res.Valid {
			if !t.displayCorrect {
				continue
			}
			sb.WriteString(t.okStyle.Render("OK"))
			t.writeFile(&sb, res.File)
			sb.WriteByte('\n')
			continue
		}

		sb.WriteString(t.errStyle.Render("ERROR"))
		t.writeFile(&sb, res.File)
		sb.WriteString("\n  >> ")
		if res.HasLine() {
			fmt.Fprintf(&sb, "line %d: ", res.Line)
		}
		sb.WriteString(res.Message)
		sb.WriteByte('\n')
	}

	if summary.Errored == 0 {
		sb.WriteString(t.passStyle.Render("[OK]"))
		fmt.Fprintf(&sb, " All %d YAML files contain valid syntax.\n", summary.Total)
	} else {
		sb.WriteString(t.warnStyle.Render("[WARNING]"))
		fmt.Fprintf(&sb, " %d YAML files have valid syntax and %d contain errors.\n", summary.Passed(), summary.Errored)
	}

	return sb.String(), nil
}

func (t *Text) writeFile(sb *strings.Builder, file string) {
	if file == "" {
		return
	}
	sb.WriteString(" in ")
	sb.WriteString(t.fileStyle.Render(file))
}
