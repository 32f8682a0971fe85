package command

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const maxWidth = 96

var (
	baseStyle   = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#B9A7FF"})
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})
	valueStyle  = lipgloss.NewStyle().Bold(true)
	warnStyle   = baseStyle.Foreground(lipgloss.Color("#FF4444")).Padding(0, 1)
	secretStyle = baseStyle.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#B9A7FF"}).
			Padding(1, 2) //nolint:mnd
)

// Row is a label/value line of a rendered block
type Row struct {
	Label string
	Value string
}

func width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec
	if err != nil || w > maxWidth || w <= 0 {
		return maxWidth
	}
	return w
}

// RenderRows writes a titled block of aligned label/value rows.
func RenderRows(w io.Writer, title string, rows []Row) {
	labelWidth := 0
	for _, r := range rows {
		if l := lipgloss.Width(r.Label); l > labelWidth {
			labelWidth = l
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteRune('\n')
	for _, r := range rows {
		b.WriteString(labelStyle.Width(labelWidth + 2).Render(r.Label)) //nolint:mnd
		b.WriteString(valueStyle.Render(r.Value))
		b.WriteRune('\n')
	}

	_, _ = io.WriteString(w, baseStyle.Render(b.String()))
	_, _ = io.WriteString(w, "\n")
}

// RenderSecret writes str inside a bordered box, e.g. a freshly generated mnemonic.
func RenderSecret(w io.Writer, title string, str string) {
	_, _ = io.WriteString(w, secretStyle.Width(width()-4).Render(titleStyle.Render(title)+"\n\n"+str)) //nolint:mnd
	_, _ = io.WriteString(w, "\n")
}

// RenderWarning writes a highlighted warning line.
func RenderWarning(w io.Writer, str string) {
	_, _ = io.WriteString(w, warnStyle.Render(str))
	_, _ = io.WriteString(w, "\n")
}
