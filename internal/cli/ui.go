package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/mazepath/config"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - route
	colorGreen = lipgloss.Color("35")  // Green - start, success
	colorRed   = lipgloss.Color("167") // Soft red - end, errors
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - walls
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// palette is a set of styles bound to one output writer.
type palette struct {
	title, label, number, dim lipgloss.Style
	wall, start, end, route   lipgloss.Style
	success, failure          lipgloss.Style
}

// newPalette builds styles for w. Color is used when mode is "always", or
// when mode is "auto" and w is a terminal.
func newPalette(w io.Writer, mode string) palette {
	r := lipgloss.NewRenderer(w)
	if !useColor(w, mode) {
		r.SetColorProfile(termenv.Ascii)
	} else if mode == config.ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	return palette{
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		label:   r.NewStyle().Foreground(colorGray),
		number:  r.NewStyle().Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
		wall:    r.NewStyle().Foreground(colorDim),
		start:   r.NewStyle().Bold(true).Foreground(colorGreen),
		end:     r.NewStyle().Bold(true).Foreground(colorRed),
		route:   r.NewStyle().Bold(true).Foreground(colorCyan),
		success: r.NewStyle().Foreground(colorGreen),
		failure: r.NewStyle().Foreground(colorRed),
	}
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// mazeText styles an encoded maze rune by rune.
func (p palette) mazeText(text string, wall, start, end, route rune) string {
	var sb strings.Builder
	for _, c := range text {
		s := string(c)
		switch c {
		case wall:
			sb.WriteString(p.wall.Render(s))
		case start:
			sb.WriteString(p.start.Render(s))
		case end:
			sb.WriteString(p.end.Render(s))
		case route:
			sb.WriteString(p.route.Render(s))
		default:
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// field prints an aligned "label  value" line.
func (p palette) field(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "  %s %v\n", p.label.Render(fmt.Sprintf("%-18s", label)), value)
}

func (p palette) ok(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", p.success.Render(iconSuccess), msg)
}

func (p palette) fail(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", p.failure.Render(iconError), msg)
}
