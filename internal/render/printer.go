// Package render writes the lookup report to a terminal: a fixed-width
// styled stat sheet and an optional half-block sprite image above it.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultWidth is the report width in terminal columns.
const DefaultWidth = 80

// Styles holds the lipgloss styles used across the report.
type Styles struct {
	Name    lipgloss.Style // Header name line
	Status  lipgloss.Style // Legendary/Mythical header line
	Number  lipgloss.Style // National pokedex number
	Type    lipgloss.Style // Type names
	Value   lipgloss.Style // Regular stat values
	Total   lipgloss.Style // Base stat total
	Heading lipgloss.Style // Section headings
	Dim     lipgloss.Style // De-emphasized text and missing values
	Error   lipgloss.Style // Failure messages
	Plain   lipgloss.Style // Unstyled text
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Name:    r.NewStyle().Foreground(lipgloss.Color("3")),
		Status:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Number:  r.NewStyle().Foreground(lipgloss.Color("3")),
		Type:    r.NewStyle().Foreground(lipgloss.Color("5")),
		Value:   r.NewStyle().Foreground(lipgloss.Color("6")),
		Total:   r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Heading: r.NewStyle().Bold(true),
		Dim:     r.NewStyle().Faint(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Plain:   r.NewStyle(),
	}
}

// Printer writes report lines to a writer at a fixed width.
type Printer struct {
	w       io.Writer
	width   int
	profile termenv.Profile
	styles  Styles
	num     *message.Printer
}

// NewPrinter creates a printer writing to w. A width <= 0 falls back to
// DefaultWidth. The profile decides how much color the styles and the
// sprite renderer emit; pass termenv.Ascii for plain output.
func NewPrinter(w io.Writer, width int, profile termenv.Profile) *Printer {
	if width <= 0 {
		width = DefaultWidth
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return &Printer{
		w:       w,
		width:   width,
		profile: profile,
		styles:  newStyles(r),
		num:     message.NewPrinter(language.English),
	}
}

// Failure prints a centered error message block.
func (p *Printer) Failure(msg string) {
	p.blank()
	p.printCenter(msg, p.styles.Error)
	p.blank()
}

func (p *Printer) blank() {
	fmt.Fprintln(p.w)
}

// printCenter writes text centered within the report width. Padding is
// computed from the unstyled text so ANSI sequences don't skew it.
func (p *Printer) printCenter(text string, style lipgloss.Style) {
	pad := (p.width - runewidth.StringWidth(text)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", pad), style.Render(text))
}

// printInfo writes a "label  value" row with the label right-aligned to
// the middle of the report. The value may already carry styling.
func (p *Printer) printInfo(label, value string) {
	leftWidth := p.width/2 - 1
	pad := leftWidth - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(p.w, "%s%s  %s\n", strings.Repeat(" ", pad), label, value)
}

// printHeading writes a bold section heading in the label column.
func (p *Printer) printHeading(heading string) {
	leftWidth := p.width/2 - 1
	pad := leftWidth - runewidth.StringWidth(heading)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", pad), p.styles.Heading.Render(heading))
}

// emptyValue renders the placeholder for missing data.
func (p *Printer) emptyValue() string {
	return p.styles.Dim.Render("-")
}
