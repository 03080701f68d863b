// Package ui - Terminal user interface
// Headers, status lines, tables and cost summaries with optional colors.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Palette for terminal output
var (
	boldColor    = color.New(color.Bold)
	headerColor  = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgBlue)
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer. Colors also switch off when stdout is
// not a terminal or NO_COLOR is set.
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// Verbosity returns the current verbosity
func (w *Writer) Verbosity() int {
	return w.verbosity
}

// color applies c unless colors are disabled
func (w *Writer) color(c *color.Color, text string) string {
	if w.noColor {
		return text
	}
	return c.Sprint(text)
}

// Bold renders text in bold
func (w *Writer) Bold(text string) string { return w.color(boldColor, text) }

// Dim renders secondary text
func (w *Writer) Dim(text string) string { return w.color(dimColor, text) }

// Good renders a favorable figure
func (w *Writer) Good(text string) string { return w.color(successColor, text) }

// Bad renders an unfavorable figure
func (w *Writer) Bad(text string) string { return w.color(errorColor, text) }

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes formatted text with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.color(headerColor, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.color(boldColor, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(successColor, "✓ "), msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(warnColor, "⚠ "), msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(errorColor, "✗ "), msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(infoColor, "ℹ "), msg)
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(dimColor, "  "+msg))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
	right   []bool
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
		right:   make([]bool, len(headers)),
	}
}

// AlignRight right-aligns the given columns, typically amounts
func (t *Table) AlignRight(columns ...int) *Table {
	for _, c := range columns {
		if c >= 0 && c < len(t.right) {
			t.right[c] = true
		}
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Rows returns the number of rows added
func (t *Table) Rows() int {
	return len(t.rows)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.color(boldColor, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell))
		if t.right[i] {
			parts[i] = pad + cell
		} else {
			parts[i] = cell + pad
		}
	}
	return strings.TrimRight(strings.Join(parts, " │ "), " ")
}

// CostSummary renders the totals of one scenario side by side
type CostSummary struct {
	w          *Writer
	Title      string
	Labels     [2]string
	Totals     [2]string
	LoggingPct [2]string
	Savings    string
	Percent    string
	// Favorable is true when the second provider is cheaper
	Favorable bool
}

// NewCostSummary creates a cost summary
func (w *Writer) NewCostSummary(title string) *CostSummary {
	return &CostSummary{w: w, Title: title}
}

// Render prints the cost summary
func (s *CostSummary) Render() {
	s.w.Println("📊 %s", s.w.color(boldColor, s.Title))
	for i := range s.Labels {
		s.w.Println("   %s Total Cost: %s/month", s.Labels[i], s.w.color(boldColor, s.Totals[i]))
	}

	savings := fmt.Sprintf("%s/month (%s)", s.Savings, s.Percent)
	if s.Favorable {
		savings = s.w.color(successColor, savings)
	} else {
		savings = s.w.color(errorColor, savings)
	}
	s.w.Println("   %s Savings: %s", s.Labels[1], savings)

	for i := range s.Labels {
		s.w.Println("   %s Logging %%: %s", s.Labels[i], s.LoggingPct[i])
	}
}
