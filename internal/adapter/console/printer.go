package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/driftcheck/driftcheck/internal/diff"
)

// StyleFunc colors a rendered fragment. It must not change the fragment's
// visible width.
type StyleFunc func(a ...any) string

// Styles selects the color applied to each line kind. Color selection is
// a pure function of the kind, so tests can substitute plain styles and
// compare rendered strings.
type Styles struct {
	Removed StyleFunc
	Added   StyleFunc
	Muted   StyleFunc
}

// DefaultStyles returns the ANSI color scheme: removed lines red, added
// lines green, unchanged line numbers faint.
func DefaultStyles() Styles {
	return Styles{
		Removed: color.New(color.FgRed).SprintFunc(),
		Added:   color.New(color.FgGreen).SprintFunc(),
		Muted:   color.New(color.Faint).SprintFunc(),
	}
}

// PlainStyles returns styles that apply no color at all.
func PlainStyles() Styles {
	plain := func(a ...any) string { return fmt.Sprint(a...) }
	return Styles{Removed: plain, Added: plain, Muted: plain}
}

// Printer renders hunks as aligned three-column lines: left line number,
// right line number, content. The column for the absent side of a removed
// or added line stays blank.
type Printer struct {
	out    io.Writer
	styles Styles
}

// NewPrinter constructs a Printer writing to out.
func NewPrinter(out io.Writer, styles Styles) *Printer {
	return &Printer{out: out, styles: styles}
}

// SetStyles replaces the color scheme, e.g. when --no-color is set after
// the printer was built.
func (p *Printer) SetStyles(styles Styles) {
	p.styles = styles
}

// Heading writes a one-line header naming the compared files.
func (p *Printer) Heading(source, target string) {
	fmt.Fprintf(p.out, "--- %s -> %s\n", source, target)
}

// PrintHunks writes every hunk, separated by blank lines. The number
// column width is derived from the last hunk's ending line number; line
// numbers only grow across hunks, so no later number can be wider.
//
// PrintHunks panics when hunks is empty. Callers must gate on
// diff.NonEmpty before extracting and printing.
func (p *Printer) PrintHunks(hunks []diff.Hunk) {
	if len(hunks) == 0 {
		panic("console: PrintHunks called with no hunks")
	}

	last := hunks[len(hunks)-1]
	maxLine := last.StartLeft
	if last.StartRight > maxLine {
		maxLine = last.StartRight
	}
	maxLine += len(last.Ops)
	width := len(strconv.Itoa(maxLine))

	for i, hunk := range hunks {
		if i > 0 {
			fmt.Fprintln(p.out)
		}
		p.printHunk(hunk, width)
	}
}

func (p *Printer) printHunk(h diff.Hunk, width int) {
	blank := strings.Repeat(" ", width)
	left, right := h.StartLeft, h.StartRight

	for _, op := range h.Ops {
		switch op.Kind {
		case diff.LineRemoved:
			left++
			num := fmt.Sprintf("%*d", width, left)
			fmt.Fprintf(p.out, " %s | %s | %s\n", p.styles.Removed(num), blank, p.styles.Removed(op.Left))
		case diff.LineAdded:
			right++
			num := fmt.Sprintf("%*d", width, right)
			fmt.Fprintf(p.out, " %s | %s | %s\n", blank, p.styles.Added(num), p.styles.Added(op.Right))
		case diff.LineUnchanged:
			left++
			right++
			leftNum := fmt.Sprintf("%*d", width, left)
			rightNum := fmt.Sprintf("%*d", width, right)
			fmt.Fprintf(p.out, " %s | %s | %s\n", p.styles.Muted(leftNum), p.styles.Muted(rightNum), op.Left)
		}
	}
}
