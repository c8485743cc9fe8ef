package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"benchkit/internal/chart"
	"benchkit/internal/fixture"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// PrintFixture renders a compact summary of a written fixture.
func PrintFixture(w io.Writer, r fixture.Report) {
	fmt.Fprintf(w, "%s■ %s%s\n", colorCyan, strings.ToUpper(r.Generator)+" FIXTURE", colorReset)

	for _, rel := range r.Relations {
		color := colorFor(rel.Rows)
		marker := fmt.Sprintf(" %s✓%s", color, colorReset)
		if rel.Rows == 0 {
			marker = fmt.Sprintf(" %s!%s", color, colorReset)
		}
		fmt.Fprintf(w, "  %s%s %10s%s\n", rel.Name, leader(rel.Name), fmt.Sprintf("%d rows", rel.Rows), marker)
	}

	fmt.Fprintf(w, "%s─ Summary%s: %s | %d rows | %s\n\n",
		colorCyan, colorReset, r.Path, r.Rows(), humanize.Bytes(uint64(r.Bytes)))
}

// PrintChart renders the points of a benchmark with their annotation heights
// and lists the files written for it.
func PrintChart(w io.Writer, b chart.Benchmark, files ...string) {
	fmt.Fprintf(w, "%s■ %s%s\n", colorCyan, strings.ToUpper(b.Title)+" CHART", colorReset)

	heights, err := b.AnnotationHeights()
	if err != nil {
		fmt.Fprintf(w, "  %sX %v%s\n\n", colorRed, err, colorReset)
		return
	}

	fmt.Fprintf(w, "%s─ %s / %s%s\n", colorCyan, b.A.Name, b.B.Name, colorReset)
	for i, x := range b.X {
		label := truncate(b.Annotations[i], 24)
		fmt.Fprintf(w, "  %4g %s%s %8.3f %8.3f  @%.3f\n",
			x, label, leader(label), b.A.Values[i], b.B.Values[i], heights[i])
	}

	for _, f := range files {
		fmt.Fprintf(w, "%s─ Wrote%s: %s\n", colorCyan, colorReset, f)
	}
	fmt.Fprintln(w)
}

// PrintFailure reports a step that did not complete.
func PrintFailure(w io.Writer, step string, err error) {
	fmt.Fprintf(w, "%sX %s%s: %v\n", colorRed, step, colorReset, err)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// leader pads label with a dotted run up to a fixed column.
func leader(label string) string {
	n := 26 - len([]rune(label))
	if n < 1 {
		n = 1
	}
	return colorCyan + strings.Repeat("·", n) + colorReset
}

func colorFor(rows int) string {
	if rows == 0 {
		return colorYellow
	}
	return colorGreen
}
