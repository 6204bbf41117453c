package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/offheap/native"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	releasedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// Summary renders a one-line description of the array.
func Summary[T native.Element](a *native.Array2D[T]) string {
	state := "live"
	switch {
	case a.Released():
		state = "released"
	case !a.IsLive():
		state = "empty"
	}
	var zero T
	return fmt.Sprintf("%T[%dx%d] %d bytes, %s", zero, a.Len0(), a.Len1(), a.Bytes(), state)
}

// Render renders the array contents as a grid, one text row per i1 with
// dimension 0 running across. Released arrays render as their summary only,
// since their contents are gone.
func Render[T native.Element](a *native.Array2D[T]) string {
	if a.Released() {
		return releasedStyle.Render(Summary(a))
	}

	rows := a.ToSlices()
	cells := make([][]string, len(rows))
	width := 1
	for i1, row := range rows {
		cells[i1] = make([]string, len(row))
		for i0, v := range row {
			s := fmt.Sprintf("%v", v)
			cells[i1][i0] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(Summary(a)))
	b.WriteByte('\n')

	gutter := len(fmt.Sprintf("i1=%d", max(a.Len1()-1, 0)))
	for i1, row := range cells {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%-*s", gutter, fmt.Sprintf("i1=%d", i1))))
		for _, s := range row {
			fmt.Fprintf(&b, " %*s", width, s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
