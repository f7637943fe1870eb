package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdeck/internal/theme"
)

var styles = theme.Default()

// Rect is a cell-addressed region of the terminal.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Inner returns the region left once a one-cell border is removed.
func (r Rect) Inner() Rect {
	inner := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// frame draws a rounded border of the given outer size around content, with
// the title set into the top edge.
func frame(title string, active bool, width, height int, content string) string {
	if width < 2 || height < 2 {
		return Fit("", width, height)
	}
	inner := Rect{Width: width, Height: height}.Inner()
	border := styles.Frame(active)
	body := Fit(content, inner.Width, inner.Height)
	boxed := border.
		BorderTop(false).
		BorderLeft(true).
		BorderRight(true).
		BorderBottom(true).
		Render(body)
	return topEdge(title, active, width) + "\n" + boxed
}

func topEdge(title string, active bool, width int) string {
	b := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(styles.Frame(active).GetBorderTopForeground())
	label := ""
	if title != "" {
		label = "  " + title + "  "
	}
	room := width - 3
	if room < 0 {
		room = 0
	}
	if ansi.StringWidth(label) > room {
		label = ansi.Truncate(label, room, "…")
	}
	fill := width - 3 - ansi.StringWidth(label)
	if fill < 0 {
		fill = 0
	}
	var sb strings.Builder
	sb.WriteString(edge.Render(b.TopLeft + b.Top))
	if label != "" {
		sb.WriteString(styles.FrameTitle(active).Render(label))
	}
	sb.WriteString(edge.Render(strings.Repeat(b.Top, fill) + b.TopRight))
	return sb.String()
}

// Fit truncates or pads content so it is exactly width cells by height rows.
func Fit(content string, width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := splitLines(content)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = padRight(ansi.Truncate(line, width, ""), width)
	}
	return strings.Join(lines, "\n")
}

// Place composites box over base with its top-left corner at (x, y). Cells
// under the box are replaced, so anything drawn there before is cleared.
func Place(base, box string, x, y, width, height int) string {
	baseLines := splitLines(base)
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	boxLines := splitLines(box)
	boxWidth := maxLineWidth(boxLines)
	for i, line := range boxLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		boxLine := padRight(line, boxWidth)
		pos := x + ansi.StringWidth(boxLine)
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, pos, "")
			if gap := width - pos - ansi.StringWidth(right); gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}
		baseLines[row] = left + boxLine + right
	}
	return strings.Join(baseLines, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
