package widget

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/termdeck/internal/ui/state"
)

const (
	selectedMarker = "> "
	plainMarker    = "  "
	emptyListText  = "(no entries)"
)

// RenderList draws rows inside a width x height region, marking the row at
// the list's index. Rows may span several lines; the viewport scrolls in
// whole rows so the selection stays visible.
func RenderList(list *state.SelectableList, rows []string, width, height int) string {
	if height <= 0 {
		return ""
	}
	if len(rows) == 0 {
		list.Clamp(0)
		return Fit(styles.Empty.Render(emptyListText), width, height)
	}
	rowHeight := 1
	for _, row := range rows {
		if n := strings.Count(row, "\n") + 1; n > rowHeight {
			rowHeight = n
		}
	}
	maxVisible := height / rowHeight
	if maxVisible < 1 {
		maxVisible = 1
	}
	list.EnsureVisible(len(rows), maxVisible)

	end := list.ViewportOffset + maxVisible
	if end > len(rows) {
		end = len(rows)
	}
	lines := make([]string, 0, height)
	for idx := list.ViewportOffset; idx < end; idx++ {
		selected := idx == list.Index
		for i, line := range strings.Split(rows[idx], "\n") {
			prefix := plainMarker
			if i == 0 && selected {
				prefix = selectedMarker
			}
			text := prefix + line
			if width > 0 {
				text = truncate.StringWithTail(text, uint(width), "…")
			}
			if selected {
				text = styles.SelectedItem.Render(text)
			} else {
				text = styles.Item.Render(text)
			}
			lines = append(lines, text)
		}
	}
	return Fit(strings.Join(lines, "\n"), width, height)
}
