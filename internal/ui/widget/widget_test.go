package widget

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdeck/internal/ui/state"
)

func assertBlock(t *testing.T, block string, width, height int) {
	t.Helper()
	lines := strings.Split(block, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d:\n%s", height, len(lines), block)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != width {
			t.Fatalf("line %d: expected width %d, got %d (%q)", i, width, w, ansi.Strip(line))
		}
	}
}

func TestPaneRenderHasExactSizeAndTitle(t *testing.T) {
	p := NewPane("Bookmark")
	out := p.Render(20, 5, "hello")
	assertBlock(t, out, 20, 5)
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Bookmark") {
		t.Fatalf("expected title in border, got:\n%s", plain)
	}
	if !strings.Contains(plain, "hello") {
		t.Fatalf("expected content inside pane, got:\n%s", plain)
	}
}

func TestPaneInnerExcludesBorder(t *testing.T) {
	p := NewPane("x")
	inner := p.Inner(Rect{X: 2, Y: 3, Width: 10, Height: 4})
	if inner != (Rect{X: 3, Y: 4, Width: 8, Height: 2}) {
		t.Fatalf("unexpected inner rect %#v", inner)
	}
	if got := p.Inner(Rect{Width: 1, Height: 1}); got.Width != 0 || got.Height != 0 {
		t.Fatalf("expected zero-size inner for tiny rect, got %#v", got)
	}
}

func TestPaneActiveChangesBorderStyle(t *testing.T) {
	p := NewPane("Tasks")
	inactive := p.Render(12, 3, "")
	p.Active = true
	active := p.Render(12, 3, "")
	if ansi.Strip(inactive) != ansi.Strip(active) {
		t.Fatalf("expected same glyphs regardless of focus")
	}
	if styles.Frame(true).GetBorderTopForeground() == styles.Frame(false).GetBorderTopForeground() {
		t.Fatalf("expected distinct border colors for focused and unfocused frames")
	}
}

func TestOverlayAreaIsCentered(t *testing.T) {
	o := NewOverlay("Help")
	area := o.Area(100, 50)
	if area != (Rect{X: 10, Y: 5, Width: 80, Height: 40}) {
		t.Fatalf("unexpected overlay area %#v", area)
	}
}

func TestOverlayClearsContentBeneath(t *testing.T) {
	base := Fit(strings.Repeat(strings.Repeat("x", 20)+"\n", 10), 20, 10)
	o := NewOverlay("Form")
	out := o.Render(base, 20, 10, func(width, height int) string { return "" })
	assertBlock(t, out, 20, 10)
	lines := strings.Split(ansi.Strip(out), "\n")
	area := o.Area(20, 10)
	interior := lines[area.Y+1]
	cells := []rune(interior)
	for x := area.X + 1; x < area.X+area.Width-1; x++ {
		if cells[x] == 'x' {
			t.Fatalf("expected overlay interior cleared, row %q", interior)
		}
	}
	if cells[0] != 'x' {
		t.Fatalf("expected base to remain visible outside overlay, row %q", interior)
	}
}

func TestRenderListMarksSelection(t *testing.T) {
	list := &state.SelectableList{Index: 1}
	out := ansi.Strip(RenderList(list, []string{"alpha", "beta", "gamma"}, 12, 3))
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], "> beta") {
		t.Fatalf("expected marker on selected row, got %q", lines[1])
	}
	if strings.HasPrefix(lines[0], ">") {
		t.Fatalf("expected no marker on unselected row, got %q", lines[0])
	}
}

func TestRenderListScrollsMultiLineRows(t *testing.T) {
	list := &state.SelectableList{Index: 2}
	rows := []string{"one\n  a", "two\n  b", "three\n  c"}
	out := ansi.Strip(RenderList(list, rows, 20, 4))
	if strings.Contains(out, "one") {
		t.Fatalf("expected first row scrolled out, got:\n%s", out)
	}
	if !strings.Contains(out, "> three") {
		t.Fatalf("expected selected row visible, got:\n%s", out)
	}
}

func TestRenderListEmpty(t *testing.T) {
	list := &state.SelectableList{Index: 3}
	out := ansi.Strip(RenderList(list, nil, 20, 2))
	if !strings.Contains(out, emptyListText) {
		t.Fatalf("expected empty placeholder, got %q", out)
	}
	if list.Index != 0 {
		t.Fatalf("expected index reset for empty list, got %d", list.Index)
	}
}

func TestHelpLinesAlignsDescriptions(t *testing.T) {
	lines := HelpLines([]HelpSection{{
		Heading: "Select Bookmark",
		Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Open Bookmark")),
			key.NewBinding(key.WithKeys("D"), key.WithHelp("Shift+D", "Delete")),
		},
		Notes: []string{"note"},
	}})
	want := []string{
		"[ Select Bookmark ]",
		"Open Bookmark : Enter",
		"Delete        : Shift+D",
		"note",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected help lines:\n%s", strings.Join(lines, "\n"))
	}
}

func TestRenderFieldShowsCaretOnlyWhenActive(t *testing.T) {
	field := NewField()
	field.SetValue("abc")
	label := NewPane("Title")
	inactive := RenderField(label, field, 12, 3)
	assertBlock(t, inactive, 12, 3)
	if label.Active {
		t.Fatalf("expected label inactive for inactive field")
	}
	field.Focus()
	active := RenderField(label, field, 12, 3)
	if !label.Active {
		t.Fatalf("expected label to follow field focus")
	}
	if !strings.Contains(ansi.Strip(active), "abc") {
		t.Fatalf("expected text in active field, got %q", ansi.Strip(active))
	}
}
