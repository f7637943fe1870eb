package widget

import "github.com/atomicstack/termdeck/internal/ui/state"

// NewField returns a text field styled from the theme.
func NewField() *state.TextField {
	f := state.NewTextField()
	f.SetStyles(*styles.Field, *styles.Cursor)
	return f
}

// RenderField draws a single-line text field inside a labelled pane of the
// given outer size. The caret is only drawn while the field is active.
func RenderField(label *Pane, field *state.TextField, width, height int) string {
	label.Active = field.Active()
	inner := label.Inner(Rect{Width: width, Height: height})
	return label.Render(width, height, field.View(inner.Width))
}
