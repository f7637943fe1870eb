package widget

// Pane is a bordered, focus-aware container for a controller's main view.
type Pane struct {
	Title  string
	Active bool
}

// NewPane returns an inactive pane with the given title.
func NewPane(title string) *Pane {
	return &Pane{Title: title}
}

// Inner reports the content region available inside a pane drawn over area.
func (p *Pane) Inner(area Rect) Rect {
	return area.Inner()
}

// Render draws the pane border at the given outer size around content.
// Content is clipped to the inner region.
func (p *Pane) Render(width, height int, content string) string {
	return frame(p.Title, p.Active, width, height, content)
}
