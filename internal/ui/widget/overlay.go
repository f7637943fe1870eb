package widget

// Overlay is a centered modal surface drawn over the whole frame.
type Overlay struct {
	Title         string
	Active        bool
	WidthPercent  int
	HeightPercent int
}

const defaultOverlayPercent = 80

// NewOverlay returns an inactive overlay covering 80% of the frame.
func NewOverlay(title string) *Overlay {
	return &Overlay{Title: title, WidthPercent: defaultOverlayPercent, HeightPercent: defaultOverlayPercent}
}

// Area centers the overlay inside a frame of the given size.
func (o *Overlay) Area(frameWidth, frameHeight int) Rect {
	w := percentOf(frameWidth, o.WidthPercent)
	h := percentOf(frameHeight, o.HeightPercent)
	return Rect{
		X:      (frameWidth - w) / 2,
		Y:      (frameHeight - h) / 2,
		Width:  w,
		Height: h,
	}
}

// Inner reports the content region of the overlay for a frame of the given size.
func (o *Overlay) Inner(frameWidth, frameHeight int) Rect {
	return o.Area(frameWidth, frameHeight).Inner()
}

// Render clears the overlay area of base and draws the bordered overlay with
// content produced for the inner size.
func (o *Overlay) Render(base string, frameWidth, frameHeight int, content func(width, height int) string) string {
	area := o.Area(frameWidth, frameHeight)
	inner := o.Inner(frameWidth, frameHeight)
	body := ""
	if content != nil {
		body = content(inner.Width, inner.Height)
	}
	box := frame(o.Title, o.Active, area.Width, area.Height, body)
	return Place(base, box, area.X, area.Y, frameWidth, frameHeight)
}

func percentOf(total, percent int) int {
	if percent <= 0 || percent > 100 {
		percent = 100
	}
	v := total * percent / 100
	if v < 0 {
		return 0
	}
	return v
}
