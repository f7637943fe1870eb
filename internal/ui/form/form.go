package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdeck/internal/logging/events"
	"github.com/atomicstack/termdeck/internal/ui/state"
	"github.com/atomicstack/termdeck/internal/ui/widget"
)

// Mode tags why a form was opened.
type Mode int

const (
	ModeNew Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "new"
}

const fieldHeight = 3

// FieldSpec declares one input of a form. A Fill field takes the height left
// over once the fixed-height fields are placed.
type FieldSpec struct {
	Label string
	Fill  bool
}

type field struct {
	spec  FieldSpec
	input *state.TextField
	label *widget.Pane
}

// Form is an ordered group of text fields with cyclic focus. Exactly one
// field is active while the form is open and none while it is closed.
type Form struct {
	name    string
	titles  map[Mode]string
	overlay *widget.Overlay
	fields  []*field
	active  int
	mode    Mode
}

// New builds a closed form. titles maps each mode to the overlay title.
func New(name string, titles map[Mode]string, specs ...FieldSpec) *Form {
	f := &Form{
		name:    name,
		titles:  titles,
		overlay: widget.NewOverlay(titles[ModeNew]),
	}
	for _, spec := range specs {
		f.fields = append(f.fields, &field{spec: spec, input: widget.NewField(), label: widget.NewPane(spec.Label)})
	}
	return f
}

// Name identifies the form in traces.
func (f *Form) Name() string { return f.name }

// Mode reports the intent the form was last opened with.
func (f *Form) Mode() Mode { return f.mode }

// IsOpen reports whether the overlay is showing.
func (f *Form) IsOpen() bool { return f.overlay.Active }

// Len returns the number of fields.
func (f *Form) Len() int { return len(f.fields) }

// Active returns the index of the focused field, or -1 when closed.
func (f *Form) Active() int {
	if !f.IsOpen() {
		return -1
	}
	return f.active
}

// Open shows the form in the given mode. Fields are filled from values in
// order; missing values leave a field empty. The first field takes focus.
func (f *Form) Open(mode Mode, values ...string) {
	f.mode = mode
	f.overlay.Title = f.titles[mode]
	f.overlay.Active = true
	for i, fl := range f.fields {
		fl.input.Clear()
		if i < len(values) {
			fl.input.SetValue(values[i])
		}
	}
	f.focus(0)
}

// Close hides the form. Field contents are kept until Clear is called.
func (f *Form) Close() {
	f.overlay.Active = false
	for _, fl := range f.fields {
		fl.input.Blur()
		fl.label.Active = false
	}
}

// Clear empties every field.
func (f *Form) Clear() {
	for _, fl := range f.fields {
		fl.input.Clear()
	}
}

// AdvanceFocus moves focus to the next field, wrapping after the last.
func (f *Form) AdvanceFocus() {
	if len(f.fields) == 0 || !f.IsOpen() {
		return
	}
	f.focus((f.active + 1) % len(f.fields))
}

func (f *Form) focus(idx int) {
	if len(f.fields) == 0 {
		return
	}
	f.active = idx
	for i, fl := range f.fields {
		on := i == idx
		if on {
			fl.input.Focus()
		} else {
			fl.input.Blur()
		}
		fl.label.Active = on
	}
	events.Form.Focus(f.name, idx)
}

// Values returns the field texts in declared order.
func (f *Form) Values() []string {
	out := make([]string, len(f.fields))
	for i, fl := range f.fields {
		out[i] = fl.input.Value()
	}
	return out
}

// Value returns the text of field i.
func (f *Form) Value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].input.Value()
}

// Field exposes the TextField at i, mainly for tests.
func (f *Form) Field(i int) *state.TextField {
	if i < 0 || i >= len(f.fields) {
		return nil
	}
	return f.fields[i].input
}

// DispatchKey routes an editing key to the active field only. It reports
// whether the field changed. Other fields are blurred and would ignore it.
func (f *Form) DispatchKey(msg tea.KeyMsg) bool {
	if !f.IsOpen() || len(f.fields) == 0 {
		return false
	}
	return f.fields[f.active].input.Update(msg)
}

// Render draws the form over base when it is open.
func (f *Form) Render(base string, frameWidth, frameHeight int) string {
	if !f.IsOpen() {
		return base
	}
	return f.overlay.Render(base, frameWidth, frameHeight, f.body)
}

func (f *Form) body(width, height int) string {
	const marginX, marginY = 1, 1
	inner := width - 2*marginX
	avail := height - 2*marginY
	if inner <= 0 || avail <= 0 {
		return ""
	}
	fixed := 0
	fills := 0
	for _, fl := range f.fields {
		if fl.spec.Fill {
			fills++
			continue
		}
		fixed += fieldHeight
	}
	spare := avail - fixed
	pad := strings.Repeat(" ", marginX)
	lines := make([]string, 0, height)
	lines = append(lines, "")
	for _, fl := range f.fields {
		h := fieldHeight
		if fl.spec.Fill && fills > 0 && spare/fills > h {
			h = spare / fills
		}
		block := widget.RenderField(fl.label, fl.input, inner, h)
		for _, line := range strings.Split(block, "\n") {
			lines = append(lines, pad+line)
		}
	}
	return widget.Fit(strings.Join(lines, "\n"), width, height)
}
