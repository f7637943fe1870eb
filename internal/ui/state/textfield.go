package state

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextField is a single-line editable value backed by a textinput.Model.
// Positions are measured in runes. Keys only reach a focused field.
type TextField struct {
	input textinput.Model
}

// NewTextField returns an empty, blurred field with a steady caret.
func NewTextField() *TextField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ""
	ti.CharLimit = 0
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &TextField{input: ti}
}

// SetStyles sets the text style and the caret style.
func (f *TextField) SetStyles(text, caret lipgloss.Style) {
	f.input.TextStyle = text
	f.input.Cursor.TextStyle = text
	f.input.Cursor.Style = caret
}

func (f *TextField) Value() string { return f.input.Value() }
func (f *TextField) Position() int { return f.input.Position() }
func (f *TextField) Len() int      { return len([]rune(f.input.Value())) }
func (f *TextField) Active() bool  { return f.input.Focused() }

// Focus makes the field accept keys. The caret is static so no blink
// command is produced.
func (f *TextField) Focus() { f.input.Focus() }

func (f *TextField) Blur() { f.input.Blur() }

// SetValue replaces the text and parks the cursor at the end.
func (f *TextField) SetValue(text string) {
	f.input.SetValue(text)
	f.input.CursorEnd()
}

// Clear empties the field and resets the cursor.
func (f *TextField) Clear() {
	f.input.Reset()
}

// Update applies an editing key. It reports whether the text or the cursor
// moved. A blurred field ignores every key.
func (f *TextField) Update(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
		msg.Runes = []rune{' '}
	}
	value, pos := f.input.Value(), f.input.Position()
	f.input, _ = f.input.Update(msg)
	return value != f.input.Value() || pos != f.input.Position()
}

// Insert places r at the cursor and advances the cursor past it.
func (f *TextField) Insert(r rune) bool {
	return f.edit(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// DeleteBeforeCursor removes the rune left of the cursor.
func (f *TextField) DeleteBeforeCursor() bool {
	return f.edit(tea.KeyMsg{Type: tea.KeyBackspace})
}

// MoveLeft shifts the cursor one rune left.
func (f *TextField) MoveLeft() bool {
	return f.edit(tea.KeyMsg{Type: tea.KeyLeft})
}

// MoveRight shifts the cursor one rune right.
func (f *TextField) MoveRight() bool {
	return f.edit(tea.KeyMsg{Type: tea.KeyRight})
}

// edit applies msg whether or not the field has focus.
func (f *TextField) edit(msg tea.KeyMsg) bool {
	if !f.input.Focused() {
		f.input.Focus()
		defer f.input.Blur()
	}
	return f.Update(msg)
}

// View renders the visible part of the text, scrolled to keep the cursor
// inside width cells. The caret is drawn only while focused.
func (f *TextField) View(width int) string {
	if width <= 0 {
		return ""
	}
	if f.input.Width != width-1 {
		f.input.Width = width - 1
		f.input.SetCursor(f.input.Position())
	}
	return f.input.View()
}
