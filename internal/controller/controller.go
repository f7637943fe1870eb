// Package controller implements the per-resource controllers: each owns an
// item list, its selection, an optional edit form, a help overlay and a
// pane, and consumes the key events the router forwards to it.
package controller

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdeck/internal/logging/events"
	"github.com/atomicstack/termdeck/internal/ui/form"
	"github.com/atomicstack/termdeck/internal/ui/state"
	"github.com/atomicstack/termdeck/internal/ui/widget"
)

// ID names a controller.
type ID int

const (
	Bookmarks ID = iota
	Schedule
	Tasks
	VirtualMachines
)

func (id ID) String() string {
	switch id {
	case Bookmarks:
		return "bookmarks"
	case Schedule:
		return "schedule"
	case Tasks:
		return "tasks"
	case VirtualMachines:
		return "virtual-machines"
	default:
		return fmt.Sprintf("controller(%d)", int(id))
	}
}

// Mode is the modal state of a controller. Help and the form are never open
// at the same time.
type Mode int

const (
	ModeBase Mode = iota
	ModeHelp
	ModeFormNew
	ModeFormEdit
)

func (m Mode) String() string {
	switch m {
	case ModeHelp:
		return "help"
	case ModeFormNew:
		return "form-new"
	case ModeFormEdit:
		return "form-edit"
	default:
		return "base"
	}
}

type trigger int

const (
	openHelp trigger = iota
	closeHelp
	openNewForm
	openEditForm
	closeForm
)

// transition is the only place modal state changes are decided.
func transition(from Mode, t trigger) (Mode, bool) {
	switch from {
	case ModeBase:
		switch t {
		case openHelp:
			return ModeHelp, true
		case openNewForm:
			return ModeFormNew, true
		case openEditForm:
			return ModeFormEdit, true
		}
	case ModeHelp:
		if t == closeHelp {
			return ModeBase, true
		}
	case ModeFormNew, ModeFormEdit:
		if t == closeForm {
			return ModeBase, true
		}
	}
	return from, false
}

// Outcome tells the router what a key did.
type Outcome int

const (
	// Ignored means the controller had no use for the key.
	Ignored Outcome = iota
	// Handled means the controller consumed the key.
	Handled
	// Leave means Esc was pressed with nothing open.
	Leave
)

// FatalError reports a failure the program cannot continue past, such as a
// browser or VM manager that could not be started.
type FatalError struct {
	Controller ID
	Op         string
	Err        error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Controller, e.Op, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// Opener launches a link in an external viewer.
type Opener interface {
	Open(url string) error
}

// Controller is what the router sees of a resource controller.
type Controller interface {
	ID() ID
	Title() string
	Mode() Mode
	Active() bool
	SetActive(bool)
	Len() int
	Selected() int
	Rows() []string
	HandleKey(tea.KeyMsg) (Outcome, error)
	View(width, height int) string
	Overlay(base string, width, height int) string
}

// resource is implemented by each concrete controller and drives the shared
// key handling in core.
type resource interface {
	Len() int
	Rows() []string
	OpenSelected() error
	Add()
	Edit()
	Delete()
	editValues() []string
	link() string
	extraKey(tea.KeyMsg) (bool, error)
	helpSections() []widget.HelpSection
}

type core struct {
	id    ID
	title string
	pane  *widget.Pane
	list  state.SelectableList
	help  *widget.Help
	form  *form.Form
	mode  Mode
	keys  keyMap
	copy  func(string) error
	res   resource
}

func newCore(id ID, title, helpTitle string, f *form.Form) *core {
	return &core{
		id:    id,
		title: title,
		pane:  widget.NewPane(title),
		help:  widget.NewHelp(helpTitle),
		form:  f,
		keys:  newKeyMap(),
		copy:  clipboard.WriteAll,
	}
}

func (c *core) ID() ID            { return c.id }
func (c *core) Title() string     { return c.title }
func (c *core) Mode() Mode        { return c.mode }
func (c *core) Active() bool      { return c.pane.Active }
func (c *core) SetActive(on bool) { c.pane.Active = on }
func (c *core) Selected() int     { return c.list.Index }
func (c *core) Form() *form.Form  { return c.form }

func (c *core) HelpLines() []string { return widget.HelpLines(c.res.helpSections()) }

// SetClipboard replaces the function used by the copy-link key.
func (c *core) SetClipboard(fn func(string) error) {
	if fn != nil {
		c.copy = fn
	}
}

func (c *core) fire(t trigger) bool {
	to, ok := transition(c.mode, t)
	if !ok {
		return false
	}
	from := c.mode
	c.mode = to
	events.Controller.Mode(c.id.String(), from.String(), to.String())
	c.help.Active = to == ModeHelp
	if c.form != nil {
		switch to {
		case ModeFormNew:
			c.form.Clear()
			c.form.Open(form.ModeNew)
		case ModeFormEdit:
			c.form.Open(form.ModeEdit, c.res.editValues()...)
		default:
			c.form.Close()
		}
	}
	return true
}

// closeForm hides and empties the form after a submit.
func (c *core) closeForm() {
	if c.form == nil {
		return
	}
	c.fire(closeForm)
	c.form.Clear()
}

// HandleKey applies modal precedence: help swallows everything but its close
// keys, an open form takes every key, and only the base mode moves the list.
func (c *core) HandleKey(msg tea.KeyMsg) (Outcome, error) {
	switch c.mode {
	case ModeHelp:
		if key.Matches(msg, c.keys.Help, c.keys.Close) {
			c.fire(closeHelp)
		}
		return Handled, nil
	case ModeFormNew, ModeFormEdit:
		c.handleFormKey(msg)
		return Handled, nil
	}
	return c.handleBaseKey(msg)
}

func (c *core) handleFormKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.NextField):
		c.form.AdvanceFocus()
	case key.Matches(msg, c.keys.Close):
		c.fire(closeForm)
	case key.Matches(msg, c.keys.Submit):
		events.Form.Submit(c.form.Name(), c.form.Mode().String(), c.form.Values())
		if c.mode == ModeFormEdit {
			c.res.Edit()
		} else {
			c.res.Add()
		}
	default:
		c.form.DispatchKey(msg)
	}
}

func (c *core) handleBaseKey(msg tea.KeyMsg) (Outcome, error) {
	n := c.res.Len()
	switch {
	case key.Matches(msg, c.keys.Up):
		if c.list.Up() {
			events.Controller.Cursor(c.id.String(), c.list.Index)
		}
	case key.Matches(msg, c.keys.Down):
		if c.list.Down(n) {
			events.Controller.Cursor(c.id.String(), c.list.Index)
		}
	case key.Matches(msg, c.keys.Home):
		if c.list.Home() {
			events.Controller.Cursor(c.id.String(), c.list.Index)
		}
	case key.Matches(msg, c.keys.End):
		if c.list.End(n) {
			events.Controller.Cursor(c.id.String(), c.list.Index)
		}
	case key.Matches(msg, c.keys.Open):
		if !c.list.Valid(n) {
			return Handled, nil
		}
		events.Controller.Action(c.id.String(), "open", c.list.Index)
		if err := c.res.OpenSelected(); err != nil {
			return Handled, &FatalError{Controller: c.id, Op: "open", Err: err}
		}
	case key.Matches(msg, c.keys.Help):
		c.fire(openHelp)
	case key.Matches(msg, c.keys.Close):
		return Leave, nil
	case c.form != nil && key.Matches(msg, c.keys.New):
		c.fire(openNewForm)
	case c.form != nil && key.Matches(msg, c.keys.Edit):
		if c.list.Valid(n) {
			c.fire(openEditForm)
		}
	case c.form != nil && key.Matches(msg, c.keys.Delete):
		if c.list.Valid(n) {
			events.Controller.Action(c.id.String(), "delete", c.list.Index)
			c.res.Delete()
		}
	case key.Matches(msg, c.keys.Yank):
		c.yank(n)
	default:
		return c.extra(msg)
	}
	return Handled, nil
}

func (c *core) extra(msg tea.KeyMsg) (Outcome, error) {
	handled, err := c.res.extraKey(msg)
	if err != nil {
		return Handled, err
	}
	if handled {
		return Handled, nil
	}
	return Ignored, nil
}

func (c *core) yank(n int) {
	if !c.list.Valid(n) {
		return
	}
	text := c.res.link()
	if text == "" {
		return
	}
	err := c.copy(text)
	events.Process.Clipboard(text, err)
}

// View draws the pane with the item list inside it.
func (c *core) View(width, height int) string {
	inner := c.pane.Inner(widget.Rect{Width: width, Height: height})
	rows := c.res.Rows()
	body := widget.RenderList(&c.list, rows, inner.Width, inner.Height)
	return c.pane.Render(width, height, body)
}

// Overlay draws the open help or form, if any, over base.
func (c *core) Overlay(base string, width, height int) string {
	switch c.mode {
	case ModeHelp:
		return c.help.Render(base, width, height, c.HelpLines())
	case ModeFormNew, ModeFormEdit:
		return c.form.Render(base, width, height)
	}
	return base
}

func (c *core) loaded() {
	c.list.Clamp(c.res.Len())
	events.Controller.Loaded(c.id.String(), c.res.Len())
}
