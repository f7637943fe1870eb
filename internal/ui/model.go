package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdeck/internal/controller"
	"github.com/atomicstack/termdeck/internal/logging/events"
	"github.com/atomicstack/termdeck/internal/theme"
)

var styles = theme.Default()

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the controllers and layout settings of a Model.
type Options struct {
	Bookmarks  controller.Controller
	Schedule   controller.Controller
	Tasks      controller.Controller
	Machines   controller.Controller
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the dashboard router.
type Model struct {
	window      WindowMode
	tab         TabMode
	active      controller.ID
	controllers map[controller.ID]controller.Controller

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	fatal    error
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel starts in the tab window on the schedule tab.
func NewModel(opts Options) *Model {
	m := &Model{
		window: WindowTab,
		tab:    TabSchedule,
		controllers: map[controller.ID]controller.Controller{
			controller.Bookmarks:       opts.Bookmarks,
			controller.Schedule:        opts.Schedule,
			controller.Tasks:           opts.Tasks,
			controller.VirtualMachines: opts.Machines,
		},
		width:      defaultWidth,
		height:     defaultHeight,
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	m.syncActive()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		cmd := handler(msg)
		m.syncActive()
		return m, cmd
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting {
		return nil
	}
	current := m.controller(m.active)
	if current == nil {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m.quit("interrupt")
	}
	if current.Mode() == controller.ModeBase {
		switch keyMsg.String() {
		case "f5":
			m.setWindow(WindowBookmark)
			return nil
		case "f6":
			m.setWindow(WindowTab)
			return nil
		case "tab":
			if m.window == WindowTab {
				m.setTab(m.tab.next())
				return nil
			}
		}
	}

	outcome, err := current.HandleKey(keyMsg)
	if err != nil {
		m.fatal = err
		return m.quit("fatal")
	}
	if outcome == controller.Leave {
		return m.quit("leave")
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setWindow(w WindowMode) {
	if m.window == w {
		return
	}
	m.window = w
	events.Router.Window(w.String())
}

func (m *Model) setTab(t TabMode) {
	if m.tab == t {
		return
	}
	m.tab = t
	events.Router.Tab(t.String())
}

func (m *Model) quit(reason string) tea.Cmd {
	m.quitting = true
	events.Router.Quit(reason)
	return tea.Quit
}

// syncActive recomputes the active controller and rewrites every pane flag.
func (m *Model) syncActive() {
	active := deriveActive(m.window, m.tab)
	if active != m.active {
		events.Router.Active(active.String())
	}
	m.active = active
	for id, c := range m.controllers {
		if c != nil {
			c.SetActive(id == active)
		}
	}
}

func (m *Model) controller(id controller.ID) controller.Controller {
	return m.controllers[id]
}

// Window reports the current window mode.
func (m *Model) Window() WindowMode { return m.window }

// Tab reports the current tab.
func (m *Model) Tab() TabMode { return m.tab }

// Active reports the controller that receives keys.
func (m *Model) Active() controller.ID { return m.active }

// Controller returns the controller registered under id.
func (m *Model) Controller(id controller.ID) controller.Controller { return m.controller(id) }

// Err returns the fatal error that ended the program, if any.
func (m *Model) Err() error { return m.fatal }

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool { return m.quitting }
