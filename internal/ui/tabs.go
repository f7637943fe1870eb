package ui

import "github.com/atomicstack/termdeck/internal/controller"

// WindowMode selects between the bookmark column and the tabbed area.
type WindowMode int

const (
	WindowBookmark WindowMode = iota
	WindowTab
)

func (w WindowMode) String() string {
	if w == WindowBookmark {
		return "bookmark"
	}
	return "tab"
}

// TabMode selects the visible controller of the tabbed area.
type TabMode int

const (
	TabSchedule TabMode = iota
	TabTasks
	TabVirtualMachines
)

// tabOrder is the cycle followed by the Tab key.
var tabOrder = []TabMode{TabSchedule, TabTasks, TabVirtualMachines}

// Position returns the tab's slot in the tab bar.
func (t TabMode) Position() int {
	switch t {
	case TabSchedule:
		return 0
	case TabTasks:
		return 1
	case TabVirtualMachines:
		return 2
	}
	panic("ui: tab without a position")
}

// Label is the text shown in the tab bar.
func (t TabMode) Label() string {
	switch t {
	case TabSchedule:
		return "Schedule"
	case TabTasks:
		return "Task"
	case TabVirtualMachines:
		return "VirtualBox"
	}
	panic("ui: tab without a label")
}

func (t TabMode) String() string {
	return t.Label()
}

// Controller returns the controller shown under the tab.
func (t TabMode) Controller() controller.ID {
	switch t {
	case TabSchedule:
		return controller.Schedule
	case TabTasks:
		return controller.Tasks
	case TabVirtualMachines:
		return controller.VirtualMachines
	}
	panic("ui: tab without a controller")
}

// next returns the tab after t, wrapping to the first.
func (t TabMode) next() TabMode {
	return tabOrder[(t.Position()+1)%len(tabOrder)]
}

// deriveActive is the single source of which controller owns the keyboard.
func deriveActive(window WindowMode, tab TabMode) controller.ID {
	if window == WindowBookmark {
		return controller.Bookmarks
	}
	return tab.Controller()
}
