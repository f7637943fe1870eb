package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdeck/internal/logging/events"
	"github.com/atomicstack/termdeck/internal/ui/widget"
)

// MachineManager lists and starts virtual machines.
type MachineManager interface {
	List() ([]string, error)
	Start(name string) error
}

// MachineController is a read-only list of virtual machines. It has no form.
type MachineController struct {
	*core
	manager MachineManager
	items   []string
}

// NewMachines lists the machines once. A failed listing leaves the list empty.
func NewMachines(manager MachineManager) *MachineController {
	c := &MachineController{
		core:    newCore(VirtualMachines, "VirtualBox", "Help VirtualBox", nil),
		manager: manager,
	}
	c.res = c
	names, err := manager.List()
	if err != nil {
		events.Store.ReadFailed("vms", err)
		names = nil
	}
	if names == nil {
		names = []string{}
	}
	c.items = names
	c.loaded()
	return c
}

// Items returns the machine names.
func (c *MachineController) Items() []string { return c.items }

func (c *MachineController) Len() int { return len(c.items) }

func (c *MachineController) Rows() []string {
	return append([]string(nil), c.items...)
}

// OpenSelected starts the selected machine with a GUI session.
func (c *MachineController) OpenSelected() error {
	if !c.list.Valid(len(c.items)) {
		return nil
	}
	return c.manager.Start(c.items[c.list.Index])
}

// Add, Edit and Delete are unreachable: the controller has no form and its
// list only changes when the program restarts.
func (c *MachineController) Add()    {}
func (c *MachineController) Edit()   {}
func (c *MachineController) Delete() {}

func (c *MachineController) editValues() []string { return nil }

func (c *MachineController) link() string { return c.items[c.list.Index] }

func (c *MachineController) extraKey(tea.KeyMsg) (bool, error) { return false, nil }

func (c *MachineController) helpSections() []widget.HelpSection {
	return []widget.HelpSection{
		c.keys.selectSection("Machine", false, describe(c.keys.Yank, "Copy Name")),
	}
}
