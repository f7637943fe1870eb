package controller

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/termdeck/internal/ui/widget"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Home      key.Binding
	End       key.Binding
	Open      key.Binding
	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Complete  key.Binding
	Yank      key.Binding
	Help      key.Binding
	NextField key.Binding
	Submit    key.Binding
	Close     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "left"),
			key.WithHelp("Up, Left", "Focus Move Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "right"),
			key.WithHelp("Down, Right", "Focus Move Down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "Focus First"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "Focus Last"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Open"),
		),
		New: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "Open Add Form"),
		),
		Edit: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "Open Edit Form"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("Shift+D", "Execute Delete"),
		),
		Complete: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("Shift+C", "Execute Complete"),
		),
		Yank: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Shift+Y", "Copy Link"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "Open/Close Help"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Move Input Form"),
		),
		Submit: key.NewBinding(
			key.WithKeys("f12", "enter"),
			key.WithHelp("F12, Enter", "Execute"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Close"),
		),
	}
}

func describe(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}

// selectSection lists the base-mode keys of a controller showing noun items.
func (k keyMap) selectSection(noun string, editable bool, extra ...key.Binding) widget.HelpSection {
	bindings := []key.Binding{
		describe(k.Open, "Open "+noun),
		k.Up,
		k.Down,
		k.Home,
		k.End,
	}
	if editable {
		bindings = append(bindings,
			describe(k.Delete, "Execute Delete "+noun),
			describe(k.New, "Open Add "+noun),
			describe(k.Edit, "Open Edit "+noun),
		)
	}
	bindings = append(bindings, extra...)
	bindings = append(bindings, describe(k.Help, "Close Help"))
	return widget.HelpSection{Heading: "Select " + noun, Bindings: bindings}
}

// formSections lists the keys of the add and edit forms.
func (k keyMap) formSections(noun string, addNotes, editNotes []string) []widget.HelpSection {
	section := func(verb string, notes []string) widget.HelpSection {
		return widget.HelpSection{
			Heading: verb + " " + noun,
			Bindings: []key.Binding{
				k.NextField,
				describe(k.Submit, "Execute "+verb+" "+noun),
				describe(k.Close, "Cancel"),
			},
			Notes: notes,
		}
	}
	return []widget.HelpSection{section("Add", addNotes), section("Edit", editNotes)}
}
