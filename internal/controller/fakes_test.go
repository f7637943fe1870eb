package controller

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdeck/internal/google/calendar"
	"github.com/atomicstack/termdeck/internal/google/tasks"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	case "f12":
		return tea.KeyMsg{Type: tea.KeyF12}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(c Controller, text string) {
	for _, r := range text {
		c.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

type openerFake struct {
	opened []string
	err    error
}

func (o *openerFake) Open(url string) error {
	o.opened = append(o.opened, url)
	return o.err
}

type eventsFake struct {
	items   []calendar.Event
	calls   []string
	listErr error
	nextID  int
}

func (f *eventsFake) List(context.Context) ([]calendar.Event, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]calendar.Event(nil), f.items...), nil
}

func (f *eventsFake) Create(_ context.Context, d calendar.Draft) error {
	f.calls = append(f.calls, "create")
	f.nextID++
	f.items = append(f.items, calendar.Event{
		ID:      fmt.Sprintf("new-%d", f.nextID),
		Summary: d.Summary, Start: d.Start, End: d.End, Description: d.Description,
	})
	return nil
}

func (f *eventsFake) Update(_ context.Context, id string, d calendar.Draft) error {
	f.calls = append(f.calls, "update:"+id)
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Summary = d.Summary
			f.items[i].Start = d.Start
			f.items[i].End = d.End
			f.items[i].Description = d.Description
		}
	}
	return nil
}

func (f *eventsFake) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	kept := f.items[:0]
	for _, item := range f.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

type tasksFake struct {
	items    []tasks.Task
	calls    []string
	writeErr error
}

func (f *tasksFake) List(context.Context) ([]tasks.Task, error) {
	f.calls = append(f.calls, "list")
	out := []tasks.Task{}
	for _, t := range f.items {
		if t.Status != tasks.StatusCompleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *tasksFake) Create(_ context.Context, d tasks.Draft) error {
	f.calls = append(f.calls, "create")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.items = append(f.items, tasks.Task{ID: fmt.Sprint(len(f.items) + 1), Title: d.Title, Notes: d.Notes, Due: d.Due})
	return nil
}

func (f *tasksFake) Update(_ context.Context, t tasks.Task) error {
	f.calls = append(f.calls, "update:"+t.ID+":"+t.Status)
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.items {
		if f.items[i].ID == t.ID {
			f.items[i] = t
		}
	}
	return nil
}

func (f *tasksFake) Complete(ctx context.Context, t *tasks.Task) error {
	t.Status = tasks.StatusCompleted
	return f.Update(ctx, *t)
}

func (f *tasksFake) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return f.writeErr
}

type machinesFake struct {
	names    []string
	listErr  error
	startErr error
	started  []string
}

func (m *machinesFake) List() ([]string, error) {
	return m.names, m.listErr
}

func (m *machinesFake) Start(name string) error {
	m.started = append(m.started, name)
	return m.startErr
}

var errBoom = errors.New("boom")
