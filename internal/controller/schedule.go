package controller

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdeck/internal/google/calendar"
	"github.com/atomicstack/termdeck/internal/logging/events"
	"github.com/atomicstack/termdeck/internal/ui/form"
	"github.com/atomicstack/termdeck/internal/ui/widget"
)

// EventService is the remote calendar.
type EventService interface {
	List(ctx context.Context) ([]calendar.Event, error)
	Create(ctx context.Context, d calendar.Draft) error
	Update(ctx context.Context, id string, d calendar.Draft) error
	Delete(ctx context.Context, id string) error
}

// ScheduleController lists today's and tomorrow's events. Every write is
// followed by a full reload so the list always mirrors the service.
type ScheduleController struct {
	*core
	ctx     context.Context
	service EventService
	browser Opener
	items   []calendar.Event
}

// NewSchedule loads the event window. A failed read leaves the list empty.
func NewSchedule(ctx context.Context, service EventService, browser Opener) *ScheduleController {
	if ctx == nil {
		ctx = context.Background()
	}
	c := &ScheduleController{
		core:    newCore(Schedule, "Schedule", "Help Schedule", form.NewSchedule()),
		ctx:     ctx,
		service: service,
		browser: browser,
	}
	c.res = c
	c.Reload()
	return c
}

// Items returns the loaded events.
func (c *ScheduleController) Items() []calendar.Event { return c.items }

func (c *ScheduleController) Len() int { return len(c.items) }

func (c *ScheduleController) Rows() []string {
	rows := make([]string, len(c.items))
	for i, item := range c.items {
		rows[i] = item.Row()
	}
	return rows
}

// Reload replaces the list with the service's current events.
func (c *ScheduleController) Reload() {
	items, err := c.service.List(c.ctx)
	if err != nil {
		events.Remote.ReadFailed(c.id.String(), err)
		items = nil
	}
	if items == nil {
		items = []calendar.Event{}
	}
	c.items = items
	c.loaded()
}

// OpenSelected opens the event's calendar page.
func (c *ScheduleController) OpenSelected() error {
	if !c.list.Valid(len(c.items)) {
		return nil
	}
	link := c.items[c.list.Index].Link
	if link == "" {
		return nil
	}
	return c.browser.Open(link)
}

// Add creates an event from the form and reloads.
func (c *ScheduleController) Add() {
	if err := c.service.Create(c.ctx, c.draft()); err != nil {
		events.Remote.WriteFailed(c.id.String(), "create", err)
	}
	c.Reload()
	c.closeForm()
}

// Edit replaces the selected event with the form values and reloads.
func (c *ScheduleController) Edit() {
	if c.list.Valid(len(c.items)) {
		id := c.items[c.list.Index].ID
		if err := c.service.Update(c.ctx, id, c.draft()); err != nil {
			events.Remote.WriteFailed(c.id.String(), "update", err)
		}
		c.Reload()
	}
	c.closeForm()
}

// Delete removes the selected event and reloads.
func (c *ScheduleController) Delete() {
	if !c.list.Valid(len(c.items)) {
		return
	}
	id := c.items[c.list.Index].ID
	if err := c.service.Delete(c.ctx, id); err != nil {
		events.Remote.WriteFailed(c.id.String(), "delete", err)
	}
	c.Reload()
}

func (c *ScheduleController) draft() calendar.Draft {
	return calendar.Draft{
		Summary:     c.form.Value(form.ScheduleSummary),
		Start:       c.form.Value(form.ScheduleStart),
		End:         c.form.Value(form.ScheduleEnd),
		Description: c.form.Value(form.ScheduleDescription),
	}
}

func (c *ScheduleController) editValues() []string {
	item := c.items[c.list.Index]
	return []string{item.Summary, item.Start, item.End, item.Description}
}

func (c *ScheduleController) link() string {
	return c.items[c.list.Index].Link
}

func (c *ScheduleController) extraKey(tea.KeyMsg) (bool, error) { return false, nil }

func (c *ScheduleController) helpSections() []widget.HelpSection {
	return append([]widget.HelpSection{
		c.keys.selectSection("Schedule", true, describe(c.keys.Yank, "Copy Link")),
	}, c.keys.formSections("Schedule",
		[]string{"Start/End Datetime Format: yyyy-mm-ddThh:mm:ss"},
		[]string{"Start/End Datetime Format: yyyy-mm-ddThh:mm:ss+hh:mm"},
	)...)
}
