package controller

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdeck/internal/google/tasks"
	"github.com/atomicstack/termdeck/internal/logging/events"
	"github.com/atomicstack/termdeck/internal/ui/form"
	"github.com/atomicstack/termdeck/internal/ui/widget"
)

// TaskService is the remote task list.
type TaskService interface {
	List(ctx context.Context) ([]tasks.Task, error)
	Create(ctx context.Context, d tasks.Draft) error
	Update(ctx context.Context, t tasks.Task) error
	Complete(ctx context.Context, t *tasks.Task) error
	Delete(ctx context.Context, id string) error
}

// TaskController lists incomplete tasks and can mark them completed.
type TaskController struct {
	*core
	ctx     context.Context
	service TaskService
	browser Opener
	webURL  string
	items   []tasks.Task
}

// NewTasks loads the incomplete tasks. webURL is opened for tasks without a
// link of their own.
func NewTasks(ctx context.Context, service TaskService, browser Opener, webURL string) *TaskController {
	if ctx == nil {
		ctx = context.Background()
	}
	c := &TaskController{
		core:    newCore(Tasks, "Task", "Help Task", form.NewTask()),
		ctx:     ctx,
		service: service,
		browser: browser,
		webURL:  webURL,
	}
	c.res = c
	c.Reload()
	return c
}

// Items returns the loaded tasks.
func (c *TaskController) Items() []tasks.Task { return c.items }

func (c *TaskController) Len() int { return len(c.items) }

func (c *TaskController) Rows() []string {
	rows := make([]string, len(c.items))
	for i, item := range c.items {
		rows[i] = item.Row()
	}
	return rows
}

// Reload replaces the list with the service's incomplete tasks.
func (c *TaskController) Reload() {
	items, err := c.service.List(c.ctx)
	if err != nil {
		events.Remote.ReadFailed(c.id.String(), err)
		items = nil
	}
	if items == nil {
		items = []tasks.Task{}
	}
	c.items = items
	c.loaded()
}

// OpenSelected opens the task's page, or the task list page.
func (c *TaskController) OpenSelected() error {
	if !c.list.Valid(len(c.items)) {
		return nil
	}
	return c.browser.Open(c.link())
}

// Add creates a task from the form and reloads.
func (c *TaskController) Add() {
	draft := tasks.Draft{
		Title: c.form.Value(form.TaskTitle),
		Notes: c.form.Value(form.TaskNotes),
		Due:   c.form.Value(form.TaskDue),
	}
	if err := c.service.Create(c.ctx, draft); err != nil {
		events.Remote.WriteFailed(c.id.String(), "create", err)
	}
	c.Reload()
	c.closeForm()
}

// Edit writes the form values into the selected task and reloads.
func (c *TaskController) Edit() {
	if c.list.Valid(len(c.items)) {
		task := c.items[c.list.Index]
		task.Title = c.form.Value(form.TaskTitle)
		task.Notes = c.form.Value(form.TaskNotes)
		task.Due = c.form.Value(form.TaskDue)
		if err := c.service.Update(c.ctx, task); err != nil {
			events.Remote.WriteFailed(c.id.String(), "update", err)
		}
		c.Reload()
	}
	c.closeForm()
}

// Complete marks the selected task completed, writes it back and reloads.
func (c *TaskController) Complete() {
	if !c.list.Valid(len(c.items)) {
		return
	}
	events.Controller.Action(c.id.String(), "complete", c.list.Index)
	if err := c.service.Complete(c.ctx, &c.items[c.list.Index]); err != nil {
		events.Remote.WriteFailed(c.id.String(), "complete", err)
	}
	c.Reload()
}

// Delete removes the selected task and reloads.
func (c *TaskController) Delete() {
	if !c.list.Valid(len(c.items)) {
		return
	}
	if err := c.service.Delete(c.ctx, c.items[c.list.Index].ID); err != nil {
		events.Remote.WriteFailed(c.id.String(), "delete", err)
	}
	c.Reload()
}

func (c *TaskController) editValues() []string {
	item := c.items[c.list.Index]
	return []string{item.Title, item.Notes, item.Due}
}

func (c *TaskController) link() string {
	if link := c.items[c.list.Index].Link; link != "" {
		return link
	}
	return c.webURL
}

func (c *TaskController) extraKey(msg tea.KeyMsg) (bool, error) {
	if !key.Matches(msg, c.keys.Complete) {
		return false, nil
	}
	c.Complete()
	return true, nil
}

func (c *TaskController) helpSections() []widget.HelpSection {
	return append([]widget.HelpSection{
		c.keys.selectSection("Task", true,
			describe(c.keys.Complete, "Execute Complete Task"),
			describe(c.keys.Yank, "Copy Link"),
		),
	}, c.keys.formSections("Task",
		[]string{"Due Datetime Format: yyyy-mm-ddThh:mm:ss"},
		[]string{"Due Datetime Format: yyyy-mm-ddThh:mm:ss.000Z"},
	)...)
}
