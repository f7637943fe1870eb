// Package tasks reads and writes entries of one Google Tasks list.
package tasks

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/atomicstack/termdeck/internal/google"
)

// StatusCompleted marks a finished task.
const StatusCompleted = "completed"

// Task is one entry of the task list.
type Task struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title"`
	Notes  string `json:"notes,omitempty"`
	Due    string `json:"due,omitempty"`
	Status string `json:"status,omitempty"`
	Link   string `json:"webViewLink,omitempty"`
}

// Row renders the list summary: title, notes and due date on three lines.
func (t Task) Row() string {
	return fmt.Sprintf("%s\n  %s\n  %s", t.Title, t.Notes, t.Due)
}

// Draft holds the form values sent on create.
type Draft struct {
	Title string
	Notes string
	Due   string
}

type taskList struct {
	Items []Task `json:"items"`
}

// Client talks to one task list collection.
type Client struct {
	api *google.Client
}

// New returns a task client.
func New(api *google.Client) *Client {
	return &Client{api: api}
}

// List returns the incomplete tasks.
func (c *Client) List(ctx context.Context) ([]Task, error) {
	var list taskList
	if err := c.api.List(ctx, url.Values{"showCompleted": {"false"}}, &list); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if list.Items == nil {
		return []Task{}, nil
	}
	return list.Items, nil
}

// Create inserts a new task.
func (c *Client) Create(ctx context.Context, d Draft) error {
	body := Task{Title: d.Title, Notes: d.Notes, Due: NormalizeDue(d.Due)}
	if err := c.api.Create(ctx, body); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Update replaces the whole task.
func (c *Client) Update(ctx context.Context, t Task) error {
	t.Due = NormalizeDue(t.Due)
	if err := c.api.Update(ctx, t.ID, t); err != nil {
		return fmt.Errorf("update task %s: %w", t.ID, err)
	}
	return nil
}

// Complete marks t completed and writes it back.
func (c *Client) Complete(ctx context.Context, t *Task) error {
	t.Status = StatusCompleted
	return c.Update(ctx, *t)
}

// Delete removes the task with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

// dueLayout is the bare datetime accepted in the due field.
const dueLayout = "2006-01-02T15:04:05"

// NormalizeDue completes a bare datetime to the millisecond UTC form the
// service expects. Other values pass through unchanged.
func NormalizeDue(due string) string {
	if _, err := time.Parse(dueLayout, due); err == nil {
		return due + ".000Z"
	}
	return due
}
