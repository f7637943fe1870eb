package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdeck/internal/bookmark"
	"github.com/atomicstack/termdeck/internal/ui/form"
	"github.com/atomicstack/termdeck/internal/ui/widget"
)

// BookmarkStore persists the bookmark list as a whole.
type BookmarkStore interface {
	Load() ([]bookmark.Item, error)
	Save([]bookmark.Item) error
}

// BookmarkController browses and edits the local bookmark file.
type BookmarkController struct {
	*core
	store   BookmarkStore
	browser Opener
	items   []bookmark.Item
}

// NewBookmarks loads the store. A read failure leaves the list empty.
func NewBookmarks(store BookmarkStore, browser Opener) *BookmarkController {
	c := &BookmarkController{
		core:    newCore(Bookmarks, "Bookmark", "Help Bookmark", form.NewBookmark()),
		store:   store,
		browser: browser,
	}
	c.res = c
	c.Reload()
	return c
}

// Items returns the loaded bookmarks.
func (c *BookmarkController) Items() []bookmark.Item { return c.items }

func (c *BookmarkController) Len() int { return len(c.items) }

func (c *BookmarkController) Rows() []string {
	rows := make([]string, len(c.items))
	for i, item := range c.items {
		rows[i] = item.Summary()
	}
	return rows
}

// Reload rereads the store.
func (c *BookmarkController) Reload() {
	items, err := c.store.Load()
	if err != nil {
		items = []bookmark.Item{}
	}
	c.items = items
	c.loaded()
}

// OpenSelected opens the selected URL in the browser.
func (c *BookmarkController) OpenSelected() error {
	if !c.list.Valid(len(c.items)) {
		return nil
	}
	return c.browser.Open(c.items[c.list.Index].URL)
}

// Add appends the form values as a new bookmark and rewrites the store.
func (c *BookmarkController) Add() {
	c.items = append(c.items, c.fromForm())
	c.persist()
	c.closeForm()
}

// Edit overwrites the selected bookmark with the form values.
func (c *BookmarkController) Edit() {
	if c.list.Valid(len(c.items)) {
		c.items[c.list.Index] = c.fromForm()
		c.persist()
	}
	c.closeForm()
}

// Delete removes the selected bookmark and rewrites the store.
func (c *BookmarkController) Delete() {
	if !c.list.Valid(len(c.items)) {
		return
	}
	idx := c.list.Index
	c.items = append(c.items[:idx:idx], c.items[idx+1:]...)
	c.persist()
}

// persist rewrites the store; failures are traced by the store and the
// in-memory list stays authoritative.
func (c *BookmarkController) persist() {
	_ = c.store.Save(c.items)
	c.loaded()
}

func (c *BookmarkController) fromForm() bookmark.Item {
	return bookmark.Item{
		Title: c.form.Value(form.BookmarkTitle),
		URL:   c.form.Value(form.BookmarkURL),
	}
}

func (c *BookmarkController) editValues() []string {
	item := c.items[c.list.Index]
	return []string{item.Title, item.URL}
}

func (c *BookmarkController) link() string {
	return c.items[c.list.Index].URL
}

func (c *BookmarkController) extraKey(tea.KeyMsg) (bool, error) { return false, nil }

func (c *BookmarkController) helpSections() []widget.HelpSection {
	return append([]widget.HelpSection{
		c.keys.selectSection("Bookmark", true, describe(c.keys.Yank, "Copy URL")),
	}, c.keys.formSections("Bookmark", nil, nil)...)
}
