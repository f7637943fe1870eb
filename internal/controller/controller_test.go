package controller

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdeck/internal/bookmark"
	"github.com/atomicstack/termdeck/internal/google/calendar"
	"github.com/atomicstack/termdeck/internal/google/tasks"
)

func newBookmarkController(t *testing.T, items []bookmark.Item) (*BookmarkController, *bookmark.Store, *openerFake) {
	t.Helper()
	store := bookmark.NewStore(filepath.Join(t.TempDir(), "bookmark.json"))
	if items != nil {
		if err := store.Save(items); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	browser := &openerFake{}
	return NewBookmarks(store, browser), store, browser
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from Mode
		trig trigger
		to   Mode
		ok   bool
	}{
		{ModeBase, openHelp, ModeHelp, true},
		{ModeBase, openNewForm, ModeFormNew, true},
		{ModeBase, openEditForm, ModeFormEdit, true},
		{ModeBase, closeHelp, ModeBase, false},
		{ModeHelp, openNewForm, ModeHelp, false},
		{ModeHelp, closeHelp, ModeBase, true},
		{ModeFormNew, openHelp, ModeFormNew, false},
		{ModeFormNew, closeForm, ModeBase, true},
		{ModeFormEdit, openNewForm, ModeFormEdit, false},
		{ModeFormEdit, closeForm, ModeBase, true},
	}
	for _, tc := range cases {
		to, ok := transition(tc.from, tc.trig)
		if to != tc.to || ok != tc.ok {
			t.Fatalf("transition(%v, %d): expected (%v, %v), got (%v, %v)", tc.from, tc.trig, tc.to, tc.ok, to, ok)
		}
	}
}

func TestEmptyBookmarkListDownStaysAtZero(t *testing.T) {
	c, _, browser := newBookmarkController(t, nil)
	if c.Len() != 0 {
		t.Fatalf("expected empty list for missing file, got %d", c.Len())
	}
	for _, k := range []string{"down", "right", "up", "enter", "f3", "D", "Y"} {
		if _, err := c.HandleKey(keyMsg(k)); err != nil {
			t.Fatalf("key %s: unexpected error %v", k, err)
		}
	}
	if c.Selected() != 0 {
		t.Fatalf("expected index 0, got %d", c.Selected())
	}
	if c.Mode() != ModeBase {
		t.Fatalf("expected base mode with empty list, got %v", c.Mode())
	}
	if len(browser.opened) != 0 {
		t.Fatalf("expected nothing opened, got %v", browser.opened)
	}
}

func TestHomeEndJumpSelection(t *testing.T) {
	c, _, _ := newBookmarkController(t, []bookmark.Item{
		{Title: "a", URL: "http://a"},
		{Title: "b", URL: "http://b"},
		{Title: "c", URL: "http://c"},
	})
	if _, err := c.HandleKey(keyMsg("end")); err != nil {
		t.Fatalf("end: %v", err)
	}
	if c.Selected() != 2 {
		t.Fatalf("expected last row after End, got %d", c.Selected())
	}
	c.HandleKey(keyMsg("home"))
	if c.Selected() != 0 {
		t.Fatalf("expected first row after Home, got %d", c.Selected())
	}

	empty, _, _ := newBookmarkController(t, nil)
	empty.HandleKey(keyMsg("end"))
	if empty.Selected() != 0 {
		t.Fatalf("expected End on empty list to stay at 0, got %d", empty.Selected())
	}
}

func TestHomeInFormMovesFieldCursor(t *testing.T) {
	c, _, _ := newBookmarkController(t, []bookmark.Item{
		{Title: "a", URL: "http://a"},
		{Title: "b", URL: "http://b"},
	})
	c.HandleKey(keyMsg("down"))
	c.HandleKey(keyMsg("f2"))
	typeText(c, "abc")
	c.HandleKey(keyMsg("home"))
	typeText(c, "x")
	if got := c.Form().Value(0); got != "xabc" {
		t.Fatalf("expected xabc, got %q", got)
	}
	if c.Selected() != 1 {
		t.Fatalf("expected list selection untouched, got %d", c.Selected())
	}
}

func TestAddBookmarkThroughForm(t *testing.T) {
	c, store, _ := newBookmarkController(t, nil)
	c.HandleKey(keyMsg("f2"))
	if c.Mode() != ModeFormNew {
		t.Fatalf("expected new form mode, got %v", c.Mode())
	}
	typeText(c, "A")
	c.HandleKey(keyMsg("tab"))
	typeText(c, "http://a")
	c.HandleKey(keyMsg("f12"))

	if c.Mode() != ModeBase {
		t.Fatalf("expected form closed after submit, got %v", c.Mode())
	}
	if c.Len() != 1 {
		t.Fatalf("expected one bookmark, got %d", c.Len())
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if !strings.Contains(string(data), `"title": "A"`) || !strings.Contains(string(data), `"url": "http://a"`) {
		t.Fatalf("expected stored entry, got %s", data)
	}
	for i, v := range c.Form().Values() {
		if v != "" {
			t.Fatalf("expected form cleared after submit, field %d = %q", i, v)
		}
	}
}

func TestEditBookmarkPrefillsAndOverwrites(t *testing.T) {
	c, store, _ := newBookmarkController(t, []bookmark.Item{{Title: "Go", URL: "https://go.dev"}, {Title: "B", URL: "b"}})
	c.HandleKey(keyMsg("down"))
	c.HandleKey(keyMsg("f3"))
	if c.Mode() != ModeFormEdit {
		t.Fatalf("expected edit mode, got %v", c.Mode())
	}
	if got := c.Form().Values(); !reflect.DeepEqual(got, []string{"B", "b"}) {
		t.Fatalf("expected prefilled values, got %v", got)
	}
	typeText(c, "2")
	c.HandleKey(keyMsg("enter"))
	items, _ := store.Load()
	if items[1].Title != "B2" || items[0].Title != "Go" {
		t.Fatalf("expected second bookmark edited, got %#v", items)
	}
}

func TestDeleteLastBookmarkClampsSelection(t *testing.T) {
	c, store, _ := newBookmarkController(t, []bookmark.Item{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	c.HandleKey(keyMsg("down"))
	c.HandleKey(keyMsg("down"))
	c.HandleKey(keyMsg("D"))
	if c.Len() != 2 || c.Selected() != 1 {
		t.Fatalf("expected 2 items with index 1, got %d items index %d", c.Len(), c.Selected())
	}
	items, _ := store.Load()
	if len(items) != 2 || items[1].Title != "b" {
		t.Fatalf("expected store rewritten without c, got %#v", items)
	}
}

func TestEscClosesFormWithoutSaving(t *testing.T) {
	c, store, _ := newBookmarkController(t, nil)
	c.HandleKey(keyMsg("f2"))
	typeText(c, "draft")
	if out, _ := c.HandleKey(keyMsg("esc")); out != Handled {
		t.Fatalf("expected esc consumed by form, got %v", out)
	}
	if c.Mode() != ModeBase || c.Len() != 0 {
		t.Fatalf("expected base mode and no items, got %v with %d", c.Mode(), c.Len())
	}
	if _, err := os.Stat(store.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no store write, stat err %v", err)
	}
	if out, _ := c.HandleKey(keyMsg("esc")); out != Leave {
		t.Fatalf("expected esc in base mode to leave, got %v", out)
	}
}

func TestFormKeysReachFieldsNotList(t *testing.T) {
	c, _, _ := newBookmarkController(t, []bookmark.Item{{Title: "a"}, {Title: "b"}})
	c.HandleKey(keyMsg("f2"))
	typeText(c, "D")
	c.HandleKey(keyMsg("down"))
	if c.Len() != 2 {
		t.Fatalf("expected D typed into form, not delete; have %d items", c.Len())
	}
	if c.Selected() != 0 {
		t.Fatalf("expected list untouched while form open, got %d", c.Selected())
	}
	if c.Form().Value(0) != "D" {
		t.Fatalf("expected field text D, got %q", c.Form().Value(0))
	}
}

func TestHelpBlocksEverythingButClose(t *testing.T) {
	c, store, browser := newBookmarkController(t, []bookmark.Item{{Title: "a", URL: "ua"}, {Title: "b", URL: "ub"}})
	c.HandleKey(keyMsg("f1"))
	if c.Mode() != ModeHelp {
		t.Fatalf("expected help mode, got %v", c.Mode())
	}
	for _, k := range []string{"down", "D", "f2", "f3", "enter", "tab", "x", "f12"} {
		if out, err := c.HandleKey(keyMsg(k)); out != Handled || err != nil {
			t.Fatalf("key %s: expected handled without error, got %v %v", k, out, err)
		}
		if c.Mode() != ModeHelp {
			t.Fatalf("key %s: expected help to stay open, got %v", k, c.Mode())
		}
	}
	if c.Selected() != 0 || c.Len() != 2 || len(browser.opened) != 0 {
		t.Fatalf("expected no state change under help: index %d len %d opened %v", c.Selected(), c.Len(), browser.opened)
	}
	items, _ := store.Load()
	if len(items) != 2 {
		t.Fatalf("expected store untouched, got %#v", items)
	}
	c.HandleKey(keyMsg("esc"))
	if c.Mode() != ModeBase {
		t.Fatalf("expected esc to close help, got %v", c.Mode())
	}
	c.HandleKey(keyMsg("f1"))
	c.HandleKey(keyMsg("f1"))
	if c.Mode() != ModeBase {
		t.Fatalf("expected f1 to toggle help closed, got %v", c.Mode())
	}
}

func TestOpenFailureIsFatal(t *testing.T) {
	c, _, browser := newBookmarkController(t, []bookmark.Item{{Title: "a", URL: "ua"}})
	browser.err = errBoom
	_, err := c.HandleKey(keyMsg("enter"))
	var fatal *FatalError
	if !errors.As(err, &fatal) || !errors.Is(err, errBoom) {
		t.Fatalf("expected fatal error wrapping boom, got %v", err)
	}
	if fatal.Controller != Bookmarks {
		t.Fatalf("expected bookmarks controller, got %v", fatal.Controller)
	}
}

func TestYankCopiesLink(t *testing.T) {
	c, _, _ := newBookmarkController(t, []bookmark.Item{{Title: "a", URL: "https://a"}})
	var copied string
	c.SetClipboard(func(s string) error { copied = s; return nil })
	c.HandleKey(keyMsg("Y"))
	if copied != "https://a" {
		t.Fatalf("expected url copied, got %q", copied)
	}
}

func TestScheduleDeleteReloads(t *testing.T) {
	svc := &eventsFake{items: []calendar.Event{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}}
	c := NewSchedule(nil, svc, &openerFake{})
	if c.Len() != 3 {
		t.Fatalf("expected 3 events, got %d", c.Len())
	}
	svc.calls = nil
	c.HandleKey(keyMsg("D"))
	if want := []string{"delete:e1", "list"}; !reflect.DeepEqual(svc.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, svc.calls)
	}
	if c.Len() != 2 || c.Selected() != 0 {
		t.Fatalf("expected 2 events with index 0, got %d index %d", c.Len(), c.Selected())
	}
}

func TestScheduleAddCapturesServerID(t *testing.T) {
	svc := &eventsFake{}
	c := NewSchedule(nil, svc, &openerFake{})
	c.HandleKey(keyMsg("f2"))
	typeText(c, "Lunch")
	c.HandleKey(keyMsg("tab"))
	typeText(c, "2024-04-01T12:00:00")
	c.HandleKey(keyMsg("f12"))
	if c.Len() != 1 || c.Items()[0].ID != "new-1" || c.Items()[0].Start != "2024-04-01T12:00:00" {
		t.Fatalf("expected reloaded event with server id, got %#v", c.Items())
	}
}

func TestScheduleReadFailureIsEmpty(t *testing.T) {
	c := NewSchedule(nil, &eventsFake{listErr: errBoom}, &openerFake{})
	if c.Len() != 0 {
		t.Fatalf("expected empty list on read failure, got %d", c.Len())
	}
	if out, err := c.HandleKey(keyMsg("enter")); err != nil || out != Handled {
		t.Fatalf("expected enter on empty list to be a no-op, got %v %v", out, err)
	}
}

func TestScheduleEditPrefillsAndUpdates(t *testing.T) {
	svc := &eventsFake{items: []calendar.Event{{ID: "e1", Summary: "old", Start: "s", End: "e", Description: "d"}}}
	c := NewSchedule(nil, svc, &openerFake{})
	c.HandleKey(keyMsg("f3"))
	c.HandleKey(keyMsg("backspace"))
	c.HandleKey(keyMsg("backspace"))
	c.HandleKey(keyMsg("backspace"))
	typeText(c, "new")
	c.HandleKey(keyMsg("f12"))
	if c.Items()[0].Summary != "new" || c.Items()[0].Description != "d" {
		t.Fatalf("expected updated summary, got %#v", c.Items()[0])
	}
}

func TestTaskCompleteWritesBeforeReload(t *testing.T) {
	svc := &tasksFake{items: []tasks.Task{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}}
	c := NewTasks(nil, svc, &openerFake{}, "https://tasks")
	svc.calls = nil
	c.HandleKey(keyMsg("C"))
	if want := []string{"update:1:completed", "list"}; !reflect.DeepEqual(svc.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, svc.calls)
	}
	if c.Len() != 1 || c.Items()[0].ID != "2" {
		t.Fatalf("expected completed task gone, got %#v", c.Items())
	}
}

func TestTaskWriteFailureStillReloads(t *testing.T) {
	svc := &tasksFake{items: []tasks.Task{{ID: "1", Title: "a"}}, writeErr: errBoom}
	c := NewTasks(nil, svc, &openerFake{}, "")
	svc.calls = nil
	c.HandleKey(keyMsg("f2"))
	typeText(c, "x")
	c.HandleKey(keyMsg("f12"))
	if want := []string{"create", "list"}; !reflect.DeepEqual(svc.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, svc.calls)
	}
	if c.Mode() != ModeBase || c.Len() != 1 {
		t.Fatalf("expected closed form and unchanged list, got %v %d", c.Mode(), c.Len())
	}
}

func TestTaskOpenFallsBackToWebURL(t *testing.T) {
	browser := &openerFake{}
	svc := &tasksFake{items: []tasks.Task{{ID: "1", Title: "a"}, {ID: "2", Title: "b", Link: "https://t/2"}}}
	c := NewTasks(nil, svc, browser, "https://tasks")
	c.HandleKey(keyMsg("enter"))
	c.HandleKey(keyMsg("down"))
	c.HandleKey(keyMsg("enter"))
	if want := []string{"https://tasks", "https://t/2"}; !reflect.DeepEqual(browser.opened, want) {
		t.Fatalf("expected %v, got %v", want, browser.opened)
	}
}

func TestMachinesHaveNoForm(t *testing.T) {
	m := &machinesFake{names: []string{"vm1", "vm2"}}
	c := NewMachines(m)
	for _, k := range []string{"f2", "f3", "D", "C"} {
		if out, _ := c.HandleKey(keyMsg(k)); out != Ignored {
			t.Fatalf("key %s: expected ignored, got %v", k, out)
		}
		if c.Mode() != ModeBase {
			t.Fatalf("key %s: expected base mode, got %v", k, c.Mode())
		}
	}
	c.HandleKey(keyMsg("right"))
	if _, err := c.HandleKey(keyMsg("enter")); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !reflect.DeepEqual(m.started, []string{"vm2"}) {
		t.Fatalf("expected vm2 started, got %v", m.started)
	}
}

func TestMachineStartFailureIsFatal(t *testing.T) {
	c := NewMachines(&machinesFake{names: []string{"vm1"}, startErr: errBoom})
	_, err := c.HandleKey(keyMsg("enter"))
	var fatal *FatalError
	if !errors.As(err, &fatal) || fatal.Controller != VirtualMachines {
		t.Fatalf("expected fatal error from machines, got %v", err)
	}
}

func TestMachineListFailureIsEmpty(t *testing.T) {
	c := NewMachines(&machinesFake{listErr: errBoom})
	if c.Len() != 0 {
		t.Fatalf("expected empty list, got %d", c.Len())
	}
}

func TestViewMarksSelectionAndOverlay(t *testing.T) {
	c, _, _ := newBookmarkController(t, []bookmark.Item{{Title: "alpha"}, {Title: "beta"}})
	c.HandleKey(keyMsg("down"))
	view := ansi.Strip(c.View(30, 6))
	if !strings.Contains(view, "> beta") || !strings.Contains(view, "Bookmark") {
		t.Fatalf("unexpected view:\n%s", view)
	}
	base := c.View(60, 20)
	if got := c.Overlay(base, 60, 20); got != base {
		t.Fatalf("expected no overlay in base mode")
	}
	c.HandleKey(keyMsg("f1"))
	help := ansi.Strip(c.Overlay(base, 60, 20))
	if !strings.Contains(help, "Help Bookmark") || !strings.Contains(help, "[ Select Bookmark ]") {
		t.Fatalf("expected help overlay, got:\n%s", help)
	}
}
