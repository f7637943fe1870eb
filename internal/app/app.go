package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/oauth2"
	"golang.org/x/term"

	"github.com/atomicstack/termdeck/internal/bookmark"
	"github.com/atomicstack/termdeck/internal/controller"
	"github.com/atomicstack/termdeck/internal/credential"
	"github.com/atomicstack/termdeck/internal/google"
	"github.com/atomicstack/termdeck/internal/google/calendar"
	"github.com/atomicstack/termdeck/internal/google/tasks"
	"github.com/atomicstack/termdeck/internal/launch"
	"github.com/atomicstack/termdeck/internal/logging/events"
	"github.com/atomicstack/termdeck/internal/ui"
	"github.com/atomicstack/termdeck/internal/vbox"
)

// Run bootstraps and executes the Bubble Tea program. A non-empty OpenQuery
// skips the UI and opens the best matching bookmark instead.
func Run(cfg Config) error {
	if cfg.OpenQuery != "" {
		return OpenBookmark(cfg, launch.Exec)
	}
	ctx := context.Background()
	if needsAuthorization(cfg) && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := credential.Authorize(ctx, cfg.CredentialsPath, cfg.TokenPath, os.Stdin, os.Stdout); err != nil {
			return fmt.Errorf("authorize: %w", err)
		}
	}
	model, err := Build(ctx, cfg, launch.Exec, nil)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err == nil {
		err = model.Err()
	}
	events.App.Exit(err)
	return err
}

// Build wires the stores, remote clients and launchers into the router
// model. run starts external processes; httpClient may be nil, in which
// case requests time out after cfg.RequestTimeout (zero waits forever).
func Build(ctx context.Context, cfg Config, run launch.Runner, httpClient *http.Client) (*ui.Model, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.TimeZone, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	creds := provider(ctx, cfg, httpClient)
	browser := launch.NewBrowser(cfg.BrowserPath, run)

	schedule := calendar.New(google.NewClient(cfg.CalendarURL, creds, httpClient), loc)
	todo := tasks.New(google.NewClient(cfg.TasksURL, creds, httpClient))

	return ui.NewModel(ui.Options{
		Bookmarks:  controller.NewBookmarks(bookmark.NewStore(cfg.BookmarkPath), browser),
		Schedule:   controller.NewSchedule(ctx, schedule, browser),
		Tasks:      controller.NewTasks(ctx, todo, browser, cfg.TasksWebURL),
		Machines:   controller.NewMachines(vbox.NewManager(cfg.VBoxManagePath, run)),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	}), nil
}

// OpenBookmark opens the bookmark best matching cfg.OpenQuery.
func OpenBookmark(cfg Config, run launch.Runner) error {
	items, _ := bookmark.NewStore(cfg.BookmarkPath).Load()
	idx, err := bookmark.Find(items, cfg.OpenQuery)
	if err != nil {
		return fmt.Errorf("open %q: %w", cfg.OpenQuery, err)
	}
	events.App.OpenQuery(cfg.OpenQuery, items[idx].Title)
	return launch.NewBrowser(cfg.BrowserPath, run).Open(items[idx].URL)
}

func provider(ctx context.Context, cfg Config, httpClient *http.Client) credential.Provider {
	if cfg.Token != "" {
		return credential.Static(cfg.Token)
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	return credential.NewFile(ctx, cfg.CredentialsPath, cfg.TokenPath, credential.Scopes...)
}

// needsAuthorization reports whether the code flow should run: no static
// token, no cached token, but client credentials are present.
func needsAuthorization(cfg Config) bool {
	if cfg.Token != "" {
		return false
	}
	if _, err := os.Stat(cfg.TokenPath); err == nil {
		return false
	}
	_, err := os.Stat(cfg.CredentialsPath)
	return err == nil
}
