package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/termdeck/internal/app"
	"github.com/atomicstack/termdeck/internal/config"
	"github.com/atomicstack/termdeck/internal/logging"
	"github.com/atomicstack/termdeck/internal/logging/events"
)

const redacted = "[redacted]"

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg, probeViewport(int(os.Stdout.Fd()))))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// viewport is the screen size the dashboard will lay out for. Fixed sizes
// from the configuration win over the terminal's.
type viewport struct {
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Fixed    bool   `json:"fixed"`
	Error    string `json:"error,omitempty"`
}

func probeViewport(fd int) viewport {
	var v viewport
	if fd < 0 || !term.IsTerminal(fd) {
		return v
	}
	v.Terminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		v.Error = err.Error()
		return v
	}
	v.Width, v.Height = width, height
	return v
}

func (v viewport) withConfig(cfg app.Config) viewport {
	if cfg.Width > 0 {
		v.Width, v.Fixed = cfg.Width, true
	}
	if cfg.Height > 0 {
		v.Height, v.Fixed = cfg.Height, true
	}
	return v
}

// startupTracePayload records the flags, the configuration with the bearer
// token hidden, the data files the dashboard will touch and the viewport.
func startupTracePayload(cfg config.Config, screen viewport) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	if cfg.App.Token != "" {
		cfg.App.Token = redacted
	}
	return map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"files":    dataFiles(cfg.App),
		"viewport": screen.withConfig(cfg.App),
	}
}

// dataFiles reports which of the local files exist. A missing bookmark file
// reads as an empty list and a missing token triggers authorization.
func dataFiles(cfg app.Config) map[string]bool {
	files := map[string]string{
		"bookmarks":   cfg.BookmarkPath,
		"credentials": cfg.CredentialsPath,
		"token":       cfg.TokenPath,
	}
	present := make(map[string]bool, len(files))
	for name, path := range files {
		if path == "" {
			continue
		}
		_, err := os.Stat(path)
		present[name] = err == nil
	}
	return present
}
