package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/termdeck/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile  = "TERMDECK_CONFIG"
	envBookmarks   = "TERMDECK_BOOKMARKS"
	envBrowser     = "TERMDECK_BROWSER"
	envVBoxManage  = "TERMDECK_VBOXMANAGE"
	envCalendarURL = "TERMDECK_CALENDAR_URL"
	envTasksURL    = "TERMDECK_TASKS_URL"
	envTasksWebURL = "TERMDECK_TASKS_WEB_URL"
	envTimeZone    = "TERMDECK_TIMEZONE"
	envToken       = "TERMDECK_TOKEN"
	envCredentials = "TERMDECK_CREDENTIALS"
	envTokenFile   = "TERMDECK_TOKEN_FILE"
	envTimeout     = "TERMDECK_TIMEOUT"
	envWidth       = "TERMDECK_WIDTH"
	envHeight      = "TERMDECK_HEIGHT"
	envShowFooter  = "TERMDECK_FOOTER"
	envTrace       = "TERMDECK_TRACE"
	envLogFile     = "TERMDECK_LOG_FILE"
)

const (
	DefaultCalendarURL = "https://www.googleapis.com/calendar/v3/calendars/primary/events"
	DefaultTasksURL    = "https://tasks.googleapis.com/tasks/v1/lists/@default/tasks"
	DefaultTasksWebURL = "https://calendar.google.com/calendar/u/0/r/tasks"
)

// fileConfig mirrors the optional TOML configuration file.
type fileConfig struct {
	Bookmarks struct {
		File string `toml:"file"`
	} `toml:"bookmarks"`
	Browser struct {
		Path string `toml:"path"`
	} `toml:"browser"`
	VirtualBox struct {
		Path string `toml:"path"`
	} `toml:"virtualbox"`
	Google struct {
		CalendarURL string `toml:"calendar_url"`
		TasksURL    string `toml:"tasks_url"`
		TasksWebURL string `toml:"tasks_web_url"`
		TimeZone    string `toml:"timezone"`
		Token       string `toml:"token"`
		Credentials string `toml:"credentials"`
		TokenFile   string `toml:"token_file"`
		Timeout     string `toml:"timeout"`
	} `toml:"google"`
	UI struct {
		Footer *bool `toml:"footer"`
		Width  int   `toml:"width"`
		Height int   `toml:"height"`
	} `toml:"ui"`
	Logging struct {
		File  string `toml:"file"`
		Trace bool   `toml:"trace"`
	} `toml:"logging"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	cfgPath := configPathFromArgs(args)
	if cfgPath == "" {
		cfgPath = env[envConfigFile]
	}
	file, err := readFile(cfgPath)
	if err != nil {
		return Config{}, err
	}
	footerDefault := true
	if file.UI.Footer != nil {
		footerDefault = *file.UI.Footer
	}

	fs := flag.NewFlagSet("termdeck", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", cfgPath, "path to an optional TOML configuration file")
	bookmarks := fs.String("bookmarks", envOrDefault(env, envBookmarks, orDefault(file.Bookmarks.File, "bookmark.json")), "path to the bookmark JSON file")
	browser := fs.String("browser", envOrDefault(env, envBrowser, orDefault(file.Browser.Path, "xdg-open")), "executable used to open links")
	vboxManage := fs.String("vboxmanage", envOrDefault(env, envVBoxManage, orDefault(file.VirtualBox.Path, "VBoxManage")), "path to the VBoxManage executable")
	calendarURL := fs.String("calendar-url", envOrDefault(env, envCalendarURL, orDefault(file.Google.CalendarURL, DefaultCalendarURL)), "calendar events endpoint")
	tasksURL := fs.String("tasks-url", envOrDefault(env, envTasksURL, orDefault(file.Google.TasksURL, DefaultTasksURL)), "task list endpoint")
	tasksWebURL := fs.String("tasks-web-url", envOrDefault(env, envTasksWebURL, orDefault(file.Google.TasksWebURL, DefaultTasksWebURL)), "page opened for tasks without their own link")
	timeZone := fs.String("timezone", envOrDefault(env, envTimeZone, orDefault(file.Google.TimeZone, "Local")), "IANA time zone used for the calendar window and form datetimes")
	token := fs.String("token", envOrDefault(env, envToken, file.Google.Token), "static bearer token (skips the OAuth token file)")
	credentials := fs.String("credentials", envOrDefault(env, envCredentials, orDefault(file.Google.Credentials, "credentials.json")), "OAuth client credentials file")
	tokenFile := fs.String("token-file", envOrDefault(env, envTokenFile, orDefault(file.Google.TokenFile, "token.json")), "OAuth token cache file")
	fileTimeout, err := parseDuration(file.Google.Timeout)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: google.timeout: %w", cfgPath, err)
	}
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, fileTimeout), "remote request timeout, e.g. 30s (0 waits forever)")
	width := fs.Int("width", envOrInt(env, envWidth, file.UI.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.UI.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, footerDefault), "show the key hint footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Logging.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.Logging.File), "path to the log file")
	open := fs.String("open", "", "open the bookmark best matching the query and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *timeout < 0 {
		return Config{}, fmt.Errorf("timeout must be >= 0 (got %s)", *timeout)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			BookmarkPath:    *bookmarks,
			BrowserPath:     *browser,
			VBoxManagePath:  *vboxManage,
			CalendarURL:     *calendarURL,
			TasksURL:        *tasksURL,
			TasksWebURL:     *tasksWebURL,
			TimeZone:        *timeZone,
			Token:           *token,
			CredentialsPath: *credentials,
			TokenPath:       *tokenFile,
			RequestTimeout:  *timeout,
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
			OpenQuery:       strings.TrimSpace(*open),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: cfgPath,
		Flags: map[string]string{
			"bookmarks":  *bookmarks,
			"browser":    *browser,
			"vboxmanage": *vboxManage,
			"timezone":   *timeZone,
			"timeout":    timeout.String(),
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
			"open":       *open,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// readFile decodes the TOML file at path. A missing file is only an error
// when the path was given explicitly, which is always the case here.
func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	if strings.TrimSpace(path) == "" {
		return fc, nil
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fc, fmt.Errorf("config file %s not found", path)
		}
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// configPathFromArgs finds -config before the full flag set is parsed, since
// the file supplies defaults for every other flag.
func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseDuration(value string) (time.Duration, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}
	return time.ParseDuration(value)
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.BookmarkPath) == "" {
		return fmt.Errorf("bookmark file path must not be empty")
	}
	if _, err := time.LoadLocation(cfg.App.TimeZone); err != nil {
		return fmt.Errorf("unknown time zone %q: %w", cfg.App.TimeZone, err)
	}
	return nil
}
