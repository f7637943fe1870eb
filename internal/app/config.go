package app

import "time"

// Config describes user-provided application options.
type Config struct {
	BookmarkPath    string
	BrowserPath     string
	VBoxManagePath  string
	CalendarURL     string
	TasksURL        string
	TasksWebURL     string
	TimeZone        string
	Token           string
	CredentialsPath string
	TokenPath       string
	RequestTimeout  time.Duration
	Width           int
	Height          int
	ShowFooter      bool
	OpenQuery       string
}
