// Package launch starts the external programs the dashboard hands work to.
package launch

import (
	"fmt"
	"os/exec"

	"github.com/atomicstack/termdeck/internal/logging/events"
)

// Commander is the slice of *exec.Cmd the launchers need.
type Commander interface {
	Run() error
	Output() ([]byte, error)
}

// Runner builds a Commander for name and args.
type Runner func(name string, args ...string) Commander

type execCommander struct {
	cmd *exec.Cmd
}

func (e execCommander) Run() error {
	return e.cmd.Run()
}

func (e execCommander) Output() ([]byte, error) {
	return e.cmd.Output()
}

// Exec is the Runner backed by os/exec.
func Exec(name string, args ...string) Commander {
	return execCommander{cmd: exec.Command(name, args...)} //nolint:gosec
}

// Run executes name with args and traces the attempt.
func Run(run Runner, name string, args ...string) error {
	if run == nil {
		run = Exec
	}
	events.Process.Launch(name, args)
	if err := run(name, args...).Run(); err != nil {
		events.Process.LaunchFailed(name, err)
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// Browser opens links with an external viewer.
type Browser struct {
	path string
	run  Runner
}

// NewBrowser returns a launcher for the executable at path. A nil run uses Exec.
func NewBrowser(path string, run Runner) *Browser {
	if run == nil {
		run = Exec
	}
	return &Browser{path: path, run: run}
}

// Open passes url to the browser and waits for the launcher to return.
func (b *Browser) Open(url string) error {
	if b.path == "" {
		return fmt.Errorf("open %s: no browser configured", url)
	}
	return Run(b.run, b.path, url)
}
