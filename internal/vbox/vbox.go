// Package vbox wraps the VBoxManage command line.
package vbox

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/atomicstack/termdeck/internal/launch"
	"github.com/atomicstack/termdeck/internal/logging/events"
)

// Manager lists and starts machines through VBoxManage.
type Manager struct {
	path string
	run  launch.Runner
}

// NewManager returns a manager for the executable at path. A nil run uses
// launch.Exec.
func NewManager(path string, run launch.Runner) *Manager {
	if run == nil {
		run = launch.Exec
	}
	return &Manager{path: path, run: run}
}

// List returns the registered machine names in output order.
func (m *Manager) List() ([]string, error) {
	args := []string{"list", "vms"}
	events.Process.Launch(m.path, args)
	out, err := m.run(m.path, args...).Output()
	if err != nil {
		events.Process.LaunchFailed(m.path, err)
		return nil, fmt.Errorf("list vms: %w", err)
	}
	return ParseList(string(out)), nil
}

// Start opens a GUI session for the named machine.
func (m *Manager) Start(name string) error {
	return launch.Run(m.run, m.path, "startvm", name, "--type", "gui")
}

// ParseList extracts one machine name per line of `VBoxManage list vms`
// output. The name is the first double-quoted substring. A line holding a
// single quote is taken to have lost its opening quote, and the text before
// the quote is used. Lines without a name are skipped.
func ParseList(output string) []string {
	names := []string{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		if name, ok := parseLine(scanner.Text()); ok {
			names = append(names, name)
		}
	}
	return names
}

func parseLine(line string) (string, bool) {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return "", false
	}
	if end := strings.IndexByte(line[start+1:], '"'); end >= 0 {
		return line[start+1 : start+1+end], true
	}
	name := strings.TrimSpace(line[:start])
	return name, name != ""
}
