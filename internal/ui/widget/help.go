package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
)

// HelpSection groups the key bindings shown under one heading.
type HelpSection struct {
	Heading  string
	Bindings []key.Binding
	Notes    []string
}

// HelpLines formats sections as aligned "description : keys" rows.
func HelpLines(sections []HelpSection) []string {
	width := 0
	for _, section := range sections {
		for _, b := range section.Bindings {
			if w := ansi.StringWidth(b.Help().Desc); w > width {
				width = w
			}
		}
	}
	lines := make([]string, 0, 16)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("[ %s ]", section.Heading))
		for _, b := range section.Bindings {
			if !b.Enabled() {
				continue
			}
			help := b.Help()
			lines = append(lines, fmt.Sprintf("%-*s : %s", width, help.Desc, help.Key))
		}
		lines = append(lines, section.Notes...)
	}
	return lines
}

// Help is the read-only overlay listing key bindings. It never handles keys;
// its owner opens and closes it.
type Help struct {
	*Overlay
}

// NewHelp returns a closed help overlay.
func NewHelp(title string) *Help {
	return &Help{Overlay: NewOverlay(title)}
}

// Render draws lines inside the help overlay on top of base.
func (h *Help) Render(base string, frameWidth, frameHeight int, lines []string) string {
	return h.Overlay.Render(base, frameWidth, frameHeight, func(width, height int) string {
		return helpBody(lines, width, height)
	})
}

func helpBody(lines []string, width, height int) string {
	const marginX, marginY = 2, 1
	inner := width - 2*marginX
	if inner < 0 {
		inner = 0
	}
	out := make([]string, 0, len(lines)+marginY)
	for i := 0; i < marginY; i++ {
		out = append(out, "")
	}
	pad := strings.Repeat(" ", marginX)
	for _, line := range lines {
		out = append(out, pad+renderHelpLine(ansi.Truncate(line, inner, "…")))
	}
	return Fit(strings.Join(out, "\n"), width, height)
}

func renderHelpLine(line string) string {
	if strings.HasPrefix(line, "[") && styles.HelpHeading != nil {
		return styles.HelpHeading.Render(line)
	}
	desc, keys, ok := strings.Cut(line, " : ")
	if !ok || styles.HelpKey == nil || styles.HelpDescription == nil {
		return line
	}
	return styles.HelpDescription.Render(desc) + " : " + styles.HelpKey.Render(keys)
}
