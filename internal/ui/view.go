package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdeck/internal/controller"
	"github.com/atomicstack/termdeck/internal/ui/widget"
)

const (
	bookmarkPercent = 20
	tabBarHeight    = 3
	footerText      = "  Quit: Esc, Open/Close Help: F1, Bookmark: F5, Tab APP: F6, Move Tab: Tab"
)

// View renders the bookmark column, the tab bar with the active tab, the
// footer, and finally any overlay the active controller has open.
func (m *Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	mainHeight := m.height
	if m.showFooter {
		mainHeight--
	}
	if mainHeight < 0 {
		mainHeight = 0
	}
	leftWidth := m.width * bookmarkPercent / 100
	rightWidth := m.width - leftWidth

	left := m.renderController(controller.Bookmarks, leftWidth, mainHeight)
	right := m.renderTabArea(rightWidth, mainHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	if m.showFooter {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
	}
	frame := widget.Fit(body, m.width, m.height)
	if current := m.controller(m.active); current != nil {
		frame = current.Overlay(frame, m.width, m.height)
	}
	return frame
}

func (m *Model) renderController(id controller.ID, width, height int) string {
	c := m.controller(id)
	if c == nil {
		return widget.Fit("", width, height)
	}
	return c.View(width, height)
}

func (m *Model) renderTabArea(width, height int) string {
	barHeight := tabBarHeight
	if height < barHeight {
		barHeight = height
	}
	bar := m.renderTabBar(width, barHeight)
	content := m.renderController(m.tab.Controller(), width, height-barHeight)
	if height-barHeight <= 0 {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, content)
}

func (m *Model) renderTabBar(width, height int) string {
	labels := make([]string, len(tabOrder))
	selected := m.tab.Position()
	for _, t := range tabOrder {
		if t.Position() == selected {
			labels[t.Position()] = styles.ActiveTab.Render(t.Label())
		} else {
			labels[t.Position()] = styles.Tab.Render(t.Label())
		}
	}
	bar := widget.NewPane("Tabs")
	bar.Active = m.window == WindowTab
	return bar.Render(width, height, strings.Join(labels, "|"))
}

func (m *Model) renderFooter() string {
	return styles.Footer.Render(ansi.Truncate(footerText, m.width, "…"))
}
