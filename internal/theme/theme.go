package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Border          *lipgloss.Style
	ActiveBorder    *lipgloss.Style
	Title           *lipgloss.Style
	ActiveTitle     *lipgloss.Style
	Item            *lipgloss.Style
	SelectedItem    *lipgloss.Style
	Empty           *lipgloss.Style
	Tab             *lipgloss.Style
	ActiveTab       *lipgloss.Style
	Footer          *lipgloss.Style
	Error           *lipgloss.Style
	Info            *lipgloss.Style
	Field           *lipgloss.Style
	Cursor          *lipgloss.Style
	HelpHeading     *lipgloss.Style
	HelpKey         *lipgloss.Style
	HelpDescription *lipgloss.Style
}

// BorderColor and ActiveBorderColor drive pane and overlay frames.
var (
	BorderColor       = lipgloss.Color("245")
	ActiveBorderColor = lipgloss.Color("34")
)

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(BorderColor),
	),
	ActiveBorder: ptr(
		lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(ActiveBorderColor),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ActiveTitle: ptr(
		lipgloss.NewStyle().Foreground(ActiveBorderColor).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(ActiveBorderColor).Bold(true),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Padding(0, 1),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(ActiveBorderColor).Bold(true).Padding(0, 1),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Field: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(ActiveBorderColor),
	),
	HelpHeading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(ActiveBorderColor),
	),
	HelpDescription: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Frame returns the border style for a pane or overlay in the given focus state.
func (s *Styles) Frame(active bool) lipgloss.Style {
	if active && s.ActiveBorder != nil {
		return *s.ActiveBorder
	}
	if s.Border != nil {
		return *s.Border
	}
	return lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())
}

// FrameTitle returns the title style matching Frame.
func (s *Styles) FrameTitle(active bool) lipgloss.Style {
	if active && s.ActiveTitle != nil {
		return *s.ActiveTitle
	}
	if s.Title != nil {
		return *s.Title
	}
	return lipgloss.NewStyle()
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
