package tui

import (
	"charm.land/lipgloss/v2"
)

// Catppuccin-ish palette shared by all components.
var (
	colorPrimary  = lipgloss.Color("#b4befe")
	colorText     = lipgloss.Color("#cdd6f4")
	colorMuted    = lipgloss.Color("#6c7086")
	colorSubtle   = lipgloss.Color("#a6adc8")
	colorAccent   = lipgloss.Color("#cba6f7")
	colorSuccess  = lipgloss.Color("#a6e3a1")
	colorWarning  = lipgloss.Color("#f9e2af")
	colorDisabled = lipgloss.Color("#585b70")
	colorBorder   = lipgloss.Color("#45475a")
)

var (
	styleTitle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	styleOption         = lipgloss.NewStyle().Foreground(colorText)
	styleOptionCursor   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleOptionDisabled = lipgloss.NewStyle().Foreground(colorDisabled).Strikethrough(true)
	styleCheckOn        = lipgloss.NewStyle().Foreground(colorSuccess)
	styleCheckOff       = lipgloss.NewStyle().Foreground(colorMuted)

	styleDialogBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(1, 2)

	styleButton        = lipgloss.NewStyle().Foreground(colorSubtle).Padding(0, 2)
	styleButtonFocused = lipgloss.NewStyle().Foreground(colorText).Background(colorAccent).Padding(0, 2).Bold(true)

	styleFooter      = lipgloss.NewStyle().Foreground(colorMuted)
	styleFooterKey   = lipgloss.NewStyle().Foreground(colorSubtle).Bold(true)
	styleFooterLabel = lipgloss.NewStyle().Foreground(colorMuted)

	styleEmptyState = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	styleError      = lipgloss.NewStyle().Foreground(colorWarning)
	styleCommitted  = lipgloss.NewStyle().Foreground(colorSuccess)
)
