package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the HUD and the scenario menu.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDWarn      lipgloss.Style
	HUDSeparator lipgloss.Style
	LightGreen   lipgloss.Style
	LightRed     lipgloss.Style
	Paused       lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDWarn:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		LightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		LightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Paused:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}
