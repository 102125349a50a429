package main

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual styling for the digip dashboard.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
}

// DefaultTheme returns the default theme for digip dash.
func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("12"),  // Blue
		Secondary: lipgloss.Color("14"),  // Cyan
		Success:   lipgloss.Color("10"),  // Green
		Warning:   lipgloss.Color("11"),  // Yellow
		Error:     lipgloss.Color("9"),   // Red
		Muted:     lipgloss.Color("240"), // Gray
	}
}

// statColor picks a bar color for a 0-100 stat where high is good.
func (t Theme) statColor(value float64) lipgloss.Color {
	switch {
	case value >= 60:
		return t.Success
	case value >= 30:
		return t.Warning
	default:
		return t.Error
	}
}

// hungerColor picks a bar color for hunger, where low is good.
func (t Theme) hungerColor(value float64) lipgloss.Color {
	switch {
	case value <= 40:
		return t.Success
	case value <= 70:
		return t.Warning
	default:
		return t.Error
	}
}
