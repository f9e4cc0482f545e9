package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the dashboard: menu bar, waveform across the
// top, spectrum / band-power / predictions side by side, status bar.
func ComposeLayout(menuBar, waveform, spectrum, bands, healthPanel, statusBar string) string {
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, spectrum, bands, healthPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, waveform, bottom, statusBar)
}
