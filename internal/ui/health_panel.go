package ui

import (
	"fmt"
	"strings"

	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/health"
	"github.com/charmbracelet/lipgloss"
)

func levelStyle(l health.Level) lipgloss.Style {
	switch l {
	case health.LevelBorderline:
		return StyleLevelBorderline
	case health.LevelImpaired:
		return StyleLevelImpaired
	default:
		return StyleLevelNormal
	}
}

// RenderHealth draws the three prediction labels plus the current
// command and the theta/beta ratio behind the attention prediction.
func RenderHealth(width, height int, labels health.Labels, powers eeg.Powers, cmd eeg.Command, view View) string {
	rows := []struct {
		name  string
		level health.Level
		view  View
	}{
		{"VISUAL", labels.Visual, ViewVisual},
		{"MOTOR", labels.Motor, ViewMotor},
		{"ATTENTION", labels.Attention, ViewAttention},
	}

	lines := []string{StylePanelTitle.Render("PREDICTIONS")}
	for _, r := range rows {
		marker := " "
		if view == r.view {
			marker = ">"
		}
		name := fmt.Sprintf("%s%-10s", marker, r.name)
		lines = append(lines, StyleMenuLabel.Render(name)+
			levelStyle(r.level).Render(r.level.String()))
	}

	ratio := health.ThetaBetaRatio(powers.Theta, powers.Beta)
	lines = append(lines, StyleAxis.Render(fmt.Sprintf(" theta/beta %.2f", ratio)))

	cmdSty := StyleCommand
	if cmd == eeg.CommandBlink {
		cmdSty = StyleCommandBlink
	}
	lines = append(lines, "")
	lines = append(lines, StyleMenuLabel.Render(" COMMAND   ")+cmdSty.Render(cmd.String()))

	content := strings.Join(lines, "\n")
	return clampPanel(StylePanelBorder.Width(width-2).Render(content), width, height)
}
