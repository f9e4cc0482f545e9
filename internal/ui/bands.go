package ui

import (
	"fmt"
	"strings"

	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/charmbracelet/lipgloss"
)

func bandStyle(b eeg.Band) lipgloss.Style {
	switch b {
	case eeg.BandTheta:
		return StyleBandTheta
	case eeg.BandAlpha:
		return StyleBandAlpha
	case eeg.BandBeta:
		return StyleBandBeta
	default:
		return StyleBandGamma
	}
}

// RenderBandPowers draws one horizontal bar per band. Bands primary to
// the active view get a marker; the others render dimmed.
func RenderBandPowers(width, height int, powers eeg.Powers, view View) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}
	barW := innerW - 16
	if barW < 5 {
		barW = 5
	}

	primary := make(map[eeg.Band]bool)
	for _, b := range view.PrimaryBands() {
		primary[b] = true
	}

	lines := []string{StylePanelTitle.Render("BAND POWER")}
	for _, b := range eeg.Bands {
		frac := powers.Get(b)
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		filled := int(frac * float64(barW))

		marker := " "
		if primary[b] {
			marker = ">"
		}

		bar := strings.Repeat("=", filled) + strings.Repeat(".", barW-filled)
		label := fmt.Sprintf("%s%-6s", marker, b)
		pct := fmt.Sprintf(" %3.0f%%", frac*100)

		sty := bandStyle(b)
		if !primary[b] && view != ViewAll {
			sty = StyleTraceDim
		}
		lines = append(lines, sty.Render(label)+StyleAxis.Render("[")+
			sty.Render(bar)+StyleAxis.Render("]")+sty.Render(pct))
	}

	content := strings.Join(lines, "\n")
	return clampPanel(StylePanelBorder.Width(width-2).Render(content), width, height)
}
