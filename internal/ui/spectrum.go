package ui

import (
	"fmt"
	"strings"

	"github.com/brainviz/neuroterm/internal/config"
)

// RenderSpectrum draws the magnitude spectrum as vertical bars up to
// SpectrumMaxHz. freqs and mags come from dsp.Spectrum.
func RenderSpectrum(width, height int, freqs, mags []float64) string {
	innerW := width - 4
	innerH := height - 4
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 3 {
		innerH = 3
	}

	// Bucket bins into columns, keeping the peak per bucket.
	cols := make([]float64, innerW)
	peak := 0.0
	for i, f := range freqs {
		if f > config.SpectrumMaxHz {
			break
		}
		col := int(f / config.SpectrumMaxHz * float64(innerW))
		if col >= innerW {
			col = innerW - 1
		}
		if mags[i] > cols[col] {
			cols[col] = mags[i]
		}
		if mags[i] > peak {
			peak = mags[i]
		}
	}

	rows := make([]string, innerH)
	for r := 0; r < innerH; r++ {
		var sb strings.Builder
		thresh := float64(innerH-r) / float64(innerH)
		for c := 0; c < innerW; c++ {
			filled := peak > 0 && cols[c]/peak >= thresh
			if filled {
				sb.WriteRune('#')
			} else {
				sb.WriteRune(' ')
			}
		}
		rows[r] = StyleTrace.Render(sb.String())
	}

	axis := StyleAxis.Render(fmt.Sprintf("0%sHz%d",
		strings.Repeat("-", max(innerW-len(fmt.Sprintf("%d", config.SpectrumMaxHz))-3, 1)),
		config.SpectrumMaxHz))

	lines := make([]string, 0, innerH+2)
	lines = append(lines, StylePanelTitle.Render("SPECTRUM"))
	lines = append(lines, rows...)
	lines = append(lines, axis)

	content := strings.Join(lines, "\n")
	return clampPanel(StylePanelBorder.Width(width-2).Render(content), width, height)
}
