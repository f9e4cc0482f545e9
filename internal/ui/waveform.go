package ui

import (
	"fmt"
	"strings"
)

// RenderWaveform draws the amplitude trace as a character grid panel.
// history is in chronological order; the newest sample lands at the
// right edge.
func RenderWaveform(width, height int, history []float64, rangeUV float64) string {
	innerW := width - 4
	innerH := height - 3
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 3 {
		innerH = 3
	}

	grid := make([][]rune, innerH)
	for r := range grid {
		grid[r] = make([]rune, innerW)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	// Midline
	mid := innerH / 2
	for c := 0; c < innerW; c++ {
		grid[mid][c] = '-'
	}

	// One column per bucket of samples; newest on the right.
	if len(history) > 0 && rangeUV > 0 {
		per := len(history) / innerW
		if per < 1 {
			per = 1
		}
		start := len(history) - per*innerW
		for col := 0; col < innerW; col++ {
			lo := start + col*per
			if lo+per <= 0 {
				continue
			}
			if lo < 0 {
				lo = 0
			}
			// Peak value preserves blink spikes when downsampling.
			v := history[lo]
			for _, s := range history[lo : lo+per] {
				if absf(s) > absf(v) {
					v = s
				}
			}
			row := mid - int(v/rangeUV*float64(mid))
			if row < 0 {
				row = 0
			}
			if row >= innerH {
				row = innerH - 1
			}
			grid[row][col] = '*'
		}
	}

	lines := make([]string, 0, innerH+1)
	lines = append(lines, StylePanelTitle.Render("EEG WAVEFORM")+
		StyleAxis.Render(fmt.Sprintf("  +/-%.0fuV", rangeUV)))
	for r, rowRunes := range grid {
		row := string(rowRunes)
		if r == mid {
			lines = append(lines, StyleAxis.Render(row))
		} else {
			lines = append(lines, StyleTrace.Render(row))
		}
	}

	content := strings.Join(lines, "\n")
	return clampPanel(StylePanelBorder.Width(width-2).Render(content), width, height)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// clampPanel hard-limits a rendered panel to exactly height lines.
// lipgloss Height() only sets a minimum; it won't truncate overflow.
func clampPanel(rendered string, width, height int) string {
	lines := strings.Split(rendered, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
