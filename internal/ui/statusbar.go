package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is everything the bottom bar displays.
type StatusInfo struct {
	Running    bool
	Recording  bool
	RecordFile string // base name of the CSV being recorded
	Samples    int
	Elapsed    float64 // session seconds of the newest sample
	Rate       int     // Hz
	LEDOn      bool
	Buzzer     bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	state := ""
	if info.Running {
		state = StyleStatusLive.Render("[RUNNING]")
	} else {
		state = StyleStatusPaused.Render("[PAUSED]")
	}

	rec := ""
	if info.Recording {
		rec = StyleRecording.Render(" REC* " + info.RecordFile)
	}

	led := "o"
	if info.LEDOn {
		led = "O"
	}
	buzz := ""
	if info.Buzzer {
		buzz = "  BEEP"
	}

	detail := fmt.Sprintf(" Samples: %d  t=%.2fs  %dHz  LED:%s%s",
		info.Samples, info.Elapsed, info.Rate, led, buzz)

	content := state + rec + StyleStatusBar.Foreground(ColorCyan).Render(detail)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
