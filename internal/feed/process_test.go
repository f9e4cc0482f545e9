package feed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/feed"
)

func TestParseLineCursor(t *testing.T) {
	ev, ok := feed.ParseLine("║ Cursor Position: (3, 7)                  ")
	require.True(t, ok)
	require.Equal(t, feed.EventCursor, ev.Kind)
	require.Equal(t, 3, ev.X)
	require.Equal(t, 7, ev.Y)
}

func TestParseLineLED(t *testing.T) {
	ev, ok := feed.ParseLine("✓ LED turned ON")
	require.True(t, ok)
	require.Equal(t, feed.EventLED, ev.Kind)
	require.True(t, ev.LEDOn)

	ev, ok = feed.ParseLine("LED: OFF")
	require.True(t, ok)
	require.False(t, ev.LEDOn)
}

func TestParseLineBuzzer(t *testing.T) {
	for _, line := range []string{"BEEP!", "BUZZER active for 200ms"} {
		ev, ok := feed.ParseLine(line)
		require.True(t, ok, line)
		require.Equal(t, feed.EventBuzzer, ev.Kind)
	}
}

func TestParseLineCommands(t *testing.T) {
	cases := map[string]eeg.Command{
		"Detected: FOCUS":            eeg.CommandFocus,
		"Detected: RELAX":            eeg.CommandRelax,
		"Detected: BLINK (artifact)": eeg.CommandBlink,
		"Detected: NONE":             eeg.CommandNone,
	}

	for line, want := range cases {
		ev, ok := feed.ParseLine(line)
		require.True(t, ok, line)
		require.Equal(t, feed.EventCommand, ev.Kind)
		require.Equal(t, want, ev.Command)
	}
}

func TestParseLineIgnoresNoise(t *testing.T) {
	for _, line := range []string{
		"",
		"starting up...",
		"Cursor Position: broken",
		"Detected: SOMETHING",
	} {
		_, ok := feed.ParseLine(line)
		require.False(t, ok, line)
	}
}
