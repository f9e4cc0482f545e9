package eeg

import "fmt"

// Command is the mocked mental-state classification attached to a sample.
type Command int

const (
	CommandNone Command = iota
	CommandFocus
	CommandRelax
	CommandBlink
)

func (c Command) String() string {
	switch c {
	case CommandFocus:
		return "FOCUS"
	case CommandRelax:
		return "RELAX"
	case CommandBlink:
		return "BLINK"
	default:
		return "NONE"
	}
}

// ParseCommand converts a serialized command label back to a Command.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "NONE":
		return CommandNone, nil
	case "FOCUS":
		return CommandFocus, nil
	case "RELAX":
		return CommandRelax, nil
	case "BLINK":
		return CommandBlink, nil
	default:
		return CommandNone, fmt.Errorf("unknown command %q", s)
	}
}

// Sample is one tick of the synthesized (or replayed) signal stream.
// Immutable once emitted.
type Sample struct {
	Time      float64 // seconds since session start
	Amplitude float64 // composite signal value (uV)
	Powers    Powers  // normalized band power fractions
	Command   Command
}
