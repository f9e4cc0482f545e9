package eeg

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brainviz/neuroterm/internal/config"
)

// Schedule validation errors.
var (
	ErrScheduleEmpty   = errors.New("schedule has no windows")
	ErrScheduleGap     = errors.New("schedule windows leave a gap")
	ErrScheduleOverlap = errors.New("schedule windows overlap")
)

// Window is one scenario interval: constant band amplitudes and a
// constant command label over [From, To) seconds.
type Window struct {
	From    float64        `yaml:"from"`
	To      float64        `yaml:"to"`
	Amps    BandAmplitudes `yaml:"amplitudes"`
	Command Command        `yaml:"-"`

	// CommandName is the serialized form of Command for YAML files.
	CommandName string `yaml:"command"`
}

// Schedule is an ordered set of contiguous windows covering a session.
type Schedule struct {
	windows []Window
}

// NewSchedule validates the windows: sorted, contiguous, non-overlapping,
// starting at zero, with valid amplitudes in every window.
func NewSchedule(windows []Window) (*Schedule, error) {
	if len(windows) == 0 {
		return nil, ErrScheduleEmpty
	}

	prev := 0.0
	for i, w := range windows {
		if w.To <= w.From {
			return nil, fmt.Errorf("window %d: empty range [%g, %g)", i, w.From, w.To)
		}
		if w.From > prev {
			return nil, fmt.Errorf("%w: [%g, %g) uncovered", ErrScheduleGap, prev, w.From)
		}
		if w.From < prev {
			return nil, fmt.Errorf("%w: window %d starts at %g before %g", ErrScheduleOverlap, i, w.From, prev)
		}
		if err := w.Amps.Validate(); err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		prev = w.To
	}

	cp := make([]Window, len(windows))
	copy(cp, windows)
	for i := range cp {
		cp[i].CommandName = cp[i].Command.String()
	}
	return &Schedule{windows: cp}, nil
}

// Duration returns the covered session length in seconds.
func (s *Schedule) Duration() float64 {
	return s.windows[len(s.windows)-1].To
}

// Windows returns a copy of the schedule's windows.
func (s *Schedule) Windows() []Window {
	cp := make([]Window, len(s.windows))
	copy(cp, s.windows)
	return cp
}

// At returns the window active at time t. The second return is false
// when t falls outside [0, Duration()).
func (s *Schedule) At(t float64) (Window, bool) {
	if t < 0 || math.IsNaN(t) {
		return Window{}, false
	}
	for _, w := range s.windows {
		if t < w.To {
			return w, true
		}
	}
	return Window{}, false
}

// DefaultSchedule is the 10-second demo session: baseline, focus, relax,
// then one window per impairment scenario, ending in a mixed state.
func DefaultSchedule() *Schedule {
	windows := []Window{
		{From: 0, To: 2, Amps: BandAmplitudes{Theta: 15, Alpha: 50, Beta: 30, Gamma: 10}, Command: CommandNone},
		{From: 2, To: 4, Amps: BandAmplitudes{Theta: 10, Alpha: 20, Beta: 60, Gamma: 15}, Command: CommandFocus},
		{From: 4, To: 6, Amps: BandAmplitudes{Theta: 15, Alpha: 65, Beta: 20, Gamma: 8}, Command: CommandRelax},
		{From: 6, To: 7, Amps: BandAmplitudes{Theta: 25, Alpha: 15, Beta: 35, Gamma: 12}, Command: CommandNone},
		{From: 7, To: 8, Amps: BandAmplitudes{Theta: 20, Alpha: 45, Beta: 10, Gamma: 15}, Command: CommandNone},
		{From: 8, To: 9, Amps: BandAmplitudes{Theta: 50, Alpha: 25, Beta: 15, Gamma: 8}, Command: CommandNone},
		{From: 9, To: config.Duration, Amps: BandAmplitudes{Theta: 20, Alpha: 35, Beta: 30, Gamma: 12}, Command: CommandNone},
	}
	s, err := NewSchedule(windows)
	if err != nil {
		panic(err) // static data
	}
	return s
}

type scheduleFile struct {
	Windows []Window `yaml:"windows"`
}

// LoadSchedule reads and validates a schedule from a YAML file.
func LoadSchedule(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule: %w", err)
	}

	var f scheduleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}

	for i := range f.Windows {
		if f.Windows[i].CommandName == "" {
			f.Windows[i].Command = CommandNone
			continue
		}
		cmd, err := ParseCommand(f.Windows[i].CommandName)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		f.Windows[i].Command = cmd
	}

	return NewSchedule(f.Windows)
}

// Save writes the schedule as a YAML file LoadSchedule can read back.
func (s *Schedule) Save(path string) error {
	data, err := yaml.Marshal(scheduleFile{Windows: s.Windows()})
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schedule: %w", err)
	}
	return nil
}
