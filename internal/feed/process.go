package feed

import (
	"bufio"
	"fmt"
	"math"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainviz/neuroterm/internal/dataset"
	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/health"
)

var cursorRe = regexp.MustCompile(`Cursor Position: \((\d+), (\d+)\)`)

// EventKind classifies a parsed output line.
type EventKind int

const (
	EventCursor EventKind = iota
	EventLED
	EventBuzzer
	EventCommand
)

// Event is one recognized line of external-process output.
type Event struct {
	Kind    EventKind
	X, Y    int         // cursor position
	LEDOn   bool        // LED state
	Command eeg.Command // detected command
}

// LEDMsg reports the external process's LED state to the UI.
type LEDMsg struct {
	On bool
}

// BuzzerMsg reports a buzzer activation.
type BuzzerMsg struct{}

// ParseLine matches one line of BCI process output against the known
// patterns: "Cursor Position: (x, y)", LED ON/OFF, BEEP/BUZZER, and
// "Detected: <COMMAND>". Unrecognized lines return ok=false.
func ParseLine(line string) (Event, bool) {
	if m := cursorRe.FindStringSubmatch(line); m != nil {
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		return Event{Kind: EventCursor, X: x, Y: y}, true
	}

	if strings.Contains(line, "LED") {
		if strings.Contains(line, "ON") {
			return Event{Kind: EventLED, LEDOn: true}, true
		}
		if strings.Contains(line, "OFF") {
			return Event{Kind: EventLED, LEDOn: false}, true
		}
	}

	if strings.Contains(line, "BEEP") || strings.Contains(line, "BUZZER") {
		return Event{Kind: EventBuzzer}, true
	}

	if i := strings.Index(line, "Detected: "); i >= 0 {
		word := strings.Fields(line[i+len("Detected: "):])
		if len(word) > 0 {
			if cmd, err := eeg.ParseCommand(word[0]); err == nil {
				return Event{Kind: EventCommand, Command: cmd}, true
			}
		}
	}

	return Event{}, false
}

// ProcessFeed launches an external data-producing process and adapts
// its text output into sample records. Band powers are not present in
// the text protocol, so samples carry the documented defaults; the
// cursor position drives a synthetic amplitude so the trace stays
// alive.
type ProcessFeed struct {
	program *tea.Program
	name    string
	args    []string
	cmd     *exec.Cmd
	start   time.Time
	command eeg.Command
}

// NewProcessFeed prepares a feed for the given command line.
func NewProcessFeed(name string, args ...string) *ProcessFeed {
	return &ProcessFeed{name: name, args: args}
}

// Start launches the process and begins adapting its output.
func (f *ProcessFeed) Start(p *tea.Program) error {
	f.program = p
	f.start = time.Now()

	f.cmd = exec.Command(f.name, f.args...)
	stdout, err := f.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("process feed: %w", err)
	}
	f.cmd.Stderr = f.cmd.Stdout
	if err := f.cmd.Start(); err != nil {
		return fmt.Errorf("process feed: starting %s: %w", f.name, err)
	}

	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			f.handle(scanner.Text())
		}
		err := f.cmd.Wait()
		if f.program != nil {
			f.program.Send(DoneMsg{Err: err})
		}
	}()
	return nil
}

func (f *ProcessFeed) handle(line string) {
	ev, ok := ParseLine(line)
	if !ok || f.program == nil {
		return
	}

	switch ev.Kind {
	case EventLED:
		f.program.Send(LEDMsg{On: ev.LEDOn})
		return
	case EventBuzzer:
		f.program.Send(BuzzerMsg{})
		return
	case EventCommand:
		// Sticky until the next command line; shown with the next sample.
		f.command = ev.Command
		return
	}

	rec := externRecord(time.Since(f.start).Seconds(), ev, f.command)
	f.program.Send(SampleBatchMsg{Records: []dataset.Record{rec}})
}

// externRecord adapts a cursor event into a record. The text protocol
// carries no band powers, so the documented defaults stand in and get
// classified like any other sample, keeping the band and prediction
// panels consistent.
func externRecord(elapsed float64, ev Event, cmd eeg.Command) dataset.Record {
	powers := eeg.Powers{Theta: 0.25, Alpha: 0.25, Beta: 0.25, Gamma: 0.25}
	labels, _ := health.Classify(powers)

	return dataset.Record{
		Sample: eeg.Sample{
			Time:      elapsed,
			Amplitude: math.Hypot(float64(ev.X), float64(ev.Y)) * 10,
			Powers:    powers,
			Command:   cmd,
		},
		Labels: labels,
	}
}

// Stop kills the external process.
func (f *ProcessFeed) Stop() {
	if f.cmd != nil && f.cmd.Process != nil {
		_ = f.cmd.Process.Kill()
	}
}

var _ Feed = (*ProcessFeed)(nil)
