package feed

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainviz/neuroterm/internal/dataset"
)

// ReplayFeed paces a loaded session through the UI using the file's own
// timestamps, optionally scaled by a speed multiplier.
type ReplayFeed struct {
	program *tea.Program
	records []dataset.Record
	speed   float64
	loop    bool
	cancel  context.CancelFunc
}

// NewReplayFeed creates a replay producer. speed 1.0 plays in real time,
// 2.0 at double speed.
func NewReplayFeed(records []dataset.Record, speed float64, loop bool) (*ReplayFeed, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("replay: session is empty")
	}
	if speed <= 0 {
		return nil, fmt.Errorf("replay: speed must be positive, got %g", speed)
	}
	return &ReplayFeed{records: records, speed: speed, loop: loop}, nil
}

// Start begins paced delivery.
func (f *ReplayFeed) Start(p *tea.Program) error {
	f.program = p

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel

	go f.run(ctx)
	return nil
}

func (f *ReplayFeed) run(ctx context.Context) {
	ticker := time.NewTicker(emitInterval)
	defer ticker.Stop()

	// Seconds of session time consumed per tick.
	step := emitInterval.Seconds() * f.speed
	base := f.records[0].Sample.Time
	clock := base
	pos := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			clock += step

			var batch []dataset.Record
			for pos < len(f.records) && f.records[pos].Sample.Time <= clock {
				batch = append(batch, f.records[pos])
				pos++
			}
			if len(batch) > 0 && f.program != nil {
				f.program.Send(SampleBatchMsg{Records: batch})
			}

			if pos >= len(f.records) {
				if !f.loop {
					if f.program != nil {
						f.program.Send(DoneMsg{})
					}
					return
				}
				pos = 0
				clock = base
			}
		}
	}
}

// Stop halts the replay.
func (f *ReplayFeed) Stop() {
	if f.cancel != nil {
		f.cancel()
	}
}

var _ Feed = (*ReplayFeed)(nil)
