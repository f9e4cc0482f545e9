package feed

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainviz/neuroterm/internal/dataset"
	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/health"
)

const emitInterval = 50 * time.Millisecond

// SynthFeed produces live samples from a Synthesizer, classifying each
// one as it goes. When the schedule runs out it rewinds and keeps
// going, so the dashboard loops the demo session indefinitely.
type SynthFeed struct {
	program *tea.Program
	synth   *eeg.Synthesizer
	rate    int
	cancel  context.CancelFunc
}

// NewSynthFeed wraps a synthesizer for continuous playback.
func NewSynthFeed(synth *eeg.Synthesizer, samplingRate int) *SynthFeed {
	return &SynthFeed{synth: synth, rate: samplingRate}
}

// Start begins emitting batches at the sampling rate.
func (f *SynthFeed) Start(p *tea.Program) error {
	f.program = p

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel

	go f.loop(ctx)
	return nil
}

func (f *SynthFeed) loop(ctx context.Context) {
	ticker := time.NewTicker(emitInterval)
	defer ticker.Stop()

	perTick := int(float64(f.rate) * emitInterval.Seconds())
	if perTick < 1 {
		perTick = 1
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			batch := make([]dataset.Record, 0, perTick)
			for len(batch) < perTick {
				s, ok := f.synth.Next()
				if !ok {
					f.synth.Reset()
					continue
				}
				labels, err := health.Classify(s.Powers)
				if err != nil {
					// Synthesized powers are always valid.
					continue
				}
				batch = append(batch, dataset.Record{Sample: s, Labels: labels})
			}
			if f.program != nil {
				f.program.Send(SampleBatchMsg{Records: batch})
			}
		}
	}
}

// Stop halts the feed.
func (f *SynthFeed) Stop() {
	if f.cancel != nil {
		f.cancel()
	}
}

var _ Feed = (*SynthFeed)(nil)

// Session synthesizes one full pass over the schedule and classifies
// every sample. Used by the generate and record paths, which need the
// whole session rather than a paced stream.
func Session(synth *eeg.Synthesizer) ([]dataset.Record, error) {
	samples := synth.Generate()
	records := make([]dataset.Record, len(samples))
	for i, s := range samples {
		labels, err := health.Classify(s.Powers)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		records[i] = dataset.Record{Sample: s, Labels: labels}
	}
	return records, nil
}
