package eeg

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/brainviz/neuroterm/internal/config"
)

// SynthConfig tunes a Synthesizer.
type SynthConfig struct {
	SamplingRate int     // Hz, must be positive
	NoiseSigma   float64 // Gaussian noise std dev, must be non-negative
	Seed         int64   // rng seed; a fixed seed reproduces the stream exactly
	Blinks       bool    // inject blink artifacts every config.BlinkStride samples
}

// DefaultSynthConfig returns the demo generation parameters.
func DefaultSynthConfig() SynthConfig {
	return SynthConfig{
		SamplingRate: config.SamplingRate,
		NoiseSigma:   config.NoiseSigma,
		Seed:         1,
		Blinks:       true,
	}
}

// Synthesizer produces the composite four-band signal stream for one
// scenario schedule. It holds only a cursor and its own rng; distinct
// instances are independent, a single instance is not safe for
// concurrent use.
type Synthesizer struct {
	cfg      SynthConfig
	schedule *Schedule
	rng      *rand.Rand
	idx      int
	total    int
}

// NewSynthesizer validates the configuration and binds it to a schedule.
func NewSynthesizer(schedule *Schedule, cfg SynthConfig) (*Synthesizer, error) {
	if schedule == nil {
		return nil, fmt.Errorf("synthesizer: nil schedule")
	}
	if cfg.SamplingRate <= 0 {
		return nil, fmt.Errorf("synthesizer: sampling rate must be positive, got %d", cfg.SamplingRate)
	}
	if cfg.NoiseSigma < 0 {
		return nil, fmt.Errorf("synthesizer: noise sigma must be non-negative, got %g", cfg.NoiseSigma)
	}

	return &Synthesizer{
		cfg:      cfg,
		schedule: schedule,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		total:    int(math.Round(schedule.Duration() * float64(cfg.SamplingRate))),
	}, nil
}

// Len returns the number of samples in one pass over the schedule.
func (s *Synthesizer) Len() int {
	return s.total
}

// Reset rewinds the cursor and reseeds the rng, so the next pass
// reproduces the previous one exactly.
func (s *Synthesizer) Reset() {
	s.idx = 0
	s.rng = rand.New(rand.NewSource(s.cfg.Seed))
}

// Next emits the next sample. Returns ok=false once the schedule is
// exhausted.
func (s *Synthesizer) Next() (Sample, bool) {
	if s.idx >= s.total {
		return Sample{}, false
	}

	i := s.idx
	s.idx++

	t := float64(i) / float64(s.cfg.SamplingRate)
	w, ok := s.schedule.At(t)
	if !ok {
		// Guarded by the schedule invariant; Len() keeps t inside it.
		return Sample{}, false
	}

	amp := 0.0
	for _, b := range Bands {
		phase := float64(i) * b.Drift()
		amp += w.Amps.Get(b) * math.Sin(2*math.Pi*b.Freq()*t+phase)
	}
	amp += s.rng.NormFloat64() * s.cfg.NoiseSigma

	cmd := w.Command
	if s.cfg.Blinks && i > 0 && i%config.BlinkStride == 0 {
		// One-sample burst; the schedule's command resumes next tick.
		amp += config.BlinkAmpMax * s.rng.Float64()
		cmd = CommandBlink
	}

	// Powers come from the window envelope, not from the noisy signal.
	powers, err := w.Amps.Normalize()
	if err != nil {
		// Unreachable: NewSchedule validated every window.
		return Sample{}, false
	}

	return Sample{
		Time:      t,
		Amplitude: amp,
		Powers:    powers,
		Command:   cmd,
	}, true
}

// Generate runs one full pass over the schedule from a fresh cursor.
func (s *Synthesizer) Generate() []Sample {
	s.Reset()
	out := make([]Sample, 0, s.total)
	for {
		smp, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, smp)
	}
}
