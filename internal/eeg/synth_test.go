package eeg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brainviz/neuroterm/internal/eeg"
)

func newTestSynth(t *testing.T, seed int64) *eeg.Synthesizer {
	t.Helper()
	s, err := eeg.NewSynthesizer(eeg.DefaultSchedule(), eeg.SynthConfig{
		SamplingRate: 256,
		NoiseSigma:   5.0,
		Seed:         seed,
		Blinks:       true,
	})
	require.NoError(t, err)
	return s
}

func TestSynthesizerConfigValidation(t *testing.T) {
	_, err := eeg.NewSynthesizer(nil, eeg.DefaultSynthConfig())
	require.Error(t, err)

	_, err = eeg.NewSynthesizer(eeg.DefaultSchedule(), eeg.SynthConfig{SamplingRate: 0})
	require.Error(t, err)

	_, err = eeg.NewSynthesizer(eeg.DefaultSchedule(), eeg.SynthConfig{SamplingRate: -256})
	require.Error(t, err)

	_, err = eeg.NewSynthesizer(eeg.DefaultSchedule(), eeg.SynthConfig{SamplingRate: 256, NoiseSigma: -1})
	require.Error(t, err)
}

func TestSynthesizerSessionLength(t *testing.T) {
	s := newTestSynth(t, 1)
	require.Equal(t, 2560, s.Len()) // 10 s at 256 Hz

	samples := s.Generate()
	require.Len(t, samples, 2560)

	// Time is monotonic from zero.
	require.Equal(t, 0.0, samples[0].Time)
	for i := 1; i < len(samples); i++ {
		require.Greater(t, samples[i].Time, samples[i-1].Time)
	}
}

func TestSynthesizerDeterminism(t *testing.T) {
	a := newTestSynth(t, 42).Generate()
	b := newTestSynth(t, 42).Generate()

	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i].Amplitude, b[i].Amplitude, "sample %d", i)
		require.Equal(t, a[i].Command, b[i].Command, "sample %d", i)
	}
}

func TestSynthesizerResetReproducesStream(t *testing.T) {
	s := newTestSynth(t, 7)
	first := s.Generate()
	second := s.Generate()

	for i := range first {
		require.Equal(t, first[i].Amplitude, second[i].Amplitude, "sample %d", i)
	}
}

func TestSynthesizerDifferentSeedsDiffer(t *testing.T) {
	a := newTestSynth(t, 1).Generate()
	b := newTestSynth(t, 2).Generate()

	same := true
	for i := range a {
		if a[i].Amplitude != b[i].Amplitude {
			same = false
			break
		}
	}
	require.False(t, same)
}

func TestSynthesizerBlinkStride(t *testing.T) {
	samples := newTestSynth(t, 1).Generate()

	for i, s := range samples {
		if i > 0 && i%512 == 0 {
			require.Equal(t, eeg.CommandBlink, s.Command, "sample %d", i)
		} else {
			w, ok := eeg.DefaultSchedule().At(s.Time)
			require.True(t, ok)
			require.Equal(t, w.Command, s.Command, "sample %d", i)
		}
	}

	// First sample never blinks.
	require.NotEqual(t, eeg.CommandBlink, samples[0].Command)
}

func TestSynthesizerBlinksDisabled(t *testing.T) {
	s, err := eeg.NewSynthesizer(eeg.DefaultSchedule(), eeg.SynthConfig{
		SamplingRate: 256,
		NoiseSigma:   5.0,
		Seed:         1,
	})
	require.NoError(t, err)

	for _, smp := range s.Generate() {
		require.NotEqual(t, eeg.CommandBlink, smp.Command)
	}
}

func TestSynthesizerPowersFollowSchedule(t *testing.T) {
	samples := newTestSynth(t, 1).Generate()

	// Powers are window envelope constants, identical for every sample
	// in a window regardless of the noisy amplitude.
	sched := eeg.DefaultSchedule()
	for _, s := range samples {
		w, ok := sched.At(s.Time)
		require.True(t, ok)
		want, err := w.Amps.Normalize()
		require.NoError(t, err)
		require.Equal(t, want, s.Powers)
	}
}

func TestSynthesizerNextExhausts(t *testing.T) {
	s, err := eeg.NewSynthesizer(eeg.DefaultSchedule(), eeg.SynthConfig{SamplingRate: 4, NoiseSigma: 0, Seed: 1})
	require.NoError(t, err)

	for i := 0; i < s.Len(); i++ {
		_, ok := s.Next()
		require.True(t, ok)
	}
	_, ok := s.Next()
	require.False(t, ok)
}
