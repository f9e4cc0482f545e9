package dataset_test

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brainviz/neuroterm/internal/dataset"
	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/health"
)

func sessionRecords(t *testing.T) []dataset.Record {
	t.Helper()
	synth, err := eeg.NewSynthesizer(eeg.DefaultSchedule(), eeg.SynthConfig{
		SamplingRate: 256,
		NoiseSigma:   5.0,
		Seed:         1,
		Blinks:       true,
	})
	require.NoError(t, err)

	samples := synth.Generate()
	records := make([]dataset.Record, len(samples))
	for i, s := range samples {
		labels, err := health.Classify(s.Powers)
		require.NoError(t, err)
		records[i] = dataset.Record{Sample: s, Labels: labels}
	}
	return records
}

// round2 mirrors the writer's 2-decimal formatting.
func round2(v float64) float64 {
	out, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return out
}

func round3(v float64) float64 {
	out, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	return out
}

func TestFullSessionRoundTrip(t *testing.T) {
	records := sessionRecords(t)
	require.Len(t, records, 2560)

	var buf bytes.Buffer
	w, err := dataset.NewWriter(&buf, dataset.VariantFull)
	require.NoError(t, err)
	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Flush())

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	require.Equal(t,
		"time,amplitude,theta_power,alpha_power,beta_power,gamma_power,command,visual_impairment,motor_impairment,attention_deficit",
		header)

	loaded, err := dataset.Load(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, len(records))

	for i, got := range loaded {
		want := records[i]
		require.Equal(t, round3(want.Sample.Time), got.Sample.Time, "row %d", i)
		require.Equal(t, round2(want.Sample.Amplitude), got.Sample.Amplitude, "row %d", i)
		require.Equal(t, round2(want.Sample.Powers.Theta), got.Sample.Powers.Theta, "row %d", i)
		require.Equal(t, round2(want.Sample.Powers.Alpha), got.Sample.Powers.Alpha, "row %d", i)
		require.Equal(t, round2(want.Sample.Powers.Beta), got.Sample.Powers.Beta, "row %d", i)
		require.Equal(t, round2(want.Sample.Powers.Gamma), got.Sample.Powers.Gamma, "row %d", i)
		require.Equal(t, want.Sample.Command, got.Sample.Command, "row %d", i)
		require.Equal(t, want.Labels, got.Labels, "row %d", i)
	}
}

func TestVariantColumns(t *testing.T) {
	rec := dataset.Record{
		Sample: eeg.Sample{
			Time:      1.5,
			Amplitude: -12.5,
			Powers:    eeg.Powers{Theta: 0.14, Alpha: 0.48, Beta: 0.29, Gamma: 0.1},
			Command:   eeg.CommandFocus,
		},
		Labels: health.Labels{Visual: health.LevelNormal, Motor: health.LevelBorderline},
	}

	var buf bytes.Buffer
	w, err := dataset.NewWriter(&buf, dataset.VariantVisual)
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "time,amplitude,command,alpha_power,visual_impairment", lines[0])
	require.Equal(t, "1.500,-12.50,FOCUS,0.48,NORMAL", lines[1])
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	in := `time,amplitude,command
0.000,1.00,NONE
not-a-number,2.00,NONE
0.004,oops,FOCUS
0.008,3.00,JUMP
0.012,4.00,RELAX
`
	records, err := dataset.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 1.0, records[0].Sample.Amplitude)
	require.Equal(t, eeg.CommandRelax, records[1].Sample.Command)
}

func TestLoadDefaultsMissingOptionalColumns(t *testing.T) {
	in := `time,amplitude
0.000,5.00
`
	records, err := dataset.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	require.Equal(t, eeg.CommandNone, rec.Sample.Command)
	require.Equal(t, eeg.Powers{Theta: 0.25, Alpha: 0.25, Beta: 0.25, Gamma: 0.25}, rec.Sample.Powers)
	require.Equal(t, health.Labels{}, rec.Labels) // all NORMAL
}

func TestLoadSpecializedDataset(t *testing.T) {
	in := `time,amplitude,command,beta_power,motor_impairment
0.000,1.00,NONE,0.45,NORMAL
0.004,2.00,NONE,0.15,IMPAIRED
`
	records, err := dataset.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 0.45, records[0].Sample.Powers.Beta)
	require.Equal(t, 0.25, records[0].Sample.Powers.Alpha) // defaulted
	require.Equal(t, health.LevelImpaired, records[1].Labels.Motor)
	require.Equal(t, health.LevelNormal, records[1].Labels.Visual) // defaulted
}

func TestLoadFailsOnMissingRequiredColumn(t *testing.T) {
	_, err := dataset.Load(strings.NewReader("amplitude,command\n1.0,NONE\n"))
	require.ErrorIs(t, err, dataset.ErrMissingColumn)

	_, err = dataset.Load(strings.NewReader("time,command\n0.0,NONE\n"))
	require.ErrorIs(t, err, dataset.ErrMissingColumn)
}

func TestLoadFailsOnEmptyInput(t *testing.T) {
	_, err := dataset.Load(strings.NewReader(""))
	require.Error(t, err)
}

// brokenReader delivers its first n bytes, then fails every read.
type brokenReader struct {
	r io.Reader
	n int
}

func (b *brokenReader) Read(p []byte) (int, error) {
	if b.n <= 0 {
		return 0, errors.New("device gone")
	}
	if len(p) > b.n {
		p = p[:b.n]
	}
	n, err := b.r.Read(p)
	b.n -= n
	return n, err
}

func TestLoadFailsOnReaderError(t *testing.T) {
	in := `time,amplitude
0.000,1.00
0.004,2.00
0.008,3.00
`
	// Header plus one row survive, then the reader dies mid-file.
	records, err := dataset.Load(&brokenReader{r: strings.NewReader(in), n: 27})
	require.Error(t, err)
	require.Nil(t, records)
}
