package export_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpenPSG/edf"
	"github.com/stretchr/testify/require"

	"github.com/brainviz/neuroterm/internal/dataset"
	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/export"
)

func testRecords(t *testing.T, n int) []dataset.Record {
	t.Helper()
	synth, err := eeg.NewSynthesizer(eeg.DefaultSchedule(), eeg.SynthConfig{
		SamplingRate: 256,
		NoiseSigma:   5.0,
		Seed:         1,
		Blinks:       true,
	})
	require.NoError(t, err)

	samples := synth.Generate()
	require.GreaterOrEqual(t, len(samples), n)

	records := make([]dataset.Record, n)
	for i := 0; i < n; i++ {
		records[i] = dataset.Record{Sample: samples[i]}
	}
	return records
}

func writeSession(t *testing.T, name string, records []dataset.Record) *os.File {
	t.Helper()
	f, err := os.OpenFile(filepath.Join(t.TempDir(), name), os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, export.WriteEDF(f, records, 256, start))

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	return f
}

func TestWriteEDFRoundTrip(t *testing.T) {
	records := testRecords(t, 512) // two full data records
	f := writeSession(t, "session.edf", records)

	er, err := edf.Open(f)
	require.NoError(t, err)

	sr, err := er.Signal(0)
	require.NoError(t, err)

	data := make([]float64, 512)
	n, err := sr.Read(data)
	require.NoError(t, err)
	require.Equal(t, 512, n)

	// 12-bit digitization over +/-500 uV: samples survive within one
	// quantization step or so.
	for i := 0; i < 512; i++ {
		require.InDelta(t, records[i].Sample.Amplitude, data[i], 1.0, "sample %d", i)
	}

	_, err = sr.Read(data)
	require.Equal(t, io.EOF, err)
}

func TestWriteEDFPadsPartialRecord(t *testing.T) {
	records := testRecords(t, 300) // one full record plus a partial
	f := writeSession(t, "partial.edf", records)

	er, err := edf.Open(f)
	require.NoError(t, err)

	sr, err := er.Signal(0)
	require.NoError(t, err)

	// The partial record is zero-padded to a full 256 samples.
	data := make([]float64, 512)
	n, err := sr.Read(data)
	require.NoError(t, err)
	require.Equal(t, 512, n)

	for i := 300; i < 512; i++ {
		require.InDelta(t, 0, data[i], 1.0, "sample %d", i)
	}
}

func TestWriteEDFValidation(t *testing.T) {
	f, err := os.OpenFile(filepath.Join(t.TempDir(), "bad.edf"), os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	require.Error(t, export.WriteEDF(f, nil, 256, time.Now()))
	require.Error(t, export.WriteEDF(f, testRecords(t, 10), 0, time.Now()))
}
