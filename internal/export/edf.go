// Package export converts recorded sessions to EDF (European Data
// Format), the standard container for EEG recordings, so sessions can
// be opened in ordinary polysomnography tooling.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/OpenPSG/edf"

	"github.com/brainviz/neuroterm/internal/dataset"
)

const (
	physicalMin = -500.0 // uV
	physicalMax = 500.0
	digitalMin  = -2048
	digitalMax  = 2047
)

// WriteEDF writes the session's amplitude trace as a single-signal EDF
// file with one data record per second. A trailing partial record is
// zero-padded to keep record sizes uniform.
func WriteEDF(w io.WriteSeeker, records []dataset.Record, samplingRate int, start time.Time) error {
	if len(records) == 0 {
		return fmt.Errorf("edf export: empty session")
	}
	if samplingRate <= 0 {
		return fmt.Errorf("edf export: sampling rate must be positive, got %d", samplingRate)
	}

	hdr := edf.Header{
		Version:            edf.Version0,
		PatientID:          "X X X X",
		RecordingID:        "Startdate X neuroterm synthetic session",
		StartTime:          start,
		DataRecordDuration: time.Second,
		SignalCount:        1,
		Signals: []edf.SignalHeader{
			{
				Label:             "EEG synth",
				TransducerType:    "simulated",
				PhysicalDimension: "uV",
				PhysicalMin:       physicalMin,
				PhysicalMax:       physicalMax,
				DigitalMin:        digitalMin,
				DigitalMax:        digitalMax,
				SamplesPerRecord:  samplingRate,
			},
		},
	}

	ew, err := edf.Create(w, hdr)
	if err != nil {
		return fmt.Errorf("edf export: %w", err)
	}

	for off := 0; off < len(records); off += samplingRate {
		chunk := make([]float64, samplingRate)
		for i := 0; i < samplingRate && off+i < len(records); i++ {
			chunk[i] = clamp(records[off+i].Sample.Amplitude)
		}
		if err := ew.WriteRecord([][]float64{chunk}); err != nil {
			return fmt.Errorf("edf export: %w", err)
		}
	}

	if err := ew.Close(); err != nil {
		return fmt.Errorf("edf export: %w", err)
	}
	return nil
}

func clamp(v float64) float64 {
	if v < physicalMin {
		return physicalMin
	}
	if v > physicalMax {
		return physicalMax
	}
	return v
}
