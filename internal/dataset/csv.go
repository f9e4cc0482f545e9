// Package dataset reads and writes session CSV files. The full schema
// is the one bit-exact contract shared with every visualizer; the
// specialized variants keep time, amplitude and command plus a single
// power and label column.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/health"
)

// Column names, in full-schema order.
const (
	ColTime       = "time"
	ColAmplitude  = "amplitude"
	ColThetaPower = "theta_power"
	ColAlphaPower = "alpha_power"
	ColBetaPower  = "beta_power"
	ColGammaPower = "gamma_power"
	ColCommand    = "command"
	ColVisual     = "visual_impairment"
	ColMotor      = "motor_impairment"
	ColAttention  = "attention_deficit"
)

// Defaults substituted for missing optional columns.
const defaultPower = 0.25

// ErrMissingColumn marks a load that failed because a required column
// (time or amplitude) is absent.
var ErrMissingColumn = errors.New("missing required column")

// Variant selects which columns a writer emits.
type Variant int

const (
	VariantFull Variant = iota
	VariantVisual
	VariantMotor
	VariantAttention
)

func (v Variant) String() string {
	switch v {
	case VariantVisual:
		return "visual"
	case VariantMotor:
		return "motor"
	case VariantAttention:
		return "attention"
	default:
		return "full"
	}
}

// Columns returns the variant's header row.
func (v Variant) Columns() []string {
	switch v {
	case VariantVisual:
		return []string{ColTime, ColAmplitude, ColCommand, ColAlphaPower, ColVisual}
	case VariantMotor:
		return []string{ColTime, ColAmplitude, ColCommand, ColBetaPower, ColMotor}
	case VariantAttention:
		return []string{ColTime, ColAmplitude, ColCommand, ColThetaPower, ColBetaPower, ColAttention}
	default:
		return []string{
			ColTime, ColAmplitude,
			ColThetaPower, ColAlphaPower, ColBetaPower, ColGammaPower,
			ColCommand, ColVisual, ColMotor, ColAttention,
		}
	}
}

// Record pairs a sample with its health labels: one CSV row.
type Record struct {
	Sample eeg.Sample
	Labels health.Labels
}

// Writer streams records to a CSV file in a fixed column layout.
type Writer struct {
	cw      *csv.Writer
	variant Variant
}

// NewWriter writes the header row for the chosen variant.
func NewWriter(w io.Writer, variant Variant) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(variant.Columns()); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return &Writer{cw: cw, variant: variant}, nil
}

// Write appends one record row.
func (w *Writer) Write(rec Record) error {
	s, l := rec.Sample, rec.Labels

	fields := map[string]string{
		ColTime:       strconv.FormatFloat(s.Time, 'f', 3, 64),
		ColAmplitude:  strconv.FormatFloat(s.Amplitude, 'f', 2, 64),
		ColThetaPower: strconv.FormatFloat(s.Powers.Theta, 'f', 2, 64),
		ColAlphaPower: strconv.FormatFloat(s.Powers.Alpha, 'f', 2, 64),
		ColBetaPower:  strconv.FormatFloat(s.Powers.Beta, 'f', 2, 64),
		ColGammaPower: strconv.FormatFloat(s.Powers.Gamma, 'f', 2, 64),
		ColCommand:    s.Command.String(),
		ColVisual:     l.Visual.String(),
		ColMotor:      l.Motor.String(),
		ColAttention:  l.Attention.String(),
	}

	cols := w.variant.Columns()
	row := make([]string, len(cols))
	for i, c := range cols {
		row[i] = fields[c]
	}
	return w.cw.Write(row)
}

// Flush flushes buffered rows and reports any write error.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// Load reads a session file. Rows with unparseable values are skipped;
// missing optional columns fall back to their documented defaults
// (command NONE, powers 0.25, labels NORMAL); a missing time or
// amplitude column fails the whole load before any row is processed.
func Load(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, required := range []string{ColTime, ColAmplitude} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed line: skip and keep going. Anything else is a
			// reader failure and fails the load.
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				continue
			}
			return nil, fmt.Errorf("reading rows: %w", err)
		}

		rec, ok := parseRow(row, idx)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, idx map[string]int) (Record, bool) {
	field := func(name string) (string, bool) {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	var rec Record
	var err error

	t, ok := field(ColTime)
	if !ok {
		return Record{}, false
	}
	if rec.Sample.Time, err = strconv.ParseFloat(t, 64); err != nil {
		return Record{}, false
	}

	a, ok := field(ColAmplitude)
	if !ok {
		return Record{}, false
	}
	if rec.Sample.Amplitude, err = strconv.ParseFloat(a, 64); err != nil {
		return Record{}, false
	}

	powers := [...]struct {
		col string
		dst *float64
	}{
		{ColThetaPower, &rec.Sample.Powers.Theta},
		{ColAlphaPower, &rec.Sample.Powers.Alpha},
		{ColBetaPower, &rec.Sample.Powers.Beta},
		{ColGammaPower, &rec.Sample.Powers.Gamma},
	}
	for _, p := range powers {
		v, ok := field(p.col)
		if !ok {
			*p.dst = defaultPower
			continue
		}
		if *p.dst, err = strconv.ParseFloat(v, 64); err != nil {
			return Record{}, false
		}
	}

	if v, ok := field(ColCommand); ok {
		if rec.Sample.Command, err = eeg.ParseCommand(v); err != nil {
			return Record{}, false
		}
	}

	labels := [...]struct {
		col string
		dst *health.Level
	}{
		{ColVisual, &rec.Labels.Visual},
		{ColMotor, &rec.Labels.Motor},
		{ColAttention, &rec.Labels.Attention},
	}
	for _, l := range labels {
		v, ok := field(l.col)
		if !ok {
			continue // defaults to NORMAL (zero value)
		}
		if *l.dst, err = health.ParseLevel(v); err != nil {
			return Record{}, false
		}
	}

	return rec, true
}

// LoadFile opens and loads a session file from disk.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
