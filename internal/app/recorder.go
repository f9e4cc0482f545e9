package app

import (
	"fmt"
	"os"
	"time"

	"github.com/brainviz/neuroterm/internal/dataset"
)

// recorder writes incoming records through to a session CSV while the
// dashboard runs.
type recorder struct {
	f *os.File
	w *dataset.Writer
}

func newRecorder(path string) (*recorder, error) {
	if path == "" {
		path = fmt.Sprintf("neuroterm-%s.csv", time.Now().Format("20060102-150405"))
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	w, err := dataset.NewWriter(f, dataset.VariantFull)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &recorder{f: f, w: w}, nil
}

func (r *recorder) write(recs []dataset.Record) {
	for _, rec := range recs {
		_ = r.w.Write(rec)
	}
}

func (r *recorder) close() {
	_ = r.w.Flush()
	_ = r.f.Close()
}

func (r *recorder) path() string {
	return r.f.Name()
}
