// Package feed holds the background producers that push sample batches
// into the UI program: the live synthesizer, CSV replay, and an adapter
// for an external BCI process's text output. Producers run in their own
// goroutine and deliver through tea.Program.Send; the UI coalesces
// whole batches per frame, so bursty delivery only costs render work.
package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainviz/neuroterm/internal/dataset"
)

// SampleBatchMsg carries freshly produced records to the UI loop.
type SampleBatchMsg struct {
	Records []dataset.Record
}

// DoneMsg signals that a finite feed (replay, exited process) has
// delivered its last batch.
type DoneMsg struct {
	Err error
}

// Feed is the common producer contract.
type Feed interface {
	// Start launches the producer goroutine. Must be called before
	// p.Run().
	Start(p *tea.Program) error
	Stop()
}
