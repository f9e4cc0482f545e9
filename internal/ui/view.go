package ui

import (
	"github.com/brainviz/neuroterm/internal/eeg"
)

// View selects which prediction the dashboard highlights. One generic
// layout serves all dataset variants: the view only changes which bands
// and labels are primary, not what is shown.
type View int

const (
	ViewAll View = iota
	ViewVisual
	ViewMotor
	ViewAttention
)

func (v View) String() string {
	switch v {
	case ViewVisual:
		return "VISUAL"
	case ViewMotor:
		return "MOTOR"
	case ViewAttention:
		return "ATTENTION"
	default:
		return "ALL"
	}
}

// PrimaryBands returns the bands the view is about.
func (v View) PrimaryBands() []eeg.Band {
	switch v {
	case ViewVisual:
		return []eeg.Band{eeg.BandAlpha}
	case ViewMotor:
		return []eeg.Band{eeg.BandBeta}
	case ViewAttention:
		return []eeg.Band{eeg.BandTheta, eeg.BandBeta}
	default:
		return eeg.Bands
	}
}
