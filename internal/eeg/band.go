package eeg

import (
	"fmt"
	"math"

	"github.com/brainviz/neuroterm/internal/config"
)

// Band identifies one of the four synthesized EEG frequency bands.
type Band int

const (
	BandTheta Band = iota
	BandAlpha
	BandBeta
	BandGamma
)

// Bands lists all bands in canonical order.
var Bands = []Band{BandTheta, BandAlpha, BandBeta, BandGamma}

func (b Band) String() string {
	switch b {
	case BandTheta:
		return "theta"
	case BandAlpha:
		return "alpha"
	case BandBeta:
		return "beta"
	case BandGamma:
		return "gamma"
	default:
		return "unknown"
	}
}

// Freq returns the band's center frequency in Hz.
func (b Band) Freq() float64 {
	switch b {
	case BandTheta:
		return config.ThetaFreq
	case BandAlpha:
		return config.AlphaFreq
	case BandBeta:
		return config.BetaFreq
	default:
		return config.GammaFreq
	}
}

// Drift returns the band's per-sample phase drift in radians.
func (b Band) Drift() float64 {
	switch b {
	case BandTheta:
		return config.ThetaDrift
	case BandAlpha:
		return config.AlphaDrift
	case BandBeta:
		return config.BetaDrift
	default:
		return config.GammaDrift
	}
}

// BandAmplitudes holds the configured envelope amplitude for each band
// during one scenario window.
type BandAmplitudes struct {
	Theta float64 `yaml:"theta"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
}

// Get returns the amplitude for a band.
func (a BandAmplitudes) Get(b Band) float64 {
	switch b {
	case BandTheta:
		return a.Theta
	case BandAlpha:
		return a.Alpha
	case BandBeta:
		return a.Beta
	default:
		return a.Gamma
	}
}

// Total returns the sum of the four amplitudes.
func (a BandAmplitudes) Total() float64 {
	return a.Theta + a.Alpha + a.Beta + a.Gamma
}

// Validate checks that every amplitude is finite and non-negative and
// that at least one band is active.
func (a BandAmplitudes) Validate() error {
	for _, b := range Bands {
		v := a.Get(b)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s amplitude is not finite", b)
		}
		if v < 0 {
			return fmt.Errorf("%s amplitude is negative: %g", b, v)
		}
	}
	if a.Total() <= 0 {
		return fmt.Errorf("band amplitudes sum to zero")
	}
	return nil
}

// Powers holds normalized per-band power fractions. For valid inputs the
// four fractions sum to 1 within config.PowerSumEpsilon.
type Powers struct {
	Theta float64
	Alpha float64
	Beta  float64
	Gamma float64
}

// Get returns the power fraction for a band.
func (p Powers) Get(b Band) float64 {
	switch b {
	case BandTheta:
		return p.Theta
	case BandAlpha:
		return p.Alpha
	case BandBeta:
		return p.Beta
	default:
		return p.Gamma
	}
}

// Normalize converts configured amplitudes into power fractions by
// dividing each band by the total. The fractions come straight from the
// scenario envelope, never from spectral analysis of the noisy signal.
func (a BandAmplitudes) Normalize() (Powers, error) {
	if err := a.Validate(); err != nil {
		return Powers{}, err
	}
	total := a.Total()
	return Powers{
		Theta: a.Theta / total,
		Alpha: a.Alpha / total,
		Beta:  a.Beta / total,
		Gamma: a.Gamma / total,
	}, nil
}
