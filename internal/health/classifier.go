// Package health derives the three mocked impairment labels from a
// sample's normalized band powers. Classification is stateless: each
// call sees exactly one set of powers and carries no memory of past
// samples.
package health

import (
	"fmt"
	"math"

	"github.com/brainviz/neuroterm/internal/config"
	"github.com/brainviz/neuroterm/internal/eeg"
)

// Level is an ordinal health category.
type Level int

const (
	LevelNormal Level = iota
	LevelBorderline
	LevelImpaired
)

func (l Level) String() string {
	switch l {
	case LevelBorderline:
		return "BORDERLINE"
	case LevelImpaired:
		return "IMPAIRED"
	default:
		return "NORMAL"
	}
}

// ParseLevel converts a serialized label back to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "NORMAL":
		return LevelNormal, nil
	case "BORDERLINE":
		return LevelBorderline, nil
	case "IMPAIRED":
		return LevelImpaired, nil
	default:
		return LevelNormal, fmt.Errorf("unknown level %q", s)
	}
}

// Labels holds the three independent predictions for one sample.
type Labels struct {
	Visual    Level // from alpha power
	Motor     Level // from beta power
	Attention Level // from the theta/beta ratio
}

// Classify maps one sample's band powers to the three labels using the
// fixed thresholds. NaN or negative powers are rejected rather than
// silently classified.
func Classify(p eeg.Powers) (Labels, error) {
	for _, b := range eeg.Bands {
		v := p.Get(b)
		if math.IsNaN(v) {
			return Labels{}, fmt.Errorf("classify: %s power is NaN", b)
		}
		if v < 0 {
			return Labels{}, fmt.Errorf("classify: %s power is negative: %g", b, v)
		}
	}

	return Labels{
		Visual:    classifyVisual(p.Alpha),
		Motor:     classifyMotor(p.Beta),
		Attention: classifyAttention(p.Theta, p.Beta),
	}, nil
}

func classifyVisual(alpha float64) Level {
	switch {
	case alpha >= config.VisualNormalMin:
		return LevelNormal
	case alpha >= config.VisualBorderlineMin:
		return LevelBorderline
	default:
		return LevelImpaired
	}
}

func classifyMotor(beta float64) Level {
	switch {
	case beta >= config.MotorNormalMin:
		return LevelNormal
	case beta >= config.MotorBorderlineMin:
		return LevelBorderline
	default:
		return LevelImpaired
	}
}

// ThetaBetaRatio returns theta/beta, clamped to the sentinel when beta
// is too small to divide by.
func ThetaBetaRatio(theta, beta float64) float64 {
	if beta <= config.RatioBetaFloor {
		return config.RatioSentinel
	}
	return theta / beta
}

func classifyAttention(theta, beta float64) Level {
	ratio := ThetaBetaRatio(theta, beta)
	switch {
	case ratio <= config.RatioNormalMax:
		return LevelNormal
	case ratio <= config.RatioBorderlineMax:
		return LevelBorderline
	default:
		return LevelImpaired
	}
}
