package health_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/health"
)

// powers builds a Powers with sane defaults, overridden per test.
func powers(theta, alpha, beta, gamma float64) eeg.Powers {
	return eeg.Powers{Theta: theta, Alpha: alpha, Beta: beta, Gamma: gamma}
}

func TestVisualBoundaries(t *testing.T) {
	cases := []struct {
		alpha float64
		want  health.Level
	}{
		{0.35, health.LevelNormal},
		{0.48, health.LevelNormal},
		{0.34999, health.LevelBorderline},
		{0.25, health.LevelBorderline},
		{0.24999, health.LevelImpaired},
		{0.0, health.LevelImpaired},
	}

	for _, c := range cases {
		labels, err := health.Classify(powers(0.2, c.alpha, 0.3, 0.1))
		require.NoError(t, err)
		require.Equal(t, c.want, labels.Visual, "alpha=%g", c.alpha)
	}
}

func TestMotorBoundaries(t *testing.T) {
	cases := []struct {
		beta float64
		want health.Level
	}{
		{0.30, health.LevelNormal},
		{0.50, health.LevelNormal},
		{0.29999, health.LevelBorderline},
		{0.20, health.LevelBorderline},
		{0.19999, health.LevelImpaired},
		{0.0, health.LevelImpaired},
	}

	for _, c := range cases {
		labels, err := health.Classify(powers(0.2, 0.4, c.beta, 0.1))
		require.NoError(t, err)
		require.Equal(t, c.want, labels.Motor, "beta=%g", c.beta)
	}
}

func TestAttentionBoundaries(t *testing.T) {
	cases := []struct {
		theta, beta float64
		want        health.Level
	}{
		{0.30, 0.20, health.LevelNormal},     // ratio 1.5
		{0.10, 0.40, health.LevelNormal},     // ratio 0.25
		{0.40, 0.20, health.LevelBorderline}, // ratio 2.0
		{0.35, 0.20, health.LevelBorderline}, // ratio 1.75
		{0.41, 0.20, health.LevelImpaired},   // ratio 2.05
		{0.50, 0.05, health.LevelImpaired},   // ratio 10
	}

	for _, c := range cases {
		labels, err := health.Classify(powers(c.theta, 0.3, c.beta, 0.1))
		require.NoError(t, err)
		require.Equal(t, c.want, labels.Attention, "theta=%g beta=%g", c.theta, c.beta)
	}
}

func TestAttentionRatioSentinel(t *testing.T) {
	// Beta at or below the floor clamps the ratio to 10.0 instead of
	// dividing; the label lands in IMPAIRED even for tiny theta.
	require.Equal(t, 10.0, health.ThetaBetaRatio(0.5, 0.0))
	require.Equal(t, 10.0, health.ThetaBetaRatio(0.5, 0.01))
	require.Equal(t, 10.0, health.ThetaBetaRatio(0.001, 0.005))

	labels, err := health.Classify(powers(0.5, 0.4, 0.0, 0.1))
	require.NoError(t, err)
	require.Equal(t, health.LevelImpaired, labels.Attention)
}

func TestClassifyRejectsInvalidPowers(t *testing.T) {
	cases := map[string]eeg.Powers{
		"nan theta":      powers(math.NaN(), 0.4, 0.3, 0.1),
		"nan gamma":      powers(0.2, 0.4, 0.3, math.NaN()),
		"negative alpha": powers(0.2, -0.1, 0.3, 0.1),
		"negative beta":  powers(0.2, 0.4, -0.3, 0.1),
	}

	for name, p := range cases {
		_, err := health.Classify(p)
		require.Error(t, err, name)
	}
}

func TestVisualMonotoneInAlpha(t *testing.T) {
	// Increasing alpha with the other powers fixed never worsens the
	// visual label.
	prev := health.LevelImpaired
	for alpha := 0.0; alpha <= 1.0; alpha += 0.001 {
		labels, err := health.Classify(powers(0.2, alpha, 0.3, 0.1))
		require.NoError(t, err)
		require.LessOrEqual(t, int(labels.Visual), int(prev), "alpha=%g", alpha)
		prev = labels.Visual
	}
}

func TestMotorMonotoneInBeta(t *testing.T) {
	prev := health.LevelImpaired
	for beta := 0.0; beta <= 1.0; beta += 0.001 {
		labels, err := health.Classify(powers(0.2, 0.4, beta, 0.1))
		require.NoError(t, err)
		require.LessOrEqual(t, int(labels.Motor), int(prev), "beta=%g", beta)
		prev = labels.Motor
	}
}

func TestAttentionMonotoneInRatio(t *testing.T) {
	// With beta fixed above the floor, growing theta grows the ratio
	// and the label can only worsen.
	prev := health.LevelNormal
	for theta := 0.0; theta <= 1.0; theta += 0.001 {
		labels, err := health.Classify(powers(theta, 0.4, 0.25, 0.1))
		require.NoError(t, err)
		require.GreaterOrEqual(t, int(labels.Attention), int(prev), "theta=%g", theta)
		prev = labels.Attention
	}
}

func TestBaselineScenario(t *testing.T) {
	// Schedule window theta=15 alpha=50 beta=30 gamma=10.
	p, err := eeg.BandAmplitudes{Theta: 15, Alpha: 50, Beta: 30, Gamma: 10}.Normalize()
	require.NoError(t, err)

	labels, err := health.Classify(p)
	require.NoError(t, err)

	require.Equal(t, health.LevelNormal, labels.Visual)       // alpha 0.476 >= 0.35
	require.Equal(t, health.LevelBorderline, labels.Motor)    // beta 0.286 in [0.20, 0.30)
	require.Equal(t, health.LevelNormal, labels.Attention)    // ratio 0.5
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, l := range []health.Level{health.LevelNormal, health.LevelBorderline, health.LevelImpaired} {
		parsed, err := health.ParseLevel(l.String())
		require.NoError(t, err)
		require.Equal(t, l, parsed)
	}

	_, err := health.ParseLevel("SEVERE")
	require.Error(t, err)
}
