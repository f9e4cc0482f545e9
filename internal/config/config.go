package config

const (
	// Signal generation
	SamplingRate = 256  // Hz
	Duration     = 10.0 // seconds for a demo session
	NoiseSigma   = 5.0  // Gaussian noise std dev (uV)

	// Band center frequencies (Hz)
	ThetaFreq = 6.0
	AlphaFreq = 10.0
	BetaFreq  = 20.0
	GammaFreq = 40.0

	// Per-band phase drift per sample index. Detunes the four bands
	// so the composite signal is not perfectly periodic.
	ThetaDrift = 0.10
	AlphaDrift = 0.15
	BetaDrift  = 0.20
	GammaDrift = 0.30

	// Blink artifacts
	BlinkStride = 512   // sample-index stride between blink bursts
	BlinkAmpMax = 150.0 // burst amplitude scale (uV)

	// Health thresholds (inclusive lower bounds)
	VisualNormalMin     = 0.35 // alpha power
	VisualBorderlineMin = 0.25
	MotorNormalMin      = 0.30 // beta power
	MotorBorderlineMin  = 0.20
	RatioNormalMax      = 1.5 // theta/beta ratio
	RatioBorderlineMax  = 2.0
	RatioBetaFloor      = 0.01 // below this the ratio clamps to the sentinel
	RatioSentinel       = 10.0

	// Power normalization
	PowerSumEpsilon = 1e-9

	// Display
	TargetFPS      = 30  // UI frames per second
	DisplaySeconds = 3   // seconds of waveform history shown
	SpectrumSize   = 256 // FFT window in samples (power of 2)
	SpectrumMaxHz  = 50  // top of the displayed spectrum

	// App
	AppName    = "NEUROTERM"
	AppVersion = "1.0"
)
