// Package dsp holds the signal-history buffer and the spectrum math for
// the dashboard. The spectrum is display-only: band power fractions
// always come from the scenario envelope, never from this FFT.
package dsp

import (
	"fmt"
	"math"
	"math/bits"
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ApplyHann multiplies the signal by a Hanning window in place.
func ApplyHann(x []float64) {
	n := len(x)
	if n < 2 {
		return
	}
	for i := range x {
		x[i] *= 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
}

// FFT computes the discrete Fourier transform of a real signal using the
// radix-2 Cooley-Tukey algorithm (decimation in time). The input length
// must be a power of two.
func FFT(input []float64) ([]complex128, error) {
	n := len(input)
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("fft: length must be a power of two, got %d", n)
	}

	shift := bits.UintSize - uint(bits.Len(uint(n-1)))
	out := make([]complex128, n)
	for i, v := range input {
		out[bits.Reverse(uint(i))>>shift] = complex(v, 0)
	}

	for size := 2; size <= n; size *= 2 {
		half := size / 2
		step := -2 * math.Pi / float64(size)
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				angle := step * float64(k)
				w := complex(math.Cos(angle), math.Sin(angle))
				a := out[start+k]
				b := out[start+k+half] * w
				out[start+k] = a + b
				out[start+k+half] = a - b
			}
		}
	}
	return out, nil
}

// Spectrum returns the single-sided magnitude spectrum of a windowed
// signal along with the frequency of each bin. Magnitudes are scaled by
// 2/N so a unit sine shows up near unit magnitude.
func Spectrum(signal []float64, samplingRate float64) (freqs, mags []float64, err error) {
	n := len(signal)
	windowed := make([]float64, n)
	copy(windowed, signal)
	ApplyHann(windowed)

	spec, err := FFT(windowed)
	if err != nil {
		return nil, nil, err
	}

	half := n / 2
	freqs = make([]float64, half)
	mags = make([]float64, half)
	for i := 0; i < half; i++ {
		freqs[i] = float64(i) * samplingRate / float64(n)
		mags[i] = 2 * cmplxAbs(spec[i]) / float64(n)
	}
	return freqs, mags, nil
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
