package testutil

import "math"

// Wavelengths returns n uniformly spaced wavelengths spanning [lo, hi].
func Wavelengths(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Flat returns a constant flux vector.
func Flat(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns a linear flux ramp from lo to hi inclusive.
func Ramp(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// GaussianLine returns an emission line of the given center, width and peak
// amplitude sampled on wave.
func GaussianLine(wave []float64, center, sigma, amplitude float64) []float64 {
	out := make([]float64, len(wave))
	for i, w := range wave {
		x := (w - center) / sigma
		out[i] = amplitude * math.Exp(-0.5*x*x)
	}
	return out
}
