package synphot

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// SmoothResolution returns a copy of the spectrum smoothed to resolving
// power r with a Gaussian kernel, computed by FFT convolution.
//
// The kernel FWHM is lambda_c/r at the grid center, converted to samples
// using the mean wavelength step, so the grid is assumed near-uniform.
// Strongly non-uniform grids should be resampled first. Edges are handled by
// replicating the boundary flux values. Kernels much narrower than one
// sample return an unchanged copy.
func (s *ArraySpectrum) SmoothResolution(r float64) (*ArraySpectrum, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrResolution, r)
	}

	n := len(s.wave)
	step := (s.wave[n-1] - s.wave[0]) / float64(n-1)
	center := 0.5 * (s.wave[0] + s.wave[n-1])

	// FWHM = lambda/R, sigma = FWHM / (2*sqrt(2*ln 2)), in grid samples.
	sigma := center / r / (2 * math.Sqrt(2*math.Ln2)) / step
	if sigma < 1e-3 {
		return s.withFlux(append([]float64(nil), s.flux...)), nil
	}

	// Normalized Gaussian kernel, truncated at 4 sigma.
	half := int(math.Ceil(4 * sigma))
	kernel := make([]float64, 2*half+1)
	sum := 0.0
	for i := range kernel {
		x := float64(i-half) / sigma
		kernel[i] = math.Exp(-0.5 * x * x)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	fftSize := nextPowerOf2(n + 2*half + 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("synphot: failed to create FFT plan: %w", err)
	}

	// Replicate edge values into the kernel reach on both sides so the
	// circular convolution does not darken the boundaries.
	specPadded := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		specPadded[i] = complex(s.flux[i], 0)
	}
	for i := n; i < n+half; i++ {
		specPadded[i] = complex(s.flux[n-1], 0)
	}
	for i := fftSize - half; i < fftSize; i++ {
		specPadded[i] = complex(s.flux[0], 0)
	}

	kernPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernPadded[i] = complex(v, 0)
	}

	specFreq := make([]complex128, fftSize)
	if err := plan.Forward(specFreq, specPadded); err != nil {
		return nil, fmt.Errorf("synphot: forward FFT failed: %w", err)
	}
	kernFreq := make([]complex128, fftSize)
	if err := plan.Forward(kernFreq, kernPadded); err != nil {
		return nil, fmt.Errorf("synphot: forward FFT failed: %w", err)
	}

	for i := range specFreq {
		specFreq[i] *= kernFreq[i]
	}

	result := make([]complex128, fftSize)
	if err := plan.Inverse(result, specFreq); err != nil {
		return nil, fmt.Errorf("synphot: inverse FFT failed: %w", err)
	}

	// The kernel center sits at offset half, so output i lives at i+half.
	flux := make([]float64, n)
	for i := range flux {
		flux[i] = real(result[i+half])
	}
	return s.withFlux(flux), nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
