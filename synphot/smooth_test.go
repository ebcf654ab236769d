package synphot

import (
	"errors"
	"math"
	"testing"

	"github.com/hover2pi/pysynphot2d/internal/testutil"
)

func TestSmoothResolutionValidation(t *testing.T) {
	s, _ := NewArraySpectrum([]float64{1, 2, 3}, []float64{1, 1, 1}, "x")
	for _, r := range []float64{0, -100} {
		if _, err := s.SmoothResolution(r); !errors.Is(err, ErrResolution) {
			t.Errorf("SmoothResolution(%v) err = %v, want ErrResolution", r, err)
		}
	}
}

func TestSmoothResolutionFlatInvariance(t *testing.T) {
	// A normalized kernel with replicated edges leaves a flat spectrum flat.
	wave := testutil.Wavelengths(8000, 12000, 256)
	s, _ := NewArraySpectrum(wave, testutil.Flat(3, 256), "flat")

	out, err := s.SmoothResolution(100)
	if err != nil {
		t.Fatalf("SmoothResolution: %v", err)
	}
	testutil.RequireFinite(t, out.Flux())
	testutil.RequireSliceNearlyEqual(t, out.Flux(), s.Flux(), 1e-8)
}

func TestSmoothResolutionNarrowKernelPassthrough(t *testing.T) {
	wave := testutil.Wavelengths(8000, 12000, 64)
	flux := testutil.GaussianLine(wave, 10000, 300, 1)
	s, _ := NewArraySpectrum(wave, flux, "line")

	// Resolving power so high the kernel is far below one sample.
	out, err := s.SmoothResolution(1e9)
	if err != nil {
		t.Fatalf("SmoothResolution: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Flux(), s.Flux(), 0)
}

func TestSmoothResolutionBroadensLine(t *testing.T) {
	wave := testutil.Wavelengths(8000, 12000, 512)
	flux := testutil.GaussianLine(wave, 10000, 50, 1)
	s, _ := NewArraySpectrum(wave, flux, "line")

	out, err := s.SmoothResolution(50)
	if err != nil {
		t.Fatalf("SmoothResolution: %v", err)
	}
	testutil.RequireFinite(t, out.Flux())

	// The peak drops while the integral is conserved (line sits far from
	// the grid edges).
	peakIn, peakOut := 0.0, 0.0
	for i := range flux {
		peakIn = math.Max(peakIn, flux[i])
		peakOut = math.Max(peakOut, out.Flux()[i])
	}
	if peakOut >= peakIn {
		t.Fatalf("peak not reduced: in %v, out %v", peakIn, peakOut)
	}

	in, outTotal := s.Integrate(), out.Integrate()
	if math.Abs(in-outTotal) > 1e-3*in {
		t.Fatalf("integral not conserved: in %v, out %v", in, outTotal)
	}
}

func TestSmoothResolutionLeavesOriginal(t *testing.T) {
	wave := testutil.Wavelengths(8000, 12000, 64)
	flux := testutil.GaussianLine(wave, 10000, 300, 1)
	s, _ := NewArraySpectrum(wave, flux, "line")
	before := append([]float64(nil), s.Flux()...)

	if _, err := s.SmoothResolution(20); err != nil {
		t.Fatalf("SmoothResolution: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, s.Flux(), before, 0)
}
