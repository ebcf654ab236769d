package synphot

import (
	"errors"
	"math"
	"testing"

	"github.com/hover2pi/pysynphot2d/internal/testutil"
)

func TestNewArraySpectrumValidation(t *testing.T) {
	tests := []struct {
		name string
		wave []float64
		flux []float64
		want error
	}{
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, ErrLengthMismatch},
		{"too few points", []float64{1}, []float64{1}, ErrTooFewPoints},
		{"decreasing wave", []float64{1, 3, 2}, []float64{1, 1, 1}, ErrWaveOrder},
		{"duplicate wave", []float64{1, 2, 2}, []float64{1, 1, 1}, ErrWaveOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArraySpectrum(tt.wave, tt.flux, "bad")
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewArraySpectrumDefaults(t *testing.T) {
	s, err := NewArraySpectrum([]float64{1, 2, 3}, []float64{1, 0, 1}, "vega")
	if err != nil {
		t.Fatalf("NewArraySpectrum: %v", err)
	}
	if s.WaveUnits() != DefaultWaveUnits {
		t.Errorf("WaveUnits = %q, want %q", s.WaveUnits(), DefaultWaveUnits)
	}
	if s.FluxUnits() != DefaultFluxUnits {
		t.Errorf("FluxUnits = %q, want %q", s.FluxUnits(), DefaultFluxUnits)
	}
	if s.Name() != "vega" {
		t.Errorf("Name = %q, want vega", s.Name())
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestNewArraySpectrumUnits(t *testing.T) {
	s, err := NewArraySpectrum([]float64{1, 2}, []float64{1, 1}, "x",
		WithWaveUnits("micron"), WithFluxUnits("flam"))
	if err != nil {
		t.Fatalf("NewArraySpectrum: %v", err)
	}
	if s.WaveUnits() != "micron" || s.FluxUnits() != "flam" {
		t.Fatalf("units = %q/%q, want micron/flam", s.WaveUnits(), s.FluxUnits())
	}
}

func TestNewArraySpectrumCopiesInputs(t *testing.T) {
	wave := []float64{1, 2, 3}
	flux := []float64{1, 0, 1}
	s, err := NewArraySpectrum(wave, flux, "x")
	if err != nil {
		t.Fatalf("NewArraySpectrum: %v", err)
	}
	flux[1] = 99
	if s.Flux()[1] != 0 {
		t.Fatalf("flux not copied: got %v", s.Flux()[1])
	}
}

func TestSample(t *testing.T) {
	s, err := NewArraySpectrum([]float64{1, 2, 4}, []float64{0, 2, 4}, "x")
	if err != nil {
		t.Fatalf("NewArraySpectrum: %v", err)
	}

	tests := []struct {
		w    float64
		want float64
	}{
		{1, 0},   // left edge, exact grid point
		{2, 2},   // interior grid point
		{4, 4},   // right edge
		{1.5, 1}, // interior, first segment
		{3, 3},   // interior, second segment
	}
	for _, tt := range tests {
		got, err := s.Sample(tt.w)
		if err != nil {
			t.Fatalf("Sample(%v): %v", tt.w, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Sample(%v) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestSampleOutOfDomain(t *testing.T) {
	s, _ := NewArraySpectrum([]float64{1, 2, 3}, []float64{1, 1, 1}, "x")
	for _, w := range []float64{0.5, 3.5} {
		if _, err := s.Sample(w); !errors.Is(err, ErrOutOfDomain) {
			t.Errorf("Sample(%v) err = %v, want ErrOutOfDomain", w, err)
		}
	}
}

func TestResample(t *testing.T) {
	s, _ := NewArraySpectrum([]float64{1, 2, 3}, []float64{0, 2, 4}, "x")
	r, err := s.Resample([]float64{1.5, 2.5})
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, r.Flux(), []float64{1, 3}, 1e-12)
	if r.Name() != "x" {
		t.Errorf("Name = %q, want x", r.Name())
	}

	if _, err := s.Resample([]float64{0, 2}); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("out-of-domain resample err = %v, want ErrOutOfDomain", err)
	}
}

func TestScale(t *testing.T) {
	s, _ := NewArraySpectrum([]float64{1, 2, 3}, []float64{1, 2, 3}, "x")
	scaled := s.Scale(2)
	testutil.RequireSliceNearlyEqual(t, scaled.Flux(), []float64{2, 4, 6}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, s.Flux(), []float64{1, 2, 3}, 0) // original untouched
}

func TestAdd(t *testing.T) {
	a, _ := NewArraySpectrum([]float64{1, 2, 3}, []float64{1, 2, 3}, "a")
	b, _ := NewArraySpectrum([]float64{1, 2, 3}, []float64{10, 20, 30}, "b")
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, sum.Flux(), []float64{11, 22, 33}, 1e-12)

	other, _ := NewArraySpectrum([]float64{1, 2, 4}, []float64{1, 1, 1}, "c")
	if _, err := a.Add(other); !errors.Is(err, ErrGridMismatch) {
		t.Errorf("mismatched grid err = %v, want ErrGridMismatch", err)
	}
}

func TestIntegrate(t *testing.T) {
	// Trapezoid of the triangle (0,0)-(1,2)-(2,0) is 2.
	s, _ := NewArraySpectrum([]float64{0, 1, 2}, []float64{0, 2, 0}, "x")
	if got := s.Integrate(); math.Abs(got-2) > 1e-12 {
		t.Fatalf("Integrate = %v, want 2", got)
	}

	// Flat flux f over span L integrates to f*L.
	wave := testutil.Wavelengths(8000, 12000, 101)
	flat, _ := NewArraySpectrum(wave, testutil.Flat(0.5, 101), "flat")
	if got := flat.Integrate(); math.Abs(got-2000) > 1e-9 {
		t.Fatalf("flat Integrate = %v, want 2000", got)
	}
}

func TestNormalize(t *testing.T) {
	s, _ := NewArraySpectrum([]float64{0, 1, 2}, []float64{0, 2, 0}, "x")
	n, err := s.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := n.Integrate(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("normalized integral = %v, want 1", got)
	}

	zero, _ := NewArraySpectrum([]float64{0, 1, 2}, []float64{0, 0, 0}, "zero")
	if _, err := zero.Normalize(); !errors.Is(err, ErrZeroIntegral) {
		t.Fatalf("zero flux err = %v, want ErrZeroIntegral", err)
	}
}
