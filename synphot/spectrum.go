package synphot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectrum constructors and methods.
var (
	ErrLengthMismatch = errors.New("synphot: wave and flux must have the same length")
	ErrTooFewPoints   = errors.New("synphot: need at least 2 wavelength points")
	ErrWaveOrder      = errors.New("synphot: wavelengths must be strictly increasing")
	ErrOutOfDomain    = errors.New("synphot: wavelength outside spectrum domain")
	ErrGridMismatch   = errors.New("synphot: spectra are not on the same wavelength grid")
	ErrZeroIntegral   = errors.New("synphot: spectrum integral is not positive")
	ErrResolution     = errors.New("synphot: resolving power must be positive")
)

// Default unit labels, following pysynphot conventions.
const (
	DefaultWaveUnits = "angstrom"
	DefaultFluxUnits = "photlam"
)

// ArraySpectrum is a one-dimensional spectrum sampled on a strictly
// increasing wavelength grid. Instances are immutable; every operation that
// changes flux returns a new spectrum.
type ArraySpectrum struct {
	wave      []float64
	flux      []float64
	waveUnits string
	fluxUnits string
	name      string
}

// Option configures spectrum construction.
type Option func(*config)

type config struct {
	waveUnits string
	fluxUnits string
}

func defaultConfig() config {
	return config{
		waveUnits: DefaultWaveUnits,
		fluxUnits: DefaultFluxUnits,
	}
}

// WithWaveUnits sets the wavelength unit label.
func WithWaveUnits(units string) Option {
	return func(c *config) {
		if units != "" {
			c.waveUnits = units
		}
	}
}

// WithFluxUnits sets the flux unit label.
func WithFluxUnits(units string) Option {
	return func(c *config) {
		if units != "" {
			c.fluxUnits = units
		}
	}
}

// NewArraySpectrum builds a spectrum from a wavelength grid and a flux
// vector of equal length. Both slices are copied. The grid must be strictly
// increasing with at least 2 points.
func NewArraySpectrum(wave, flux []float64, name string, opts ...Option) (*ArraySpectrum, error) {
	if len(wave) != len(flux) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wave), len(flux))
	}
	if len(wave) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(wave))
	}
	for i := 1; i < len(wave); i++ {
		if !(wave[i] > wave[i-1]) {
			return nil, fmt.Errorf("%w: index %d", ErrWaveOrder, i)
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &ArraySpectrum{
		wave:      append([]float64(nil), wave...),
		flux:      append([]float64(nil), flux...),
		waveUnits: cfg.waveUnits,
		fluxUnits: cfg.fluxUnits,
		name:      name,
	}, nil
}

// Wave returns the wavelength grid. Callers must not modify the result.
func (s *ArraySpectrum) Wave() []float64 { return s.wave }

// Flux returns the flux vector. Callers must not modify the result.
func (s *ArraySpectrum) Flux() []float64 { return s.flux }

// WaveUnits returns the wavelength unit label.
func (s *ArraySpectrum) WaveUnits() string { return s.waveUnits }

// FluxUnits returns the flux unit label.
func (s *ArraySpectrum) FluxUnits() string { return s.fluxUnits }

// Name returns the identifying name.
func (s *ArraySpectrum) Name() string { return s.name }

// Len returns the number of grid points.
func (s *ArraySpectrum) Len() int { return len(s.wave) }

// Sample returns the flux at wavelength w by piecewise-linear interpolation.
// Wavelengths outside the grid span fail with [ErrOutOfDomain].
func (s *ArraySpectrum) Sample(w float64) (float64, error) {
	lo, hi := s.wave[0], s.wave[len(s.wave)-1]
	if w < lo || w > hi {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, w, lo, hi)
	}

	j := sort.SearchFloat64s(s.wave, w)
	if j < len(s.wave) && s.wave[j] == w {
		return s.flux[j], nil
	}

	x0, x1 := s.wave[j-1], s.wave[j]
	t := (w - x0) / (x1 - x0)
	return s.flux[j-1] + t*(s.flux[j]-s.flux[j-1]), nil
}

// Resample returns a new spectrum evaluated on the given wavelength grid.
// Every point must lie inside the source domain.
func (s *ArraySpectrum) Resample(wave []float64) (*ArraySpectrum, error) {
	flux := make([]float64, len(wave))
	for i, w := range wave {
		v, err := s.Sample(w)
		if err != nil {
			return nil, err
		}
		flux[i] = v
	}
	return NewArraySpectrum(wave, flux, s.name,
		WithWaveUnits(s.waveUnits), WithFluxUnits(s.fluxUnits))
}

// Scale returns a copy with the flux multiplied by factor.
func (s *ArraySpectrum) Scale(factor float64) *ArraySpectrum {
	flux := make([]float64, len(s.flux))
	vecmath.ScaleBlock(flux, s.flux, factor)
	return s.withFlux(flux)
}

// Add returns the pointwise flux sum of two spectra. Both must share an
// identical wavelength grid.
func (s *ArraySpectrum) Add(other *ArraySpectrum) (*ArraySpectrum, error) {
	if len(s.wave) != len(other.wave) {
		return nil, fmt.Errorf("%w: %d vs %d points", ErrGridMismatch, len(s.wave), len(other.wave))
	}
	for i := range s.wave {
		if s.wave[i] != other.wave[i] {
			return nil, fmt.Errorf("%w: index %d", ErrGridMismatch, i)
		}
	}

	flux := append([]float64(nil), s.flux...)
	vecmath.AddBlockInPlace(flux, other.flux)
	return s.withFlux(flux), nil
}

// Integrate returns the trapezoidal integral of flux over wavelength.
func (s *ArraySpectrum) Integrate() float64 {
	total := 0.0
	for i := 1; i < len(s.wave); i++ {
		total += 0.5 * (s.flux[i] + s.flux[i-1]) * (s.wave[i] - s.wave[i-1])
	}
	return total
}

// Normalize returns a copy rescaled to unit integral. Spectra with a zero or
// negative integral fail with [ErrZeroIntegral].
func (s *ArraySpectrum) Normalize() (*ArraySpectrum, error) {
	total := s.Integrate()
	if total <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrZeroIntegral, s.name)
	}
	return s.Scale(1 / total), nil
}

// withFlux returns a copy of s carrying the given flux vector (not copied).
func (s *ArraySpectrum) withFlux(flux []float64) *ArraySpectrum {
	return &ArraySpectrum{
		wave:      s.wave,
		flux:      flux,
		waveUnits: s.waveUnits,
		fluxUnits: s.fluxUnits,
		name:      s.name,
	}
}
