package synphot

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ErrBinGrid is returned when the binned wavelength grid has fewer than 2 points.
var ErrBinGrid = errors.New("synphot: binned grid needs at least 2 points")

// Observation is a spectrum observed through a bandpass. The embedded
// spectrum holds the native result (source flux multiplied by the sampled
// throughput on the source grid); BinWave and BinFlux hold the flux averaged
// into bins centered on the binset.
type Observation struct {
	*ArraySpectrum

	binWave    []float64
	binFlux    []float64
	throughput []float64
	band       *Bandpass
}

// ObservationOption configures observation construction.
type ObservationOption func(*obsConfig)

type obsConfig struct {
	binSet []float64
}

// WithBinSet overrides the default binned wavelength grid. The default is
// the set of native grid points with non-zero throughput.
func WithBinSet(wave []float64) ObservationOption {
	binSet := append([]float64(nil), wave...)

	return func(c *obsConfig) {
		c.binSet = binSet
	}
}

// NewObservation observes spec through band. The bandpass domain must
// overlap the spectrum domain; disjoint inputs fail with [ErrDisjoint].
func NewObservation(spec *ArraySpectrum, band *Bandpass, opts ...ObservationOption) (*Observation, error) {
	if !band.Overlaps(spec.wave[0], spec.wave[len(spec.wave)-1]) {
		return nil, fmt.Errorf("%w: band [%g, %g], spectrum [%g, %g]", ErrDisjoint,
			band.wave[0], band.wave[len(band.wave)-1],
			spec.wave[0], spec.wave[len(spec.wave)-1])
	}

	var cfg obsConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	throughput := make([]float64, len(spec.wave))
	for i, w := range spec.wave {
		throughput[i] = band.Sample(w)
	}

	flux := make([]float64, len(spec.flux))
	vecmath.MulBlock(flux, spec.flux, throughput)
	native := spec.withFlux(flux)

	binWave := cfg.binSet
	if binWave == nil {
		for i, t := range throughput {
			if t > 0 {
				binWave = append(binWave, spec.wave[i])
			}
		}
	}
	if len(binWave) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBinGrid, len(binWave))
	}

	return &Observation{
		ArraySpectrum: native,
		binWave:       binWave,
		binFlux:       rebin(native.wave, native.flux, binWave),
		throughput:    throughput,
		band:          band,
	}, nil
}

// BinWave returns the binned wavelength grid. Callers must not modify the result.
func (o *Observation) BinWave() []float64 { return o.binWave }

// BinFlux returns the binned flux. Callers must not modify the result.
func (o *Observation) BinFlux() []float64 { return o.binFlux }

// Band returns the bandpass this observation was made through.
func (o *Observation) Band() *Bandpass { return o.band }

// CountRate returns the integral of the observed flux over wavelength.
func (o *Observation) CountRate() float64 { return o.Integrate() }

// EffStim returns the bandpass-weighted mean of the source flux, the
// effective stimulus of the observation.
func (o *Observation) EffStim() (float64, error) {
	thrTotal := 0.0
	for i := 1; i < len(o.wave); i++ {
		thrTotal += 0.5 * (o.throughput[i] + o.throughput[i-1]) * (o.wave[i] - o.wave[i-1])
	}
	if thrTotal <= 0 {
		return 0, fmt.Errorf("%w: bandpass %q on %q", ErrZeroIntegral, o.band.name, o.name)
	}
	return o.Integrate() / thrTotal, nil
}

// EffectiveWavelength returns the flux-weighted mean wavelength of the
// observation.
func (o *Observation) EffectiveWavelength() (float64, error) {
	total := o.Integrate()
	if total <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrZeroIntegral, o.name)
	}

	weighted := 0.0
	for i := 1; i < len(o.wave); i++ {
		weighted += 0.5 * (o.flux[i]*o.wave[i] + o.flux[i-1]*o.wave[i-1]) * (o.wave[i] - o.wave[i-1])
	}
	return weighted / total, nil
}

// rebin averages the piecewise-linear curve (wave, flux) into bins centered
// on binWave. Bin edges sit midway between neighboring centers; edge bins
// extend symmetrically. Bins are clipped to the native domain.
func rebin(wave, flux, binWave []float64) []float64 {
	out := make([]float64, len(binWave))
	for i, center := range binWave {
		var lo, hi float64
		if i > 0 {
			lo = 0.5 * (binWave[i-1] + center)
		} else {
			lo = center - 0.5*(binWave[1]-center)
		}
		if i < len(binWave)-1 {
			hi = 0.5 * (center + binWave[i+1])
		} else {
			hi = center + 0.5*(center-binWave[i-1])
		}

		lo = max(lo, wave[0])
		hi = min(hi, wave[len(wave)-1])
		if hi <= lo {
			continue
		}
		out[i] = integrateRange(wave, flux, lo, hi) / (hi - lo)
	}
	return out
}

// integrateRange integrates the piecewise-linear curve (wave, flux) over
// [lo, hi]. The range must lie inside the wavelength domain.
func integrateRange(wave, flux []float64, lo, hi float64) float64 {
	total := 0.0
	for i := 1; i < len(wave); i++ {
		a, b := wave[i-1], wave[i]
		if b <= lo {
			continue
		}
		if a >= hi {
			break
		}

		segLo := max(a, lo)
		segHi := min(b, hi)
		t0 := (segLo - a) / (b - a)
		t1 := (segHi - a) / (b - a)
		f0 := flux[i-1] + t0*(flux[i]-flux[i-1])
		f1 := flux[i-1] + t1*(flux[i]-flux[i-1])
		total += 0.5 * (f0 + f1) * (segHi - segLo)
	}
	return total
}
