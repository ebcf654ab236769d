package synphot

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by bandpass constructors and observation builders.
var (
	ErrThroughput = errors.New("synphot: throughput must be non-negative")
	ErrBoxParams  = errors.New("synphot: box bandpass needs positive width and at least 2 points")
	ErrDisjoint   = errors.New("synphot: bandpass does not overlap the spectrum")
)

// Bandpass is a dimensionless instrument throughput curve on a strictly
// increasing wavelength grid. A single bandpass is safe to reuse across any
// number of observations.
type Bandpass struct {
	wave       []float64
	throughput []float64
	name       string
}

// NewBandpass builds a bandpass from a wavelength grid and throughput values
// of equal length. Both slices are copied. Throughput must be non-negative.
func NewBandpass(wave, throughput []float64, name string) (*Bandpass, error) {
	if len(wave) != len(throughput) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wave), len(throughput))
	}
	if len(wave) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(wave))
	}
	for i := 1; i < len(wave); i++ {
		if !(wave[i] > wave[i-1]) {
			return nil, fmt.Errorf("%w: index %d", ErrWaveOrder, i)
		}
	}
	for i, v := range throughput {
		if v < 0 {
			return nil, fmt.Errorf("%w: index %d", ErrThroughput, i)
		}
	}

	return &Bandpass{
		wave:       append([]float64(nil), wave...),
		throughput: append([]float64(nil), throughput...),
		name:       name,
	}, nil
}

// NewBoxBandpass returns an n-point unit-throughput box covering
// [center-width/2, center+width/2].
func NewBoxBandpass(center, width float64, n int) (*Bandpass, error) {
	if width <= 0 || n < 2 {
		return nil, fmt.Errorf("%w: width %g, n %d", ErrBoxParams, width, n)
	}

	wave := make([]float64, n)
	throughput := make([]float64, n)
	lo := center - width/2
	step := width / float64(n-1)
	for i := range wave {
		wave[i] = lo + float64(i)*step
		throughput[i] = 1
	}

	name := fmt.Sprintf("box(%g,%g)", center, width)
	return NewBandpass(wave, throughput, name)
}

// Wave returns the wavelength grid. Callers must not modify the result.
func (b *Bandpass) Wave() []float64 { return b.wave }

// Throughput returns the throughput values. Callers must not modify the result.
func (b *Bandpass) Throughput() []float64 { return b.throughput }

// Name returns the identifying name.
func (b *Bandpass) Name() string { return b.name }

// Sample returns the throughput at wavelength w by piecewise-linear
// interpolation. Wavelengths outside the bandpass domain have zero
// throughput.
func (b *Bandpass) Sample(w float64) float64 {
	if w < b.wave[0] || w > b.wave[len(b.wave)-1] {
		return 0
	}

	j := sort.SearchFloat64s(b.wave, w)
	if j < len(b.wave) && b.wave[j] == w {
		return b.throughput[j]
	}

	x0, x1 := b.wave[j-1], b.wave[j]
	t := (w - x0) / (x1 - x0)
	return b.throughput[j-1] + t*(b.throughput[j]-b.throughput[j-1])
}

// Overlaps reports whether the bandpass domain intersects [lo, hi].
func (b *Bandpass) Overlaps(lo, hi float64) bool {
	return b.wave[0] <= hi && b.wave[len(b.wave)-1] >= lo
}
