package spec2d

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/hover2pi/pysynphot2d/synphot"
)

// SpectrumCollection holds N one-dimensional spectra built from the rows of
// a flux table, all sharing one wavelength grid, and vectorizes the
// synphot.ArraySpectrum API over them. Collections are immutable after
// construction.
type SpectrumCollection struct {
	proxy[*synphot.ArraySpectrum]
}

// NewSpectrumCollection builds one member per flux table row on the shared
// wavelength grid. Member i is named by its row index ("0", "1", ...).
// Construction is all-or-nothing: if any member fails to build, no
// collection is returned. Metadata is copied and attached as-is; slice
// lengths are not validated against the row count.
func NewSpectrumCollection(wave []float64, flux [][]float64, meta Metadata, opts ...synphot.Option) (*SpectrumCollection, error) {
	if len(flux) == 0 {
		return nil, ErrEmptyFluxTable
	}

	members := make([]*synphot.ArraySpectrum, len(flux))
	for i, row := range flux {
		s, err := synphot.NewArraySpectrum(wave, row, strconv.Itoa(i), opts...)
		if err != nil {
			return nil, fmt.Errorf("spec2d: member %d: %w", i, err)
		}
		members[i] = s
	}

	return &SpectrumCollection{proxy: proxy[*synphot.ArraySpectrum]{
		members: members,
		meta:    maps.Clone(meta),
		table:   spectrumTable,
	}}, nil
}

// Len returns the number of members.
func (c *SpectrumCollection) Len() int { return len(c.members) }

// Members returns the wrapped spectra in index order. Callers must not
// modify the result.
func (c *SpectrumCollection) Members() []*synphot.ArraySpectrum { return c.members }

// Member returns the i-th spectrum.
func (c *SpectrumCollection) Member(i int) (*synphot.ArraySpectrum, error) {
	if i < 0 || i >= len(c.members) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(c.members))
	}
	return c.members[i], nil
}

// Meta returns the metadata value stored under name.
func (c *SpectrumCollection) Meta(name string) (any, bool) {
	v, ok := c.meta[name]
	return v, ok
}

// MetaAt returns the metadata entry stored under name indexed at member i.
func (c *SpectrumCollection) MetaAt(name string, i int) (any, error) {
	return c.meta.At(name, i)
}

// Get resolves an attribute by name: the collection's own namespace first
// ("members", then metadata), then the member capability table, where
// properties vector-read eagerly and methods yield a [BoundCall]. Unknown
// names fail with [ErrUnknownAttribute].
func (c *SpectrumCollection) Get(name string) (any, error) { return c.get(name) }

// Wave reads every member's wavelength grid, in index order.
func (c *SpectrumCollection) Wave() [][]float64 {
	return vectorRead(c.members, (*synphot.ArraySpectrum).Wave)
}

// Flux reads every member's flux vector, in index order.
func (c *SpectrumCollection) Flux() [][]float64 {
	return vectorRead(c.members, (*synphot.ArraySpectrum).Flux)
}

// WaveUnits reads every member's wavelength unit label, in index order.
func (c *SpectrumCollection) WaveUnits() []string {
	return vectorRead(c.members, (*synphot.ArraySpectrum).WaveUnits)
}

// FluxUnits reads every member's flux unit label, in index order.
func (c *SpectrumCollection) FluxUnits() []string {
	return vectorRead(c.members, (*synphot.ArraySpectrum).FluxUnits)
}

// Names reads every member's name, in index order.
func (c *SpectrumCollection) Names() []string {
	return vectorRead(c.members, (*synphot.ArraySpectrum).Name)
}

// Sample evaluates every member at wavelength w.
func (c *SpectrumCollection) Sample(w float64) ([]float64, error) {
	return vectorCall(c.members, "sample", func(s *synphot.ArraySpectrum) (float64, error) {
		return s.Sample(w)
	})
}

// Integrate returns every member's trapezoidal flux integral.
func (c *SpectrumCollection) Integrate() []float64 {
	return vectorRead(c.members, (*synphot.ArraySpectrum).Integrate)
}

// Scale returns a new collection with every member's flux scaled by factor.
// Metadata carries over.
func (c *SpectrumCollection) Scale(factor float64) *SpectrumCollection {
	members := make([]*synphot.ArraySpectrum, len(c.members))
	for i, m := range c.members {
		members[i] = m.Scale(factor)
	}
	return c.with(members)
}

// Normalize returns a new collection with every member rescaled to unit
// integral. Metadata carries over.
func (c *SpectrumCollection) Normalize() (*SpectrumCollection, error) {
	members, err := vectorCall(c.members, "normalize", (*synphot.ArraySpectrum).Normalize)
	if err != nil {
		return nil, err
	}
	return c.with(members), nil
}

// Resample returns a new collection with every member evaluated on the
// given wavelength grid. Metadata carries over.
func (c *SpectrumCollection) Resample(wave []float64) (*SpectrumCollection, error) {
	members, err := vectorCall(c.members, "resample", func(s *synphot.ArraySpectrum) (*synphot.ArraySpectrum, error) {
		return s.Resample(wave)
	})
	if err != nil {
		return nil, err
	}
	return c.with(members), nil
}

// SmoothResolution returns a new collection with every member smoothed to
// resolving power r. Metadata carries over.
func (c *SpectrumCollection) SmoothResolution(r float64) (*SpectrumCollection, error) {
	members, err := vectorCall(c.members, "smoothresolution", func(s *synphot.ArraySpectrum) (*synphot.ArraySpectrum, error) {
		return s.SmoothResolution(r)
	})
	if err != nil {
		return nil, err
	}
	return c.with(members), nil
}

func (c *SpectrumCollection) with(members []*synphot.ArraySpectrum) *SpectrumCollection {
	return &SpectrumCollection{proxy: proxy[*synphot.ArraySpectrum]{
		members: members,
		meta:    c.meta,
		table:   spectrumTable,
	}}
}

// spectrumTable is the dynamic dispatch table for spectrum members.
// Property entries vector-read; method entries vector-call.
var spectrumTable = map[string]capability[*synphot.ArraySpectrum]{
	"wave":      {kind: AttrRead, read: func(s *synphot.ArraySpectrum) any { return s.Wave() }},
	"flux":      {kind: AttrRead, read: func(s *synphot.ArraySpectrum) any { return s.Flux() }},
	"waveunits": {kind: AttrRead, read: func(s *synphot.ArraySpectrum) any { return s.WaveUnits() }},
	"fluxunits": {kind: AttrRead, read: func(s *synphot.ArraySpectrum) any { return s.FluxUnits() }},
	"name":      {kind: AttrRead, read: func(s *synphot.ArraySpectrum) any { return s.Name() }},
	"sample": {kind: AttrCall, call: func(s *synphot.ArraySpectrum, args ...any) (any, error) {
		w, err := oneFloatArg("sample", args)
		if err != nil {
			return nil, err
		}
		return s.Sample(w)
	}},
	"integrate": {kind: AttrCall, call: func(s *synphot.ArraySpectrum, args ...any) (any, error) {
		if err := noArgs("integrate", args); err != nil {
			return nil, err
		}
		return s.Integrate(), nil
	}},
	"scale": {kind: AttrCall, call: func(s *synphot.ArraySpectrum, args ...any) (any, error) {
		factor, err := oneFloatArg("scale", args)
		if err != nil {
			return nil, err
		}
		return s.Scale(factor), nil
	}},
	"normalize": {kind: AttrCall, call: func(s *synphot.ArraySpectrum, args ...any) (any, error) {
		if err := noArgs("normalize", args); err != nil {
			return nil, err
		}
		return s.Normalize()
	}},
	"resample": {kind: AttrCall, call: func(s *synphot.ArraySpectrum, args ...any) (any, error) {
		grid, err := oneGridArg("resample", args)
		if err != nil {
			return nil, err
		}
		return s.Resample(grid)
	}},
	"smoothresolution": {kind: AttrCall, call: func(s *synphot.ArraySpectrum, args ...any) (any, error) {
		r, err := oneFloatArg("smoothresolution", args)
		if err != nil {
			return nil, err
		}
		return s.SmoothResolution(r)
	}},
}
