package spec2d

import (
	"fmt"
	"maps"

	"github.com/hover2pi/pysynphot2d/synphot"
)

// ObservationCollection holds N one-dimensional observations built by
// passing every member of a SpectrumCollection through one shared bandpass,
// and vectorizes the synphot.Observation API over them. Collections are
// immutable after construction.
type ObservationCollection struct {
	proxy[*synphot.Observation]
	band *synphot.Bandpass
}

// NewObservationCollection observes every member of spec through the shared
// bandpass, in index order. Construction is all-or-nothing: a member
// failure, such as a bandpass disjoint from its wavelength domain, returns
// an error carrying the member index and no collection. Metadata is copied
// and attached as-is.
func NewObservationCollection(spec *SpectrumCollection, band *synphot.Bandpass, meta Metadata, opts ...synphot.ObservationOption) (*ObservationCollection, error) {
	members := make([]*synphot.Observation, spec.Len())
	for i, s := range spec.Members() {
		o, err := synphot.NewObservation(s, band, opts...)
		if err != nil {
			return nil, fmt.Errorf("spec2d: member %d: %w", i, err)
		}
		members[i] = o
	}

	return &ObservationCollection{
		proxy: proxy[*synphot.Observation]{
			members: members,
			meta:    maps.Clone(meta),
			table:   observationTable,
		},
		band: band,
	}, nil
}

// Len returns the number of members.
func (c *ObservationCollection) Len() int { return len(c.members) }

// Members returns the wrapped observations in index order. Callers must not
// modify the result.
func (c *ObservationCollection) Members() []*synphot.Observation { return c.members }

// Member returns the i-th observation.
func (c *ObservationCollection) Member(i int) (*synphot.Observation, error) {
	if i < 0 || i >= len(c.members) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(c.members))
	}
	return c.members[i], nil
}

// Band returns the bandpass shared by every member.
func (c *ObservationCollection) Band() *synphot.Bandpass { return c.band }

// Meta returns the metadata value stored under name.
func (c *ObservationCollection) Meta(name string) (any, bool) {
	v, ok := c.meta[name]
	return v, ok
}

// MetaAt returns the metadata entry stored under name indexed at member i.
func (c *ObservationCollection) MetaAt(name string, i int) (any, error) {
	return c.meta.At(name, i)
}

// Get resolves an attribute by name, with the same contract as
// [SpectrumCollection.Get].
func (c *ObservationCollection) Get(name string) (any, error) { return c.get(name) }

// Wave reads every member's native wavelength grid, in index order.
func (c *ObservationCollection) Wave() [][]float64 {
	return vectorRead(c.members, (*synphot.Observation).Wave)
}

// Flux reads every member's native observed flux, in index order.
func (c *ObservationCollection) Flux() [][]float64 {
	return vectorRead(c.members, (*synphot.Observation).Flux)
}

// BinWave reads every member's binned wavelength grid, in index order.
func (c *ObservationCollection) BinWave() [][]float64 {
	return vectorRead(c.members, (*synphot.Observation).BinWave)
}

// BinFlux reads every member's binned flux, in index order.
func (c *ObservationCollection) BinFlux() [][]float64 {
	return vectorRead(c.members, (*synphot.Observation).BinFlux)
}

// WaveUnits reads every member's wavelength unit label, in index order.
func (c *ObservationCollection) WaveUnits() []string {
	return vectorRead(c.members, (*synphot.Observation).WaveUnits)
}

// FluxUnits reads every member's flux unit label, in index order.
func (c *ObservationCollection) FluxUnits() []string {
	return vectorRead(c.members, (*synphot.Observation).FluxUnits)
}

// Names reads every member's name, in index order.
func (c *ObservationCollection) Names() []string {
	return vectorRead(c.members, (*synphot.Observation).Name)
}

// Sample evaluates every member's native flux at wavelength w.
func (c *ObservationCollection) Sample(w float64) ([]float64, error) {
	return vectorCall(c.members, "sample", func(o *synphot.Observation) (float64, error) {
		return o.Sample(w)
	})
}

// CountRate returns every member's observed flux integral.
func (c *ObservationCollection) CountRate() []float64 {
	return vectorRead(c.members, (*synphot.Observation).CountRate)
}

// EffStim returns every member's effective stimulus.
func (c *ObservationCollection) EffStim() ([]float64, error) {
	return vectorCall(c.members, "effstim", (*synphot.Observation).EffStim)
}

// EffectiveWavelength returns every member's flux-weighted mean wavelength.
func (c *ObservationCollection) EffectiveWavelength() ([]float64, error) {
	return vectorCall(c.members, "effectivewavelength", (*synphot.Observation).EffectiveWavelength)
}

// observationTable is the dynamic dispatch table for observation members.
// It covers the spectrum capability set plus the binned and bandpass-derived
// attributes.
var observationTable = map[string]capability[*synphot.Observation]{
	"wave":      {kind: AttrRead, read: func(o *synphot.Observation) any { return o.Wave() }},
	"flux":      {kind: AttrRead, read: func(o *synphot.Observation) any { return o.Flux() }},
	"waveunits": {kind: AttrRead, read: func(o *synphot.Observation) any { return o.WaveUnits() }},
	"fluxunits": {kind: AttrRead, read: func(o *synphot.Observation) any { return o.FluxUnits() }},
	"name":      {kind: AttrRead, read: func(o *synphot.Observation) any { return o.Name() }},
	"binwave":   {kind: AttrRead, read: func(o *synphot.Observation) any { return o.BinWave() }},
	"binflux":   {kind: AttrRead, read: func(o *synphot.Observation) any { return o.BinFlux() }},
	"sample": {kind: AttrCall, call: func(o *synphot.Observation, args ...any) (any, error) {
		w, err := oneFloatArg("sample", args)
		if err != nil {
			return nil, err
		}
		return o.Sample(w)
	}},
	"integrate": {kind: AttrCall, call: func(o *synphot.Observation, args ...any) (any, error) {
		if err := noArgs("integrate", args); err != nil {
			return nil, err
		}
		return o.Integrate(), nil
	}},
	"countrate": {kind: AttrCall, call: func(o *synphot.Observation, args ...any) (any, error) {
		if err := noArgs("countrate", args); err != nil {
			return nil, err
		}
		return o.CountRate(), nil
	}},
	"effstim": {kind: AttrCall, call: func(o *synphot.Observation, args ...any) (any, error) {
		if err := noArgs("effstim", args); err != nil {
			return nil, err
		}
		return o.EffStim()
	}},
	"effectivewavelength": {kind: AttrCall, call: func(o *synphot.Observation, args ...any) (any, error) {
		if err := noArgs("effectivewavelength", args); err != nil {
			return nil, err
		}
		return o.EffectiveWavelength()
	}},
}
