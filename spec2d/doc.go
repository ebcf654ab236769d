// Package spec2d vectorizes the synphot one-dimensional API over stacks of
// spectra. A SpectrumCollection wraps one synphot.ArraySpectrum per flux
// table row; an ObservationCollection wraps one synphot.Observation per
// member, all observed through a single shared bandpass.
//
// Every collection exposes the member API twice. Typed forwarders vectorize
// each capability with compile-time safety:
//
//	c, _ := spec2d.NewSpectrumCollection(wave, fluxTable, nil)
//	flux := c.Flux()        // [][]float64, one row per member
//	vals, _ := c.Sample(w)  // []float64, one value per member
//
// A dynamic path resolves capabilities by name through an explicit dispatch
// table, for callers that select attributes at runtime:
//
//	v, _ := c.Get("flux")      // eager vector-read
//	f, _ := c.Get("sample")    // spec2d.BoundCall
//	vals, _ := f.(spec2d.BoundCall)(1.5)
//
// Resolution order: the collection's own namespace first (the member list,
// then construction-time metadata, which therefore shadows same-named member
// attributes), then the member capability table. Unknown names fail with
// ErrUnknownAttribute.
//
// Vectorized operations iterate members strictly in index order on the
// calling goroutine. The first member error aborts the operation and no
// partial result is returned. Collections are immutable after construction;
// construction itself is all-or-nothing.
package spec2d
