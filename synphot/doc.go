// Package synphot implements a compact one-dimensional synthetic photometry
// model: array spectra on a strictly increasing wavelength grid, bandpass
// throughput curves, and observations of a spectrum through a bandpass with
// binned results.
//
// The capability set is deliberately small and uniform so that spectra can be
// wrapped and vectorized by the spec2d containers:
//
//	s, _ := synphot.NewArraySpectrum(wave, flux, "vega")
//	b, _ := synphot.NewBoxBandpass(14000, 4000, 64)
//	o, _ := synphot.NewObservation(s, b)
//	rate := o.CountRate()
//
// Wavelengths default to angstrom and flux to photlam; both are labels only,
// no unit conversion is performed.
package synphot
