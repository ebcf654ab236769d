// Package render draws members of spec2d collections onto gonum plot
// surfaces. It is pure visualization: each helper reads one member's curves
// and labels, performs no computation of its own, and returns a *plot.Plot
// for the caller to save or compose.
package render
