package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hover2pi/pysynphot2d/spec2d"
)

// Option configures a rendered plot.
type Option func(*config)

type config struct {
	title string
	param string
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithParam appends "name=value" to the curve label, reading the collection
// metadata entry name indexed at the plotted member.
func WithParam(name string) Option {
	return func(c *config) {
		c.param = name
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Spectrum renders member idx's native wavelength/flux curve, labeled with
// the member's name and, if WithParam is given, one metadata value indexed
// at idx.
func Spectrum(c *spec2d.SpectrumCollection, idx int, opts ...Option) (*plot.Plot, error) {
	member, err := c.Member(idx)
	if err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	label := member.Name()
	if cfg.param != "" {
		v, err := c.MetaAt(cfg.param, idx)
		if err != nil {
			return nil, err
		}
		label = fmt.Sprintf("%s %s=%v", label, cfg.param, v)
	}

	p := newAxes(cfg.title, member.WaveUnits(), member.FluxUnits())
	line, err := plotter.NewLine(xys(member.Wave(), member.Flux()))
	if err != nil {
		return nil, err
	}
	p.Add(line)
	p.Legend.Add(label, line)
	return p, nil
}

// Observation renders member idx's native wavelength/flux curve plus its
// binned curve, both labeled with the member's name.
func Observation(c *spec2d.ObservationCollection, idx int, opts ...Option) (*plot.Plot, error) {
	member, err := c.Member(idx)
	if err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	label := member.Name()
	if cfg.param != "" {
		v, err := c.MetaAt(cfg.param, idx)
		if err != nil {
			return nil, err
		}
		label = fmt.Sprintf("%s %s=%v", label, cfg.param, v)
	}

	p := newAxes(cfg.title, member.WaveUnits(), member.FluxUnits())
	native, err := plotter.NewLine(xys(member.Wave(), member.Flux()))
	if err != nil {
		return nil, err
	}
	p.Add(native)
	p.Legend.Add(label, native)

	binned, err := plotter.NewLine(xys(member.BinWave(), member.BinFlux()))
	if err != nil {
		return nil, err
	}
	binned.Color = color.RGBA{R: 196, A: 255}
	binned.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(binned)
	p.Legend.Add(label+" binned", binned)
	return p, nil
}

// Save is a convenience wrapper writing a rendered member straight to disk.
func Save(p *plot.Plot, width, height vg.Length, path string) error {
	return p.Save(width, height, path)
}

func newAxes(title, waveUnits, fluxUnits string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "wavelength (" + waveUnits + ")"
	p.Y.Label.Text = "flux (" + fluxUnits + ")"
	return p
}

// xys pairs wavelength and flux slices into plotter points.
func xys(wave, flux []float64) plotter.XYs {
	pts := make(plotter.XYs, len(wave))
	for i := range pts {
		pts[i].X = wave[i]
		pts[i].Y = flux[i]
	}
	return pts
}
