// twissplot.go turns a Twiss series into figures. The gonum/plot path
// produces report-grade PNG, PDF or SVG output; the asciigraph path
// prints straight into a terminal session.

package twissplot

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/twiss"
)

var (
	// ErrNilSeries is returned when the series pointer is nil.
	ErrNilSeries = errors.New("twissplot: nil series")

	// ErrEmptySeries is returned when the series holds no samples.
	ErrEmptySeries = errors.New("twissplot: empty series")

	// ErrBadPlane is returned when WithPlane asks for a block the beam
	// matrices do not carry, such as the vertical plane of a 2x2 series.
	ErrBadPlane = errors.New("twissplot: series too small for requested plane")
)

var (
	betaColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	alphaColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Plot builds a figure with beta and alpha against the position along
// the line. The returned plot can be customised further before saving.
func Plot(s *twiss.Series, opts ...Option) (*plot.Plot, error) {
	p, err := render(s, newConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("Plot: %w", err)
	}
	return p, nil
}

// Save renders the series and writes it to path. The image format
// follows the file extension, as understood by gonum/plot.
func Save(s *twiss.Series, path string, opts ...Option) error {
	cfg := newConfig(opts...)
	p, err := render(s, cfg)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("Save: %s: %w", path, err)
	}
	return nil
}

// ASCII renders the series as a terminal chart, one sample per element
// boundary. A nil or empty series yields the empty string.
func ASCII(s *twiss.Series, opts ...Option) string {
	cfg := newConfig(opts...)
	_, beta, alpha, err := extract(s, cfg.plane)
	if err != nil {
		return ""
	}

	caption := cfg.title
	if caption == "" {
		caption = "beta [m], alpha [1]"
		if cfg.betaOnly {
			caption = "beta [m]"
		}
	}
	graphOpts := []asciigraph.Option{
		asciigraph.Height(cfg.ascii.height),
		asciigraph.Width(cfg.ascii.width),
		asciigraph.Caption(caption),
	}
	if cfg.betaOnly {
		return asciigraph.Plot(beta, graphOpts...)
	}
	return asciigraph.PlotMany([][]float64{beta, alpha}, graphOpts...)
}

// render does the actual figure assembly shared by Plot and Save.
func render(s *twiss.Series, cfg config) (*plot.Plot, error) {
	pos, beta, alpha, err := extract(s, cfg.plane)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "s [m]"
	p.Y.Label.Text = "beta [m]"
	p.Add(plotter.NewGrid())

	bl, bs, err := curve(pos, beta, betaColor, nil, draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}
	p.Add(bl, bs)
	p.Legend.Add("beta [m]", bl, bs)

	if !cfg.betaOnly {
		dashes := []vg.Length{vg.Points(4), vg.Points(2)}
		al, as, err := curve(pos, alpha, alphaColor, dashes, draw.CrossGlyph{})
		if err != nil {
			return nil, err
		}
		p.Add(al, as)
		p.Legend.Add("alpha [1]", al, as)
		p.Y.Label.Text = "beta [m], alpha [1]"
	}
	p.Legend.Top = true
	return p, nil
}

// curve builds one styled line plus marker pair.
func curve(xs, ys []float64, col color.Color, dashes []vg.Length, glyph draw.GlyphDrawer) (*plotter.Line, *plotter.Scatter, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, nil, err
	}
	line.Color = col
	line.Dashes = dashes
	scatter.Color = col
	scatter.Shape = glyph
	scatter.Radius = vg.Points(2.5)
	return line, scatter, nil
}

// extract pulls positions, beta and alpha out of the series for one
// transverse plane.
func extract(s *twiss.Series, plane Plane) (pos, beta, alpha []float64, err error) {
	if s == nil {
		return nil, nil, nil, ErrNilSeries
	}
	n := s.Len()
	if n == 0 {
		return nil, nil, nil, ErrEmptySeries
	}
	off := 0
	if plane == PlaneY {
		off = 2
	}
	pos = s.S()
	beta = make([]float64, n)
	alpha = make([]float64, n)
	for i := 0; i < n; i++ {
		b, berr := s.BeamAt(i)
		if berr != nil {
			return nil, nil, nil, berr
		}
		r, _ := b.Dims()
		if off+1 >= r {
			return nil, nil, nil, fmt.Errorf("%s plane of a %dx%d beam matrix: %w",
				plane, r, r, ErrBadPlane)
		}
		beta[i] = b.At(off, off)
		alpha[i] = -b.At(off, off+1)
	}
	return pos, beta, alpha, nil
}
