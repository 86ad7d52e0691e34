// options.go holds the rendering options shared by Plot, Save and ASCII.

package twissplot

import "gonum.org/v1/plot/vg"

// Plane selects which transverse plane of a 6x6 beam matrix to render.
type Plane int

const (
	// PlaneX reads beta and alpha from the x, x' block.
	PlaneX Plane = iota
	// PlaneY reads beta and alpha from the y, y' block.
	PlaneY
)

// String names the plane for labels and errors.
func (p Plane) String() string {
	if p == PlaneY {
		return "vertical"
	}
	return "horizontal"
}

// Default figure size used by Save.
const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

type config struct {
	title    string
	plane    Plane
	betaOnly bool
	width    vg.Length
	height   vg.Length
	ascii    asciiConfig
}

type asciiConfig struct {
	height int
	width  int
}

// Option adjusts how a series is rendered.
type Option func(*config)

// WithTitle sets the figure title, also used as the ASCII caption.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithPlane selects the transverse plane read from 6x6 beam matrices.
func WithPlane(p Plane) Option {
	return func(c *config) { c.plane = p }
}

// WithBetaOnly drops the alpha curve, leaving only the beta function.
func WithBetaOnly() Option {
	return func(c *config) { c.betaOnly = true }
}

// WithSize sets the saved figure size. Defaults to 6x4 inches.
func WithSize(w, h vg.Length) Option {
	return func(c *config) {
		c.width = w
		c.height = h
	}
}

// WithASCIISize sets the width and height, in character cells, of the
// ASCII chart. Defaults to 80x15.
func WithASCIISize(width, height int) Option {
	return func(c *config) {
		c.ascii.width = width
		c.ascii.height = height
	}
}

func newConfig(opts ...Option) config {
	c := config{
		width:  defaultWidth,
		height: defaultHeight,
		ascii:  asciiConfig{height: 15, width: 80},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
