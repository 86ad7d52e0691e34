package beam

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/twiss"
)

// defaultSeed seeds the per-call source used when no WithRand option is
// given.
const defaultSeed = 42

// Params describes the bunch to generate: the macro-particle count, the
// reference kinetic energy, the Twiss parameters and geometric emittance
// of both transverse planes, the longitudinal spreads, and optional
// transverse centroid offsets.
type Params struct {
	N   int     // number of macro-particles [1]
	Ek0 float64 // average kinetic energy [eV]

	BetaX  float64 // horizontal beta function [m]
	AlphaX float64 // horizontal alpha [1]
	EmitX  float64 // horizontal geometric emittance [m]

	BetaY  float64 // vertical beta function [m]
	AlphaY float64 // vertical alpha [1]
	EmitY  float64 // vertical geometric emittance [m]

	SigmaEk float64 // RMS kinetic-energy spread [eV]
	SigmaZ  float64 // RMS bunch length [m]

	X0  float64 // horizontal centroid offset [m]
	Xp0 float64 // horizontal centroid slope [1]
	Y0  float64 // vertical centroid offset [m]
	Yp0 float64 // vertical centroid slope [1]
}

// Option configures a Generate call.
type Option func(*genConfig)

type genConfig struct {
	src rand.Source
}

// WithRand supplies the random source for sampling. Passing the same
// seeded source reproduces the same bunch; sharing one source across
// calls makes the draws consecutive instead.
func WithRand(src rand.Source) Option {
	return func(c *genConfig) { c.src = src }
}

// Generate samples a bunch of p.N macro-particles.
//
// Each transverse plane draws from a correlated 2D Gaussian with
// covariance emittance·B(alpha, beta); z and Ek draw from scalar
// Gaussians. All parameters are validated first: the count must be at
// least 1, emittances positive, spreads non-negative, betas positive (via
// the beam-matrix construction), and every field finite.
func Generate(p Params, opts ...Option) (*Bunch, error) {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateParams(p); err != nil {
		return nil, err
	}

	src := cfg.src
	if src == nil {
		src = rand.NewPCG(defaultSeed, defaultSeed)
	}

	data := mat.NewDense(coordRows, p.N, nil)

	err := fillPlane(data, RowX, plane{p.BetaX, p.AlphaX, p.EmitX, p.X0, p.Xp0}, p.N, src)
	if err != nil {
		return nil, fmt.Errorf("Generate: horizontal plane: %w", err)
	}
	err = fillPlane(data, RowY, plane{p.BetaY, p.AlphaY, p.EmitY, p.Y0, p.Yp0}, p.N, src)
	if err != nil {
		return nil, fmt.Errorf("Generate: vertical plane: %w", err)
	}

	z := distuv.Normal{Mu: 0, Sigma: p.SigmaZ, Src: src}
	for i := 0; i < p.N; i++ {
		data.Set(RowZ, i, z.Rand())
	}
	ek := distuv.Normal{Mu: p.Ek0, Sigma: p.SigmaEk, Src: src}
	for i := 0; i < p.N; i++ {
		data.Set(RowEk, i, ek.Rand())
	}

	return &Bunch{data: data}, nil
}

// plane bundles the per-plane sampling parameters.
type plane struct {
	beta, alpha, emit float64
	offset, slope     float64
}

// fillPlane draws n correlated (position, slope) pairs and writes them into
// rows row and row+1.
func fillPlane(data *mat.Dense, row int, pl plane, n int, src rand.Source) error {
	bm, err := twiss.BeamMatrix(twiss.Params{Alpha: pl.alpha, Beta: pl.beta})
	if err != nil {
		return err
	}

	cov := mat.NewSymDense(2, []float64{
		pl.emit * bm.At(0, 0), pl.emit * bm.At(0, 1),
		pl.emit * bm.At(1, 0), pl.emit * bm.At(1, 1),
	})
	dist, ok := distmv.NewNormal([]float64{pl.offset, pl.slope}, cov, src)
	if !ok {
		return ErrCovariance
	}

	buf := make([]float64, 2)
	for i := 0; i < n; i++ {
		dist.Rand(buf)
		data.Set(row, i, buf[0])
		data.Set(row+1, i, buf[1])
	}
	return nil
}

// validateParams runs the fail-fast checks shared by every Generate call.
func validateParams(p Params) error {
	for _, v := range []float64{
		p.Ek0, p.BetaX, p.AlphaX, p.EmitX, p.BetaY, p.AlphaY, p.EmitY,
		p.SigmaEk, p.SigmaZ, p.X0, p.Xp0, p.Y0, p.Yp0,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}
	if p.N < 1 {
		return fmt.Errorf("%w: got %d", ErrBadCount, p.N)
	}
	if p.EmitX <= 0 {
		return fmt.Errorf("%w: EmitX = %v", ErrBadEmittance, p.EmitX)
	}
	if p.EmitY <= 0 {
		return fmt.Errorf("%w: EmitY = %v", ErrBadEmittance, p.EmitY)
	}
	if p.SigmaEk < 0 || p.SigmaZ < 0 {
		return ErrBadSpread
	}
	return nil
}
