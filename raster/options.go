// SPDX-License-Identifier: MIT

// Package raster: functional configuration for the rasterization pipeline.
//
// Defaults reproduce the classifier's training setup; changing any of them
// changes the feature layout, so a network must be trained and queried with
// the same Options.

package raster

import "math"

// Ink is the value stamped on every cell a stroke passes through.
const Ink = 255.0

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEdgeLength is the side of the downscaled output grid.
	DefaultEdgeLength = 50

	// DefaultPaddingCells sets the border: PaddingCells·dim/EdgeLength cells
	// on each side of an axis of length dim.
	DefaultPaddingCells = 6

	// DefaultSplatRadius widens each stamped point to a 2r×2r square.
	DefaultSplatRadius = 5

	// DefaultEmulationRadius bounds the neighbourhood fed by writing emulation.
	DefaultEmulationRadius = 5

	// DefaultSigma is the Gaussian kernel width in cells.
	DefaultSigma = 1.0

	// DefaultWritingEmulation enables step 2 of the pipeline.
	DefaultWritingEmulation = true

	// DefaultInterpolation is off: capture paths from stroke.Recorder are
	// already filled within each line, and filling again would bridge the
	// pen lifts between lines.
	DefaultInterpolation = false

	// MaxBoxSide bounds the width and height of the bounding box a grid is
	// built from.
	MaxBoxSide = 4096

	// MaxGridCells bounds the padded grid, 256 MiB of float64 cells.
	MaxGridCells = 1 << 25
)

// ---------- Internal panic messages ----------

const (
	panicEdgeLengthInvalid = "raster: WithEdgeLength: n must be ≥ 1"
	panicPaddingInvalid    = "raster: WithPaddingCells: n must be ≥ 0"
	panicSplatInvalid      = "raster: WithSplatRadius: r must be ≥ 0"
	panicEmulationInvalid  = "raster: WithEmulationRadius: r must be ≥ 1"
	panicSigmaInvalid      = "raster: WithSigma: sigma must be finite and > 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved pipeline configuration.
type Options struct {
	edgeLength      int
	paddingCells    int
	splatRadius     int
	emulationRadius int
	sigma           float64
	emulate         bool
	interpolate     bool
}

// EdgeLength reports the output side; the feature row has EdgeLength² values.
func (o Options) EdgeLength() int { return o.edgeLength }

// WithEdgeLength sets the side of the downscaled grid.
func WithEdgeLength(n int) Option {
	if n < 1 {
		panic(panicEdgeLengthInvalid)
	}

	return func(o *Options) { o.edgeLength = n }
}

// WithPaddingCells sets the border numerator (0 disables padding).
func WithPaddingCells(n int) Option {
	if n < 0 {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.paddingCells = n }
}

// WithSplatRadius sets the stamp half-width; 0 stamps the point alone.
func WithSplatRadius(r int) Option {
	if r < 0 {
		panic(panicSplatInvalid)
	}

	return func(o *Options) { o.splatRadius = r }
}

// WithEmulationRadius sets the writing-emulation half-width.
func WithEmulationRadius(r int) Option {
	if r < 1 {
		panic(panicEmulationInvalid)
	}

	return func(o *Options) { o.emulationRadius = r }
}

// WithSigma sets the Gaussian kernel width.
func WithSigma(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		panic(panicSigmaInvalid)
	}

	return func(o *Options) { o.sigma = sigma }
}

// WithWritingEmulation toggles writing emulation.
func WithWritingEmulation(on bool) Option {
	return func(o *Options) { o.emulate = on }
}

// WithInterpolation toggles gap filling between consecutive points.
// Enable it only for a sparse single-line path; on a path holding several
// lines it also draws a segment across every pen lift.
func WithInterpolation(on bool) Option {
	return func(o *Options) { o.interpolate = on }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		edgeLength:      DefaultEdgeLength,
		paddingCells:    DefaultPaddingCells,
		splatRadius:     DefaultSplatRadius,
		emulationRadius: DefaultEmulationRadius,
		sigma:           DefaultSigma,
		emulate:         DefaultWritingEmulation,
		interpolate:     DefaultInterpolation,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// gauss is the kernel shared by writing emulation and downscaling.
func (o Options) gauss(d float64) float64 {
	return 1.0 / (o.sigma * 2.0 * math.Sqrt(2.0*math.Pi)) * math.Exp(-d/(2.0*o.sigma*o.sigma))
}
