// SPDX-License-Identifier: MIT

// Package classifier: functional options for training and prediction.

package classifier

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/strokenet/matrix"
	"github.com/katalvlaran/strokenet/raster"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultHiddenSize is the number of hidden units.
	DefaultHiddenSize = 25

	// DefaultAlpha is the fixed gradient-descent step.
	DefaultAlpha = 0.3

	// DefaultLambda is the L2 regularization strength.
	DefaultLambda = 1.0

	// DefaultEpsilonInit bounds the uniform weight initialization [-ε, ε].
	DefaultEpsilonInit = 0.12

	// DefaultSeed seeds weight initialization; training is reproducible.
	DefaultSeed int64 = 1
)

// ---------- Internal panic messages ----------

const (
	panicHiddenInvalid  = "classifier: WithHiddenSize: n must be ≥ 1"
	panicAlphaInvalid   = "classifier: WithAlpha: alpha must be finite and > 0"
	panicLambdaInvalid  = "classifier: WithLambda: lambda must be finite and ≥ 0"
	panicEpsilonInvalid = "classifier: WithEpsilonInit: eps must be finite and > 0"
	panicDebugNil       = "classifier: WithDebugWeights: both matrices are required"
	panicLoggerNil      = "classifier: WithLogger: logger is nil"
)

// Option configures a Classifier.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	hidden  int
	alpha   float64
	lambda  float64
	epsInit float64
	seed    int64

	debugTheta1 *matrix.Dense
	debugTheta2 *matrix.Dense

	raster []raster.Option
	logger *slog.Logger
}

// WithHiddenSize sets the hidden layer width.
func WithHiddenSize(n int) Option {
	if n < 1 {
		panic(panicHiddenInvalid)
	}

	return func(o *Options) { o.hidden = n }
}

// WithAlpha sets the learning rate.
func WithAlpha(alpha float64) Option {
	if !finite(alpha) || alpha <= 0 {
		panic(panicAlphaInvalid)
	}

	return func(o *Options) { o.alpha = alpha }
}

// WithLambda sets the regularization strength; 0 disables it.
func WithLambda(lambda float64) Option {
	if !finite(lambda) || lambda < 0 {
		panic(panicLambdaInvalid)
	}

	return func(o *Options) { o.lambda = lambda }
}

// WithEpsilonInit sets the initialization bound.
func WithEpsilonInit(eps float64) Option {
	if !finite(eps) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsInit = eps }
}

// WithSeed seeds random initialization.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithDebugWeights skips random initialization and starts training from
// copies of theta1 and theta2. Used to check training against reference
// weights.
func WithDebugWeights(theta1, theta2 matrix.Matrix) Option {
	if matrix.ValidateNotNil(theta1) != nil || matrix.ValidateNotNil(theta2) != nil {
		panic(panicDebugNil)
	}
	t1, t2 := mustDense(theta1), mustDense(theta2)

	return func(o *Options) { o.debugTheta1, o.debugTheta2 = t1, t2 }
}

// WithRasterOptions sets the rasterization used by Predict. They must match
// the options used to build the training features.
func WithRasterOptions(opts ...raster.Option) Option {
	cp := append([]raster.Option(nil), opts...)

	return func(o *Options) { o.raster = cp }
}

// WithLogger routes training progress to l. The default discards it.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		hidden:  DefaultHiddenSize,
		alpha:   DefaultAlpha,
		lambda:  DefaultLambda,
		epsInit: DefaultEpsilonInit,
		seed:    DefaultSeed,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// mustDense copies m into a fresh *Dense. m has passed ValidateNotNil, so
// only a broken Matrix implementation can make At fail.
func mustDense(m matrix.Matrix) *matrix.Dense {
	d, err := matrix.Map(m, func(v float64) float64 { return v })
	if err != nil {
		panic("classifier: " + err.Error())
	}

	return d
}
