// SPDX-License-Identifier: MIT

package classifier

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/strokenet/matrix"
	"github.com/katalvlaran/strokenet/raster"
	"github.com/katalvlaran/strokenet/stroke"
)

// legacyLabel is a predicted index folded back to 0 by Predict.
// It comes from an older one-indexed dataset and is kept for compatibility.
const legacyLabel = 10

// Classifier is a trained network. All methods are safe for concurrent use
// since nothing mutates after construction.
//
// A Classifier built by New keeps a private copy of its training set for
// its whole life; Accuracy is measured on it. One built by NewTrained has
// none.
type Classifier struct {
	theta1, theta2 *matrix.Dense
	trainX, trainY *matrix.Dense
	inputs         int
	numLabels      int
	accuracy       float64
	costs          []float64
	opts           Options
}

// New trains a classifier on x (examples × features) and y (examples × 1)
// for exactly maxIters gradient-descent iterations and returns it trained.
//
// Implementation:
//   - Stage 1: validate data; numLabels = number of distinct values in y,
//     every label must be an integer in [0, numLabels).
//   - Stage 2: weights come from WithDebugWeights or uniform [-ε, ε] draws.
//   - Stage 3: each iteration runs Forward, Cost and Gradients from scratch
//     and steps Θ ← Θ - α·grad. Per-iteration cost is logged at Debug.
//   - Stage 4: one final forward pass measures training accuracy, logged
//     at Info.
//
// Errors:
//   - ErrNoTrainingData, ErrBadLabel, ErrWeightsShape,
//     matrix.ErrDimensionMismatch (y rows differ from x rows).
//
// Complexity:
//   - Time O(maxIters · m · hidden · features), Space O(m · features).
func New(x, y matrix.Matrix, maxIters int, opts ...Option) (*Classifier, error) {
	if matrix.ValidateNotNil(x) != nil || matrix.ValidateNotNil(y) != nil || x.Rows() == 0 || x.Cols() == 0 {
		return nil, ErrNoTrainingData
	}
	if y.Rows() != x.Rows() || y.Cols() != 1 {
		return nil, fmt.Errorf("labels %dx%d for %d examples: %w", y.Rows(), y.Cols(), x.Rows(), matrix.ErrDimensionMismatch)
	}
	if maxIters < 0 {
		maxIters = 0
	}
	o := gatherOptions(opts...)

	numLabels, err := countLabels(y)
	if err != nil {
		return nil, err
	}
	yOneHot, err := OneHot(y, numLabels)
	if err != nil {
		return nil, err
	}

	c := &Classifier{
		trainX:    mustDense(x),
		trainY:    mustDense(y),
		inputs:    x.Cols(),
		numLabels: numLabels,
		opts:      o,
	}
	if o.debugTheta1 != nil {
		c.theta1, c.theta2 = o.debugTheta1, o.debugTheta2
		if err = c.checkShapes(); err != nil {
			return nil, err
		}
	} else {
		rng := rand.New(rand.NewSource(o.seed))
		c.theta1 = randomWeights(rng, o.hidden, c.inputs+1, o.epsInit)
		c.theta2 = randomWeights(rng, numLabels, o.hidden+1, o.epsInit)
	}

	if err = c.train(c.trainX, yOneHot, maxIters); err != nil {
		return nil, err
	}
	if c.accuracy, err = c.evaluate(c.trainX, c.trainY); err != nil {
		return nil, err
	}
	o.logger.Info("training finished",
		slog.Int("iterations", maxIters),
		slog.Int("examples", x.Rows()),
		slog.Int("labels", numLabels),
		slog.Float64("accuracy", c.accuracy),
	)

	return c, nil
}

// NewTrained wraps weights trained elsewhere. Accuracy is unknown (NaN).
//
// Errors:
//   - ErrWeightsShape when theta2 does not have theta1.Rows()+1 columns or
//     theta1 has no input column.
func NewTrained(theta1, theta2 matrix.Matrix, opts ...Option) (*Classifier, error) {
	if matrix.ValidateNotNil(theta1) != nil || matrix.ValidateNotNil(theta2) != nil {
		return nil, fmt.Errorf("new trained: %w", ErrWeightsShape)
	}
	c := &Classifier{
		theta1:    mustDense(theta1),
		theta2:    mustDense(theta2),
		inputs:    theta1.Cols() - 1,
		numLabels: theta2.Rows(),
		accuracy:  math.NaN(),
		opts:      gatherOptions(opts...),
	}
	if c.inputs < 1 {
		return nil, fmt.Errorf("new trained: θ1 has %d columns: %w", theta1.Cols(), ErrWeightsShape)
	}
	if err := c.checkShapes(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Classifier) checkShapes() error {
	t1r, t1c := c.theta1.Shape()
	t2r, t2c := c.theta2.Shape()
	if t1c != c.inputs+1 || t2c != t1r+1 || t2r != c.numLabels {
		return fmt.Errorf("θ1 %dx%d, θ2 %dx%d for %d inputs and %d labels: %w",
			t1r, t1c, t2r, t2c, c.inputs, c.numLabels, ErrWeightsShape)
	}

	return nil
}

func (c *Classifier) train(x, yOneHot matrix.Matrix, maxIters int) error {
	alpha, lambda := c.opts.alpha, c.opts.lambda
	c.costs = make([]float64, 0, maxIters)
	for it := 0; it < maxIters; it++ {
		act, err := Forward(x, c.theta1, c.theta2)
		if err != nil {
			return err
		}
		cost, err := Cost(act, yOneHot, c.theta1, c.theta2, lambda)
		if err != nil {
			return err
		}
		g1, g2, err := Gradients(act, yOneHot, c.theta1, c.theta2, lambda)
		if err != nil {
			return err
		}
		if c.theta1, err = step(c.theta1, g1, alpha); err != nil {
			return err
		}
		if c.theta2, err = step(c.theta2, g2, alpha); err != nil {
			return err
		}
		c.costs = append(c.costs, cost)
		c.opts.logger.Debug("iteration", slog.Int("iteration", it+1), slog.Float64("cost", cost))
	}

	return nil
}

// step returns θ - α·g.
func step(theta, g *matrix.Dense, alpha float64) (*matrix.Dense, error) {
	return matrix.ZipWith(theta, g, func(t, d float64) float64 { return t - alpha*d })
}

// evaluate returns the fraction of rows whose argmax equals the label.
func (c *Classifier) evaluate(x, y matrix.Matrix) (float64, error) {
	act, err := Forward(x, c.theta1, c.theta2)
	if err != nil {
		return 0, err
	}
	var correct int
	for i := 0; i < act.A3.Rows(); i++ {
		idx, err := matrix.ArgMaxRow(act.A3, i)
		if err != nil {
			return 0, err
		}
		v, err := y.At(i, 0)
		if err != nil {
			return 0, err
		}
		if v == float64(idx) {
			correct++
		}
	}

	return float64(correct) / float64(act.A3.Rows()), nil
}

// Evaluate reports accuracy of the trained weights on another labelled set.
func (c *Classifier) Evaluate(x, y matrix.Matrix) (float64, error) {
	if err := c.checkInput(x); err != nil {
		return 0, err
	}
	if matrix.ValidateNotNil(y) != nil || y.Rows() != x.Rows() || y.Cols() != 1 {
		return 0, fmt.Errorf("evaluate: %w", matrix.ErrDimensionMismatch)
	}

	return c.evaluate(x, y)
}

// Accuracy is the training-set accuracy measured after the last iteration,
// or NaN for a classifier built by NewTrained.
func (c *Classifier) Accuracy() float64 { return c.accuracy }

// TrainingSet returns copies of the examples and labels New trained on,
// or nils for a classifier built by NewTrained.
func (c *Classifier) TrainingSet() (x, y *matrix.Dense) {
	if c.trainX == nil {
		return nil, nil
	}

	return mustDense(c.trainX), mustDense(c.trainY)
}

// Costs returns the cost recorded before each weight update.
func (c *Classifier) Costs() []float64 { return slices.Clone(c.costs) }

// NumLabels is the number of output units.
func (c *Classifier) NumLabels() int { return c.numLabels }

// NumInputs is the expected feature count.
func (c *Classifier) NumInputs() int { return c.inputs }

// Theta1 returns a copy of the input→hidden weights.
func (c *Classifier) Theta1() *matrix.Dense { return mustDense(c.theta1) }

// Theta2 returns a copy of the hidden→output weights.
func (c *Classifier) Theta2() *matrix.Dense { return mustDense(c.theta2) }

// PredictRow classifies one 1×NumInputs feature row. The argmax index of
// the output layer is the label; ties go to the lower index and an index of
// 10 is reported as 0.
//
// Errors:
//   - ErrFeatureCount for a row of the wrong shape.
func (c *Classifier) PredictRow(row matrix.Matrix) (int, error) {
	if err := c.checkInput(row); err != nil {
		return 0, err
	}
	if row.Rows() != 1 {
		return 0, fmt.Errorf("predict: %d rows: %w", row.Rows(), ErrFeatureCount)
	}
	act, err := Forward(row, c.theta1, c.theta2)
	if err != nil {
		return 0, err
	}
	idx, err := matrix.ArgMaxRow(act.A3, 0)
	if err != nil {
		return 0, err
	}
	if idx == legacyLabel {
		idx = 0
	}

	return idx, nil
}

// Predict rasterizes path as one shape and classifies it.
// Every failure wraps ErrPrediction.
func (c *Classifier) Predict(path []stroke.Point) (int, error) {
	row, err := raster.Features(path, c.opts.raster...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPrediction, err)
	}
	label, err := c.PredictRow(row)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPrediction, err)
	}

	return label, nil
}

// PredictShapes separates path with mode and classifies every shape.
// Every failure wraps ErrPrediction.
func (c *Classifier) PredictShapes(path []stroke.Point, mode stroke.Mode) ([]int, error) {
	shapes, err := stroke.Separate(path, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrediction, err)
	}
	out := make([]int, 0, len(shapes))
	for _, s := range shapes {
		row, err := raster.ShapeFeatures(s, c.opts.raster...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPrediction, err)
		}
		label, err := c.PredictRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPrediction, err)
		}
		out = append(out, label)
	}

	return out, nil
}

func (c *Classifier) checkInput(x matrix.Matrix) error {
	if err := matrix.ValidateNotNil(x); err != nil {
		return err
	}
	if x.Cols() != c.inputs {
		return fmt.Errorf("%d features, want %d: %w", x.Cols(), c.inputs, ErrFeatureCount)
	}

	return nil
}

// countLabels returns the number of distinct values in the label column and
// checks that each is an integer class id below that count.
func countLabels(y matrix.Matrix) (int, error) {
	seen := make(map[float64]struct{})
	for i := 0; i < y.Rows(); i++ {
		v, err := y.At(i, 0)
		if err != nil {
			return 0, err
		}
		seen[v] = struct{}{}
	}
	n := len(seen)
	for i := 0; i < y.Rows(); i++ {
		if _, err := labelAt(y, i, n); err != nil {
			return 0, err
		}
	}

	return n, nil
}

func randomWeights(rng *rand.Rand, rows, cols int, eps float64) *matrix.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()*2*eps - eps
	}
	w, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		panic("classifier: " + err.Error())
	}

	return w
}
