// SPDX-License-Identifier: MIT

package classifier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/strokenet/matrix"
)

// gradCheckStep is the central-difference step used by CheckGradients.
const gradCheckStep = 1e-4

// CheckGradients compares the backpropagated gradient of Cost with a
// numerical one from central differences (gonum diff/fd), at the given
// weights, and returns the largest absolute difference over all weights.
//
// Intended for tiny networks: it costs two forward passes per weight.
//
// Errors:
//   - ErrBadLabel, ErrNoTrainingData, or any shape error from Forward.
func CheckGradients(x, y, theta1, theta2 matrix.Matrix, lambda float64) (float64, error) {
	if matrix.ValidateNotNil(x) != nil || matrix.ValidateNotNil(y) != nil || x.Rows() == 0 {
		return 0, ErrNoTrainingData
	}
	if matrix.ValidateNotNil(theta1) != nil || matrix.ValidateNotNil(theta2) != nil {
		return 0, ErrWeightsShape
	}
	numLabels, err := countLabels(y)
	if err != nil {
		return 0, err
	}
	if theta2.Rows() != numLabels {
		return 0, fmt.Errorf("θ2 has %d rows for %d labels: %w", theta2.Rows(), numLabels, ErrWeightsShape)
	}
	yOneHot, err := OneHot(y, numLabels)
	if err != nil {
		return 0, err
	}

	t1, t2 := mustDense(theta1), mustDense(theta2)
	act, err := Forward(x, t1, t2)
	if err != nil {
		return 0, err
	}
	g1, g2, err := Gradients(act, yOneHot, t1, t2, lambda)
	if err != nil {
		return 0, err
	}
	analytic := append(g1.RawData(), g2.RawData()...)

	r1, c1 := t1.Shape()
	r2, c2 := t2.Shape()
	split := r1 * c1
	params := append(t1.RawData(), t2.RawData()...)

	var evalErr error
	cost := func(p []float64) float64 {
		if evalErr != nil {
			return math.NaN()
		}
		a, err := matrix.NewDenseFrom(r1, c1, p[:split])
		if err != nil {
			evalErr = err
			return math.NaN()
		}
		b, err := matrix.NewDenseFrom(r2, c2, p[split:])
		if err != nil {
			evalErr = err
			return math.NaN()
		}
		act, err := Forward(x, a, b)
		if err != nil {
			evalErr = err
			return math.NaN()
		}
		j, err := Cost(act, yOneHot, a, b, lambda)
		if err != nil {
			evalErr = err
			return math.NaN()
		}
		return j
	}

	numeric := fd.Gradient(nil, cost, params, &fd.Settings{
		Formula: fd.Central,
		Step:    gradCheckStep,
	})
	if evalErr != nil {
		return 0, evalErr
	}

	floats.Sub(numeric, analytic)
	return floats.Norm(numeric, math.Inf(1)), nil
}
