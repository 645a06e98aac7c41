// SPDX-License-Identifier: MIT

package classifier

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strokenet/matrix"
)

// Sigmoid is the logistic function 1/(1+e^-z).
func Sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

// SigmoidGradient is the derivative of Sigmoid at z: g(z)·(1-g(z)).
func SigmoidGradient(z float64) float64 {
	g := Sigmoid(z)
	return g * (1.0 - g)
}

// Activations holds one forward pass. A1 and A2 carry the bias column.
//
//	A1 = [1 | X]
//	Z2 = A1·Theta1ᵀ
//	A2 = [1 | sigmoid(Z2)]
//	Z3 = A2·Theta2ᵀ
//	A3 = sigmoid(Z3)
type Activations struct {
	A1, Z2, A2, Z3, A3 *matrix.Dense
}

// Forward runs the network over every row of x.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when x, theta1 and
//     theta2 do not chain.
func Forward(x, theta1, theta2 matrix.Matrix) (Activations, error) {
	var (
		act Activations
		t   *matrix.Dense
		err error
	)
	if act.A1, err = matrix.PrependColumn(x, 1); err != nil {
		return Activations{}, fmt.Errorf("forward a1: %w", err)
	}
	if t, err = matrix.Transpose(theta1); err != nil {
		return Activations{}, fmt.Errorf("forward θ1ᵀ: %w", err)
	}
	if act.Z2, err = matrix.Mul(act.A1, t); err != nil {
		return Activations{}, fmt.Errorf("forward z2: %w", err)
	}
	if t, err = matrix.Map(act.Z2, Sigmoid); err != nil {
		return Activations{}, fmt.Errorf("forward a2: %w", err)
	}
	if act.A2, err = matrix.PrependColumn(t, 1); err != nil {
		return Activations{}, fmt.Errorf("forward a2: %w", err)
	}
	if t, err = matrix.Transpose(theta2); err != nil {
		return Activations{}, fmt.Errorf("forward θ2ᵀ: %w", err)
	}
	if act.Z3, err = matrix.Mul(act.A2, t); err != nil {
		return Activations{}, fmt.Errorf("forward z3: %w", err)
	}
	if act.A3, err = matrix.Map(act.Z3, Sigmoid); err != nil {
		return Activations{}, fmt.Errorf("forward a3: %w", err)
	}

	return act, nil
}

// OneHot turns an m×1 label column into an m×numLabels one-vs-all target.
// Row i has a single 1 in column y[i].
//
// Errors:
//   - ErrBadLabel for a label that is not an integer in [0, numLabels).
func OneHot(y matrix.Matrix, numLabels int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(y); err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(y.Rows(), numLabels)
	if err != nil {
		return nil, err
	}
	for i := 0; i < y.Rows(); i++ {
		label, err := labelAt(y, i, numLabels)
		if err != nil {
			return nil, err
		}
		if err = out.Set(i, label, 1); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// labelAt reads y[i,0] as a class id in [0, numLabels).
func labelAt(y matrix.Matrix, i, numLabels int) (int, error) {
	v, err := y.At(i, 0)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || v < 0 || int(v) >= numLabels {
		return 0, fmt.Errorf("row %d: %v not in [0,%d): %w", i, v, numLabels, ErrBadLabel)
	}

	return int(v), nil
}

// Cost is the mean cross-entropy between act.A3 and the one-hot targets plus
// (λ/2m)·(Σ Theta1[:,1:]² + Σ Theta2[:,1:]²). The bias columns are not
// regularized. Zero arguments to log contribute 0 (see matrix.ElementwiseLog).
func Cost(act Activations, yOneHot, theta1, theta2 matrix.Matrix, lambda float64) (float64, error) {
	m := float64(act.A3.Rows())

	logA3, err := matrix.ElementwiseLog(act.A3)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	oneMinusA3, err := matrix.ScalarMinus(act.A3, 1)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	logOneMinusA3, err := matrix.ElementwiseLog(oneMinusA3)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	oneMinusY, err := matrix.ScalarMinus(yOneHot, 1)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}

	// -y·log(a3) - (1-y)·log(1-a3)
	pos, err := matrix.Hadamard(yOneHot, logA3)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	neg, err := matrix.Hadamard(oneMinusY, logOneMinusA3)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	terms, err := matrix.Add(pos, neg)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	perLabel, err := matrix.SumColumnsToRow(terms)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	total, err := matrix.SumAll(perLabel)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	j := -total / m

	r1, err := sumSquaresNoBias(theta1)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	r2, err := sumSquaresNoBias(theta2)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}

	return j + lambda/(2*m)*(r1+r2), nil
}

func sumSquaresNoBias(theta matrix.Matrix) (float64, error) {
	w, err := matrix.CutColumn(theta, 0)
	if err != nil {
		return 0, err
	}
	sq, err := matrix.Hadamard(w, w)
	if err != nil {
		return 0, err
	}
	cols, err := matrix.SumColumnsToRow(sq)
	if err != nil {
		return 0, err
	}

	return matrix.SumAll(cols)
}

// Gradients backpropagates one forward pass:
//
//	δ3 = A3 - Y
//	δ2 = (δ3·Theta2)[:,1:] ⊙ sigmoid'(Z2)
//	Θ1grad = δ2ᵀ·A1 / m,  Θ2grad = δ3ᵀ·A2 / m
//
// then adds (λ/m)·Theta[:,1:] to the non-bias columns. Nothing carries over
// between calls.
func Gradients(act Activations, yOneHot, theta1, theta2 matrix.Matrix, lambda float64) (grad1, grad2 *matrix.Dense, err error) {
	m := float64(act.A1.Rows())

	delta3, err := matrix.Sub(act.A3, yOneHot)
	if err != nil {
		return nil, nil, fmt.Errorf("gradients δ3: %w", err)
	}
	back, err := matrix.Mul(delta3, theta2)
	if err != nil {
		return nil, nil, fmt.Errorf("gradients δ3·θ2: %w", err)
	}
	if back, err = matrix.CutColumn(back, 0); err != nil {
		return nil, nil, fmt.Errorf("gradients: %w", err)
	}
	dz2, err := matrix.Map(act.Z2, SigmoidGradient)
	if err != nil {
		return nil, nil, fmt.Errorf("gradients: %w", err)
	}
	delta2, err := matrix.Hadamard(back, dz2)
	if err != nil {
		return nil, nil, fmt.Errorf("gradients δ2: %w", err)
	}

	if grad1, err = layerGradient(delta2, act.A1, theta1, m, lambda); err != nil {
		return nil, nil, fmt.Errorf("gradients θ1: %w", err)
	}
	if grad2, err = layerGradient(delta3, act.A2, theta2, m, lambda); err != nil {
		return nil, nil, fmt.Errorf("gradients θ2: %w", err)
	}

	return grad1, grad2, nil
}

// layerGradient computes δᵀ·a/m with (λ/m)·θ[:,1:] added to the non-bias columns.
func layerGradient(delta, a, theta matrix.Matrix, m, lambda float64) (*matrix.Dense, error) {
	dt, err := matrix.Transpose(delta)
	if err != nil {
		return nil, err
	}
	g, err := matrix.Mul(dt, a)
	if err != nil {
		return nil, err
	}
	if g, err = matrix.ScalarMultiply(g, 1/m); err != nil {
		return nil, err
	}

	bias, err := matrix.ExtractColumn(g, 0)
	if err != nil {
		return nil, err
	}
	rest, err := matrix.CutColumn(g, 0)
	if err != nil {
		return nil, err
	}
	w, err := matrix.CutColumn(theta, 0)
	if err != nil {
		return nil, err
	}
	if w, err = matrix.ScalarMultiply(w, lambda/m); err != nil {
		return nil, err
	}
	if rest, err = matrix.Add(rest, w); err != nil {
		return nil, err
	}

	return matrix.AppendRight(bias, rest)
}
