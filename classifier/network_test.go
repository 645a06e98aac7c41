// SPDX-License-Identifier: MIT

package classifier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokenet/classifier"
	"github.com/katalvlaran/strokenet/matrix"
)

func TestSigmoid(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.5, classifier.Sigmoid(0))
	require.Equal(t, 0.25, classifier.SigmoidGradient(0))
	require.InDelta(t, 1/(1+math.Exp(-2)), classifier.Sigmoid(2), 1e-15)
	require.Less(t, classifier.SigmoidGradient(30), 1e-12)
}

func TestForward_Shapes(t *testing.T) {
	t.Parallel()

	x, _ := tinyData(t)
	t1 := debugWeights(t, 5, 5)
	t2 := debugWeights(t, 3, 6)

	act, err := classifier.Forward(x, t1, t2)
	require.NoError(t, err)
	require.Equal(t, [2]int{6, 5}, shape(act.A1))
	require.Equal(t, [2]int{6, 5}, shape(act.Z2))
	require.Equal(t, [2]int{6, 6}, shape(act.A2))
	require.Equal(t, [2]int{6, 3}, shape(act.Z3))
	require.Equal(t, [2]int{6, 3}, shape(act.A3))

	for i := 0; i < 6; i++ {
		require.Equal(t, 1.0, must(act.A1.At(i, 0)))
		require.Equal(t, 1.0, must(act.A2.At(i, 0)))
	}
	require.Equal(t, classifier.Sigmoid(must(act.Z3.At(2, 1))), must(act.A3.At(2, 1)))
}

func TestForward_ShapeMismatch(t *testing.T) {
	t.Parallel()

	x, _ := tinyData(t)
	_, err := classifier.Forward(x, debugWeights(t, 5, 4), debugWeights(t, 3, 6))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestOneHot(t *testing.T) {
	t.Parallel()

	y, err := matrix.NewDenseFrom(3, 1, []float64{2, 0, 1})
	require.NoError(t, err)
	oh, err := classifier.OneHot(y, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1, 1, 0, 0, 0, 1, 0}, oh.RawData())

	bad, err := matrix.NewDenseFrom(2, 1, []float64{0, 1.5})
	require.NoError(t, err)
	_, err = classifier.OneHot(bad, 3)
	require.ErrorIs(t, err, classifier.ErrBadLabel)
}

func TestCost_RegularizationExcludesBias(t *testing.T) {
	t.Parallel()

	x, y := tinyData(t)
	oh, err := classifier.OneHot(y, 3)
	require.NoError(t, err)
	t1 := debugWeights(t, 5, 5)
	t2 := debugWeights(t, 3, 6)
	act, err := classifier.Forward(x, t1, t2)
	require.NoError(t, err)

	j0, err := classifier.Cost(act, oh, t1, t2, 0)
	require.NoError(t, err)
	j1, err := classifier.Cost(act, oh, t1, t2, 1)
	require.NoError(t, err)

	var sq float64
	for _, th := range []*matrix.Dense{t1, t2} {
		for i := 0; i < th.Rows(); i++ {
			for j := 1; j < th.Cols(); j++ {
				v := must(th.At(i, j))
				sq += v * v
			}
		}
	}
	require.InDelta(t, sq/(2*6), j1-j0, 1e-12)

	// Unregularized cost is the mean cross-entropy.
	var ce float64
	for i := 0; i < 6; i++ {
		for k := 0; k < 3; k++ {
			a, yk := must(act.A3.At(i, k)), must(oh.At(i, k))
			ce += -yk*math.Log(a) - (1-yk)*math.Log(1-a)
		}
	}
	require.InDelta(t, ce/6, j0, 1e-12)
}

func TestGradients_MatchNumerical(t *testing.T) {
	t.Parallel()

	x, y := tinyData(t)
	t1 := debugWeights(t, 5, 5)
	t2 := debugWeights(t, 3, 6)

	for _, lambda := range []float64{0, 1, 3} {
		diff, err := classifier.CheckGradients(x, y, t1, t2, lambda)
		require.NoError(t, err)
		require.Less(t, diff, 1e-7, "lambda=%v", lambda)
	}
}

func TestGradients_BiasColumnNotRegularized(t *testing.T) {
	t.Parallel()

	x, y := tinyData(t)
	oh, err := classifier.OneHot(y, 3)
	require.NoError(t, err)
	t1 := debugWeights(t, 5, 5)
	t2 := debugWeights(t, 3, 6)
	act, err := classifier.Forward(x, t1, t2)
	require.NoError(t, err)

	a1, a2, err := classifier.Gradients(act, oh, t1, t2, 0)
	require.NoError(t, err)
	b1, b2, err := classifier.Gradients(act, oh, t1, t2, 6)
	require.NoError(t, err)

	// λ/m = 1.
	for i := 0; i < 5; i++ {
		require.InDelta(t, must(a1.At(i, 0)), must(b1.At(i, 0)), 1e-15)
		require.InDelta(t, must(a1.At(i, 2))+must(t1.At(i, 2)), must(b1.At(i, 2)), 1e-12)
	}
	for i := 0; i < 3; i++ {
		require.InDelta(t, must(a2.At(i, 0)), must(b2.At(i, 0)), 1e-15)
		require.InDelta(t, must(a2.At(i, 5))+must(t2.At(i, 5)), must(b2.At(i, 5)), 1e-12)
	}
}

func TestCheckGradients_Errors(t *testing.T) {
	t.Parallel()

	x, y := tinyData(t)
	_, err := classifier.CheckGradients(nil, y, debugWeights(t, 5, 5), debugWeights(t, 3, 6), 1)
	require.ErrorIs(t, err, classifier.ErrNoTrainingData)
	_, err = classifier.CheckGradients(x, y, debugWeights(t, 5, 5), debugWeights(t, 2, 6), 1)
	require.ErrorIs(t, err, classifier.ErrWeightsShape)
}

func shape(m *matrix.Dense) [2]int {
	r, c := m.Shape()
	return [2]int{r, c}
}

func must(v float64, err error) float64 {
	if err != nil {
		panic(err)
	}
	return v
}
