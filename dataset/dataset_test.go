// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokenet/dataset"
	"github.com/katalvlaran/strokenet/matrix"
)

func TestReadFeatures(t *testing.T) {
	t.Parallel()

	// Trailing spaces and blank trailing lines are what the writer produces.
	in := "1.0 2.5 -3 \n4 5E-1 6 \n\n"
	m, err := dataset.ReadFeatures(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []float64{1, 2.5, -3, 4, 0.5, 6}, m.RawData())
}

func TestReadFeatures_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", dataset.ErrEmpty},
		{"blank", "\n \n", dataset.ErrEmpty},
		{"ragged", "1 2 3\n4 5\n", dataset.ErrRaggedRow},
		{"garbage", "1 x 3\n", dataset.ErrBadValue},
		{"nan", "1 NaN\n", dataset.ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := dataset.ReadFeatures(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadLabels(t *testing.T) {
	t.Parallel()

	y, err := dataset.ReadLabels(strings.NewReader("0\n1\n1\n"))
	require.NoError(t, err)
	require.Equal(t, 3, y.Rows())
	require.Equal(t, 1, y.Cols())

	_, err = dataset.ReadLabels(strings.NewReader("0 1\n1 0\n"))
	require.ErrorIs(t, err, dataset.ErrRaggedRow)
}

func TestAppendExample_RoundTrip(t *testing.T) {
	t.Parallel()

	var feats, labels bytes.Buffer
	a, err := matrix.NewDenseFrom(1, 4, []float64{0, 255, 0.125, 1e-7})
	require.NoError(t, err)
	b, err := matrix.NewDenseFrom(1, 4, []float64{3.5, 0, 0, 12})
	require.NoError(t, err)

	require.NoError(t, dataset.AppendExample(&feats, &labels, a, 0))
	require.NoError(t, dataset.AppendExample(&feats, &labels, b, 1))
	require.Equal(t, "0\n1\n", labels.String())
	require.True(t, strings.HasSuffix(feats.String(), " \n"))

	x, err := dataset.ReadFeatures(&feats)
	require.NoError(t, err)
	require.Equal(t, append(a.RawData(), b.RawData()...), x.RawData())
	y, err := dataset.ReadLabels(&labels)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, y.RawData())
}

func TestAppendExample_RejectsMultiRow(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	var f, l bytes.Buffer
	err = dataset.AppendExample(&f, &l, m, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Zero(t, f.Len())
	require.Zero(t, l.Len())
}

func TestAppendFilesAndLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fp := filepath.Join(dir, "data.txt")
	lp := filepath.Join(dir, "labels.txt")

	row, err := matrix.NewDenseFrom(1, 3, []float64{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, dataset.AppendFiles(fp, lp, row, 1))
	require.NoError(t, dataset.AppendFiles(fp, lp, row, 0))

	x, y, err := dataset.Load(fp, lp)
	require.NoError(t, err)
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 3, x.Cols())
	require.Equal(t, []float64{1, 0}, y.RawData())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fp := filepath.Join(dir, "data.txt")
	lp := filepath.Join(dir, "labels.txt")

	_, _, err := dataset.Load(fp, lp)
	require.ErrorIs(t, err, dataset.ErrTrainingDataIO)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(fp, []byte("1 2\n3 4\n"), 0o644))
	require.NoError(t, os.WriteFile(lp, []byte("0\n"), 0o644))
	_, _, err = dataset.Load(fp, lp)
	require.ErrorIs(t, err, dataset.ErrRowCountMismatch)
}

func TestWriteMatrixFile(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "theta.txt")
	m, err := matrix.NewDenseRows([][]float64{{1, -2}, {0.5, 4}})
	require.NoError(t, err)
	require.NoError(t, dataset.WriteMatrixFile(p, m))

	got, err := dataset.ReadMatrixFile(p)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, got))
}
