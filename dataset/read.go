// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/strokenet/matrix"
)

// maxLine bounds a single line; a 2500-feature row is well under it.
const maxLine = 16 << 20

// ReadMatrix parses space-separated rows into a matrix.
//
// Errors:
//   - ErrEmpty, ErrRaggedRow, ErrBadValue (with the 1-based line number),
//     or the reader's own error.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)

	var (
		data []float64
		cols int
		rows int
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("line %d: %d values, want %d: %w", line, len(fields), cols, ErrRaggedRow)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d: %q: %w", line, f, ErrBadValue)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrEmpty
	}

	return matrix.NewDenseFrom(rows, cols, data)
}

// ReadFeatures reads a feature file body: examples × features.
func ReadFeatures(r io.Reader) (*matrix.Dense, error) {
	m, err := ReadMatrix(r)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	return m, nil
}

// ReadLabels reads a label file body: examples × 1.
func ReadLabels(r io.Reader) (*matrix.Dense, error) {
	m, err := ReadMatrix(r)
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	if m.Cols() != 1 {
		return nil, fmt.Errorf("labels: %d values per line, want 1: %w", m.Cols(), ErrRaggedRow)
	}

	return m, nil
}

// Load reads a feature file and its label file and checks they line up.
//
// Errors:
//   - ErrTrainingDataIO (wrapping the os error) when a file cannot be opened.
//   - ErrRowCountMismatch when the row counts differ.
//   - Any ReadFeatures / ReadLabels error.
func Load(featPath, labelPath string) (x, y *matrix.Dense, err error) {
	if x, err = readFile(featPath, ReadFeatures); err != nil {
		return nil, nil, err
	}
	if y, err = readFile(labelPath, ReadLabels); err != nil {
		return nil, nil, err
	}
	if x.Rows() != y.Rows() {
		return nil, nil, fmt.Errorf("%s has %d rows, %s has %d: %w",
			featPath, x.Rows(), labelPath, y.Rows(), ErrRowCountMismatch)
	}

	return x, y, nil
}

// ReadMatrixFile is ReadMatrix on a named file.
func ReadMatrixFile(path string) (*matrix.Dense, error) {
	return readFile(path, ReadMatrix)
}

func readFile(path string, parse func(io.Reader) (*matrix.Dense, error)) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTrainingDataIO, err)
	}
	defer f.Close()

	m, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
