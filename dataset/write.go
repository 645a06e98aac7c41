// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/strokenet/matrix"
)

// WriteMatrix writes m one row per line, every value followed by a space.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
			buf = append(buf, ' ')
			if _, err = bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// AppendExample writes one feature row to featW and its label to labelW
// in the format ReadFeatures and ReadLabels expect.
//
// Errors:
//   - matrix.ErrDimensionMismatch when row is not a single row.
func AppendExample(featW, labelW io.Writer, row matrix.Matrix, label int) error {
	if err := matrix.ValidateNotNil(row); err != nil {
		return err
	}
	if row.Rows() != 1 {
		return fmt.Errorf("append: %d rows, want 1: %w", row.Rows(), matrix.ErrDimensionMismatch)
	}
	if err := WriteMatrix(featW, row); err != nil {
		return err
	}
	_, err := fmt.Fprintf(labelW, "%d\n", label)

	return err
}

// AppendFiles appends one example to the named files, creating them when
// missing.
func AppendFiles(featPath, labelPath string, row matrix.Matrix, label int) (err error) {
	ff, err := openAppend(featPath)
	if err != nil {
		return err
	}
	defer closeInto(ff, &err)

	lf, err := openAppend(labelPath)
	if err != nil {
		return err
	}
	defer closeInto(lf, &err)

	if err = AppendExample(ff, lf, row, label); err != nil {
		return fmt.Errorf("%w: %w", ErrTrainingDataIO, err)
	}

	return nil
}

// WriteMatrixFile writes m to path, truncating it.
func WriteMatrixFile(path string, m matrix.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTrainingDataIO, err)
	}
	defer closeInto(f, &err)

	return WriteMatrix(f, m)
}

func openAppend(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTrainingDataIO, err)
	}

	return f, nil
}

func closeInto(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("%w: %w", ErrTrainingDataIO, cerr)
	}
}
