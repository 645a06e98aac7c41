// SPDX-License-Identifier: MIT

package classifier

import (
	"fmt"
	"io"

	"github.com/katalvlaran/strokenet/dataset"
)

// SaveWeights writes Theta1 to w1 and Theta2 to w2 in the flat text format
// of the dataset files.
func (c *Classifier) SaveWeights(w1, w2 io.Writer) error {
	if err := dataset.WriteMatrix(w1, c.theta1); err != nil {
		return fmt.Errorf("save θ1: %w", err)
	}
	if err := dataset.WriteMatrix(w2, c.theta2); err != nil {
		return fmt.Errorf("save θ2: %w", err)
	}

	return nil
}

// LoadWeights reads the matrices written by SaveWeights and wraps them with
// NewTrained.
func LoadWeights(r1, r2 io.Reader, opts ...Option) (*Classifier, error) {
	t1, err := dataset.ReadMatrix(r1)
	if err != nil {
		return nil, fmt.Errorf("load θ1: %w", err)
	}
	t2, err := dataset.ReadMatrix(r2)
	if err != nil {
		return nil, fmt.Errorf("load θ2: %w", err)
	}

	return NewTrained(t1, t2, opts...)
}

// LoadWeightFiles is LoadWeights on named files.
func LoadWeightFiles(path1, path2 string, opts ...Option) (*Classifier, error) {
	t1, err := dataset.ReadMatrixFile(path1)
	if err != nil {
		return nil, fmt.Errorf("load θ1: %w", err)
	}
	t2, err := dataset.ReadMatrixFile(path2)
	if err != nil {
		return nil, fmt.Errorf("load θ2: %w", err)
	}

	return NewTrained(t1, t2, opts...)
}

// SaveWeightFiles is SaveWeights on named files.
func (c *Classifier) SaveWeightFiles(path1, path2 string) error {
	if err := dataset.WriteMatrixFile(path1, c.theta1); err != nil {
		return fmt.Errorf("save θ1: %w", err)
	}
	if err := dataset.WriteMatrixFile(path2, c.theta2); err != nil {
		return fmt.Errorf("save θ2: %w", err)
	}

	return nil
}
