// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and gonum's mat.Dense.
// Both directions copy; neither side aliases the other's storage.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a gonum copy of m.
//
// Time Complexity: O(r*c)
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if dm.r == 0 || dm.c == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}

	return mat.NewDense(dm.r, dm.c, dm.RawData()), nil
}

// FromGonum copies any gonum matrix into a Dense.
//
// Time Complexity: O(r*c)
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res.data[i*c+j] = g.At(i, j)
		}
	}

	return res, nil
}
