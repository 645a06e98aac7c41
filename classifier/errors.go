// SPDX-License-Identifier: MIT

package classifier

import "errors"

var (
	// ErrNoTrainingData is returned for a nil or empty training set.
	ErrNoTrainingData = errors.New("classifier: no training data")

	// ErrBadLabel is returned for a label that is not an integer in
	// [0, number of distinct labels).
	ErrBadLabel = errors.New("classifier: bad label")

	// ErrWeightsShape is returned when supplied weights do not fit the data
	// or each other.
	ErrWeightsShape = errors.New("classifier: weight matrices have the wrong shape")

	// ErrFeatureCount is returned when an input row has the wrong width.
	ErrFeatureCount = errors.New("classifier: wrong feature count")

	// ErrPrediction wraps every failure of Predict, so callers can treat
	// it as "drawing rejected".
	ErrPrediction = errors.New("classifier: prediction failed")
)
