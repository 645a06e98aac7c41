// SPDX-License-Identifier: MIT

// Package classifier implements a two-layer feed-forward network that maps
// a rasterized stroke to an integer label.
//
// Architecture: input = flattened raster (2500 features by default), one
// sigmoid hidden layer (25 units by default), one sigmoid output unit per
// distinct training label (one-vs-all). A constant bias of 1 is prepended to
// every activation before the next weight multiplication, so
// Theta1 is [hidden × input+1] and Theta2 is [labels × hidden+1].
//
// Lifecycle: New trains synchronously with batch gradient descent for a
// fixed number of iterations and returns a trained, read-only Classifier.
// There is no retraining path. NewTrained wraps weights trained elsewhere.
//
// Building blocks (Forward, Cost, Gradients, OneHot, CheckGradients) are
// exported so the backpropagation can be verified in isolation.
package classifier
