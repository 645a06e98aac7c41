// SPDX-License-Identifier: MIT

// Package stroke models captured pointer paths and splits them into shapes.
//
// A path is an ordered []Point in screen pixels. The package offers:
//
//   - BoundingBox / BoundsOf: the inclusive axis-aligned extent of points.
//   - Separate: one shape (whole path) or two shapes split at the single
//     largest jump between consecutive points.
//   - Interpolate / Fill: unit-step filling between sampled points, since
//     pointer capture under-samples motion.
//   - Recorder: accumulates drag events into a connected, duplicate-free
//     path, breaking lines on release.
//
// The two-shape split is a heuristic. It assumes exactly one distance
// outlier separates two disjoint shapes and misbehaves on noisy paths or on
// symbols made of more than two strokes.
package stroke
