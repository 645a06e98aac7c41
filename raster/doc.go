// SPDX-License-Identifier: MIT

// Package raster turns a captured point path into the fixed-size feature
// grid consumed by the classifier.
//
// Pipeline (Features runs all of it):
//
//  1. Rasterize: allocate a zero grid sized to the bounding box plus a
//     proportional border (PaddingCells·dim/EdgeLength on each axis) and
//     stamp every point with Ink over the half-open window
//     [p-SplatRadius, p+SplatRadius). Paths are expected already filled
//     line by line (stroke.Recorder); boxes beyond MaxBoxSide are refused.
//  2. EmulateWriting: every ink cell adds gauss(d)+1/d to each non-ink
//     neighbour within [p-EmulationRadius, p+EmulationRadius). Thin strokes
//     get fatter and nearby classes separate better.
//  3. Downscale: sample an EdgeLength×EdgeLength layout of blocks; each
//     output cell is the Gaussian-weighted sum of its block, skipping the
//     padding band.
//  4. FlattenRows: one 1×EdgeLength² row.
//
// The Gaussian is gauss(d) = 1/(σ·2·√(2π)) · exp(-d/(2σ²)), σ = Sigma.
//
// Grids are built in place while rasterizing; everything handed out is a
// fresh *matrix.Dense.
package raster
