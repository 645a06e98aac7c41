// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/strokenet/matrix"
	"github.com/katalvlaran/strokenet/raster"
	"github.com/katalvlaran/strokenet/stroke"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	points := fs.String("points", "", "Points file")
	out := fs.String("out", "", "Output PNG")
	scale := fs.Int("scale", 8, "Upscale factor")
	smooth := fs.Bool("smooth", false, "Catmull-Rom instead of nearest-neighbour")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return errors.New("-out is required")
	}
	if *scale < 1 {
		return fmt.Errorf("-scale must be ≥ 1 (got %d)", *scale)
	}

	pts, err := readPointsFile(*points)
	if err != nil {
		return err
	}
	img, err := renderFeatures(pts, *scale, *smooth)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// renderFeatures draws the feature grid of pts as grayscale, brightest cell
// white, upscaled by scale.
func renderFeatures(pts []stroke.Point, scale int, smooth bool) (image.Image, error) {
	row, err := raster.Features(pts)
	if err != nil {
		return nil, err
	}
	grid, err := matrix.UnflattenToSquare(row, 0)
	if err != nil {
		return nil, err
	}

	var peak float64
	grid.Do(func(_, _ int, v float64) bool {
		peak = max(peak, v)
		return true
	})
	if peak > 0 {
		if err = grid.Apply(func(_, _ int, v float64) float64 { return 255 * v / peak }); err != nil {
			return nil, err
		}
	}

	n := grid.Rows()
	src := image.NewGray(image.Rect(0, 0, n, n))
	grid.Do(func(i, j int, v float64) bool {
		src.SetGray(j, i, color.Gray{Y: uint8(math.Round(v))})
		return true
	})

	dst := image.NewGray(image.Rect(0, 0, n*scale, n*scale))
	var interp draw.Interpolator = draw.NearestNeighbor
	if smooth {
		interp = draw.CatmullRom
	}
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}
