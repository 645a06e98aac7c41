// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"log/slog"

	"github.com/katalvlaran/strokenet/config"
	"github.com/katalvlaran/strokenet/dataset"
	"github.com/katalvlaran/strokenet/raster"
	"github.com/katalvlaran/strokenet/symbol"
)

func runAppend(args []string) error {
	fs := flag.NewFlagSet("append", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	dataFile := fs.String("data", "", "Override feature file")
	labelFile := fs.String("labels", "", "Override label file")
	points := fs.String("points", "", "Points file")
	label := fs.Int("label", -1, "Label: 0 for O, 1 for X")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *label < 0 {
		return errors.New("-label is required")
	}
	if _, err := symbol.FromLabel(*label); err != nil {
		return err
	}

	cfg, logger, err := loadConfig(*cfgPath, config.Overrides{DataFile: *dataFile, LabelFile: *labelFile})
	if err != nil {
		return err
	}
	pts, err := readPointsFile(*points)
	if err != nil {
		return err
	}
	row, err := raster.Features(pts)
	if err != nil {
		return err
	}
	if err = dataset.AppendFiles(cfg.DataFile, cfg.LabelFile, row, *label); err != nil {
		return err
	}
	logger.Info("example appended", slog.String("data", cfg.DataFile), slog.Int("label", *label),
		slog.Int("points", len(pts)))

	return nil
}
