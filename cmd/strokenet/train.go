// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"

	"github.com/katalvlaran/strokenet/classifier"
	"github.com/katalvlaran/strokenet/config"
	"github.com/katalvlaran/strokenet/dataset"
)

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	dataFile := fs.String("data", "", "Override feature file")
	labelFile := fs.String("labels", "", "Override label file")
	theta1 := fs.String("theta1", "", "Write Theta1 to this file")
	theta2 := fs.String("theta2", "", "Write Theta2 to this file")
	iterations := fs.Int("iterations", 0, "Gradient-descent iterations")
	hidden := fs.Int("hidden", 0, "Hidden layer size")
	alpha := fs.Float64("alpha", 0, "Learning rate")
	lambda := fs.Float64("lambda", 0, "Regularization strength")
	seed := fs.Int64("seed", 0, "Initialization seed")
	logLevel := fs.String("log-level", "", "debug|info|warn|error")
	workers := fs.Int("workers", 0, "Worker threads for matrix kernels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, logger, err := loadConfig(*cfgPath, config.Overrides{
		DataFile:   *dataFile,
		LabelFile:  *labelFile,
		Theta1File: *theta1,
		Theta2File: *theta2,
		Iterations: *iterations,
		HiddenSize: *hidden,
		Alpha:      *alpha,
		Lambda:     *lambda,
		Seed:       *seed,
		LogLevel:   *logLevel,
		Workers:    *workers,
	})
	if err != nil {
		return err
	}

	x, y, err := dataset.Load(cfg.DataFile, cfg.LabelFile)
	if err != nil {
		return err
	}
	logger.Info("training", slog.Int("examples", x.Rows()), slog.Int("features", x.Cols()),
		slog.Int("iterations", cfg.Iterations))

	opts := append(cfg.ClassifierOptions(), classifier.WithLogger(logger))
	c, err := classifier.New(x, y, cfg.Iterations, opts...)
	if err != nil {
		return err
	}

	if cfg.Theta1File != "" {
		if err = c.SaveWeightFiles(cfg.Theta1File, cfg.Theta2File); err != nil {
			return err
		}
		logger.Info("weights saved", slog.String("theta1", cfg.Theta1File), slog.String("theta2", cfg.Theta2File))
	}

	return nil
}
