// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/strokenet/classifier"
	"github.com/katalvlaran/strokenet/config"
	"github.com/katalvlaran/strokenet/stroke"
	"github.com/katalvlaran/strokenet/symbol"
)

func runPredict(args []string) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	theta1 := fs.String("theta1", "", "Theta1 weights file")
	theta2 := fs.String("theta2", "", "Theta2 weights file")
	points := fs.String("points", "", "Points file")
	mode := fs.String("mode", "single", "single|two")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, _, err := loadConfig(*cfgPath, config.Overrides{Theta1File: *theta1, Theta2File: *theta2})
	if err != nil {
		return err
	}
	if cfg.Theta1File == "" {
		return errors.New("-theta1 and -theta2 are required")
	}
	var m stroke.Mode
	switch *mode {
	case "single":
		m = stroke.SingleShape
	case "two":
		m = stroke.TwoShapes
	default:
		return fmt.Errorf("unknown -mode %q", *mode)
	}

	c, err := classifier.LoadWeightFiles(cfg.Theta1File, cfg.Theta2File)
	if err != nil {
		return err
	}
	pts, err := readPointsFile(*points)
	if err != nil {
		return err
	}
	labels, err := c.PredictShapes(pts, m)
	if err != nil {
		return err
	}
	for i, label := range labels {
		name := "?"
		if s, err := symbol.FromLabel(label); err == nil {
			name = s.String()
		}
		fmt.Fprintf(os.Stdout, "shape %d: label %d (%s)\n", i, label, name)
	}

	return nil
}
