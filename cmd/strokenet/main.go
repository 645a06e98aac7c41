// SPDX-License-Identifier: MIT

// Command strokenet trains the stroke classifier, classifies drawings and
// collects training examples.
//
// Usage:
//
//	strokenet train   [-config run.yaml] [-iterations N] [-lambda L] ...
//	strokenet predict -theta1 t1.txt -theta2 t2.txt -points drawing.txt [-mode single|two]
//	strokenet append  -points drawing.txt -label 0|1 [-config run.yaml]
//	strokenet render  -points drawing.txt -out preview.png [-scale 8]
//	strokenet synth   -rings 20 -crosses 20 [-config run.yaml]
//
// A points file holds one "x y" pair per line; a blank line lifts the pen.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/katalvlaran/strokenet/config"
)

type command struct {
	name  string
	usage string
	run   func(args []string) error
}

var commands = []command{
	{"train", "train a classifier from the data and label files", runTrain},
	{"predict", "classify a drawing with saved weights", runPredict},
	{"append", "rasterize a drawing and append it as a training example", runAppend},
	{"render", "write a PNG preview of a drawing's features", runRender},
	{"synth", "append synthetic rings and crosses to the training files", runSynth},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("strokenet: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	for _, c := range commands {
		if c.name == os.Args[1] {
			if err := c.run(os.Args[2:]); err != nil {
				log.Fatalf("%s: %v", c.name, err)
			}
			return
		}
	}
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: strokenet <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.usage)
	}
}

// loadConfig reads path, or the defaults when path is empty, then applies
// overrides, validates, and sets up logging and the worker count.
func loadConfig(path string, o config.Overrides) (*config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, nil, err
		}
	}
	cfg.ApplyOverrides(o)
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	if cfg.Workers > 0 {
		runtime.GOMAXPROCS(cfg.Workers)
	}

	return cfg, logger, nil
}
