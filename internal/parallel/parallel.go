// SPDX-License-Identifier: MIT

// Package parallel fans independent row ranges out to worker goroutines.
//
// Matrix kernels in this module never let one output row depend on another,
// so a range split is safe and the result is identical to a sequential run.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultMinChunk is the smallest number of items handed to one goroutine.
const DefaultMinChunk = 16

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // whether fan-out is allowed at all
	NumWorkers int  // upper bound on goroutines per call
	MinChunk   int  // minimum items per goroutine
}

// DefaultConfig returns a config sized to the machine.
func DefaultConfig() Config {
	n := runtime.GOMAXPROCS(0)
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinChunk:   DefaultMinChunk,
	}
}

// ForRange calls f(lo, hi) over disjoint ranges covering [0, n).
// It blocks until every range is done. With fan-out disabled, or when n is
// smaller than two chunks, f is called once with (0, n).
func ForRange(n int, cfg Config, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	minChunk := max(cfg.MinChunk, 1)
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*minChunk {
		f(0, n)
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, minChunk)

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// For executes f(i) for every i in [0, n).
func For(n int, cfg Config, f func(i int)) {
	ForRange(n, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	})
}
