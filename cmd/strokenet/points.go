// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/strokenet/stroke"
)

// readPoints replays a points file through a stroke.Recorder, so the path
// is connected within each line and free of duplicates.
func readPoints(r io.Reader) ([]stroke.Point, error) {
	rec := stroke.NewRecorder()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			rec.Release()
			continue
		}
		if strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"x y\", got %q", line, text)
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: x: %w", line, err)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: y: %w", line, err)
		}
		rec.Drag(stroke.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rec.Len() == 0 {
		return nil, stroke.ErrEmptyPath
	}

	return rec.Points(), nil
}

func readPointsFile(path string) ([]stroke.Point, error) {
	if path == "" {
		return nil, fmt.Errorf("-points is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pts, err := readPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}
