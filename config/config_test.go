// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokenet/config"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, 30, cfg.Iterations)
	require.Equal(t, 25, cfg.HiddenSize)
}

func TestParse_Values(t *testing.T) {
	t.Parallel()

	in := `
data_file: d.txt
label_file: l.txt
iterations: 500
hidden_size: 10
alpha: 0.5
lambda: 0
seed: 9
log_level: debug
workers: 2
`
	cfg, err := config.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "d.txt", cfg.DataFile)
	require.Equal(t, 500, cfg.Iterations)
	require.Equal(t, 10, cfg.HiddenSize)
	require.Equal(t, 0.5, cfg.Alpha)
	require.Zero(t, cfg.Lambda)
	require.Equal(t, int64(9), cfg.Seed)
	require.Equal(t, 2, cfg.Workers)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
	require.Len(t, cfg.ClassifierOptions(), 4)
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown key":  "epochs: 3\n",
		"bad type":     "iterations: many\n",
		"hidden":       "hidden_size: 0\n",
		"alpha":        "alpha: -1\n",
		"lambda":       "lambda: -0.1\n",
		"level":        "log_level: loud\n",
		"half weights": "theta1_file: a.txt\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse(strings.NewReader(in))
			require.Error(t, err)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.ApplyOverrides(config.Overrides{Iterations: 99, Lambda: 2, LogLevel: "warn"})
	require.Equal(t, 99, cfg.Iterations)
	require.Equal(t, 2.0, cfg.Lambda)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, config.Default().DataFile, cfg.DataFile)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(p, []byte("iterations: 7\n"), 0o644))
	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Iterations)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var nilCfg *config.Config
	require.Error(t, nilCfg.Validate())
}
