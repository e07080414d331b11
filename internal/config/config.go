// Package config resolves generation defaults from the environment.
//
// Values come from real environment variables first, then from an optional
// dotenv file, then from Default. Command-line flags override all of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvWidth   = "VORONOI_WIDTH"
	EnvHeight  = "VORONOI_HEIGHT"
	EnvPoints  = "VORONOI_POINTS"
	EnvTheme   = "VORONOI_THEME"
	EnvMetric  = "VORONOI_METRIC"
	EnvConfig  = "VORONOI_CONFIG"
	EnvOutput  = "VORONOI_OUTPUT"
	EnvWorkers = "VORONOI_WORKERS"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Config holds generation settings.
type Config struct {
	Width   int
	Height  int
	Points  int
	Theme   string
	Metric  string
	Output  string
	Workers int

	// ThemeConfig is the theme file path. Empty means DefaultThemeConfigPath
	// if that file exists.
	ThemeConfig string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Width:   500,
		Height:  500,
		Points:  50,
		Theme:   "standard",
		Metric:  "euclidean",
		Output:  "voronoi.ppm",
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Load returns Default overlaid with values from the environment and from
// envFile. A missing envFile is not an error; an empty envFile skips it.
func Load(envFile string) (Config, error) {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvPoints, &cfg.Points},
		{EnvWorkers, &cfg.Workers},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", f.key, err)
		}
		*f.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvTheme, &cfg.Theme},
		{EnvMetric, &cfg.Metric},
		{EnvOutput, &cfg.Output},
		{EnvConfig, &cfg.ThemeConfig},
	}
	for _, f := range strs {
		if v, ok := lookup(f.key); ok && v != "" {
			*f.dst = v
		}
	}

	return cfg, nil
}

// DefaultThemeConfigPath returns the per-user theme file location,
// e.g. ~/.config/voronoi/themes.conf.
func DefaultThemeConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to determine config directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "voronoi", "themes.conf"), nil
}
