// Package config resolves mazegen settings from defaults, an optional .env
// file, and MAZEGEN_* environment variables. Command-line flags are layered on
// top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvmaze/graph"
)

// Environment variable names.
const (
	EnvWidth    = "MAZEGEN_WIDTH"
	EnvHeight   = "MAZEGEN_HEIGHT"
	EnvSeed     = "MAZEGEN_SEED"
	EnvSolve    = "MAZEGEN_SOLVE"
	EnvLogLevel = "MAZEGEN_LOG_LEVEL"
	EnvFrontier = "MAZEGEN_FRONTIER"
)

// ErrInvalidConfig indicates a setting that cannot be parsed or is out of range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config holds the resolved mazegen settings.
type Config struct {
	Width    int
	Height   int
	Seed     int64
	Solve    bool
	LogLevel slog.Level
	Frontier graph.FrontierPolicy
}

// Default returns a 10×10 maze, seed 0 (library default), no solving,
// info logging and the path-cost frontier.
func Default() Config {
	return Config{
		Width:    10,
		Height:   10,
		LogLevel: slog.LevelInfo,
		Frontier: graph.FrontierPathCost,
	}
}

// Load starts from Default, applies the first readable file in envFiles, then
// the process environment. Process variables win over file entries.
// Missing files are skipped; a malformed file is an error.
func Load(envFiles ...string) (Config, error) {
	vars := map[string]string{}
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fileVars, err := godotenv.Read(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		vars = fileVars
		break
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.apply(lookup); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// apply overwrites every field whose variable is set.
func (c *Config) apply(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWidth); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvWidth, v)
		}
		c.Width = n
	}
	if v, ok := lookup(EnvHeight); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvHeight, v)
		}
		c.Height = n
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvSolve); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSolve, v)
		}
		c.Solve = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if err := c.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvLogLevel, v)
		}
	}
	if v, ok := lookup(EnvFrontier); ok {
		p, err := ParseFrontier(v)
		if err != nil {
			return fmt.Errorf("%w (%s)", err, EnvFrontier)
		}
		c.Frontier = p
	}

	return nil
}

// Validate checks ranges that parsing alone cannot catch.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: size %d×%d", ErrInvalidConfig, c.Width, c.Height)
	}

	return nil
}

// ParseFrontier maps "path-cost" or "edge-weight" to a graph.FrontierPolicy.
func ParseFrontier(s string) (graph.FrontierPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case graph.FrontierPathCost.String():
		return graph.FrontierPathCost, nil
	case graph.FrontierEdgeWeight.String():
		return graph.FrontierEdgeWeight, nil
	default:
		return 0, fmt.Errorf("%w: frontier %q", ErrInvalidConfig, s)
	}
}
