package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/graph"
	"github.com/katalvlaran/lvmaze/internal/config"
)

// clearEnv blanks every MAZEGEN_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvWidth, config.EnvHeight, config.EnvSeed,
		config.EnvSolve, config.EnvLogLevel, config.EnvFrontier,
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "MAZEGEN_WIDTH=20\nMAZEGEN_HEIGHT=5\nMAZEGEN_SOLVE=true\nMAZEGEN_FRONTIER=edge-weight\n")
	t.Setenv(config.EnvWidth, "7")
	t.Setenv(config.EnvSeed, "42")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Width, "process env wins over the file")
	assert.Equal(t, 5, cfg.Height)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Solve)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, graph.FrontierEdgeWeight, cfg.Frontier)
}

func TestLoad_FirstReadableFileOnly(t *testing.T) {
	clearEnv(t)
	first := writeEnv(t, "MAZEGEN_WIDTH=3\n")
	second := writeEnv(t, "MAZEGEN_WIDTH=4\nMAZEGEN_HEIGHT=4\n")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope"), first, second)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"width":    {config.EnvWidth, "wide"},
		"zero":     {config.EnvHeight, "0"},
		"seed":     {config.EnvSeed, "1.5"},
		"solve":    {config.EnvSolve, "maybe"},
		"level":    {config.EnvLogLevel, "loud"},
		"frontier": {config.EnvFrontier, "bfs"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParseFrontier(t *testing.T) {
	p, err := config.ParseFrontier(" Path-Cost ")
	require.NoError(t, err)
	assert.Equal(t, graph.FrontierPathCost, p)

	p, err = config.ParseFrontier("edge-weight")
	require.NoError(t, err)
	assert.Equal(t, graph.FrontierEdgeWeight, p)

	_, err = config.ParseFrontier("")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
