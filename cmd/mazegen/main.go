// Command mazegen carves a random perfect maze and prints it as ASCII art.
//
//	mazegen --width 20 --height 8 --seed 7 --solve
//
// Settings resolve as flags > MAZEGEN_* environment > .env > defaults.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvmaze/internal/config"
)

// Level is the live log level; --log-level updates it after flag parsing.
var Level = new(slog.LevelVar)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: Level,
	})))
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(&cfg, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
