package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/iburimskiy/circular-view/internal/config"
	"github.com/iburimskiy/circular-view/internal/game"
	"github.com/iburimskiy/circular-view/internal/logging"
)

func main() {
	configDir := pflag.StringP("config", "c", ".", "directory containing "+config.FileName)
	pflag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "circularview: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel, true)

	g, err := game.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init")
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Circular View - hover to highlight, click the hub to sweep, Esc/Q: Quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game stopped")
	}
}
