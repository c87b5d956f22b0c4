//go:build ebiten

// Command gridviz is an interactive window for painting a grid and
// watching a search explore it.
package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/config"
	"github.com/katalvlaran/gridsearch/internal/app"
)

var log = logrus.New()

func main() {
	if err := config.LoadEnv(); err != nil {
		log.WithError(err).Warn(".env could not be loaded")
	}
	cfg := config.Default()
	if err := cfg.ApplyEnv(); err != nil {
		log.WithError(err).Fatal("bad environment")
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("bad configuration")
	}
	log = cfg.Logger()

	g, err := cfg.LoadGrid()
	if err != nil {
		log.WithError(err).Fatal("load grid")
	}
	game, err := app.New(g, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("build game")
	}

	ebiten.SetWindowTitle("gridsearch")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(g.Width()*cfg.CellSize, g.Height()*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run game")
	}
}
