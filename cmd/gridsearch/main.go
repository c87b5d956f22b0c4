// Command gridsearch runs one search over a text map or a blank grid,
// logging each step and printing the explored grid when it finishes.
//
//	gridsearch -map maze.txt -algorithm best-first -interval 50ms
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/config"
	"github.com/katalvlaran/gridsearch/driver"
	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/search"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.WithError(err).Fatal("search failed")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	alg, err := cfg.SearchAlgorithm()
	if err != nil {
		return err
	}
	g, err := cfg.LoadGrid()
	if err != nil {
		return err
	}
	eng, err := search.NewEngine(g, search.WithLogger(log))
	if err != nil {
		return err
	}
	r, err := eng.StartRun(alg)
	if err != nil {
		return err
	}

	entry := log.WithFields(logrus.Fields{"run": r.ID(), "algorithm": alg.String()})
	entry.WithFields(logrus.Fields{"width": g.Width(), "height": g.Height()}).Info("search started")

	sum, err := driver.Loop(ctx, driver.EngineStepper{Engine: eng, Run: r},
		driver.WithInterval(cfg.Interval),
		driver.WithMaxSteps(cfg.MaxSteps),
		driver.WithOnStep(func(res search.StepResult) {
			entry.WithFields(logrus.Fields{
				"step":     res.Step,
				"expanded": res.Expanded.String(),
				"explored": len(res.Explored),
			}).Debug("step")
		}),
	)
	if err := render.ASCII(os.Stdout, g); err != nil {
		return err
	}
	fields := logrus.Fields{"status": sum.Status.String(), "steps": sum.Steps, "explored": sum.Explored}
	switch {
	case errors.Is(err, context.Canceled):
		entry.WithFields(fields).Warn("search interrupted")
		return nil
	case errors.Is(err, driver.ErrMaxSteps):
		entry.WithFields(fields).Warn("step limit reached")
		return nil
	case err != nil:
		return err
	}
	entry.WithFields(fields).Info("search finished")
	return nil
}
