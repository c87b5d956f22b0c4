// Package config holds the settings shared by the gridsearch commands:
// defaults, command-line binding and environment overrides loaded from
// an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Environment variable names read by ApplyEnv.
const (
	EnvAlgorithm = "GRIDSEARCH_ALGORITHM"
	EnvWidth     = "GRIDSEARCH_WIDTH"
	EnvHeight    = "GRIDSEARCH_HEIGHT"
	EnvMapFile   = "GRIDSEARCH_MAP"
	EnvInterval  = "GRIDSEARCH_INTERVAL"
	EnvMaxSteps  = "GRIDSEARCH_MAX_STEPS"
	EnvCellSize  = "GRIDSEARCH_CELL_SIZE"
	EnvTPS       = "GRIDSEARCH_TPS"
	EnvLogLevel  = "GRIDSEARCH_LOG_LEVEL"
)

// Config represents the settings for a gridsearch command.
type Config struct {
	Algorithm string        // bfs, dfs or best-first
	Width     int           // columns of a blank grid
	Height    int           // rows of a blank grid
	MapFile   string        // text map to load instead of a blank grid
	Interval  time.Duration // delay between steps in the batch runner
	MaxSteps  int           // 0 = unlimited
	CellSize  int           // pixels per cell in the viewer
	TPS       int           // viewer ticks per second
	LogLevel  string        // logrus level name
}

// Default returns a Config populated with the paint program's defaults.
func Default() *Config {
	return &Config{
		Algorithm: search.BFS.String(),
		Width:     gridgraph.DefaultWidth,
		Height:    gridgraph.DefaultHeight,
		CellSize:  14,
		TPS:       60,
		LogLevel:  logrus.InfoLevel.String(),
	}
}

// Bind attaches the configuration to the provided FlagSet. Current field
// values become the flag defaults, so call ApplyEnv first to let flags
// override the environment.
func (c *Config) Bind(flags *flag.FlagSet) {
	flags.StringVar(&c.Algorithm, "algorithm", c.Algorithm, "search algorithm: bfs, dfs or best-first")
	flags.IntVar(&c.Width, "width", c.Width, "grid width when no map is given")
	flags.IntVar(&c.Height, "height", c.Height, "grid height when no map is given")
	flags.StringVar(&c.MapFile, "map", c.MapFile, "text map file (# wall, . open, S start, G goal)")
	flags.DurationVar(&c.Interval, "interval", c.Interval, "delay between steps")
	flags.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "stop after this many steps (0 = unlimited)")
	flags.IntVar(&c.CellSize, "cell", c.CellSize, "pixels per cell")
	flags.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
}

// LoadEnv loads .env files into the process environment. With no
// arguments it reads ./.env and tolerates its absence.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && len(files) == 0 && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load env: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from GRIDSEARCH_* environment variables.
func (c *Config) ApplyEnv() error {
	c.Algorithm = getEnvWithDefault(EnvAlgorithm, c.Algorithm)
	c.MapFile = getEnvWithDefault(EnvMapFile, c.MapFile)
	c.LogLevel = getEnvWithDefault(EnvLogLevel, c.LogLevel)

	for key, dst := range map[string]*int{
		EnvWidth:    &c.Width,
		EnvHeight:   &c.Height,
		EnvMaxSteps: &c.MaxSteps,
		EnvCellSize: &c.CellSize,
		EnvTPS:      &c.TPS,
	} {
		if err := getEnvAsInt(key, dst); err != nil {
			return err
		}
	}
	if v, ok := os.LookupEnv(EnvInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a duration: %v", ErrInvalid, EnvInterval, err)
		}
		c.Interval = d
	}
	return nil
}

// Validate checks ranges and names, returning ErrInvalid on failure.
func (c *Config) Validate() error {
	if _, err := search.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: max steps %d", ErrInvalid, c.MaxSteps)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval %v", ErrInvalid, c.Interval)
	case c.CellSize <= 0 || c.TPS <= 0:
		return fmt.Errorf("%w: cell size %d, tps %d", ErrInvalid, c.CellSize, c.TPS)
	}
	return nil
}

// SearchAlgorithm returns the parsed Algorithm.
func (c *Config) SearchAlgorithm() (search.Algorithm, error) {
	return search.ParseAlgorithm(c.Algorithm)
}

// Logger builds a logrus logger at the configured level.
func (c *Config) Logger() *logrus.Logger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt overwrites *dst with the integer value of key, if set.
func getEnvAsInt(key string, dst *int) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, key, err)
	}
	*dst = n
	return nil
}
