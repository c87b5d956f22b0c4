package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// LoadGrid reads MapFile if set. Otherwise it returns a blank
// Width×Height grid with Start at the top-left corner and Goal at the
// bottom-right corner.
func (c *Config) LoadGrid() (*gridgraph.Grid, error) {
	if c.MapFile != "" {
		f, err := os.Open(c.MapFile)
		if err != nil {
			return nil, fmt.Errorf("config: open map: %w", err)
		}
		defer f.Close()
		return gridgraph.Parse(f)
	}

	g, err := gridgraph.New(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	if err := g.Set(gridgraph.Coord{}, gridgraph.Start); err != nil {
		return nil, err
	}
	goal := gridgraph.Coord{X: c.Width - 1, Y: c.Height - 1}
	if goal == (gridgraph.Coord{}) {
		return nil, fmt.Errorf("%w: 1x1 grid has no room for a goal", ErrInvalid)
	}
	if err := g.Set(goal, gridgraph.Goal); err != nil {
		return nil, err
	}
	return g, nil
}
