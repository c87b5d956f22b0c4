package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FromStrings builds a Grid from text rows using the one-rune cell forms:
//
//	#  Wall
//	.  Open
//	S  Start
//	G  Goal
//	*  Explored
//
// rows[y][x] is cell (x,y). Errors are those of From2D plus ErrUnknownCell.
func FromStrings(rows []string) (*Grid, error) {
	values := make([][]CellState, 0, len(rows))
	for y, row := range rows {
		line := make([]CellState, 0, len(row))
		for x, r := range []rune(row) {
			s, ok := StateFromRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, r, x, y)
			}
			line = append(line, s)
		}
		values = append(values, line)
	}
	return From2D(values)
}

// Parse reads a text map from r, one row per line. Blank lines and lines
// starting with ';' are skipped; trailing whitespace is trimmed.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}
	return FromStrings(rows)
}

// String renders the grid in the FromStrings text form, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[g.index(x, y)].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
