// Package render turns grid state into something a person can look at:
// a text map for terminals and an RGBA pixel buffer for windows.
// It only reads the grid; searching and painting live elsewhere.
package render

import (
	"bufio"
	"image/color"
	"io"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Palette maps each CellState to a display color.
type Palette [gridgraph.Explored + 1]color.RGBA

// DefaultPalette uses the paint program's colors.
var DefaultPalette = Palette{
	gridgraph.Wall:     {R: 0xA9, G: 0xA9, B: 0xA9, A: 0xFF},
	gridgraph.Open:     {R: 0x45, G: 0xAA, B: 0xB8, A: 0xFF},
	gridgraph.Start:    {R: 0x98, G: 0xFB, B: 0x98, A: 0xFF},
	gridgraph.Goal:     {R: 0xFF, G: 0x5C, B: 0x5C, A: 0xFF},
	gridgraph.Explored: {R: 0x4F, G: 0x79, B: 0x42, A: 0xFF},
}

// BorderColor is drawn between cells.
var BorderColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Color returns the palette entry for s; unknown states are transparent.
func (p *Palette) Color(s gridgraph.CellState) color.RGBA {
	if !s.Valid() {
		return color.RGBA{}
	}
	return p[s]
}

// ASCII writes g in its one-rune-per-cell text form.
func ASCII(w io.Writer, g *gridgraph.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(g.String()); err != nil {
		return err
	}
	return bw.Flush()
}

// FillRGBA converts row-major cells into RGBA pixels in buf, one pixel
// per cell. buf must hold 4*len(cells) bytes; extra cells are ignored.
func FillRGBA(buf []byte, cells []gridgraph.CellState, p *Palette) {
	n := len(buf) / 4
	if len(cells) < n {
		n = len(cells)
	}
	for i := 0; i < n; i++ {
		c := p.Color(cells[i])
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
