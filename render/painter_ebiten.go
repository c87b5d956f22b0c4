//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// GridPainter uploads grid state into a single cell-per-pixel image and
// draws it scaled, with border lines between cells.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette *Palette
}

// NewGridPainter allocates a painter for a w×h grid.
func NewGridPainter(w, h int, p *Palette) *GridPainter {
	if p == nil {
		p = &DefaultPalette
	}
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h), palette: p}
}

// Blit draws g onto dst at cellSize pixels per cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *gridgraph.Grid, cellSize int) {
	if g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	FillRGBA(gp.buf, g.Cells(), gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)

	fw, fh := float32(gp.w*cellSize), float32(gp.h*cellSize)
	for x := 0; x <= gp.w; x++ {
		fx := float32(x * cellSize)
		vector.StrokeLine(dst, fx, 0, fx, fh, 0.5, BorderColor, false)
	}
	for y := 0; y <= gp.h; y++ {
		fy := float32(y * cellSize)
		vector.StrokeLine(dst, 0, fy, fw, fy, 0.5, BorderColor, false)
	}
}
