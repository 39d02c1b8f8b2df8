package gallery

import "github.com/marcus/lightbox/pkg/monitor/mouse"

// rowGap is the number of blank lines between tile rows.
const rowGap = 1

// Grid lays tiles out left to right, top to bottom, relative to the gallery
// container's origin.
type Grid struct {
	Cols  int
	TileW int
	TileH int
	Gap   int // columns between tiles
}

// NewGrid fits as many tile columns as the width allows, at least one.
func NewGrid(width, tileW, tileH, gap int) Grid {
	cols := (width + gap) / (tileW + gap)
	if cols < 1 {
		cols = 1
	}
	return Grid{Cols: cols, TileW: tileW, TileH: tileH, Gap: gap}
}

// Rows returns the number of rows needed for n tiles
func (g Grid) Rows(n int) int {
	return (n + g.Cols - 1) / g.Cols
}

// Height returns the height in lines of n tiles
func (g Grid) Height(n int) int {
	rows := g.Rows(n)
	if rows == 0 {
		return 0
	}
	return rows*(g.TileH+rowGap) - rowGap
}

// Rect returns the cell rectangle of tile i
func (g Grid) Rect(i int) mouse.Rect {
	col, row := i%g.Cols, i/g.Cols
	return mouse.Rect{
		X: col * (g.TileW + g.Gap),
		Y: row * (g.TileH + rowGap),
		W: g.TileW,
		H: g.TileH,
	}
}

// IndexAt resolves the tile under (x, y) among n tiles. Gaps and positions
// past the last tile resolve to nothing.
func (g Grid) IndexAt(x, y, n int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	col, cx := x/(g.TileW+g.Gap), x%(g.TileW+g.Gap)
	row, cy := y/(g.TileH+rowGap), y%(g.TileH+rowGap)
	if col >= g.Cols || cx >= g.TileW || cy >= g.TileH {
		return 0, false
	}
	i := row*g.Cols + col
	if i >= n {
		return 0, false
	}
	return i, true
}
