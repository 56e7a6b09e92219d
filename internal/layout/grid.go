package layout

import (
	"fmt"

	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/render/pdf"
)

// GridConfig configures Grid.
type GridConfig struct {
	Columns int
	// Width is the total width of the grid.
	Width   float64
	GapX    float64
	GapY    float64
	Padding Padding
}

// DefaultGridConfig returns three columns with a 10pt gutter, 20pt between
// rows and 5pt cell padding.
func DefaultGridConfig(width float64) GridConfig {
	return GridConfig{Columns: 3, Width: width, GapX: 10, GapY: 20, Padding: Padding{X: 5, Y: 5}}
}

// CellWidth returns the width of one column, padding excluded.
func (g GridConfig) CellWidth() float64 {
	cols := g.Columns
	if cols < 1 {
		cols = 1
	}
	w := (g.Width-float64(cols-1)*g.GapX)/float64(cols) - 2*g.Padding.X
	if w < 0 {
		return 0
	}
	return w
}

// Grid draws cells row by row into equal-width columns. A row is as tall as
// its tallest cell.
func Grid(c *pdf.Canvas, cells []Cell, at pagination.Cursor, cfg GridConfig) (pagination.Cursor, error) {
	if len(cells) == 0 {
		return at, nil
	}
	if cfg.Columns < 1 {
		cfg.Columns = 1
	}
	colW := (cfg.Width - float64(cfg.Columns-1)*cfg.GapX) / float64(cfg.Columns)
	inner := cfg.CellWidth()

	y := at.Y
	for row := 0; row*cfg.Columns < len(cells); row++ {
		if row > 0 {
			y += cfg.GapY
		}
		bottom := y
		for col := 0; col < cfg.Columns; col++ {
			i := row*cfg.Columns + col
			if i >= len(cells) {
				break
			}
			origin := pagination.Cursor{
				X: at.X + float64(col)*(colW+cfg.GapX) + cfg.Padding.X,
				Y: y + cfg.Padding.Y,
			}
			end, err := cells[i](c, origin, inner)
			if err != nil {
				return at, fmt.Errorf("grid cell %d: %w", i, err)
			}
			if b := end.Y + cfg.Padding.Y; b > bottom {
				bottom = b
			}
		}
		y = bottom
	}
	return pagination.Cursor{X: at.X, Y: y}, nil
}
