package layout

import (
	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/render/pdf"
	"github.com/gompdf/resumepdf/internal/style"
)

// DividerConfig configures VerticalDivider.
type DividerConfig struct {
	// Width is the total width of both columns.
	Width float64
	// LeftWidth is the width of the meta column.
	LeftWidth float64
	// Gap is the space between the columns; the line runs down its middle.
	Gap  float64
	Rule style.Style
}

// VerticalDivider draws left in a narrow meta column, main in the remaining
// width, and a vertical line between them as tall as the longer column.
func VerticalDivider(c *pdf.Canvas, at pagination.Cursor, cfg DividerConfig, left, main Cell) (pagination.Cursor, error) {
	leftEnd, mainEnd := at, at
	var err error
	if left != nil {
		if leftEnd, err = left(c, at, cfg.LeftWidth); err != nil {
			return at, err
		}
	}
	mainAt := pagination.Cursor{X: at.X + cfg.LeftWidth + cfg.Gap, Y: at.Y}
	if main != nil {
		if mainEnd, err = main(c, mainAt, cfg.Width-cfg.LeftWidth-cfg.Gap); err != nil {
			return at, err
		}
	}

	bottom := max(leftEnd.Y, mainEnd.Y)
	if bottom > at.Y && cfg.Rule.DrawColor.Valid {
		x := at.X + cfg.LeftWidth + cfg.Gap/2
		c.DrawLine(x, at.Y, x, bottom, cfg.Rule)
	}
	return pagination.Cursor{X: at.X, Y: bottom}, nil
}
