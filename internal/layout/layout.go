// Package layout arranges several pieces of content relative to each other:
// equal-width grids, wrapping rows of fixed-size items and a two-column
// layout split by a divider line. It knows nothing about pages; callers wrap
// the result in a pagination block.
package layout

import (
	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/render/pdf"
)

// Cell draws content of unknown height inside a column of the given width
// and returns where it ended.
type Cell func(c *pdf.Canvas, at pagination.Cursor, width float64) (pagination.Cursor, error)

// Item is content whose size is known before it is drawn, such as a tag or
// a contact entry.
type Item interface {
	Size(c *pdf.Canvas) (w, h float64)
	Draw(c *pdf.Canvas, at pagination.Cursor) error
}

// Padding is the space kept inside a cell.
type Padding struct {
	X, Y float64
}
