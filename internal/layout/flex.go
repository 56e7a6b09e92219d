package layout

import (
	"fmt"

	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/render/pdf"
	"github.com/gompdf/resumepdf/internal/style"
)

// FlexConfig configures FlexWrap.
type FlexConfig struct {
	Width float64
	GapX  float64
	GapY  float64
	// Align is style.AlignLeft, AlignCenter or AlignRight.
	Align string
}

type flexRow struct {
	start, end int
	width      float64
	height     float64
}

// FlexWrap lays items out left to right and starts a new row when the next
// item would pass Width. An item wider than Width gets a row of its own.
func FlexWrap(c *pdf.Canvas, items []Item, at pagination.Cursor, cfg FlexConfig) (pagination.Cursor, error) {
	if len(items) == 0 {
		return at, nil
	}

	sizes := make([][2]float64, len(items))
	for i, it := range items {
		w, h := it.Size(c)
		sizes[i] = [2]float64{w, h}
	}

	var rows []flexRow
	cur := flexRow{}
	for i, s := range sizes {
		w := s[0]
		if cur.end > cur.start {
			w += cfg.GapX
		}
		if cur.end > cur.start && cur.width+w > cfg.Width {
			rows = append(rows, cur)
			cur = flexRow{start: i, end: i}
			w = s[0]
		}
		cur.end = i + 1
		cur.width += w
		if s[1] > cur.height {
			cur.height = s[1]
		}
	}
	rows = append(rows, cur)

	y := at.Y
	for r, row := range rows {
		if r > 0 {
			y += cfg.GapY
		}
		x := at.X
		switch cfg.Align {
		case style.AlignCenter:
			x += (cfg.Width - row.width) / 2
		case style.AlignRight:
			x += cfg.Width - row.width
		}
		if x < at.X {
			x = at.X
		}
		for i := row.start; i < row.end; i++ {
			// Items are vertically centred on the row.
			origin := pagination.Cursor{X: x, Y: y + (row.height-sizes[i][1])/2}
			if err := items[i].Draw(c, origin); err != nil {
				return at, fmt.Errorf("flex item %d: %w", i, err)
			}
			x += sizes[i][0] + cfg.GapX
		}
		y += row.height
	}
	return pagination.Cursor{X: at.X, Y: y}, nil
}
