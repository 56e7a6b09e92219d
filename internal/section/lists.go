package section

import (
	"fmt"
	"strings"

	"github.com/gompdf/resumepdf/internal/layout"
	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/render/pdf"
	"github.com/gompdf/resumepdf/internal/resume"
)

// Spacing of skill tags.
const (
	tagGapX = 6
	tagGapY = 6
)

// Skills draws the skills as tags, progress bars, a bullet list or one
// comma separated paragraph.
func Skills(ctx Context, title string, props Props, skills []resume.Skill) []Block {
	if len(skills) == 0 {
		return nil
	}
	s := ctx.Styles
	var blocks []Block
	switch props.Skills {
	case SkillProgress:
		cells := make([]layout.Cell, len(skills))
		for i, sk := range skills {
			cells[i] = func(c *pdf.Canvas, at pagination.Cursor, width float64) (pagination.Cursor, error) {
				return c.DrawProgressBar(sk.Name, sk.Level, at, width, s.ProgressBar, s.ProgressBar, s.ProgressBack), nil
			}
		}
		blocks = ctx.rows(cells, props, 4)
	case SkillList:
		for _, sk := range skills {
			blocks = append(blocks, func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
				return below(at, c.DrawBulletText(skillLabel(sk), at, ctx.Width, s.Normal)), nil
			})
		}
	case SkillInline:
		names := make([]string, len(skills))
		for i, sk := range skills {
			names[i] = sk.Name
		}
		line := strings.Join(names, ", ")
		blocks = []Block{func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
			return below(at, c.DrawWrappedText(line, at, ctx.Width, s.Normal)), nil
		}}
	default:
		items := make([]layout.Item, len(skills))
		for i, sk := range skills {
			items[i] = tag{text: sk.Name, st: s.Tag}
		}
		blocks = []Block{func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
			return layout.FlexWrap(c, items, at, layout.FlexConfig{Width: ctx.Width, GapX: tagGapX, GapY: tagGapY})
		}}
	}
	blocks[len(blocks)-1] = spaced(blocks[len(blocks)-1], entryGap)
	return ctx.withHeading(title, blocks)
}

func skillLabel(sk resume.Skill) string {
	if sk.Level > 0 {
		return fmt.Sprintf("%s (%.0f%%)", sk.Name, sk.Level)
	}
	return sk.Name
}

// rows groups cells into rows of props.Columns (one column unless
// props.Grid is set) and returns one block per row.
func (ctx Context) rows(cells []layout.Cell, props Props, gapY float64) []Block {
	cfg := layout.GridConfig{Columns: 1, Width: ctx.Width, GapX: 20}
	if props.Grid {
		cfg.Columns = props.Columns
		if cfg.Columns < 1 {
			cfg.Columns = layout.DefaultGridConfig(ctx.Width).Columns
		}
	}
	var blocks []Block
	for start := 0; start < len(cells); start += cfg.Columns {
		row := cells[start:min(start+cfg.Columns, len(cells))]
		blocks = append(blocks, spaced(func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
			return layout.Grid(c, row, at, cfg)
		}, gapY))
	}
	return blocks
}

// Achievements draws awards either as a list or in a grid of equal cells.
func Achievements(ctx Context, title string, props Props, items []resume.Achievement) []Block {
	if len(items) == 0 {
		return nil
	}
	s := ctx.Styles
	icon := ""
	if props.IncludeIcon {
		icon = pdf.IconTrophy
	}
	cell := func(a resume.Achievement) layout.Cell {
		return func(c *pdf.Canvas, at pagination.Cursor, width float64) (pagination.Cursor, error) {
			cur, err := ctx.drawIconHeading(c, icon, a.Text(), at, width, s.SubHeader)
			if err != nil {
				return at, err
			}
			cur = below(at, c.DrawWrappedText(a.Field, cur, width, s.Normal))
			if !props.HideDate {
				cur = below(at, c.DrawWrappedText(a.Date, cur, width, s.SubSubHeader))
			}
			return cur, nil
		}
	}

	cells := make([]layout.Cell, len(items))
	for i, a := range items {
		cells[i] = cell(a)
	}
	if props.Grid {
		cfg := layout.DefaultGridConfig(ctx.Width)
		if props.Columns > 0 {
			cfg.Columns = props.Columns
		}
		var blocks []Block
		for start := 0; start < len(cells); start += cfg.Columns {
			row := cells[start:min(start+cfg.Columns, len(cells))]
			gap := cfg.GapY
			if start+cfg.Columns >= len(cells) {
				gap = 5
			}
			blocks = append(blocks, spaced(func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
				return layout.Grid(c, row, at, cfg)
			}, gap))
		}
		return ctx.withHeading(title, blocks)
	}

	blocks := make([]Block, len(cells))
	for i, cl := range cells {
		blocks[i] = spaced(func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
			return cl(c, at, ctx.Width)
		}, entryGap)
	}
	return ctx.withHeading(title, blocks)
}

// Strengths draws title and description pairs, optionally in a grid.
func Strengths(ctx Context, title string, props Props, items []resume.Strength) []Block {
	if len(items) == 0 {
		return nil
	}
	s := ctx.Styles
	icon := ""
	if props.IncludeIcon {
		icon = pdf.IconStar
	}
	cells := make([]layout.Cell, len(items))
	for i, st := range items {
		cells[i] = func(c *pdf.Canvas, at pagination.Cursor, width float64) (pagination.Cursor, error) {
			cur, err := ctx.drawIconHeading(c, icon, st.Title, at, width, s.SubHeader)
			if err != nil {
				return at, err
			}
			return below(at, c.DrawWrappedText(st.Description, cur, width, s.Normal)), nil
		}
	}
	return ctx.withHeading(title, ctx.rows(cells, props, entryGap/2))
}

// MyTime draws how the time of the candidate is split, as progress bars.
func MyTime(ctx Context, title string, items []resume.TimeShare) []Block {
	if len(items) == 0 {
		return nil
	}
	s := ctx.Styles
	cells := make([]layout.Cell, len(items))
	for i, m := range items {
		label := fmt.Sprintf("%s %.0f%%", m.Activity, m.Percent)
		cells[i] = func(c *pdf.Canvas, at pagination.Cursor, width float64) (pagination.Cursor, error) {
			return c.DrawProgressBar(label, m.Percent, at, width, s.Normal, s.ProgressBar, s.ProgressBack), nil
		}
	}
	return ctx.withHeading(title, ctx.rows(cells, Props{}, 4))
}
