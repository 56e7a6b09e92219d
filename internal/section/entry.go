package section

import (
	"github.com/gompdf/resumepdf/internal/layout"
	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/render/pdf"
	"github.com/gompdf/resumepdf/internal/resume"
	"github.com/gompdf/resumepdf/internal/style"
)

// entry is the common shape of an experience or education item.
type entry struct {
	icon      string
	primary   string
	secondary string
	period    string
	location  string
	// notes are short plain lines such as a grade.
	notes   []string
	about   string
	bullets []string
}

// Width of the left column of VariantDivider, as a share of the content.
const dividerShare = 0.25

// Experience draws the work history.
func Experience(ctx Context, title string, props Props, items []resume.Experience) []Block {
	blocks := make([]Block, 0, len(items))
	for _, e := range items {
		en := entry{
			primary:   e.Position,
			secondary: e.CompanyName,
			period:    e.Period(),
			location:  e.Location,
			about:     e.AboutCompany,
			bullets:   e.Achievements,
		}
		if props.SwapPosition {
			en.primary, en.secondary = en.secondary, en.primary
		}
		if props.IncludeIcon {
			en.icon = pdf.IconBriefcase
		}
		blocks = append(blocks, spaced(ctx.entry(en, props), entryGap))
	}
	return ctx.withHeading(title, blocks)
}

// Education draws the degrees.
func Education(ctx Context, title string, props Props, items []resume.Education) []Block {
	blocks := make([]Block, 0, len(items))
	for _, e := range items {
		en := entry{
			primary:   e.Degree,
			secondary: e.Institution,
			period:    e.Period(),
			location:  e.Location,
			about:     e.Description,
		}
		if e.FieldOfStudy != "" {
			en.primary += ", " + e.FieldOfStudy
		}
		if e.Grade != "" {
			en.notes = append(en.notes, "Grade: "+e.Grade)
		}
		if props.SwapPosition {
			en.primary, en.secondary = en.secondary, en.primary
		}
		if props.IncludeIcon {
			en.icon = pdf.IconGraduation
		}
		blocks = append(blocks, spaced(ctx.entry(en, props), entryGap))
	}
	return ctx.withHeading(title, blocks)
}

func (ctx Context) entry(en entry, p Props) Block {
	if p.HideDate {
		en.period = ""
	}
	if p.HideAddress {
		en.location = ""
	}
	switch p.Variant {
	case VariantFlex:
		return ctx.flexEntry(en, p)
	case VariantDivider:
		return ctx.dividerEntry(en, p)
	}
	return ctx.stackedEntry(en, p)
}

// body draws the description, notes and bullets shared by every variant.
func (ctx Context) body(c *pdf.Canvas, en entry, p Props, at pagination.Cursor, width float64) pagination.Cursor {
	s := ctx.Styles
	cur := at
	for _, n := range en.notes {
		cur = below(at, c.DrawWrappedText(n, cur, width, s.Normal))
	}
	cur = drawRichText(c, en.about, cur, width, s.Normal)
	return drawList(c, en.bullets, cur, width, s.Normal, p.List)
}

func (ctx Context) stackedEntry(en entry, p Props) Block {
	return func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
		s := ctx.Styles
		cur, err := ctx.drawIconHeading(c, en.icon, en.primary, at, ctx.Width, s.SubHeader)
		if err != nil {
			return at, err
		}
		cur = below(at, c.DrawWrappedText(en.secondary, cur, ctx.Width, s.SubSubHeader))
		if cur, err = ctx.metaRow(c, cur, en, p); err != nil {
			return at, err
		}
		return ctx.body(c, en, p, cur, ctx.Width), nil
	}
}

// metaRow draws date and place on one line, with icons when asked to.
func (ctx Context) metaRow(c *pdf.Canvas, at pagination.Cursor, en entry, p Props) (pagination.Cursor, error) {
	st := ctx.Styles.Normal
	var items []layout.Item
	add := func(icon, s string) {
		if s == "" {
			return
		}
		if !p.IncludeIcon {
			icon = ""
		}
		items = append(items, iconText{icon: icon, text: s, st: st, iconColor: ctx.Styles.Icon.Color})
	}
	add(pdf.IconCalendar, en.period)
	add(pdf.IconLocation, en.location)
	if len(items) == 0 {
		return at, nil
	}
	end, err := layout.FlexWrap(c, items, at, layout.FlexConfig{Width: ctx.Width, GapX: 12, GapY: 2})
	if err != nil {
		return at, err
	}
	return pagination.Cursor{X: at.X, Y: end.Y + st.MarginBottom}, nil
}

// justifyRow spreads the non-empty texts across the width. A single text is
// simply wrapped.
func justifyRow(c *pdf.Canvas, at pagination.Cursor, width float64, texts []string, styles []style.Style) pagination.Cursor {
	var items []string
	var sts []style.Style
	for i, t := range texts {
		if t != "" {
			items = append(items, t)
			sts = append(sts, styles[i])
		}
	}
	switch len(items) {
	case 0:
		return at
	case 1:
		return below(at, c.DrawWrappedText(items[0], at, width, sts[0]))
	}
	return below(at, c.DrawJustifyItems(items, sts, at, width))
}

func (ctx Context) flexEntry(en entry, p Props) Block {
	return func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
		s := ctx.Styles
		cur := justifyRow(c, at, ctx.Width, []string{en.primary, en.period}, []style.Style{s.SubHeader, s.Normal})
		cur = justifyRow(c, cur, ctx.Width, []string{en.secondary, en.location}, []style.Style{s.SubSubHeader, s.Normal})
		return ctx.body(c, en, p, cur, ctx.Width), nil
	}
}

func (ctx Context) dividerEntry(en entry, p Props) Block {
	s := ctx.Styles
	left := func(c *pdf.Canvas, at pagination.Cursor, width float64) (pagination.Cursor, error) {
		cur := below(at, c.DrawWrappedText(en.period, at, width, s.SubHeader))
		return below(at, c.DrawWrappedText(en.location, cur, width, s.Normal)), nil
	}
	right := func(c *pdf.Canvas, at pagination.Cursor, width float64) (pagination.Cursor, error) {
		cur, err := ctx.drawIconHeading(c, en.icon, en.primary, at, width, s.SubHeader)
		if err != nil {
			return at, err
		}
		cur = below(at, c.DrawWrappedText(en.secondary, cur, width, s.SubSubHeader))
		return ctx.body(c, en, p, cur, width), nil
	}
	cfg := layout.DividerConfig{
		Width:     ctx.Width,
		LeftWidth: ctx.Width * dividerShare,
		Gap:       20,
		Rule:      s.Rule,
	}
	return func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
		return layout.VerticalDivider(c, at, cfg, left, right)
	}
}
