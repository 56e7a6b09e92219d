// Package section draws the résumé sections. A section becomes an ordered
// list of pagination blocks: the heading is chained to the first entry so it
// never ends up alone at the bottom of a page, and every further entry is a
// block of its own.
package section

import (
	"fmt"

	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/parser/html"
	"github.com/gompdf/resumepdf/internal/render/pdf"
	"github.com/gompdf/resumepdf/internal/resume"
	"github.com/gompdf/resumepdf/internal/style"
)

// Block is a pagination block drawn on a PDF canvas.
type Block = pagination.Block[*pdf.Canvas]

// Kind names a section.
type Kind string

const (
	KindSummary      Kind = "summary"
	KindExperience   Kind = "experience"
	KindEducation    Kind = "education"
	KindSkills       Kind = "skills"
	KindAchievements Kind = "achievements"
	KindStrengths    Kind = "strengths"
	KindMyTime       Kind = "my_time"
)

// Variant is the arrangement of an experience or education entry.
type Variant string

const (
	// VariantStacked puts title, subtitle and meta data on separate lines.
	VariantStacked Variant = "stacked"
	// VariantFlex spreads title and date, subtitle and place across the width.
	VariantFlex Variant = "flex"
	// VariantDivider puts date and place in a narrow column left of a rule.
	VariantDivider Variant = "divider"
)

// ListStyle is how achievement lines inside an entry are marked.
type ListStyle string

const (
	ListBullet   ListStyle = "bullet"
	ListNumbered ListStyle = "numbered"
	ListPlain    ListStyle = "plain"
)

// SkillMode is how the skills section is drawn.
type SkillMode string

const (
	SkillTags     SkillMode = "tags"
	SkillProgress SkillMode = "progress"
	SkillList     SkillMode = "list"
	SkillInline   SkillMode = "inline"
)

// Props are the per-layout switches of a section. Not every field applies
// to every kind; the zero value draws a plain stacked section.
type Props struct {
	Variant      Variant
	List         ListStyle
	SwapPosition bool
	IncludeIcon  bool
	HideDate     bool
	HideAddress  bool
	// Grid arranges achievements, strengths or progress bars in Columns
	// equal columns.
	Grid    bool
	Columns int
	Skills  SkillMode
}

// Context is what every section needs to draw.
type Context struct {
	Styles style.StyleSet
	// Width is the content width between the side paddings.
	Width float64
}

const (
	// entryGap separates two entries of a section.
	entryGap = 10
	// ruleGap is the space between a heading and its underline.
	ruleGap = 3
)

// Build returns the blocks of one section of r. A section without content
// returns no blocks.
func Build(ctx Context, kind Kind, title string, props Props, r resume.Resume) ([]Block, error) {
	switch kind {
	case KindSummary:
		return Summary(ctx, title, r.Summary), nil
	case KindExperience:
		return Experience(ctx, title, props, r.Experiences), nil
	case KindEducation:
		return Education(ctx, title, props, r.Educations), nil
	case KindSkills:
		return Skills(ctx, title, props, r.Skills), nil
	case KindAchievements:
		return Achievements(ctx, title, props, r.Achievements), nil
	case KindStrengths:
		return Strengths(ctx, title, props, r.Strengths), nil
	case KindMyTime:
		return MyTime(ctx, title, r.MyTime), nil
	}
	return nil, fmt.Errorf("unknown section %q", kind)
}

// Heading draws a section title with an underline in the draw colour of the
// header style.
func (ctx Context) Heading(title string) Block {
	return func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
		st := ctx.Styles.Header
		gap := st.MarginBottom
		st.MarginBottom = 0
		y := c.DrawStyledText(title, at, ctx.Width, st).Y
		if st.DrawColor.Valid {
			y += ruleGap
			c.DrawLine(at.X, y, at.X+ctx.Width, y, style.Style{DrawColor: st.DrawColor, LineWidth: st.LineWidth})
		}
		return pagination.Cursor{X: at.X, Y: y + gap}, nil
	}
}

func (ctx Context) withHeading(title string, entries []Block) []Block {
	if len(entries) == 0 {
		return nil
	}
	if title != "" {
		entries[0] = pagination.Chain(ctx.Heading(title), entries[0])
	}
	return entries
}

// spaced adds gap below whatever b draws.
func spaced(b Block, gap float64) Block {
	return func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
		end, err := b(c, at)
		if err != nil {
			return at, err
		}
		return pagination.Cursor{X: at.X, Y: end.Y + gap}, nil
	}
}

// below returns the start of the next line under end, at the left edge of at.
func below(at, end pagination.Cursor) pagination.Cursor {
	return pagination.Cursor{X: at.X, Y: end.Y}
}

// Summary draws the summary. Each paragraph is its own block.
func Summary(ctx Context, title, summary string) []Block {
	paras := html.ParseRichText(summary)
	blocks := make([]Block, 0, len(paras))
	for _, p := range paras {
		blocks = append(blocks, func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
			return drawParagraph(c, p, at, ctx.Width, ctx.Styles.Normal), nil
		})
	}
	return ctx.withHeading(title, blocks)
}

func drawParagraph(c *pdf.Canvas, p html.Paragraph, at pagination.Cursor, width float64, st style.Style) pagination.Cursor {
	var end pagination.Cursor
	switch {
	case p.Bullet:
		end = c.DrawBulletText(p.Text, at, width, st)
	case p.Ordered:
		end = c.DrawNumberedText(p.Index, p.Text, at, width, st)
	default:
		end = c.DrawWrappedText(p.Text, at, width, st)
	}
	return below(at, end)
}

// drawRichText draws text that may contain paragraphs and lists.
func drawRichText(c *pdf.Canvas, s string, at pagination.Cursor, width float64, st style.Style) pagination.Cursor {
	cur := at
	for _, p := range html.ParseRichText(s) {
		cur = drawParagraph(c, p, cur, width, st)
	}
	return cur
}

func drawList(c *pdf.Canvas, items []string, at pagination.Cursor, width float64, st style.Style, ls ListStyle) pagination.Cursor {
	cur := at
	for i, it := range items {
		switch ls {
		case ListNumbered:
			cur = c.DrawNumberedText(i+1, it, cur, width, st)
		case ListPlain:
			cur = c.DrawWrappedText(it, cur, width, st)
		default:
			cur = c.DrawBulletText(it, cur, width, st)
		}
		cur = below(at, cur)
	}
	return cur
}

// drawIconHeading draws s wrapped to width, preceded by an icon when icon is
// not empty.
func (ctx Context) drawIconHeading(c *pdf.Canvas, icon, s string, at pagination.Cursor, width float64, st style.Style) (pagination.Cursor, error) {
	if icon == "" || s == "" {
		return below(at, c.DrawWrappedText(s, at, width, st)), nil
	}
	size := st.FontSize
	if err := c.DrawIcon(icon, at.X, at.Y+(st.Leading()-size)/2, size, ctx.Styles.Icon.Color); err != nil {
		return at, err
	}
	indent := size + 4
	end := c.DrawWrappedText(s, pagination.Cursor{X: at.X + indent, Y: at.Y}, width-indent, st)
	return below(at, end), nil
}
