package section

import (
	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/render/pdf"
	"github.com/gompdf/resumepdf/internal/style"
)

// iconText is a single line of text with an optional leading icon and an
// optional link over the whole item.
type iconText struct {
	icon      string
	text      string
	link      string
	st        style.Style
	iconColor style.Color
}

func (t iconText) Size(c *pdf.Canvas) (float64, float64) {
	if t.icon != "" {
		return c.IconTextWidth(t.text, t.st), t.st.Leading()
	}
	return c.StringWidth(t.text, t.st), t.st.Leading()
}

func (t iconText) Draw(c *pdf.Canvas, at pagination.Cursor) error {
	w, h := t.Size(c)
	st := t.st
	st.Align = style.AlignLeft
	if t.icon != "" {
		if _, err := c.DrawTextWithIcon(t.icon, t.text, at, st, t.iconColor); err != nil {
			return err
		}
	} else {
		c.DrawStyledText(t.text, at, 0, st)
	}
	c.Link(at.X, at.Y, w, h, t.link)
	return nil
}

// tag is a skill drawn as a filled pill.
type tag struct {
	text string
	st   style.Style
}

func (t tag) Size(c *pdf.Canvas) (float64, float64) { return c.TagSize(t.text, t.st) }

func (t tag) Draw(c *pdf.Canvas, at pagination.Cursor) error {
	c.DrawTag(t.text, at, t.st)
	return nil
}
