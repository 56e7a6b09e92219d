// Package style holds the résumé style tables. Every layout starts from the
// base StyleSet of its family and overrides individual fields; user overrides
// are layered on top the same way. A zero field in an override inherits.
package style

import (
	"fmt"

	"github.com/gompdf/resumepdf/internal/parser/css"
)

// Font style names. The empty string inherits.
const (
	FontNormal     = "normal"
	FontBold       = "bold"
	FontItalic     = "italic"
	FontBoldItalic = "bolditalic"
)

// Text alignment. The empty string inherits.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Text transforms. The empty string inherits.
const (
	TransformNone      = "none"
	TransformUppercase = "uppercase"
)

// Color is an RGB colour. Valid distinguishes black from "not set".
type Color struct {
	R, G, B int
	Valid   bool
}

// RGB returns a set colour.
func RGB(r, g, b int) Color { return Color{R: r, G: g, B: b, Valid: true} }

// Hex parses a CSS colour and panics on error. It is meant for the static
// tables in this package.
func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses any colour accepted by the CSS value parser.
func ParseColor(s string) (Color, error) {
	v, err := css.ParseColor(s)
	if err != nil {
		return Color{}, err
	}
	return RGB(v[0], v[1], v[2]), nil
}

// String returns the colour as #rrggbb.
func (c Color) String() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Font selects one of the PDF core fonts.
type Font struct {
	Family string
	Style  string
}

// PDFStyle returns the style as fpdf expects it ("", "B", "I", "BI").
func (f Font) PDFStyle() string {
	switch f.Style {
	case FontBold:
		return "B"
	case FontItalic:
		return "I"
	case FontBoldItalic:
		return "BI"
	}
	return ""
}

// Style describes how one kind of element is drawn.
type Style struct {
	Font      Font
	FontSize  float64
	Color     Color
	FillColor Color
	DrawColor Color
	LineWidth float64
	Align     string
	// LineHeight is a multiple of FontSize.
	LineHeight    float64
	MarginBottom  float64
	TextTransform string
	// Radius rounds the corners of filled shapes (tags, progress bars).
	Radius float64
	// Height fixes the height of shapes such as progress bars.
	Height float64
}

// Merge returns s with every set field of o applied.
func (s Style) Merge(o Style) Style {
	if o.Font.Family != "" {
		s.Font.Family = o.Font.Family
	}
	if o.Font.Style != "" {
		s.Font.Style = o.Font.Style
	}
	if o.FontSize != 0 {
		s.FontSize = o.FontSize
	}
	if o.Color.Valid {
		s.Color = o.Color
	}
	if o.FillColor.Valid {
		s.FillColor = o.FillColor
	}
	if o.DrawColor.Valid {
		s.DrawColor = o.DrawColor
	}
	if o.LineWidth != 0 {
		s.LineWidth = o.LineWidth
	}
	if o.Align != "" {
		s.Align = o.Align
	}
	if o.LineHeight != 0 {
		s.LineHeight = o.LineHeight
	}
	if o.MarginBottom != 0 {
		s.MarginBottom = o.MarginBottom
	}
	if o.TextTransform != "" {
		s.TextTransform = o.TextTransform
	}
	if o.Radius != 0 {
		s.Radius = o.Radius
	}
	if o.Height != 0 {
		s.Height = o.Height
	}
	return s
}

// Leading is the distance between two baselines.
func (s Style) Leading() float64 {
	lh := s.LineHeight
	if lh <= 0 {
		lh = 1.2
	}
	return s.FontSize * lh
}

// StyleSet is the full set of styles a layout uses.
type StyleSet struct {
	Name         Style
	Profession   Style
	Contact      Style
	Header       Style
	SubHeader    Style
	SubSubHeader Style
	Normal       Style
	HeaderBg     Style
	NameInitial  Style
	Tag          Style
	ProgressBar  Style
	ProgressBack Style
	Icon         Style
	Rule         Style
}

// Merge applies o on top of s slot by slot.
func Merge(s, o StyleSet) StyleSet {
	for name, slot := range s.slots() {
		*slot = slot.Merge(*o.slots()[name])
	}
	return s
}

// Slot returns the style stored under a slot name, as used in override files.
func (s *StyleSet) Slot(name string) (*Style, bool) {
	st, ok := s.slots()[name]
	return st, ok
}

// SlotNames lists the slot names accepted in override files.
func SlotNames() []string {
	return []string{
		"name", "profession", "contact", "header", "subheader", "subsubheader", "normal",
		"headerbg", "initials", "tag", "progress", "progressback", "icon", "rule",
	}
}

func (s *StyleSet) slots() map[string]*Style {
	return map[string]*Style{
		"name":         &s.Name,
		"profession":   &s.Profession,
		"contact":      &s.Contact,
		"header":       &s.Header,
		"subheader":    &s.SubHeader,
		"subsubheader": &s.SubSubHeader,
		"normal":       &s.Normal,
		"headerbg":     &s.HeaderBg,
		"initials":     &s.NameInitial,
		"tag":          &s.Tag,
		"progress":     &s.ProgressBar,
		"progressback": &s.ProgressBack,
		"icon":         &s.Icon,
		"rule":         &s.Rule,
	}
}
