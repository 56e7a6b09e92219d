// Package pdf draws résumé content on an fpdf document. All coordinates are
// in points with the origin at the top-left corner of the page. Text
// positions passed to the Draw* helpers are the top of the line box; the
// returned cursor is the top of the next line.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/charmbracelet/log"

	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/style"
	"github.com/gompdf/resumepdf/internal/text"
)

// ErrResource marks image and icon failures returned in strict mode.
var ErrResource = errors.New("resource unavailable")

// MeasureHeight is the page height of measuring canvases. It only needs to
// be taller than anything that is measured.
const MeasureHeight = 1_000_000

// Options configures a real output canvas.
type Options struct {
	PageWidth  float64
	PageHeight float64

	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	// CreationDate is written to the document info when set, and resources
	// are then written in a stable order. Leave it zero to let fpdf use the
	// current time.
	CreationDate time.Time

	Logger *log.Logger
	// StrictResources turns image and icon failures into errors instead of
	// warnings.
	StrictResources bool
}

// Canvas is one fpdf document plus the per-document caches the drawing
// helpers need.
type Canvas struct {
	pdf       *fpdf.Fpdf
	tr        func(string) string
	width     float64
	height    float64
	measuring bool

	logger *log.Logger
	strict bool

	// images maps a resource reference to its registered name.
	images map[string]string
	// icons maps name+colour to a registered image name.
	icons map[string]string
}

// New creates an output canvas with its first page already started.
func New(opts Options) *Canvas {
	c := newCanvas(opts.PageWidth, opts.PageHeight)
	c.logger = opts.Logger
	c.strict = opts.StrictResources

	c.pdf.SetTitle(opts.Title, true)
	c.pdf.SetAuthor(opts.Author, true)
	c.pdf.SetSubject(opts.Subject, true)
	c.pdf.SetKeywords(opts.Keywords, true)
	c.pdf.SetCreator(opts.Creator, true)
	c.pdf.SetProducer(opts.Producer, true)
	if !opts.CreationDate.IsZero() {
		c.pdf.SetCreationDate(opts.CreationDate)
		c.pdf.SetModificationDate(opts.CreationDate)
		c.pdf.SetCatalogSort(true)
	}
	c.pdf.AddPage()
	return c
}

// NewMeasureCanvas returns a throwaway canvas of the given width and
// effectively infinite height. Images and icons are laid out but not
// embedded, and links are not recorded.
func NewMeasureCanvas(width float64) *Canvas {
	c := newCanvas(width, MeasureHeight)
	c.measuring = true
	c.pdf.AddPage()
	return c
}

func newCanvas(w, h float64) *Canvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	return &Canvas{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		width:  w,
		height: h,
		images: map[string]string{},
		icons:  map[string]string{},
	}
}

// Size returns the page size.
func (c *Canvas) Size() (float64, float64) { return c.width, c.height }

// Measuring reports whether c is a measuring canvas.
func (c *Canvas) Measuring() bool { return c.measuring }

// AddPage starts a new page.
func (c *Canvas) AddPage() { c.pdf.AddPage() }

// PageCount returns the number of pages started.
func (c *Canvas) PageCount() int { return c.pdf.PageCount() }

// Err returns the first drawing error fpdf recorded, if any.
func (c *Canvas) Err() error { return c.pdf.Error() }

// Output writes the document.
func (c *Canvas) Output(w io.Writer) error {
	if err := c.pdf.Error(); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// ApplyStyle sets font, size and colours on the document.
func (c *Canvas) ApplyStyle(st style.Style) {
	family := st.Font.Family
	if family == "" {
		family = "Helvetica"
	}
	size := st.FontSize
	if size <= 0 {
		size = 10
	}
	c.pdf.SetFont(family, st.Font.PDFStyle(), size)
	if st.Color.Valid {
		c.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	} else {
		c.pdf.SetTextColor(0, 0, 0)
	}
	if st.FillColor.Valid {
		c.pdf.SetFillColor(st.FillColor.R, st.FillColor.G, st.FillColor.B)
	}
	if st.DrawColor.Valid {
		c.pdf.SetDrawColor(st.DrawColor.R, st.DrawColor.G, st.DrawColor.B)
	}
	if st.LineWidth > 0 {
		c.pdf.SetLineWidth(st.LineWidth)
	}
}

// prepare applies the text transform of st and normalises s.
func prepare(s string, st style.Style) string {
	s = text.Normalize(s)
	if st.TextTransform == style.TransformUppercase {
		s = strings.ToUpper(s)
	}
	return s
}

// StringWidth returns the width of a single line of s drawn in st.
func (c *Canvas) StringWidth(s string, st style.Style) float64 {
	c.ApplyStyle(st)
	return c.pdf.GetStringWidth(c.tr(prepare(s, st)))
}

// Measurer returns a width function for the font of st. The style must not
// change on the canvas while the measurer is in use.
func (c *Canvas) Measurer(st style.Style) text.Measurer {
	c.ApplyStyle(st)
	return func(s string) float64 { return c.pdf.GetStringWidth(c.tr(s)) }
}

// baseline returns the baseline of a line whose box starts at top.
func baseline(top float64, st style.Style) float64 {
	size := st.FontSize
	if size <= 0 {
		size = 10
	}
	return top + (st.Leading()-size)/2 + 0.8*size
}

// line draws one prepared line inside [x, x+width] and returns its width.
func (c *Canvas) line(s string, x, top, width float64, st style.Style) float64 {
	encoded := c.tr(s)
	w := c.pdf.GetStringWidth(encoded)
	startX := x
	if width > 0 {
		switch st.Align {
		case style.AlignCenter:
			startX = x + (width-w)/2
		case style.AlignRight:
			startX = x + width - w
		}
		if startX < x {
			startX = x
		}
	}
	if s != "" {
		c.pdf.Text(startX, baseline(top, st), encoded)
	}
	return startX + w
}

// DrawStyledText draws s on one line, aligned inside width (0 means left
// aligned at X), and returns the end of the text and the top of the next
// line.
func (c *Canvas) DrawStyledText(s string, at pagination.Cursor, width float64, st style.Style) pagination.Cursor {
	s = strings.ReplaceAll(prepare(s, st), "\n", " ")
	if s == "" {
		return at
	}
	c.ApplyStyle(st)
	end := c.line(s, at.X, at.Y, width, st)
	return pagination.Cursor{X: end, Y: at.Y + st.Leading() + st.MarginBottom}
}

// DrawWrappedText draws s wrapped to width. Blank lines in s are kept.
func (c *Canvas) DrawWrappedText(s string, at pagination.Cursor, width float64, st style.Style) pagination.Cursor {
	s = prepare(s, st)
	if s == "" {
		return at
	}
	measure := c.Measurer(st)
	y := at.Y
	endX := at.X
	for _, l := range text.Wrap(s, width, measure) {
		endX = c.line(l, at.X, y, width, st)
		y += st.Leading()
	}
	return pagination.Cursor{X: endX, Y: y + st.MarginBottom}
}

// DrawBulletText draws s as a list item with a round bullet and a hanging
// indent.
func (c *Canvas) DrawBulletText(s string, at pagination.Cursor, width float64, st style.Style) pagination.Cursor {
	return c.drawListItem("", s, at, width, st)
}

// DrawNumberedText draws s as the n-th item of an ordered list.
func (c *Canvas) DrawNumberedText(n int, s string, at pagination.Cursor, width float64, st style.Style) pagination.Cursor {
	return c.drawListItem(fmt.Sprintf("%d.", n), s, at, width, st)
}

func (c *Canvas) drawListItem(marker, s string, at pagination.Cursor, width float64, st style.Style) pagination.Cursor {
	s = prepare(s, st)
	if s == "" {
		return at
	}
	indent := st.FontSize * 1.2
	if marker != "" {
		indent = c.StringWidth(marker, st) + st.FontSize*0.5
	}
	body := st
	body.Align = style.AlignLeft
	end := c.DrawWrappedText(s, pagination.Cursor{X: at.X + indent, Y: at.Y}, width-indent, body)

	c.ApplyStyle(st)
	if marker == "" {
		r := st.FontSize * 0.16
		if r < 1 {
			r = 1
		}
		if st.Color.Valid {
			c.pdf.SetFillColor(st.Color.R, st.Color.G, st.Color.B)
		} else {
			c.pdf.SetFillColor(0, 0, 0)
		}
		c.pdf.Circle(at.X+indent/2-r, at.Y+st.Leading()/2, r, "F")
	} else {
		c.pdf.Text(at.X, baseline(at.Y, st), c.tr(marker))
	}
	return pagination.Cursor{X: at.X, Y: end.Y}
}

// DrawJustifyItems spreads items across width on one row: the first is
// left aligned, the last right aligned and the rest evenly spaced. styles
// is indexed like items; the last style is reused when it is shorter.
func (c *Canvas) DrawJustifyItems(items []string, styles []style.Style, at pagination.Cursor, width float64) pagination.Cursor {
	if len(items) == 0 || len(styles) == 0 {
		return at
	}
	styleAt := func(i int) style.Style {
		if i < len(styles) {
			return styles[i]
		}
		return styles[len(styles)-1]
	}

	widths := make([]float64, len(items))
	total, rowHeight := 0.0, 0.0
	for i, it := range items {
		st := styleAt(i)
		widths[i] = c.StringWidth(it, st)
		total += widths[i]
		if h := st.Leading() + st.MarginBottom; h > rowHeight {
			rowHeight = h
		}
	}

	gap := 0.0
	if len(items) > 1 {
		gap = (width - total) / float64(len(items)-1)
	}
	if gap < 0 {
		// Not enough room: fall back to one item per line.
		y := at.Y
		for i, it := range items {
			y = c.DrawWrappedText(it, pagination.Cursor{X: at.X, Y: y}, width, plain(styleAt(i))).Y
		}
		return pagination.Cursor{X: at.X, Y: y}
	}

	x := at.X
	for i, it := range items {
		st := plain(styleAt(i))
		c.ApplyStyle(st)
		c.line(prepare(it, st), x, at.Y+(rowHeight-st.Leading()-st.MarginBottom)/2, 0, st)
		x += widths[i] + gap
	}
	return pagination.Cursor{X: at.X + width, Y: at.Y + rowHeight}
}

// plain drops alignment so the caller controls x.
func plain(st style.Style) style.Style {
	st.Align = style.AlignLeft
	return st
}

// paintStyle returns the fpdf paint style for st: fill, stroke or both.
func paintStyle(st style.Style) string {
	switch {
	case st.FillColor.Valid && st.DrawColor.Valid:
		return "FD"
	case st.FillColor.Valid:
		return "F"
	default:
		return "D"
	}
}

// DrawLine draws a line with the draw colour and width of st.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, st style.Style) {
	c.ApplyStyle(st)
	c.pdf.Line(x1, y1, x2, y2)
}

// DrawRect draws a rectangle filled and/or stroked according to st.
func (c *Canvas) DrawRect(x, y, w, h float64, st style.Style) {
	c.ApplyStyle(st)
	c.pdf.Rect(x, y, w, h, paintStyle(st))
}

// DrawRoundedRect draws a rectangle with all four corners rounded by r.
func (c *Canvas) DrawRoundedRect(x, y, w, h, r float64, st style.Style) {
	if r <= 0 {
		c.DrawRect(x, y, w, h, st)
		return
	}
	if r > h/2 {
		r = h / 2
	}
	if r > w/2 {
		r = w / 2
	}
	c.ApplyStyle(st)
	c.pdf.RoundedRect(x, y, w, h, r, "1234", paintStyle(st))
}

// DrawCircle draws a circle centred on (x, y).
func (c *Canvas) DrawCircle(x, y, r float64, st style.Style) {
	c.ApplyStyle(st)
	c.pdf.Circle(x, y, r, paintStyle(st))
}

// Link makes a rectangle of the current page point to url.
func (c *Canvas) Link(x, y, w, h float64, url string) {
	if c.measuring || url == "" {
		return
	}
	c.pdf.LinkString(x, y, w, h, url)
}

// Tag padding around the label.
const (
	tagPadX = 5
	tagPadY = 2.5
)

// TagSize returns the box size of a tag.
func (c *Canvas) TagSize(s string, st style.Style) (float64, float64) {
	return c.StringWidth(s, st) + 2*tagPadX, st.FontSize + 2*tagPadY
}

// DrawTag draws s inside a rounded, filled box and returns the bottom-right
// corner of the box.
func (c *Canvas) DrawTag(s string, at pagination.Cursor, st style.Style) pagination.Cursor {
	w, h := c.TagSize(s, st)
	if st.FillColor.Valid {
		box := st
		box.DrawColor = style.Color{}
		c.DrawRoundedRect(at.X, at.Y, w, h, st.Radius, box)
	}
	label := plain(st)
	label.LineHeight = h / st.FontSize
	c.ApplyStyle(label)
	c.line(prepare(s, st), at.X+tagPadX, at.Y, 0, label)
	return pagination.Cursor{X: at.X + w, Y: at.Y + h}
}

// DrawProgressBar draws label on the left third of the row and a bar filled
// to percent on the rest.
func (c *Canvas) DrawProgressBar(label string, percent float64, at pagination.Cursor, width float64, labelSt, bar, back style.Style) pagination.Cursor {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	labelW := width / 3
	c.DrawStyledText(label, at, labelW, plain(labelSt))

	rowH := labelSt.Leading()
	barH := bar.Height
	if barH <= 0 {
		barH = 4
	}
	barX := at.X + labelW + 6
	barW := width - labelW - 6
	barY := at.Y + (rowH-barH)/2
	if back.FillColor.Valid {
		c.DrawRoundedRect(barX, barY, barW, barH, bar.Radius, style.Style{FillColor: back.FillColor})
	}
	if percent > 0 {
		c.DrawRoundedRect(barX, barY, barW*percent/100, barH, bar.Radius, style.Style{FillColor: bar.FillColor})
	}
	return pagination.Cursor{X: at.X + width, Y: at.Y + rowH + bar.MarginBottom + labelSt.MarginBottom}
}

// ResourceFailed reports a failed optional resource: a warning by default,
// an error in strict mode.
func (c *Canvas) ResourceFailed(what string, err error) error {
	if c.strict {
		return fmt.Errorf("%s: %w: %w", what, ErrResource, err)
	}
	if c.logger != nil {
		c.logger.Warn("skipping "+what, "err", err)
	}
	return nil
}
