package pagination

// Cursor is the current write position on the active page, in points.
type Cursor struct {
	X float64
	Y float64
}

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch)
var (
	PageSizeA4     = PageSize{Width: 595.28, Height: 841.89, Name: "A4"}
	PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 612.00, Height: 1008.00, Name: "Legal"}
)

// Defaults used by the original résumé layouts.
const (
	DefaultTopPadding   = 40
	DefaultBottomMargin = 30
	DefaultSidePadding  = 40
)

// Geometry describes the fixed page metrics of one document.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	TopPadding   float64
	BottomMargin float64
	LeftPadding  float64
	RightPadding float64
}

// DefaultGeometry returns A4 geometry with the default paddings.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:    PageSizeA4.Width,
		PageHeight:   PageSizeA4.Height,
		TopPadding:   DefaultTopPadding,
		BottomMargin: DefaultBottomMargin,
		LeftPadding:  DefaultSidePadding,
		RightPadding: DefaultSidePadding,
	}
}

// Limit is the lowest Y a block may reach on a page.
func (g Geometry) Limit() float64 {
	return g.PageHeight - g.BottomMargin
}

// UsableHeight is the tallest block that fits on an empty page.
func (g Geometry) UsableHeight() float64 {
	return g.PageHeight - g.TopPadding - g.BottomMargin
}

// ContentWidth is the page width between the side paddings.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.LeftPadding - g.RightPadding
}

// AdvanceOrBreak decides whether a block of requiredHeight fits below cur.
// When it does not, the returned cursor sits at the top padding of a new
// page and broke is true; the caller must start that page in the output.
// Negative heights are treated as zero. Y past Limit, as left by a block
// taller than a page, breaks even for a zero height.
func AdvanceOrBreak(cur Cursor, g Geometry, requiredHeight float64) (next Cursor, broke bool) {
	if requiredHeight < 0 {
		requiredHeight = 0
	}
	if cur.Y+requiredHeight > g.Limit() {
		return Cursor{X: cur.X, Y: g.TopPadding}, true
	}
	return cur, false
}
