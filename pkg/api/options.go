package api

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/style"
)

// Options represents configuration options for the résumé generator
type Options struct {
	// Page dimensions in points
	PageWidth  float64
	PageHeight float64

	// Page paddings. Content never starts above PaddingTop and a block that
	// would pass PageHeight-PaddingBottom moves to the next page.
	PaddingTop    float64
	PaddingRight  float64
	PaddingBottom float64
	PaddingLeft   float64

	// Resource lookup for the profile image
	BaseDir       string
	ResourcePaths []string
	// StrictResources fails the render when the profile image or an icon
	// cannot be used instead of leaving it out.
	StrictResources bool

	// StyleOverrides are applied on top of the layout styles, in order.
	StyleOverrides []style.Overrides
	// StyleSheets are CSS or TOML override files, loaded like images and
	// applied after StyleOverrides.
	StyleSheets []string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
	// CreationDate pins the document dates, which makes output reproducible.
	CreationDate time.Time

	Logger *log.Logger
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns A4 with the paddings of the original layouts and a
// logger that only reports warnings.
func DefaultOptions() Options {
	return Options{
		PageWidth:     PageSizeA4Width,
		PageHeight:    PageSizeA4Height,
		PaddingTop:    pagination.DefaultTopPadding,
		PaddingRight:  pagination.DefaultSidePadding,
		PaddingBottom: pagination.DefaultBottomMargin,
		PaddingLeft:   pagination.DefaultSidePadding,
		ResourcePaths: []string{},
		Logger:        log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel, Prefix: "resumepdf"}),
	}
}

// Validate checks that the page leaves room for content.
func (o Options) Validate() error {
	if o.PageWidth <= 0 || o.PageHeight <= 0 {
		return fmt.Errorf("page size %.2fx%.2f must be positive", o.PageWidth, o.PageHeight)
	}
	for name, v := range map[string]float64{
		"top": o.PaddingTop, "right": o.PaddingRight, "bottom": o.PaddingBottom, "left": o.PaddingLeft,
	} {
		if v < 0 {
			return fmt.Errorf("%s padding %.2f must not be negative", name, v)
		}
	}
	g := o.geometry()
	if g.ContentWidth() <= 0 {
		return fmt.Errorf("side paddings leave no content width on a %.2fpt wide page", o.PageWidth)
	}
	if g.UsableHeight() <= 0 {
		return fmt.Errorf("top and bottom paddings leave no content height on a %.2fpt tall page", o.PageHeight)
	}
	return nil
}

func (o Options) geometry() pagination.Geometry {
	return pagination.Geometry{
		PageWidth:    o.PageWidth,
		PageHeight:   o.PageHeight,
		TopPadding:   o.PaddingTop,
		BottomMargin: o.PaddingBottom,
		LeftPadding:  o.PaddingLeft,
		RightPadding: o.PaddingRight,
	}
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithPadding sets the page paddings
func WithPadding(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.PaddingTop = top
		o.PaddingRight = right
		o.PaddingBottom = bottom
		o.PaddingLeft = left
	}
}

// WithBaseDir sets the directory relative image paths are resolved against
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}

// WithResourcePath adds a path to search for resources
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithStrictResources makes missing or broken resources fail the render
func WithStrictResources(strict bool) Option {
	return func(o *Options) {
		o.StrictResources = strict
	}
}

// WithStyleOverrides adds a style override table
func WithStyleOverrides(overrides style.Overrides) Option {
	return func(o *Options) {
		o.StyleOverrides = append(o.StyleOverrides, overrides)
	}
}

// WithStyleSheet adds a CSS or TOML override file by path or URL
func WithStyleSheet(ref string) Option {
	return func(o *Options) {
		o.StyleSheets = append(o.StyleSheets, ref)
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithCreationDate pins the creation and modification dates
func WithCreationDate(t time.Time) Option {
	return func(o *Options) {
		o.CreationDate = t
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Standard page sizes in points (1/72 inch)
const (
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89
	PageSizeA5Width  = 419.53
	PageSizeA5Height = 595.28

	// US Letter and Legal
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

// PageSizeByName returns the size of a named paper format: a4, a5, letter
// or legal.
func PageSizeByName(name string) (width, height float64, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a4", "":
		return PageSizeA4Width, PageSizeA4Height, nil
	case "a5":
		return PageSizeA5Width, PageSizeA5Height, nil
	case "letter":
		return PageSizeLetterWidth, PageSizeLetterHeight, nil
	case "legal":
		return PageSizeLegalWidth, PageSizeLegalHeight, nil
	}
	return 0, 0, fmt.Errorf("unknown page size %q: want a4, a5, letter or legal", name)
}
