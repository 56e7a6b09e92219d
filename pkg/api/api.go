package api

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/preset"
	"github.com/gompdf/resumepdf/internal/render/pdf"
	"github.com/gompdf/resumepdf/internal/res"
	"github.com/gompdf/resumepdf/internal/resume"
	"github.com/gompdf/resumepdf/internal/section"
	"github.com/gompdf/resumepdf/internal/style"
	"github.com/gompdf/resumepdf/pkg/errors"
)

// producer is written to the document info.
const producer = "resumepdf"

// sectionGap is added after every section that drew something.
const sectionGap = 5

// Generator is the main API for rendering résumés to PDF. A Generator may be
// used from several goroutines; every call renders its own document.
type Generator struct {
	options Options
	loader  *res.Loader
}

// Result describes a rendered document.
type Result struct {
	Layout style.Key
	Pages  int
}

// New creates a new generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new generator with the specified options
func NewWithOptions(options Options) *Generator {
	loader := res.NewLoader(options.BaseDir)
	for _, path := range options.ResourcePaths {
		loader.AddSearchPath(path)
	}
	return &Generator{options: options, loader: loader}
}

// WithOption returns a new generator with the specified option set
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options
	newOptions.ResourcePaths = append([]string(nil), g.options.ResourcePaths...)
	newOptions.StyleOverrides = append([]style.Overrides(nil), g.options.StyleOverrides...)
	newOptions.StyleSheets = append([]string(nil), g.options.StyleSheets...)
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// Options returns a copy of the generator options.
func (g *Generator) Options() Options { return g.options }

// Loader returns the resource loader, e.g. to swap its HTTP client.
func (g *Generator) Loader() *res.Loader { return g.loader }

// Generate renders r with the layout key and writes the PDF to w.
func (g *Generator) Generate(r resume.Resume, key style.Key, w io.Writer) (*Result, error) {
	doc, result, err := g.render(r, key)
	if err != nil {
		return nil, err
	}
	if err := doc.Output(w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to write PDF")
	}
	return result, nil
}

// GenerateFile renders r to a file.
func (g *Generator) GenerateFile(r resume.Resume, key style.Key, path string) (*Result, error) {
	doc, result, err := g.render(r, key)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to create %s", path)
	}
	if err := doc.Output(f); err != nil {
		f.Close()
		return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to close %s", path)
	}
	return result, nil
}

// GenerateBytes renders r and returns the PDF.
func (g *Generator) GenerateBytes(r resume.Resume, key style.Key) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := g.Generate(r, key, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// render lays out the whole document: the header first, then every section
// of the layout in order, each block measured before it is committed.
func (g *Generator) render(r resume.Resume, key style.Key) (*pdf.Canvas, *Result, error) {
	opts := g.options
	logger := opts.Logger
	if err := opts.Validate(); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	if err := r.Validate(); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid resume")
	}
	r = r.WithDefaults()

	layout, err := preset.Lookup(key)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "unknown layout %s", key)
	}
	if layout.Styles, err = g.styles(key); err != nil {
		return nil, nil, err
	}

	geom := opts.geometry()
	engine := pagination.NewEngine()
	engine.SetOptions(pagination.Options{Geometry: geom, Logger: logger})

	title := opts.Title
	if title == "" {
		title = r.PersonalDetails.Name
	}
	author := opts.Author
	if author == "" {
		author = r.PersonalDetails.Name
	}
	doc := pdf.New(pdf.Options{
		PageWidth:       geom.PageWidth,
		PageHeight:      geom.PageHeight,
		Title:           title,
		Author:          author,
		Subject:         opts.Subject,
		Keywords:        opts.Keywords,
		Creator:         producer,
		Producer:        producer,
		CreationDate:    opts.CreationDate,
		Logger:          logger,
		StrictResources: opts.StrictResources,
	})
	pass := &pagination.Pass[*pdf.Canvas]{
		Engine:  engine,
		Canvas:  doc,
		Scratch: func() *pdf.Canvas { return pdf.NewMeasureCanvas(geom.PageWidth) },
		NewPage: func(c *pdf.Canvas) { c.AddPage() },
	}
	ctx := section.Context{Styles: layout.Styles, Width: geom.ContentWidth()}

	image, err := g.profileImage(r.PersonalDetails, layout.Header)
	if err != nil {
		return nil, nil, err
	}
	if _, err := pass.Commit(section.Header(ctx, r.PersonalDetails, layout.Header, image)); err != nil {
		return nil, nil, drawError(err, "header")
	}

	for _, spec := range layout.Sections {
		blocks, err := section.Build(ctx, spec.Kind, spec.Title, spec.Props, r)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "layout %s", key)
		}
		for _, b := range blocks {
			if _, err := pass.Commit(b); err != nil {
				return nil, nil, drawError(err, "section %s", spec.Kind)
			}
		}
		if len(blocks) > 0 {
			cur := engine.Cursor()
			engine.MoveTo(pagination.Cursor{X: cur.X, Y: cur.Y + sectionGap})
		}
	}

	if err := doc.Err(); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeRender, err, "failed to render %s", key)
	}
	if logger != nil {
		logger.Debug("document rendered", "layout", key.String(), "pages", doc.PageCount())
	}
	return doc, &Result{Layout: key, Pages: doc.PageCount()}, nil
}

// drawError codes a block failure: strict resource failures are RESOURCE,
// everything else RENDER.
func drawError(err error, format string, args ...any) error {
	if stderrors.Is(err, pdf.ErrResource) {
		return errors.Wrap(errors.ErrCodeResource, err, format, args...)
	}
	return errors.Wrap(errors.ErrCodeRender, err, format, args...)
}

// styles resolves the style set of key with every override layer applied.
func (g *Generator) styles(key style.Key) (style.StyleSet, error) {
	cascade := style.NewCascade()
	add := func(o style.Overrides, from string) error {
		set, err := o.StyleSet()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid style overrides in %s", from)
		}
		cascade.AddOverrides(set)
		return nil
	}
	for i, o := range g.options.StyleOverrides {
		if err := add(o, fmt.Sprintf("override table %d", i+1)); err != nil {
			return style.StyleSet{}, err
		}
	}
	for _, ref := range g.options.StyleSheets {
		o, err := g.loadStyleSheet(ref)
		if err != nil {
			return style.StyleSet{}, err
		}
		if err := add(o, ref); err != nil {
			return style.StyleSet{}, err
		}
	}
	set, err := cascade.Resolve(key)
	if err != nil {
		return style.StyleSet{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "unknown layout %s", key)
	}
	return set, nil
}

func (g *Generator) loadStyleSheet(ref string) (style.Overrides, error) {
	resrc, err := g.loader.LoadStyle(ref)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResource, err, "failed to load style sheet")
	}
	var o style.Overrides
	if resrc.MimeType == "application/toml" || strings.HasSuffix(strings.ToLower(ref), ".toml") {
		o, err = style.DecodeOverrides(bytes.NewReader(resrc.Data))
	} else {
		o, err = style.ParseOverrideSheet(string(resrc.Data))
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid style sheet %s", ref)
	}
	return o, nil
}

// profileImage loads the profile picture when the layout shows one. A
// failure is a warning unless resources are strict.
func (g *Generator) profileImage(p resume.PersonalDetails, props section.HeaderProps) ([]byte, error) {
	ref := p.ProfileImage()
	if !props.ShowImage || ref == "" {
		return nil, nil
	}
	resrc, err := g.loader.LoadImage(ref)
	if err != nil {
		if g.options.StrictResources {
			return nil, errors.Wrap(errors.ErrCodeResource, err, "failed to load profile image")
		}
		if g.options.Logger != nil {
			g.options.Logger.Warn("skipping profile image", "err", err)
		}
		return nil, nil
	}
	return resrc.Data, nil
}
