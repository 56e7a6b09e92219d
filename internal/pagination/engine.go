package pagination

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Options represents options for the pagination engine
type Options struct {
	Geometry Geometry
	Logger   *log.Logger
}

// Engine tracks the cursor of a single rendering pass.
type Engine struct {
	options Options
	cursor  Cursor
	pages   int
}

// NewEngine creates an engine on A4 with default paddings, positioned at the
// top of the first page.
func NewEngine() *Engine {
	e := &Engine{}
	e.SetOptions(Options{Geometry: DefaultGeometry()})
	return e
}

// SetOptions sets the options for the pagination engine and rewinds the cursor.
func (e *Engine) SetOptions(options Options) {
	e.options = options
	e.Reset()
}

// Geometry returns the page geometry in use.
func (e *Engine) Geometry() Geometry { return e.options.Geometry }

// Cursor returns the current write position.
func (e *Engine) Cursor() Cursor { return e.cursor }

// Pages returns the number of pages started so far.
func (e *Engine) Pages() int { return e.pages }

// Reset moves the cursor to the top-left of a fresh first page.
func (e *Engine) Reset() {
	e.cursor = Cursor{X: e.options.Geometry.LeftPadding, Y: e.options.Geometry.TopPadding}
	e.pages = 1
}

// MoveTo sets the cursor explicitly, e.g. after a header of known height.
func (e *Engine) MoveTo(c Cursor) { e.cursor = c }

// Place reserves room for a block of the given height. It reports whether a
// page break was needed; the cursor is updated either way.
func (e *Engine) Place(height float64) (Cursor, bool) {
	g := e.options.Geometry
	if height > g.UsableHeight() && e.options.Logger != nil {
		e.options.Logger.Warn("block taller than a page, it will be clipped",
			"height", fmt.Sprintf("%.1f", height), "usable", fmt.Sprintf("%.1f", g.UsableHeight()))
	}
	next, broke := AdvanceOrBreak(e.cursor, g, height)
	if broke {
		e.pages++
		if e.options.Logger != nil {
			e.options.Logger.Debug("page break", "page", e.pages, "from", fmt.Sprintf("%.1f", e.cursor.Y), "need", fmt.Sprintf("%.1f", height))
		}
	}
	e.cursor = next
	return next, broke
}

// Block draws itself on c starting at at and returns the position where it
// ended.
type Block[C any] func(c C, at Cursor) (Cursor, error)

// Chain draws blocks one after another as a single block. It is used to keep
// a section heading together with its first entry.
func Chain[C any](blocks ...Block[C]) Block[C] {
	return func(c C, at Cursor) (Cursor, error) {
		cur := at
		for _, b := range blocks {
			if b == nil {
				continue
			}
			next, err := b(c, cur)
			if err != nil {
				return cur, err
			}
			cur = next
		}
		return cur, nil
	}
}

// Pass binds an engine to the real output canvas and a factory for scratch
// canvases used to measure blocks before committing them.
type Pass[C any] struct {
	Engine *Engine
	// Canvas is the real output.
	Canvas C
	// Scratch returns a fresh, effectively infinitely tall canvas with the
	// same width as Canvas.
	Scratch func() C
	// NewPage starts a new page on Canvas.
	NewPage func(C)
}

// Measure draws block on a throwaway canvas and returns how far it moved the
// cursor down.
func (p *Pass[C]) Measure(block Block[C]) (float64, error) {
	start := p.Engine.Cursor()
	end, err := block(p.Scratch(), start)
	if err != nil {
		return 0, fmt.Errorf("measure block: %w", err)
	}
	h := end.Y - start.Y
	if h < 0 {
		h = 0
	}
	return h, nil
}

// Commit measures block, inserts a page break on the real canvas when it would
// overflow, draws it for real and advances the cursor to where it ended.
func (p *Pass[C]) Commit(block Block[C]) (Cursor, error) {
	height, err := p.Measure(block)
	if err != nil {
		return p.Engine.Cursor(), err
	}
	at, broke := p.Engine.Place(height)
	if broke && p.NewPage != nil {
		p.NewPage(p.Canvas)
	}
	end, err := block(p.Canvas, at)
	if err != nil {
		return at, fmt.Errorf("draw block: %w", err)
	}
	if p.Engine.options.Logger != nil {
		p.Engine.options.Logger.Debug("block committed", "page", p.Engine.pages,
			"y", fmt.Sprintf("%.1f", at.Y), "height", fmt.Sprintf("%.1f", height))
	}
	p.Engine.MoveTo(Cursor{X: at.X, Y: end.Y})
	return p.Engine.Cursor(), nil
}
