package pagination

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioGeometry() Geometry {
	return Geometry{PageWidth: 600, PageHeight: 800, TopPadding: 40, BottomMargin: 30, LeftPadding: 20, RightPadding: 20}
}

func TestAdvanceOrBreakScenarios(t *testing.T) {
	g := scenarioGeometry()
	tests := []struct {
		name      string
		y         float64
		height    float64
		wantY     float64
		wantBreak bool
	}{
		{name: "overflow near bottom", y: 750, height: 50, wantY: 40, wantBreak: true},
		{name: "fits mid page", y: 400, height: 50, wantY: 400, wantBreak: false},
		{name: "exactly at limit", y: 720, height: 50, wantY: 720, wantBreak: false},
		{name: "one point past limit", y: 721, height: 50, wantY: 40, wantBreak: true},
		{name: "negative height clamps", y: 400, height: -10, wantY: 400, wantBreak: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, broke := AdvanceOrBreak(Cursor{X: 20, Y: tt.y}, g, tt.height)
			assert.Equal(t, tt.wantBreak, broke)
			assert.Equal(t, tt.wantY, next.Y)
			assert.Equal(t, 20.0, next.X)
		})
	}
}

func TestAdvanceOrBreakNeverBreaksFromTopWhenBlockFits(t *testing.T) {
	g := scenarioGeometry()
	for h := 0.0; h <= g.UsableHeight(); h += 0.5 {
		_, broke := AdvanceOrBreak(Cursor{Y: g.TopPadding}, g, h)
		require.False(t, broke, "height %.1f broke from top", h)
	}
}

func TestAdvanceOrBreakResetsToTopPadding(t *testing.T) {
	g := scenarioGeometry()
	for _, y := range []float64{100, 500, 769, 790, 2000} {
		next, broke := AdvanceOrBreak(Cursor{Y: y}, g, g.UsableHeight())
		require.True(t, broke, "y %.1f", y)
		assert.Equal(t, g.TopPadding, next.Y)
	}
}

func TestAdvanceOrBreakZeroHeightIsIdentity(t *testing.T) {
	g := scenarioGeometry()
	for y := g.TopPadding; y <= g.Limit(); y += 10 {
		next, broke := AdvanceOrBreak(Cursor{X: 5, Y: y}, g, 0)
		assert.False(t, broke)
		assert.Equal(t, Cursor{X: 5, Y: y}, next)
	}
}

func TestGeometryDerivedValues(t *testing.T) {
	g := scenarioGeometry()
	assert.Equal(t, 770.0, g.Limit())
	assert.Equal(t, 730.0, g.UsableHeight())
	assert.Equal(t, 560.0, g.ContentWidth())
}

// sheet is a stand-in canvas that records what was drawn on it.
type sheet struct {
	name  string
	pages int
	drawn []float64
}

func fixedBlock(height float64) Block[*sheet] {
	return func(s *sheet, at Cursor) (Cursor, error) {
		s.drawn = append(s.drawn, at.Y)
		return Cursor{X: at.X, Y: at.Y + height}, nil
	}
}

func newPass(g Geometry) (*Pass[*sheet], *sheet, *int) {
	e := NewEngine()
	e.SetOptions(Options{Geometry: g})
	real := &sheet{name: "real", pages: 1}
	scratches := 0
	return &Pass[*sheet]{
		Engine: e,
		Canvas: real,
		Scratch: func() *sheet {
			scratches++
			return &sheet{name: "scratch"}
		},
		NewPage: func(s *sheet) { s.pages++ },
	}, real, &scratches
}

func TestPassCommitBreaksBeforeOverflowingBlock(t *testing.T) {
	p, real, scratches := newPass(scenarioGeometry())

	for i := 0; i < 3; i++ {
		_, err := p.Commit(fixedBlock(300))
		require.NoError(t, err)
	}

	assert.Equal(t, []float64{40, 340, 40}, real.drawn)
	assert.Equal(t, 2, real.pages)
	assert.Equal(t, 2, p.Engine.Pages())
	assert.Equal(t, 3, *scratches)
	assert.Equal(t, 340.0, p.Engine.Cursor().Y)
}

func TestPassMeasureIsDeterministic(t *testing.T) {
	p, real, _ := newPass(scenarioGeometry())

	a, err := p.Measure(fixedBlock(123))
	require.NoError(t, err)
	b, err := p.Measure(fixedBlock(123))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 123.0, a)
	assert.Empty(t, real.drawn, "measuring must not touch the real canvas")
}

func TestPassCommitPropagatesErrors(t *testing.T) {
	p, real, _ := newPass(scenarioGeometry())
	boom := errors.New("boom")

	_, err := p.Commit(func(s *sheet, at Cursor) (Cursor, error) { return at, boom })
	require.ErrorIs(t, err, boom)
	assert.Empty(t, real.drawn)
}

func TestChainKeepsBlocksTogether(t *testing.T) {
	p, real, _ := newPass(scenarioGeometry())
	p.Engine.MoveTo(Cursor{X: 20, Y: 700})

	_, err := p.Commit(Chain(fixedBlock(20), nil, fixedBlock(60)))
	require.NoError(t, err)

	assert.Equal(t, []float64{40, 60}, real.drawn)
	assert.Equal(t, 120.0, p.Engine.Cursor().Y)
}

func TestPassCommitOversizedBlock(t *testing.T) {
	g := scenarioGeometry()
	p, real, _ := newPass(g)
	var buf bytes.Buffer
	p.Engine.SetOptions(Options{Geometry: g, Logger: log.New(&buf)})
	p.Engine.MoveTo(Cursor{X: 20, Y: 100})

	_, err := p.Commit(fixedBlock(g.UsableHeight() + 1))
	require.NoError(t, err)

	assert.Equal(t, []float64{g.TopPadding}, real.drawn, "drawn once, not split")
	assert.Equal(t, 2, real.pages)
	assert.Equal(t, g.TopPadding+g.UsableHeight()+1, p.Engine.Cursor().Y)
	assert.Greater(t, p.Engine.Cursor().Y, g.Limit())
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "block taller than a page")

	// The cursor is past the limit, so even an empty block starts a page.
	_, broke := AdvanceOrBreak(p.Engine.Cursor(), g, 0)
	assert.True(t, broke)
}

func TestPlaceDoesNotWarnForFittingBlocks(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine()
	e.SetOptions(Options{Geometry: scenarioGeometry(), Logger: log.New(&buf)})

	_, broke := e.Place(scenarioGeometry().UsableHeight())
	assert.False(t, broke)
	assert.Empty(t, buf.String())
}
