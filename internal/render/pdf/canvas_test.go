package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/style"
)

const a4W, a4H = 595.28, 841.89

func body() style.Style {
	return style.Style{
		Font:       style.Font{Family: "Helvetica", Style: style.FontNormal},
		FontSize:   10,
		Color:      style.RGB(51, 51, 51),
		LineHeight: 1.5,
	}
}

var paragraph = strings.Repeat("Designed and shipped a document pipeline that renders thousands of résumés a day. ", 12)

func TestMeasureIsDeterministicAcrossCanvases(t *testing.T) {
	at := pagination.Cursor{X: 40, Y: 40}
	width := a4W - 80

	a := NewMeasureCanvas(a4W).DrawWrappedText(paragraph, at, width, body())
	b := NewMeasureCanvas(a4W).DrawWrappedText(paragraph, at, width, body())
	assert.Equal(t, a.Y, b.Y)

	// And the real canvas ends at the same place.
	doc := New(Options{PageWidth: a4W, PageHeight: a4H})
	r := doc.DrawWrappedText(paragraph, at, width, body())
	assert.Equal(t, a.Y, r.Y)
	require.NoError(t, doc.Err())
}

func TestDrawWrappedTextAdvancesByLeading(t *testing.T) {
	c := NewMeasureCanvas(a4W)
	st := body()
	st.MarginBottom = 4

	one := c.DrawWrappedText("short", pagination.Cursor{X: 0, Y: 100}, 400, st)
	assert.InDelta(t, 100+15+4, one.Y, 1e-9)

	many := c.DrawWrappedText(paragraph, pagination.Cursor{X: 0, Y: 100}, 200, st)
	lines := (many.Y - 100 - 4) / 15
	assert.Greater(t, lines, 5.0)
	assert.InDelta(t, float64(int(lines+0.5)), lines, 1e-6, "height is a whole number of lines")

	same := c.DrawWrappedText("", pagination.Cursor{X: 3, Y: 7}, 200, st)
	assert.Equal(t, pagination.Cursor{X: 3, Y: 7}, same)
}

func TestStringWidthHonoursTransform(t *testing.T) {
	c := NewMeasureCanvas(a4W)
	st := body()
	lower := c.StringWidth("experience", st)
	st.TextTransform = style.TransformUppercase
	upper := c.StringWidth("experience", st)
	assert.Greater(t, upper, lower)
}

func TestDrawJustifyItems(t *testing.T) {
	c := NewMeasureCanvas(a4W)
	head := body()
	head.FontSize = 12
	end := c.DrawJustifyItems([]string{"Engineer", "Berlin"}, []style.Style{head, body()}, pagination.Cursor{X: 40, Y: 10}, 500)
	assert.InDelta(t, 10+head.Leading(), end.Y, 1e-9)

	// Too narrow: one item per line.
	narrow := c.DrawJustifyItems([]string{"Engineer", "Berlin"}, []style.Style{head, body()}, pagination.Cursor{X: 40, Y: 10}, 20)
	assert.Greater(t, narrow.Y, end.Y)
}

func TestBulletTextUsesHangingIndent(t *testing.T) {
	c := NewMeasureCanvas(a4W)
	plainEnd := c.DrawWrappedText(paragraph, pagination.Cursor{Y: 0}, 300, body())
	bulletEnd := c.DrawBulletText(paragraph, pagination.Cursor{Y: 0}, 300, body())
	assert.GreaterOrEqual(t, bulletEnd.Y, plainEnd.Y)

	numbered := c.DrawNumberedText(3, "item", pagination.Cursor{X: 5, Y: 0}, 300, body())
	assert.Equal(t, 5.0, numbered.X)
	assert.InDelta(t, body().Leading(), numbered.Y, 1e-9)
}

func TestTagAndProgressBar(t *testing.T) {
	c := New(Options{PageWidth: a4W, PageHeight: a4H})
	tag := body()
	tag.FillColor = style.RGB(230, 240, 253)
	tag.Radius = 4

	w, h := c.TagSize("Go", tag)
	end := c.DrawTag("Go", pagination.Cursor{X: 10, Y: 10}, tag)
	assert.Equal(t, pagination.Cursor{X: 10 + w, Y: 10 + h}, end)

	bar := style.Style{FillColor: style.RGB(0, 86, 210), Height: 4, Radius: 2}
	back := style.Style{FillColor: style.RGB(230, 240, 253)}
	for _, pct := range []float64{-5, 0, 50, 100, 140} {
		got := c.DrawProgressBar("Go", pct, pagination.Cursor{X: 40, Y: 100}, 300, body(), bar, back)
		assert.InDelta(t, 100+body().Leading(), got.Y, 1e-9)
	}
	require.NoError(t, c.Err())
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, 10, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDrawImage(t *testing.T) {
	var logs bytes.Buffer
	c := New(Options{PageWidth: a4W, PageHeight: a4H, Logger: log.New(&logs)})

	require.NoError(t, c.DrawImage("me.png", pngBytes(t), 500, 40, 50, 50, FitContain))
	require.NoError(t, c.DrawImage("me.png", pngBytes(t), 500, 100, 50, 50, FitStretch))
	assert.Len(t, c.images, 1, "registered once per reference")

	require.NoError(t, c.DrawImage("broken.png", []byte("not an image"), 0, 0, 10, 10, FitContain))
	assert.Contains(t, logs.String(), "skipping image")
	require.NoError(t, c.Err())

	strict := New(Options{PageWidth: a4W, PageHeight: a4H, StrictResources: true})
	err := strict.DrawImage("broken.png", []byte("not an image"), 0, 0, 10, 10, FitContain)
	assert.ErrorIs(t, err, ErrResource)

	// Measuring canvases never decode images.
	assert.NoError(t, NewMeasureCanvas(a4W).DrawImage("broken.png", nil, 0, 0, 10, 10, FitContain))
}

func TestEveryIconRasterizes(t *testing.T) {
	for _, name := range IconNames() {
		svg, ok := IconSVG(name, style.Hex("#0056d2"))
		require.True(t, ok)
		data, err := rasterizeSVG([]byte(svg), 32, 32)
		require.NoError(t, err, name)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 32, img.Bounds().Dx())
	}
	_, ok := IconSVG("unicorn", style.Color{})
	assert.False(t, ok)
}

func TestDrawTextWithIcon(t *testing.T) {
	c := New(Options{PageWidth: a4W, PageHeight: a4H})
	st := body()
	end, err := c.DrawTextWithIcon(IconEmail, "jane@example.com", pagination.Cursor{X: 40, Y: 40}, st, style.Hex("#333"))
	require.NoError(t, err)
	assert.InDelta(t, 40+c.IconTextWidth("jane@example.com", st), end.X, 1e-6)
	assert.Len(t, c.icons, 1)

	_, err = c.DrawTextWithIcon(IconEmail, "again", pagination.Cursor{X: 40, Y: 60}, st, style.Hex("#333"))
	require.NoError(t, err)
	assert.Len(t, c.icons, 1, "same icon and colour is reused")

	_, err = c.DrawTextWithIcon("unicorn", "x", pagination.Cursor{X: 40, Y: 80}, st, style.Hex("#333"))
	assert.NoError(t, err, "unknown icons are skipped when not strict")
}

func TestOutput(t *testing.T) {
	c := New(Options{
		PageWidth:    a4W,
		PageHeight:   a4H,
		Title:        "Résumé",
		CreationDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	c.DrawStyledText("Jane Doe", pagination.Cursor{X: 40, Y: 40}, 0, body())
	c.Link(40, 40, 100, 12, "https://example.com")
	c.AddPage()
	assert.Equal(t, 2, c.PageCount())

	var out bytes.Buffer
	require.NoError(t, c.Output(&out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
	assert.Contains(t, out.String(), "https://example.com")
}
