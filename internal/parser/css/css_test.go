package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#0056d2", want: RGB{0, 86, 210}},
		{in: "#333", want: RGB{51, 51, 51}},
		{in: "rgb(6, 51, 228)", want: RGB{6, 51, 228}},
		{in: "RGB(6,51,228)", want: RGB{6, 51, 228}},
		{in: "orange", want: RGB{255, 165, 0}},
		{in: "#12", wantErr: true},
		{in: "rgb(1,2)", wantErr: true},
		{in: "rgb(1,2,300)", wantErr: true},
		{in: "chartreuse", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "12", want: 12},
		{in: "12pt", want: 12},
		{in: "16px", want: 12},
		{in: "25.4mm", want: 72},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}

	_, err := ParseLength("wide")
	assert.Error(t, err)
}

func TestParseFontFamilyAndStyle(t *testing.T) {
	assert.Equal(t, "Helvetica", ParseFontFamily("'Poppins', sans-serif"))
	assert.Equal(t, "Times", ParseFontFamily(`"Times New Roman", serif`))
	assert.Equal(t, "Courier", ParseFontFamily("monospace"))
	assert.Equal(t, "Helvetica", ParseFontFamily("Comic Sans"))

	assert.Equal(t, "B", ParseFontStyle("bold", ""))
	assert.Equal(t, "BI", ParseFontStyle("700", "italic"))
	assert.Equal(t, "", ParseFontStyle("normal", "normal"))
}

func TestStylesheetLookup(t *testing.T) {
	sheet, err := NewParser().ParseString(`
		/* headings */
		name, header { color: #0056d2; font-weight: bold !important }
		header { font-weight: normal; font-size: 14px }
		broken
		normal { font-size: 10px }
	`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)

	header := sheet.Lookup("header")
	assert.Equal(t, "#0056d2", header["color"])
	assert.Equal(t, "bold", header["font-weight"])
	assert.Equal(t, "14px", header["font-size"])

	assert.Equal(t, map[string]string{"font-size": "10px"}, sheet.Lookup("normal"))
	assert.Empty(t, sheet.Lookup("missing"))
}

func TestStraySelectorTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "stray line", src: "broken\n normal { font-size: 10px }", want: []string{"normal"}},
		{name: "stray before semicolon", src: "junk; normal { font-size: 10px }", want: []string{"normal"}},
		{name: "list across lines", src: "name,\n\theader\n{ color: red }", want: []string{"name", "header"}},
		{name: "unmatched brace", src: "} normal { font-size: 10px }", want: []string{"normal"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := NewParser().ParseString(tt.src)
			require.NoError(t, err)
			require.Len(t, sheet.Rules, 1)
			assert.Equal(t, tt.want, sheet.Rules[0].Selectors)
		})
	}
}

func TestParseDeclarations(t *testing.T) {
	decls := ParseDeclarations("Font-Size: 12px; color:#333 ; junk; ")
	require.Len(t, decls, 2)
	assert.Equal(t, "font-size", decls[0].Property)
	assert.Equal(t, "12px", decls[0].Value)
	assert.Equal(t, "#333", decls[1].Value)
}
