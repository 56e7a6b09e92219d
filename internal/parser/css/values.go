package css

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a colour with 0-255 channels.
type RGB [3]int

var namedColors = map[string]RGB{
	"black":  {0, 0, 0},
	"white":  {255, 255, 255},
	"gray":   {128, 128, 128},
	"grey":   {128, 128, 128},
	"silver": {192, 192, 192},
	"red":    {255, 0, 0},
	"orange": {255, 165, 0},
	"gold":   {255, 215, 0},
	"green":  {0, 128, 0},
	"blue":   {0, 0, 255},
	"navy":   {0, 0, 128},
	"teal":   {0, 128, 128},
	"purple": {128, 0, 128},
}

// ParseColor parses #rgb, #rrggbb, rgb(r, g, b) and a few named colours.
func ParseColor(value string) (RGB, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return RGB{}, fmt.Errorf("empty colour")
	}
	if strings.HasPrefix(v, "#") {
		if r, g, b, ok := parseHexColor(v); ok {
			return RGB{r, g, b}, nil
		}
		return RGB{}, fmt.Errorf("invalid hex colour %q", value)
	}
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(v, "rgb("), ")"), ",")
		if len(parts) != 3 {
			return RGB{}, fmt.Errorf("invalid rgb colour %q", value)
		}
		var out RGB
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return RGB{}, fmt.Errorf("invalid rgb channel %q in %q", p, value)
			}
			out[i] = n
		}
		return out, nil
	}
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	return RGB{}, fmt.Errorf("unsupported colour %q", value)
}

// parseHexColor parses #RRGGBB or #RGB into r,g,b
func parseHexColor(s string) (int, int, int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	rv, err := strconv.ParseUint(s[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	gv, err := strconv.ParseUint(s[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	bv, err := strconv.ParseUint(s[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}

// Points per unit. Pixels follow the CSS reference of 96 per inch.
const (
	pxToPt = 72.0 / 96.0
	mmToPt = 72.0 / 25.4
)

// ParseLength parses a length into points. Unitless numbers are points.
func ParseLength(value string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return 0, fmt.Errorf("empty length")
	}
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "px"):
		scale, v = pxToPt, strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "pt"):
		v = strings.TrimSuffix(v, "pt")
	case strings.HasSuffix(v, "mm"):
		scale, v = mmToPt, strings.TrimSuffix(v, "mm")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", value)
	}
	return f * scale, nil
}

// ParseFontFamily maps a CSS font-family list onto one of the PDF core fonts.
func ParseFontFamily(value string) string {
	for _, f := range strings.Split(value, ",") {
		switch strings.ToLower(strings.Trim(strings.TrimSpace(f), `'"`)) {
		case "arial", "helvetica", "sans-serif", "poppins", "inter", "roboto", "open sans", "lato":
			return "Helvetica"
		case "times", "times new roman", "serif", "georgia", "garamond":
			return "Times"
		case "courier", "courier new", "monospace":
			return "Courier"
		}
	}
	return "Helvetica"
}

// ParseFontStyle turns font-weight / font-style values into an fpdf style
// string ("", "B", "I" or "BI").
func ParseFontStyle(weight, style string) string {
	out := ""
	switch strings.ToLower(strings.TrimSpace(weight)) {
	case "bold", "bolder", "600", "700", "800", "900":
		out += "B"
	}
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "italic", "oblique":
		out += "I"
	}
	return out
}
