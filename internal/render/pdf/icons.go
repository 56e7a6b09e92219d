package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sort"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/style"
)

// Icon names.
const (
	IconPhone      = "phone"
	IconEmail      = "email"
	IconLinkedIn   = "linkedin"
	IconGitHub     = "github"
	IconWebsite    = "website"
	IconLocation   = "location"
	IconCalendar   = "calendar"
	IconTrophy     = "trophy"
	IconStar       = "star"
	IconGraduation = "graduation"
	IconBriefcase  = "briefcase"
)

// iconPx is the raster size of an icon. Icons are drawn at roughly 10pt, so
// this leaves plenty of resolution for print.
const iconPx = 96

// iconSVG holds 24x24 icons. currentColor is replaced before parsing.
var iconSVG = map[string]string{
	IconPhone: `<path fill="currentColor" d="M6.62 10.79c1.44 2.83 3.76 5.14 6.59 6.59l2.2-2.2c.27-.27.67-.36 1.02-.24 1.12.37 2.33.57 3.57.57.55 0 1 .45 1 1V20c0 .55-.45 1-1 1-9.39 0-17-7.61-17-17 0-.55.45-1 1-1h3.5c.55 0 1 .45 1 1 0 1.25.2 2.45.57 3.57.11.35.03.74-.25 1.02l-2.2 2.2z"/>`,

	IconEmail: `<path fill="currentColor" d="M20 4H4c-1.1 0-1.99.9-1.99 2L2 18c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V6c0-1.1-.9-2-2-2zm0 4l-8 5-8-5V6l8 5 8-5v2z"/>`,

	IconLinkedIn: `<rect x="2" y="2" width="20" height="20" rx="3" fill="currentColor"/>` +
		`<path fill="#ffffff" d="M6 10h2.5v8H6zM7.25 5.5a1.5 1.5 0 1 1 0 3 1.5 1.5 0 0 1 0-3zM10.5 10h2.4v1.1c.4-.7 1.3-1.3 2.6-1.3 2.5 0 3 1.6 3 3.7V18H16v-4c0-1-.1-2.2-1.4-2.2-1.4 0-1.6 1-1.6 2.1V18h-2.5z"/>`,

	IconGitHub: `<circle cx="12" cy="12" r="10" fill="currentColor"/>` +
		`<path d="M9.5 8L5.5 12l4 4M14.5 8l4 4-4 4" fill="none" stroke="#ffffff" stroke-width="2"/>`,

	IconWebsite: `<circle cx="12" cy="12" r="9" fill="none" stroke="currentColor" stroke-width="2"/>` +
		`<path d="M3 12h18M12 3c3 3.5 3 14.5 0 18M12 3c-3 3.5-3 14.5 0 18" fill="none" stroke="currentColor" stroke-width="1.6"/>`,

	IconLocation: `<path fill="currentColor" d="M12 2C8.13 2 5 5.13 5 9c0 5.25 7 13 7 13s7-7.75 7-13c0-3.87-3.13-7-7-7zm0 9.5c-1.38 0-2.5-1.12-2.5-2.5s1.12-2.5 2.5-2.5 2.5 1.12 2.5 2.5-1.12 2.5-2.5 2.5z"/>`,

	IconCalendar: `<path fill="currentColor" d="M20 3h-1V1h-2v2H7V1H5v2H4c-1.1 0-2 .9-2 2v16c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V5c0-1.1-.9-2-2-2zm0 18H4V8h16v13z"/>`,

	IconTrophy: `<path fill="currentColor" d="M19 5h-2V3H7v2H5c-1.1 0-2 .9-2 2v1c0 2.55 1.92 4.63 4.39 4.94.63 1.5 1.98 2.63 3.61 2.96V19H7v2h10v-2h-4v-3.1c1.63-.33 2.98-1.46 3.61-2.96C19.08 12.63 21 10.55 21 8V7c0-1.1-.9-2-2-2zM5 8V7h2v3.82C5.84 10.4 5 9.3 5 8zm14 0c0 1.3-.84 2.4-2 2.82V7h2v1z"/>`,

	IconStar: `<path fill="currentColor" d="M12 17.27L18.18 21l-1.64-7.03L22 9.24l-7.19-.61L12 2 9.19 8.63 2 9.24l5.46 4.73L5.82 21z"/>`,

	IconGraduation: `<path fill="currentColor" d="M5 13.18v4L12 21l7-3.82v-4L12 17l-7-3.82zM12 3L1 9l11 6 9-4.91V17h2V9L12 3z"/>`,

	IconBriefcase: `<path fill="currentColor" d="M20 6h-4V4c0-1.11-.89-2-2-2h-4c-1.11 0-2 .89-2 2v2H4c-1.11 0-1.99.89-1.99 2L2 19c0 1.11.89 2 2 2h16c1.11 0 2-.89 2-2V8c0-1.11-.89-2-2-2zm-6 0h-4V4h4v2z"/>`,
}

// IconNames lists the available icons.
func IconNames() []string {
	names := make([]string, 0, len(iconSVG))
	for n := range iconSVG {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IconSVG returns the SVG document of an icon in the given colour.
func IconSVG(name string, color style.Color) (string, bool) {
	body, ok := iconSVG[name]
	if !ok {
		return "", false
	}
	hex := color.String()
	if hex == "" {
		hex = "#000000"
	}
	return `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24">` +
		strings.ReplaceAll(body, "currentColor", hex) + `</svg>`, true
}

// rasterizeSVG renders an SVG document into a w x h PNG.
func rasterizeSVG(svg []byte, w, h int) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}
	return buf.Bytes(), nil
}

// DrawIcon draws a size x size icon with its top-left corner at (x, y). Each
// icon and colour pair is rasterised and embedded once per document.
func (c *Canvas) DrawIcon(name string, x, y, size float64, color style.Color) error {
	if c.measuring {
		return nil
	}
	key := name + color.String()
	img, ok := c.icons[key]
	if !ok {
		svg, known := IconSVG(name, color)
		if !known {
			return c.ResourceFailed("icon "+name, fmt.Errorf("unknown icon %q", name))
		}
		data, err := rasterizeSVG([]byte(svg), iconPx, iconPx)
		if err != nil {
			return c.ResourceFailed("icon "+name, err)
		}
		img = fmt.Sprintf("icon-%s-%d", name, len(c.icons)+1)
		c.pdf.RegisterImageOptionsReader(img, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(data))
		if err := c.pdf.Error(); err != nil {
			return fmt.Errorf("failed to register icon %s: %w", name, err)
		}
		c.icons[key] = img
	}
	c.pdf.ImageOptions(img, x, y, size, size, false, fpdf.ImageOptions{}, 0, "")
	return nil
}

// iconGap is the space between an icon and its label.
const iconGap = 3

// DrawTextWithIcon draws an icon sized to the font followed by s on one
// line. It returns the end of the text and the top of the next line.
func (c *Canvas) DrawTextWithIcon(icon, s string, at pagination.Cursor, st style.Style, iconColor style.Color) (pagination.Cursor, error) {
	if strings.TrimSpace(s) == "" {
		return at, nil
	}
	size := st.FontSize
	if err := c.DrawIcon(icon, at.X, at.Y+(st.Leading()-size)/2, size, iconColor); err != nil {
		return at, err
	}
	end := c.DrawStyledText(s, pagination.Cursor{X: at.X + size + iconGap, Y: at.Y}, 0, plain(st))
	return end, nil
}

// IconTextWidth returns the width DrawTextWithIcon will use for s.
func (c *Canvas) IconTextWidth(s string, st style.Style) float64 {
	return st.FontSize + iconGap + c.StringWidth(s, st)
}
