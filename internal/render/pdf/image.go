package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	// Decoders for image.Decode. fpdf itself only reads JPEG, PNG and GIF,
	// everything else is re-encoded to PNG first.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
)

// Fit controls how an image is placed in its box.
type Fit int

const (
	// FitContain keeps the aspect ratio and centres the image in the box.
	FitContain Fit = iota
	// FitStretch fills the box exactly.
	FitStretch
)

// DrawImage embeds an image in the box (x, y, w, h). ref names the image for
// reuse within the document; data is the encoded image (JPEG, PNG, GIF, BMP,
// TIFF, WebP or SVG). A failure is logged and skipped unless the canvas is
// strict.
func (c *Canvas) DrawImage(ref string, data []byte, x, y, w, h float64, fit Fit) error {
	if c.measuring {
		return nil
	}
	name, err := c.registerImage(ref, data)
	if err != nil {
		return c.ResourceFailed("image "+shortRef(ref), err)
	}

	if fit == FitContain {
		info := c.pdf.GetImageInfo(name)
		if info != nil && info.Width() > 0 && info.Height() > 0 {
			scale := min(w/info.Width(), h/info.Height())
			iw, ih := info.Width()*scale, info.Height()*scale
			x += (w - iw) / 2
			y += (h - ih) / 2
			w, h = iw, ih
		}
	}
	c.pdf.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{ReadDpi: false}, 0, "")
	if err := c.pdf.Error(); err != nil {
		return fmt.Errorf("failed to place image: %w", err)
	}
	return nil
}

// registerImage decodes data once per document and registers it with fpdf.
func (c *Canvas) registerImage(ref string, data []byte) (string, error) {
	if name, ok := c.images[ref]; ok {
		return name, nil
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image")
	}

	var (
		encoded []byte
		kind    string
		err     error
	)
	if isSVG(data) {
		encoded, err = rasterizeSVG(data, 512, 512)
		kind = "PNG"
	} else {
		encoded, kind, err = normalizeImage(data)
	}
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("img%d", len(c.images)+1)
	c.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: kind}, bytes.NewReader(encoded))
	if err := c.pdf.Error(); err != nil {
		return "", fmt.Errorf("failed to register image: %w", err)
	}
	c.images[ref] = name
	if c.logger != nil {
		c.logger.Debug("image registered", "ref", shortRef(ref), "format", kind, "bytes", len(encoded))
	}
	return name, nil
}

// normalizeImage passes JPEG through and re-encodes everything else as a
// plain, non-interlaced PNG, which fpdf always accepts.
func normalizeImage(data []byte) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	if format == "jpeg" {
		return data, "JPG", nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("failed to encode %s image as PNG: %w", format, err)
	}
	return buf.Bytes(), "PNG", nil
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}

func shortRef(ref string) string {
	if strings.HasPrefix(ref, "data:") && len(ref) > 40 {
		return ref[:37] + "..."
	}
	return ref
}
