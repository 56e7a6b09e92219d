package section

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/gompdf/resumepdf/internal/layout"
	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/render/pdf"
	"github.com/gompdf/resumepdf/internal/resume"
	"github.com/gompdf/resumepdf/internal/style"
	"github.com/gompdf/resumepdf/internal/text"
)

// HeaderProps are the per-layout switches of the personal details block.
type HeaderProps struct {
	IncludeIcon bool
	// AddressOnNextLine moves the address below the other contact items.
	AddressOnNextLine bool
	// ShowInitials draws a box with the initials of the name on the right
	// when there is no profile image.
	ShowInitials bool
	ShowImage    bool
	// BoxSize is the side of the initials box or image. Zero means 50.
	BoxSize float64
	// Background fills the page width behind the header with HeaderBg.
	Background bool
}

const (
	defaultBoxSize = 50

	// headerPad is kept below the header content inside the background.
	headerPad = 10

	// headerGap separates the header from the first section.
	headerGap = 15

	contactGapX = 12
	contactGapY = 4
)

// Header draws the personal details. image is the encoded profile image, or
// nil when there is none; it is only drawn when props.ShowImage is set.
func Header(ctx Context, p resume.PersonalDetails, props HeaderProps, image []byte) Block {
	return func(c *pdf.Canvas, at pagination.Cursor) (pagination.Cursor, error) {
		bg := ctx.Styles.HeaderBg
		if props.Background && bg.FillColor.Valid && !c.Measuring() {
			// The background goes under the text, so its height is taken
			// from a dry run first.
			pageW, _ := c.Size()
			end, err := ctx.headerContent(pdf.NewMeasureCanvas(pageW), p, props, image, at)
			if err != nil {
				return at, err
			}
			c.DrawRect(0, 0, pageW, end.Y+headerPad, style.Style{FillColor: bg.FillColor})
		}
		end, err := ctx.headerContent(c, p, props, image, at)
		if err != nil {
			return at, err
		}
		return pagination.Cursor{X: at.X, Y: end.Y + headerPad + headerGap}, nil
	}
}

func (ctx Context) headerContent(c *pdf.Canvas, p resume.PersonalDetails, props HeaderProps, image []byte, at pagination.Cursor) (pagination.Cursor, error) {
	s := ctx.Styles
	width := ctx.Width
	side := props.BoxSize
	if side <= 0 {
		side = defaultBoxSize
	}

	boxBottom := at.Y
	boxX := at.X + width - side
	switch {
	case props.ShowImage && len(image) > 0:
		if err := c.DrawImage(p.ProfileImage(), image, boxX, at.Y, side, side, pdf.FitContain); err != nil {
			return at, err
		}
		boxBottom = at.Y + side
	case props.ShowInitials && text.Initials(p.Name) != "":
		drawInitials(c, text.Initials(p.Name), boxX, at.Y, side, s.NameInitial)
		boxBottom = at.Y + side
	}
	if boxBottom > at.Y {
		width -= side + 10
	}

	cur := below(at, c.DrawWrappedText(p.Name, at, width, s.Name))
	cur = below(at, c.DrawWrappedText(p.Profession, cur, width, s.Profession))

	items := contactItems(p, props, s)
	var address []layout.Item
	if props.AddressOnNextLine && p.Address != "" {
		address = []layout.Item{items[len(items)-1]}
		items = items[:len(items)-1]
	}
	cfg := layout.FlexConfig{Width: width, GapX: contactGapX, GapY: contactGapY, Align: s.Contact.Align}
	end, err := layout.FlexWrap(c, items, cur, cfg)
	if err != nil {
		return at, err
	}
	if len(address) > 0 {
		if len(items) > 0 {
			end.Y += contactGapY
		}
		if end, err = layout.FlexWrap(c, address, end, cfg); err != nil {
			return at, err
		}
	}
	return pagination.Cursor{X: at.X, Y: max(end.Y, boxBottom)}, nil
}

func drawInitials(c *pdf.Canvas, initials string, x, y, side float64, st style.Style) {
	c.DrawRect(x, y, side, side, style.Style{FillColor: st.FillColor, DrawColor: st.DrawColor, LineWidth: st.LineWidth})
	label := st
	label.Align = style.AlignCenter
	label.MarginBottom = 0
	c.DrawStyledText(initials, pagination.Cursor{X: x, Y: y + (side-label.Leading())/2}, side, label)
}

// contactItems lists phone, email, URLs and address, in that order.
func contactItems(p resume.PersonalDetails, props HeaderProps, s style.StyleSet) []layout.Item {
	var items []layout.Item
	add := func(icon, label, link string) {
		if label == "" {
			return
		}
		if !props.IncludeIcon {
			icon = ""
		}
		items = append(items, iconText{icon: icon, text: label, link: link, st: s.Contact, iconColor: s.Icon.Color})
	}
	add(pdf.IconPhone, p.Phone, phoneLink(p.Phone))
	if p.Email != "" {
		add(pdf.IconEmail, p.Email, "mailto:"+p.Email)
	}
	for _, raw := range p.URLs {
		c := ClassifyURL(raw)
		add(c.Icon, c.Label, c.Link)
	}
	add(pdf.IconLocation, p.Address, "")
	return items
}

func phoneLink(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "tel:" + b.String()
}

// Contact is a classified profile URL.
type Contact struct {
	// Icon is pdf.IconLinkedIn, pdf.IconGitHub or pdf.IconWebsite.
	Icon string
	// Label is the URL without scheme, "www." or trailing slash.
	Label string
	// Link is the URL with a scheme.
	Link string
}

// ClassifyURL decides which icon a profile URL gets by its registrable
// domain, e.g. linkedin.com or github.com. URLs that do not parse fall back
// to a substring check.
func ClassifyURL(raw string) Contact {
	raw = strings.TrimSpace(raw)
	link := raw
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}
	label := strings.TrimPrefix(strings.TrimPrefix(link, "https://"), "http://")
	label = strings.TrimSuffix(strings.TrimPrefix(label, "www."), "/")

	icon := ""
	if u, err := url.Parse(link); err == nil && u.Hostname() != "" {
		if domain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(u.Hostname())); err == nil {
			icon = domainIcon(domain)
		}
	}
	if icon == "" {
		lower := strings.ToLower(raw)
		switch {
		case strings.Contains(lower, "linkedin"):
			icon = pdf.IconLinkedIn
		case strings.Contains(lower, "github"):
			icon = pdf.IconGitHub
		default:
			icon = pdf.IconWebsite
		}
	}
	return Contact{Icon: icon, Label: label, Link: link}
}

func domainIcon(domain string) string {
	switch {
	case domain == "linkedin.com" || domain == "lnkd.in":
		return pdf.IconLinkedIn
	case domain == "github.com" || domain == "github.io" || strings.HasSuffix(domain, ".github.io"):
		return pdf.IconGitHub
	}
	return pdf.IconWebsite
}
