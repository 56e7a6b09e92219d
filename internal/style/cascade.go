package style

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gompdf/resumepdf/internal/parser/css"
)

// Source identifies the layer a style came from.
type Source int

const (
	SourceFamily Source = iota
	SourceLayout
	SourceUser
)

func (s Source) String() string {
	switch s {
	case SourceFamily:
		return "family"
	case SourceLayout:
		return "layout"
	case SourceUser:
		return "user"
	}
	return "unknown"
}

// Cascade resolves the style set of a layout: family base, then the layout's
// own differences, then user overrides in the order they were added.
type Cascade struct {
	user []StyleSet
}

// NewCascade creates a cascade with no user overrides.
func NewCascade() *Cascade {
	return &Cascade{}
}

// AddOverrides appends a user override layer.
func (c *Cascade) AddOverrides(o StyleSet) {
	c.user = append(c.user, o)
}

// Resolve returns the merged style set for key.
func (c *Cascade) Resolve(key Key) (StyleSet, error) {
	if err := key.Validate(); err != nil {
		return StyleSet{}, err
	}
	base, ok := Base(key.Family)
	if !ok {
		return StyleSet{}, fmt.Errorf("no base styles for family %q", key.Family)
	}
	out := Merge(base, layoutStyles[key])
	for _, o := range c.user {
		out = Merge(out, o)
	}
	return out, nil
}

// For returns the built-in style set of key without user overrides.
func For(key Key) (StyleSet, error) {
	return NewCascade().Resolve(key)
}

// Overrides maps slot names to CSS declarations:
//
//	{"name": {"color": "#0056d2", "font-size": "26px"}}
type Overrides map[string]map[string]string

// StyleSet converts the overrides into a StyleSet layer.
func (o Overrides) StyleSet() (StyleSet, error) {
	var out StyleSet
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		slot, ok := out.Slot(strings.ToLower(name))
		if !ok {
			return StyleSet{}, fmt.Errorf("unknown style slot %q (known: %s)", name, strings.Join(SlotNames(), ", "))
		}
		st, err := FromDeclarations(o[name])
		if err != nil {
			return StyleSet{}, fmt.Errorf("slot %q: %w", name, err)
		}
		*slot = slot.Merge(st)
	}
	return out, nil
}

// DecodeOverrides reads overrides from a TOML document of the form
//
//	[name]
//	color = "#0056d2"
//	font-size = 26
func DecodeOverrides(r io.Reader) (Overrides, error) {
	var raw map[string]map[string]any
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode style overrides: %w", err)
	}
	return FromRaw(raw), nil
}

// FromRaw converts loosely typed values, as decoded from TOML, into
// overrides.
func FromRaw(raw map[string]map[string]any) Overrides {
	out := make(Overrides, len(raw))
	for slot, props := range raw {
		m := make(map[string]string, len(props))
		for k, v := range props {
			m[strings.ToLower(k)] = fmt.Sprint(v)
		}
		out[slot] = m
	}
	return out
}

// ParseOverrideSheet reads overrides from a CSS sheet whose selectors are
// slot names.
func ParseOverrideSheet(src string) (Overrides, error) {
	sheet, err := css.NewParser().ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse style sheet: %w", err)
	}
	known := map[string]bool{}
	for _, n := range SlotNames() {
		known[n] = true
	}
	for _, rule := range sheet.Rules {
		for _, sel := range rule.Selectors {
			if sel != "*" && !known[strings.ToLower(sel)] {
				return nil, fmt.Errorf("unknown style slot %q", sel)
			}
		}
	}
	out := Overrides{}
	for _, name := range SlotNames() {
		if decls := sheet.Lookup(name); len(decls) > 0 {
			out[name] = decls
		}
	}
	return out, nil
}

// FromDeclarations builds a Style from CSS properties. Unknown properties
// are rejected so that typos do not go unnoticed.
func FromDeclarations(decls map[string]string) (Style, error) {
	var s Style
	weight, fstyle := "", ""
	for prop, value := range decls {
		value = strings.TrimSpace(value)
		var err error
		switch prop {
		case "font-family":
			s.Font.Family = css.ParseFontFamily(value)
		case "font-weight":
			weight = value
		case "font-style":
			fstyle = value
		case "font-size":
			s.FontSize, err = positiveLength(value)
		case "color":
			s.Color, err = ParseColor(value)
		case "background-color", "background", "fill":
			s.FillColor, err = ParseColor(value)
		case "border-color", "stroke":
			s.DrawColor, err = ParseColor(value)
		case "border-width", "stroke-width":
			s.LineWidth, err = positiveLength(value)
		case "border-radius":
			s.Radius, err = positiveLength(value)
		case "height":
			s.Height, err = positiveLength(value)
		case "margin-bottom":
			s.MarginBottom, err = positiveLength(value)
		case "text-align":
			switch strings.ToLower(value) {
			case AlignLeft, AlignCenter, AlignRight:
				s.Align = strings.ToLower(value)
			default:
				err = fmt.Errorf("unsupported text-align %q", value)
			}
		case "text-transform":
			switch strings.ToLower(value) {
			case TransformNone, TransformUppercase:
				s.TextTransform = strings.ToLower(value)
			default:
				err = fmt.Errorf("unsupported text-transform %q", value)
			}
		case "line-height":
			s.LineHeight, err = lineHeight(value)
		default:
			err = fmt.Errorf("unsupported property %q", prop)
		}
		if err != nil {
			return Style{}, err
		}
	}
	if weight != "" || fstyle != "" {
		switch css.ParseFontStyle(weight, fstyle) {
		case "B":
			s.Font.Style = FontBold
		case "I":
			s.Font.Style = FontItalic
		case "BI":
			s.Font.Style = FontBoldItalic
		default:
			s.Font.Style = FontNormal
		}
	}
	return s, nil
}

func positiveLength(v string) (float64, error) {
	f, err := css.ParseLength(v)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("negative length %q", v)
	}
	return f, nil
}

// lineHeight accepts a unitless multiple or a percentage.
func lineHeight(v string) (float64, error) {
	if strings.HasSuffix(v, "%") {
		f, err := css.ParseLength(strings.TrimSuffix(v, "%"))
		if err != nil {
			return 0, err
		}
		return f / 100, nil
	}
	return positiveLength(v)
}
