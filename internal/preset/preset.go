// Package preset holds the layout table: for every layout key, the header
// switches, the resolved styles and the sections in the order they appear.
package preset

import (
	"fmt"

	"github.com/gompdf/resumepdf/internal/section"
	"github.com/gompdf/resumepdf/internal/style"
)

// SectionSpec is one section of a layout.
type SectionSpec struct {
	Kind  section.Kind
	Title string
	Props section.Props
}

// Layout is everything that differs between layouts.
type Layout struct {
	Key      style.Key
	Header   section.HeaderProps
	Styles   style.StyleSet
	Sections []SectionSpec
}

// Section returns the entry for kind, or nil when the layout has none.
func (l *Layout) Section(kind section.Kind) *SectionSpec {
	for i := range l.Sections {
		if l.Sections[i].Kind == kind {
			return &l.Sections[i]
		}
	}
	return nil
}

// Lookup returns the layout for key.
func Lookup(key style.Key) (Layout, error) {
	if err := key.Validate(); err != nil {
		return Layout{}, err
	}
	base, ok := familyLayouts[key.Family]
	if !ok {
		return Layout{}, fmt.Errorf("no layouts for family %q", key.Family)
	}
	l := base()
	l.Key = key
	if tweak, ok := layoutTweaks[key]; ok {
		tweak(&l)
	}
	styles, err := style.For(key)
	if err != nil {
		return Layout{}, err
	}
	l.Styles = styles
	return l, nil
}

// Keys lists every layout, family by family.
func Keys() []style.Key {
	keys := make([]style.Key, 0, len(style.Families())*style.LayoutsPerFamily)
	for _, f := range style.Families() {
		for n := 1; n <= style.LayoutsPerFamily; n++ {
			keys = append(keys, style.Key{Family: f, Number: n})
		}
	}
	return keys
}
