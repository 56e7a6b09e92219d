package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Family is a group of related layouts.
type Family string

// Layout families.
const (
	Classical Family = "classical"
	Modern    Family = "modern"
	Simple    Family = "simple"
	Creative  Family = "creative"
)

// LayoutsPerFamily is the number of numbered layouts in every family.
const LayoutsPerFamily = 6

// Families lists the families in display order.
func Families() []Family {
	return []Family{Classical, Modern, Simple, Creative}
}

// Key selects one layout, e.g. modern-3.
type Key struct {
	Family Family
	Number int
}

func (k Key) String() string {
	return fmt.Sprintf("%s-%d", k.Family, k.Number)
}

// Validate reports whether k names an existing layout.
func (k Key) Validate() error {
	known := false
	for _, f := range Families() {
		if f == k.Family {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown layout family %q", k.Family)
	}
	if k.Number < 1 || k.Number > LayoutsPerFamily {
		return fmt.Errorf("layout number %d out of range 1-%d", k.Number, LayoutsPerFamily)
	}
	return nil
}

// ParseKey parses "modern-3", "modern_3", "modern/layout_3" or "modern 3".
func ParseKey(s string) (Key, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	i := strings.IndexAny(v, "-_/ ")
	if i <= 0 {
		return Key{}, fmt.Errorf("invalid layout %q: want family-number, e.g. classical-1", s)
	}
	num := strings.TrimLeft(v[i+1:], "-_/ ")
	num = strings.TrimPrefix(num, "layout_")
	num = strings.TrimPrefix(num, "layout-")
	n, err := strconv.Atoi(num)
	if err != nil {
		return Key{}, fmt.Errorf("invalid layout number in %q", s)
	}
	k := Key{Family: Family(v[:i]), Number: n}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}
