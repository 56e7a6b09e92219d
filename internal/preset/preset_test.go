package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/resumepdf/internal/section"
	"github.com/gompdf/resumepdf/internal/style"
)

func TestEveryKeyResolves(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, len(style.Families())*style.LayoutsPerFamily)
	for _, k := range keys {
		l, err := Lookup(k)
		require.NoError(t, err, k.String())
		assert.Equal(t, k, l.Key)
		assert.NotEmpty(t, l.Sections, k.String())
		assert.Greater(t, l.Styles.Normal.FontSize, 0.0, k.String())

		seen := map[section.Kind]bool{}
		for _, s := range l.Sections {
			assert.False(t, seen[s.Kind], "%s lists %s twice", k, s.Kind)
			seen[s.Kind] = true
			assert.NotEmpty(t, s.Title)
		}
	}
}

func TestLookupRejectsUnknownKeys(t *testing.T) {
	_, err := Lookup(style.Key{Family: "baroque", Number: 1})
	assert.Error(t, err)
	_, err = Lookup(style.Key{Family: style.Modern, Number: 7})
	assert.Error(t, err)
}

func TestCreativeOrder(t *testing.T) {
	l, err := Lookup(style.Key{Family: style.Creative, Number: 1})
	require.NoError(t, err)

	var kinds []section.Kind
	for _, s := range l.Sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []section.Kind{
		section.KindEducation, section.KindSummary, section.KindAchievements, section.KindExperience,
		section.KindSkills, section.KindStrengths, section.KindMyTime,
	}, kinds)
	assert.Equal(t, section.VariantFlex, l.Section(section.KindExperience).Props.Variant)
	assert.True(t, l.Header.Background)
}

func TestTweaksDoNotLeakBetweenLayouts(t *testing.T) {
	two, err := Lookup(style.Key{Family: style.Classical, Number: 2})
	require.NoError(t, err)
	one, err := Lookup(style.Key{Family: style.Classical, Number: 1})
	require.NoError(t, err)

	assert.Equal(t, section.VariantFlex, two.Section(section.KindExperience).Props.Variant)
	assert.Equal(t, section.VariantStacked, one.Section(section.KindExperience).Props.Variant)
	assert.Nil(t, one.Section(section.KindMyTime))
}
