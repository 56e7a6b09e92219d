package preset

import (
	"github.com/gompdf/resumepdf/internal/section"
	"github.com/gompdf/resumepdf/internal/style"
)

// familyLayouts build the layout every member of a family starts from. They
// return fresh values so tweaks can modify them freely.
var familyLayouts = map[style.Family]func() Layout{
	style.Classical: func() Layout {
		return Layout{
			Header: section.HeaderProps{},
			Sections: []SectionSpec{
				{Kind: section.KindSummary, Title: "Summary"},
				{Kind: section.KindExperience, Title: "Professional Experience", Props: section.Props{Variant: section.VariantStacked, List: section.ListBullet}},
				{Kind: section.KindEducation, Title: "Education", Props: section.Props{Variant: section.VariantStacked}},
				{Kind: section.KindSkills, Title: "Skills", Props: section.Props{Skills: section.SkillInline}},
				{Kind: section.KindAchievements, Title: "Achievements"},
				{Kind: section.KindStrengths, Title: "Strengths"},
			},
		}
	},
	style.Modern: func() Layout {
		return Layout{
			Header: section.HeaderProps{IncludeIcon: true, ShowInitials: true, Background: true},
			Sections: []SectionSpec{
				{Kind: section.KindSummary, Title: "Summary"},
				{Kind: section.KindExperience, Title: "Experience", Props: section.Props{Variant: section.VariantFlex, List: section.ListBullet}},
				{Kind: section.KindSkills, Title: "Skills", Props: section.Props{Skills: section.SkillTags}},
				{Kind: section.KindEducation, Title: "Education", Props: section.Props{Variant: section.VariantFlex}},
				{Kind: section.KindAchievements, Title: "Achievements", Props: section.Props{Grid: true, IncludeIcon: true}},
				{Kind: section.KindStrengths, Title: "Strengths", Props: section.Props{Grid: true, Columns: 2}},
			},
		}
	},
	style.Simple: func() Layout {
		return Layout{
			Header: section.HeaderProps{IncludeIcon: true},
			Sections: []SectionSpec{
				{Kind: section.KindSummary, Title: "About me"},
				{Kind: section.KindExperience, Title: "Experience", Props: section.Props{Variant: section.VariantStacked, IncludeIcon: true, List: section.ListBullet}},
				{Kind: section.KindEducation, Title: "Education", Props: section.Props{Variant: section.VariantStacked, IncludeIcon: true}},
				{Kind: section.KindSkills, Title: "Skills", Props: section.Props{Skills: section.SkillTags}},
				{Kind: section.KindAchievements, Title: "Achievements"},
				{Kind: section.KindStrengths, Title: "Strengths"},
			},
		}
	},
	style.Creative: func() Layout {
		return Layout{
			Header: section.HeaderProps{IncludeIcon: true, ShowImage: true, ShowInitials: true, Background: true},
			Sections: []SectionSpec{
				{Kind: section.KindEducation, Title: "Education", Props: section.Props{Variant: section.VariantStacked, IncludeIcon: true}},
				{Kind: section.KindSummary, Title: "Summary"},
				{Kind: section.KindAchievements, Title: "Achievements", Props: section.Props{Grid: true, IncludeIcon: true}},
				{Kind: section.KindExperience, Title: "Experience", Props: section.Props{Variant: section.VariantFlex, List: section.ListBullet}},
				{Kind: section.KindSkills, Title: "Skills", Props: section.Props{Skills: section.SkillProgress, Grid: true, Columns: 2}},
				{Kind: section.KindStrengths, Title: "Strengths", Props: section.Props{IncludeIcon: true}},
				{Kind: section.KindMyTime, Title: "My Time"},
			},
		}
	},
}

// layoutTweaks hold the differences of each numbered layout from its
// family. Layouts without an entry use the family layout unchanged.
var layoutTweaks = map[style.Key]func(*Layout){
	{Family: style.Classical, Number: 2}: func(l *Layout) {
		l.Section(section.KindExperience).Props.Variant = section.VariantFlex
		l.Section(section.KindSkills).Props.Skills = section.SkillList
	},
	{Family: style.Classical, Number: 3}: func(l *Layout) {
		l.Section(section.KindExperience).Props.Variant = section.VariantDivider
		l.Section(section.KindAchievements).Props.Grid = true
	},
	{Family: style.Classical, Number: 4}: func(l *Layout) {
		l.Header.AddressOnNextLine = true
		l.Section(section.KindExperience).Props.SwapPosition = true
		l.Section(section.KindEducation).Props.Variant = section.VariantFlex
	},
	{Family: style.Classical, Number: 5}: func(l *Layout) {
		l.Section(section.KindExperience).Props.List = section.ListNumbered
		l.Section(section.KindSkills).Props.Skills = section.SkillProgress
	},
	{Family: style.Classical, Number: 6}: func(l *Layout) {
		l.Header.ShowInitials = true
		l.Section(section.KindExperience).Props.Variant = section.VariantFlex
		l.Section(section.KindEducation).Props.HideAddress = true
	},

	{Family: style.Modern, Number: 2}: func(l *Layout) {
		l.Header.Background = false
		l.Section(section.KindExperience).Props.Variant = section.VariantDivider
	},
	{Family: style.Modern, Number: 3}: func(l *Layout) {
		l.Header.ShowImage = true
		l.Section(section.KindSkills).Props.Skills = section.SkillProgress
		l.Section(section.KindSkills).Props.Grid = true
		l.Section(section.KindSkills).Props.Columns = 2
	},
	{Family: style.Modern, Number: 4}: func(l *Layout) {
		l.Header.AddressOnNextLine = true
		l.Section(section.KindExperience).Props.SwapPosition = true
		l.Section(section.KindAchievements).Props.Grid = false
	},
	{Family: style.Modern, Number: 5}: func(l *Layout) {
		l.Header.ShowInitials = false
		l.Section(section.KindExperience).Props.Variant = section.VariantStacked
		l.Section(section.KindExperience).Props.IncludeIcon = true
	},
	{Family: style.Modern, Number: 6}: func(l *Layout) {
		l.Section(section.KindAchievements).Props.Columns = 2
		l.Sections = append(l.Sections, SectionSpec{Kind: section.KindMyTime, Title: "My Time"})
	},

	{Family: style.Simple, Number: 2}: func(l *Layout) {
		l.Header.IncludeIcon = false
		l.Section(section.KindSkills).Props.Skills = section.SkillInline
	},
	{Family: style.Simple, Number: 3}: func(l *Layout) {
		l.Section(section.KindExperience).Props.Variant = section.VariantFlex
		l.Section(section.KindExperience).Props.IncludeIcon = false
	},
	{Family: style.Simple, Number: 4}: func(l *Layout) {
		l.Section(section.KindExperience).Props.Variant = section.VariantDivider
		l.Section(section.KindEducation).Props.Variant = section.VariantDivider
	},
	{Family: style.Simple, Number: 5}: func(l *Layout) {
		l.Header.ShowInitials = true
		l.Section(section.KindExperience).Props.List = section.ListPlain
		l.Section(section.KindAchievements).Props.Grid = true
	},
	{Family: style.Simple, Number: 6}: func(l *Layout) {
		l.Header.AddressOnNextLine = true
		l.Section(section.KindSkills).Props.Skills = section.SkillList
		l.Section(section.KindStrengths).Props.Grid = true
		l.Section(section.KindStrengths).Props.Columns = 2
	},

	{Family: style.Creative, Number: 2}: func(l *Layout) {
		l.Section(section.KindExperience).Props.Variant = section.VariantDivider
		l.Section(section.KindSkills).Props.Skills = section.SkillTags
	},
	{Family: style.Creative, Number: 3}: func(l *Layout) {
		l.Header.ShowImage = false
		l.Section(section.KindExperience).Props.SwapPosition = true
		l.Section(section.KindAchievements).Props.Columns = 2
	},
	{Family: style.Creative, Number: 4}: func(l *Layout) {
		l.Section(section.KindExperience).Props.Variant = section.VariantStacked
		l.Section(section.KindExperience).Props.IncludeIcon = true
		l.Section(section.KindStrengths).Props.Grid = true
		l.Section(section.KindStrengths).Props.Columns = 2
	},
	{Family: style.Creative, Number: 5}: func(l *Layout) {
		l.Header.AddressOnNextLine = true
		l.Section(section.KindEducation).Props.Variant = section.VariantFlex
		l.Section(section.KindAchievements).Props.Grid = false
	},
	{Family: style.Creative, Number: 6}: func(l *Layout) {
		l.Header.Background = false
		l.Section(section.KindSkills).Props.Skills = section.SkillList
		l.Section(section.KindExperience).Props.List = section.ListNumbered
	},
}
