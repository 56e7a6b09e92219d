package style

// Sizes are in points.

var classicalBase = StyleSet{
	Name:         Style{Font: Font{"Times", FontBold}, FontSize: 22, Color: Hex("#000"), Align: AlignCenter, MarginBottom: 2},
	Profession:   Style{Font: Font{"Times", FontItalic}, FontSize: 13, Color: Hex("#333"), Align: AlignCenter, MarginBottom: 4},
	Contact:      Style{Font: Font{"Times", FontNormal}, FontSize: 9.5, Color: Hex("#333"), Align: AlignCenter},
	Header:       Style{Font: Font{"Times", FontBold}, FontSize: 13, Color: Hex("#000"), DrawColor: Hex("#000"), LineWidth: 0.8, Align: AlignLeft, TextTransform: TransformUppercase, MarginBottom: 6},
	SubHeader:    Style{Font: Font{"Times", FontBold}, FontSize: 11.5, Color: Hex("#222"), Align: AlignLeft},
	SubSubHeader: Style{Font: Font{"Times", FontItalic}, FontSize: 10.5, Color: Hex("#444"), Align: AlignLeft},
	Normal:       Style{Font: Font{"Times", FontNormal}, FontSize: 10, Color: Hex("#333"), Align: AlignLeft, LineHeight: 1.35},
	NameInitial:  Style{Font: Font{"Times", FontBold}, FontSize: 18, Color: Hex("#fff"), FillColor: Hex("#8b0000"), DrawColor: Hex("#ffffc8")},
	Tag:          Style{Font: Font{"Times", FontNormal}, FontSize: 9, Color: Hex("#000"), FillColor: Hex("#eee"), Radius: 3},
	ProgressBar:  Style{Font: Font{"Times", FontNormal}, FontSize: 9.5, Color: Hex("#333"), FillColor: Hex("#333"), Height: 5, Radius: 2},
	ProgressBack: Style{FillColor: Hex("#ddd")},
	Icon:         Style{Color: Hex("#333"), FontSize: 9},
	Rule:         Style{DrawColor: Hex("#999"), LineWidth: 0.5},
}

var modernBase = StyleSet{
	Name:         Style{Font: Font{"Helvetica", FontBold}, FontSize: 24, Color: Hex("#0056d2"), Align: AlignLeft, MarginBottom: 2},
	Profession:   Style{Font: Font{"Helvetica", FontNormal}, FontSize: 12, Color: Hex("#4f4f4f"), Align: AlignLeft, MarginBottom: 6},
	Contact:      Style{Font: Font{"Helvetica", FontNormal}, FontSize: 9, Color: Hex("#000"), Align: AlignLeft},
	Header:       Style{Font: Font{"Helvetica", FontBold}, FontSize: 12, Color: Hex("#0056d2"), DrawColor: Hex("#0056d2"), LineWidth: 1, Align: AlignLeft, TextTransform: TransformUppercase, MarginBottom: 6},
	SubHeader:    Style{Font: Font{"Helvetica", FontBold}, FontSize: 11, Color: Hex("#1a1a1a"), Align: AlignLeft},
	SubSubHeader: Style{Font: Font{"Helvetica", FontNormal}, FontSize: 10, Color: Hex("#0056d2"), Align: AlignLeft},
	Normal:       Style{Font: Font{"Helvetica", FontNormal}, FontSize: 9.5, Color: Hex("#4f4f4f"), Align: AlignLeft, LineHeight: 1.4},
	HeaderBg:     Style{FillColor: Hex("#f2f6fc")},
	NameInitial:  Style{Font: Font{"Helvetica", FontBold}, FontSize: 18, Color: Hex("#fff"), FillColor: Hex("#0056d2"), DrawColor: Hex("#0056d2")},
	Tag:          Style{Font: Font{"Helvetica", FontNormal}, FontSize: 8.5, Color: Hex("#0056d2"), FillColor: Hex("#e6f0fd"), Radius: 4},
	ProgressBar:  Style{Font: Font{"Helvetica", FontNormal}, FontSize: 9, Color: Hex("#4f4f4f"), FillColor: Hex("#0056d2"), Height: 4, Radius: 2},
	ProgressBack: Style{FillColor: Hex("#e6f0fd")},
	Icon:         Style{Color: Hex("rgb(6, 51, 228)"), FontSize: 9},
	Rule:         Style{DrawColor: Hex("#d0dcf0"), LineWidth: 0.6},
}

var simpleBase = StyleSet{
	Name:         Style{Font: Font{"Helvetica", FontBold}, FontSize: 20, Color: Hex("#000"), Align: AlignLeft, MarginBottom: 2},
	Profession:   Style{Font: Font{"Helvetica", FontNormal}, FontSize: 11, Color: Hex("#555"), Align: AlignLeft, MarginBottom: 4},
	Contact:      Style{Font: Font{"Helvetica", FontNormal}, FontSize: 9, Color: Hex("#333"), Align: AlignLeft},
	Header:       Style{Font: Font{"Helvetica", FontBold}, FontSize: 11, Color: Hex("#000"), DrawColor: Hex("#ccc"), LineWidth: 0.5, Align: AlignLeft, TextTransform: TransformNone, MarginBottom: 5},
	SubHeader:    Style{Font: Font{"Helvetica", FontBold}, FontSize: 10.5, Color: Hex("#111"), Align: AlignLeft},
	SubSubHeader: Style{Font: Font{"Helvetica", FontNormal}, FontSize: 10, Color: Hex("#555"), Align: AlignLeft},
	Normal:       Style{Font: Font{"Helvetica", FontNormal}, FontSize: 9.5, Color: Hex("#333"), Align: AlignLeft, LineHeight: 1.35},
	NameInitial:  Style{Font: Font{"Helvetica", FontBold}, FontSize: 18, Color: Hex("#fff"), FillColor: Hex("#444"), DrawColor: Hex("#444")},
	Tag:          Style{Font: Font{"Helvetica", FontNormal}, FontSize: 8.5, Color: Hex("#333"), FillColor: Hex("#f0f0f0"), Radius: 2},
	ProgressBar:  Style{Font: Font{"Helvetica", FontNormal}, FontSize: 9, Color: Hex("#333"), FillColor: Hex("#555"), Height: 4, Radius: 1},
	ProgressBack: Style{FillColor: Hex("#e5e5e5")},
	Icon:         Style{Color: Hex("#555"), FontSize: 8.5},
	Rule:         Style{DrawColor: Hex("#ccc"), LineWidth: 0.5},
}

var creativeBase = StyleSet{
	Name:         Style{Font: Font{"Helvetica", FontBold}, FontSize: 24, Color: Hex("#fff"), Align: AlignCenter, TextTransform: TransformUppercase, MarginBottom: 2},
	Profession:   Style{Font: Font{"Helvetica", FontNormal}, FontSize: 12, Color: Hex("#ffcc80"), Align: AlignCenter, MarginBottom: 6},
	Contact:      Style{Font: Font{"Helvetica", FontNormal}, FontSize: 9, Color: Hex("#eceff1"), Align: AlignCenter},
	Header:       Style{Font: Font{"Helvetica", FontBold}, FontSize: 12.5, Color: Hex("#ff7043"), DrawColor: Hex("#ff7043"), LineWidth: 1.2, Align: AlignLeft, TextTransform: TransformUppercase, MarginBottom: 6},
	SubHeader:    Style{Font: Font{"Helvetica", FontBold}, FontSize: 11, Color: Hex("#263238"), Align: AlignLeft},
	SubSubHeader: Style{Font: Font{"Helvetica", FontItalic}, FontSize: 10, Color: Hex("#546e7a"), Align: AlignLeft},
	Normal:       Style{Font: Font{"Helvetica", FontNormal}, FontSize: 9.5, Color: Hex("#37474f"), Align: AlignLeft, LineHeight: 1.4},
	HeaderBg:     Style{FillColor: Hex("#263238")},
	NameInitial:  Style{Font: Font{"Helvetica", FontBold}, FontSize: 18, Color: Hex("#263238"), FillColor: Hex("#ff7043"), DrawColor: Hex("#ffccbc")},
	Tag:          Style{Font: Font{"Helvetica", FontBold}, FontSize: 8.5, Color: Hex("#fff"), FillColor: Hex("#ff7043"), Radius: 5},
	ProgressBar:  Style{Font: Font{"Helvetica", FontNormal}, FontSize: 9, Color: Hex("#37474f"), FillColor: Hex("#ff7043"), Height: 5, Radius: 2.5},
	ProgressBack: Style{FillColor: Hex("#ffe0d6")},
	Icon:         Style{Color: Hex("orange"), FontSize: 9},
	Rule:         Style{DrawColor: Hex("#cfd8dc"), LineWidth: 0.6},
}

var familyBase = map[Family]StyleSet{
	Classical: classicalBase,
	Modern:    modernBase,
	Simple:    simpleBase,
	Creative:  creativeBase,
}

// layoutStyles holds the per-layout differences from the family base.
// Layouts without an entry use the base unchanged.
var layoutStyles = map[Key]StyleSet{
	{Classical, 1}: {
		Name:         Style{Font: Font{"Helvetica", FontBold}, FontSize: 16.5},
		Header:       Style{Font: Font{"Helvetica", FontBold}},
		SubHeader:    Style{Font: Font{Style: FontNormal}, FontSize: 15, Color: Hex("#333"), MarginBottom: 6},
		SubSubHeader: Style{Font: Font{Style: FontNormal}, FontSize: 13.5, Color: Hex("#555"), MarginBottom: 4.5},
		Normal:       Style{FontSize: 12, Color: Hex("#666")},
	},
	{Classical, 2}: {
		Name:       Style{Align: AlignLeft},
		Profession: Style{Align: AlignLeft},
		Contact:    Style{Align: AlignLeft},
		Header:     Style{Color: Hex("#1f3a5f"), DrawColor: Hex("#1f3a5f")},
	},
	{Classical, 3}: {
		HeaderBg:   Style{FillColor: Hex("#f5f0e6")},
		Header:     Style{TextTransform: TransformNone, FontSize: 14},
		Profession: Style{Color: Hex("#5a4632")},
	},
	{Classical, 4}: {
		Name:    Style{TextTransform: TransformUppercase, FontSize: 20},
		Contact: Style{FontSize: 9},
		Rule:    Style{DrawColor: Hex("#000"), LineWidth: 0.3},
	},
	{Classical, 5}: {
		Header:       Style{Color: Hex("#8b0000"), DrawColor: Hex("#8b0000")},
		SubSubHeader: Style{Color: Hex("#8b0000")},
	},
	{Classical, 6}: {
		Name:   Style{Font: Font{Style: FontNormal}, FontSize: 26},
		Normal: Style{FontSize: 10.5},
	},

	{Modern, 2}: {
		HeaderBg:   Style{FillColor: Hex("#0056d2")},
		Name:       Style{Color: Hex("#fff")},
		Profession: Style{Color: Hex("#dbe7fb")},
		Contact:    Style{Color: Hex("#fff")},
		Icon:       Style{Color: Hex("#fff")},
	},
	{Modern, 3}: {
		Header:      Style{Color: Hex("#00897b"), DrawColor: Hex("#00897b")},
		Name:        Style{Color: Hex("#00897b")},
		Tag:         Style{Color: Hex("#00695c"), FillColor: Hex("#e0f2f1")},
		ProgressBar: Style{FillColor: Hex("#00897b")},
		NameInitial: Style{FillColor: Hex("#00897b"), DrawColor: Hex("#00897b")},
	},
	{Modern, 4}: {
		Name:       Style{Align: AlignCenter},
		Profession: Style{Align: AlignCenter},
		Contact:    Style{Align: AlignCenter},
	},
	{Modern, 5}: {
		Header: Style{TextTransform: TransformNone, FontSize: 13},
		Normal: Style{Color: Hex("#333")},
	},
	{Modern, 6}: {
		Name:     Style{Color: Hex("#6a1b9a")},
		Header:   Style{Color: Hex("#6a1b9a"), DrawColor: Hex("#6a1b9a")},
		Tag:      Style{Color: Hex("#6a1b9a"), FillColor: Hex("#f3e5f5")},
		HeaderBg: Style{FillColor: Hex("#faf5fc")},
	},

	{Simple, 2}: {
		Name:       Style{Align: AlignCenter},
		Profession: Style{Align: AlignCenter},
		Contact:    Style{Align: AlignCenter},
	},
	{Simple, 3}: {
		Header: Style{TextTransform: TransformUppercase, FontSize: 10},
	},
	{Simple, 4}: {
		Normal: Style{FontSize: 10, LineHeight: 1.5},
	},
	// Blue accent layout.
	{Simple, 5}: {
		Name:         Style{FontSize: 19.5, Color: Hex("#0056d2"), Align: AlignLeft, TextTransform: TransformNone},
		Profession:   Style{Color: Hex("#4f4f4f"), Align: AlignLeft},
		Contact:      Style{Color: Hex("#000")},
		Header:       Style{Color: Hex("#0056d2")},
		Normal:       Style{Color: Hex("#4f4f4f")},
		Tag:          Style{Color: Hex("#0056d2"), FillColor: Hex("#e6f0fd")},
		Icon:         Style{Color: Hex("rgb(6, 51, 228)")},
		SubSubHeader: Style{Color: Hex("#0056d2")},
	},
	{Simple, 6}: {
		Name:   Style{Font: Font{"Courier", FontBold}},
		Header: Style{Font: Font{"Courier", FontBold}},
	},

	{Creative, 2}: {
		HeaderBg:   Style{FillColor: Hex("#004d40")},
		Header:     Style{Color: Hex("#00796b"), DrawColor: Hex("#00796b")},
		Tag:        Style{FillColor: Hex("#00796b")},
		Profession: Style{Color: Hex("#b2dfdb")},
	},
	{Creative, 3}: {
		HeaderBg:    Style{FillColor: Hex("#4a148c")},
		Header:      Style{Color: Hex("#7b1fa2"), DrawColor: Hex("#7b1fa2")},
		ProgressBar: Style{FillColor: Hex("#7b1fa2")},
		Tag:         Style{FillColor: Hex("#7b1fa2")},
	},
	{Creative, 4}: {
		Name:       Style{Align: AlignLeft},
		Profession: Style{Align: AlignLeft},
		Contact:    Style{Align: AlignLeft},
	},
	{Creative, 5}: {
		Header: Style{Font: Font{"Times", FontBoldItalic}, TextTransform: TransformNone, FontSize: 14},
	},
	{Creative, 6}: {
		HeaderBg: Style{FillColor: Hex("#bf360c")},
		Name:     Style{FontSize: 26},
	},
}

// Base returns the base styles of a family.
func Base(f Family) (StyleSet, bool) {
	s, ok := familyBase[f]
	return s, ok
}
