package api

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/resumepdf/internal/preset"
	"github.com/gompdf/resumepdf/internal/resume"
	"github.com/gompdf/resumepdf/internal/style"
	"github.com/gompdf/resumepdf/pkg/errors"
)

var modern1 = style.Key{Family: style.Modern, Number: 1}

func quietGenerator(opts ...Option) *Generator {
	o := DefaultOptions()
	o.Logger = log.New(io.Discard)
	for _, opt := range opts {
		opt(&o)
	}
	return NewWithOptions(o)
}

func sampleResume() resume.Resume {
	return resume.Resume{
		PersonalDetails: resume.PersonalDetails{
			Name:       "Jane Doe",
			Profession: "Backend Engineer",
			Email:      "jane@example.com",
			Phone:      "+1 555 0100",
			Address:    "Berlin, Germany",
			URLs:       resume.TextList{"https://www.linkedin.com/in/janedoe", "github.com/janedoe"},
		},
		Summary: "Builds reliable systems.\n\nLikes boring technology.",
		Experiences: []resume.Experience{
			{CompanyName: "Acme", Position: "Staff Engineer", Location: "Remote", StartDate: "2020", EndDate: "Present",
				Achievements: resume.TextList{"Cut p99 latency in half", "Led the storage migration"}},
			{Position: "Engineer"},
		},
		Educations:   []resume.Education{{Institution: "TU Berlin", Degree: "MSc", StartDate: "2014", EndDate: "2016"}},
		Skills:       []resume.Skill{{Name: "Go", Level: 90}, {Name: "SQL", Level: 70}},
		Achievements: []resume.Achievement{{Title: "Hackathon winner", Date: "2019"}},
		Strengths:    []resume.Strength{{Title: "Focus", Description: "Finishes things."}},
		MyTime:       []resume.TimeShare{{Activity: "Coding", Percent: 70}, {Activity: "Reading", Percent: 30}},
	}
}

func TestGenerateEveryLayout(t *testing.T) {
	g := quietGenerator()
	r := sampleResume()
	for _, key := range preset.Keys() {
		t.Run(key.String(), func(t *testing.T) {
			var buf bytes.Buffer
			res, err := g.Generate(r, key, &buf)
			require.NoError(t, err)
			assert.Equal(t, key, res.Layout)
			assert.GreaterOrEqual(t, res.Pages, 1)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}

func TestGenerateBreaksPages(t *testing.T) {
	r := sampleResume()
	r.Experiences = nil
	for i := 0; i < 40; i++ {
		r.Experiences = append(r.Experiences, resume.Experience{
			CompanyName:  fmt.Sprintf("Company %d", i),
			Position:     "Engineer",
			StartDate:    "2000",
			EndDate:      "2001",
			Achievements: resume.TextList{strings.Repeat("Shipped things that mattered. ", 6)},
		})
	}

	g := quietGenerator()
	var small, large bytes.Buffer
	one, err := g.Generate(sampleResume(), modern1, &small)
	require.NoError(t, err)
	many, err := g.Generate(r, modern1, &large)
	require.NoError(t, err)

	assert.Equal(t, 1, one.Pages)
	assert.Greater(t, many.Pages, 2)
}

func TestGenerateErrorCodes(t *testing.T) {
	g := quietGenerator()

	_, err := g.Generate(sampleResume(), style.Key{Family: "baroque", Number: 1}, io.Discard)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidLayout), err)

	noName := sampleResume()
	noName.PersonalDetails.Name = ""
	_, err = g.Generate(noName, modern1, io.Discard)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), err)

	_, err = quietGenerator(WithPadding(500, 40, 500, 40)).Generate(sampleResume(), modern1, io.Discard)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), err)

	bad := style.Overrides{"sidebar": {"color": "red"}}
	_, err = quietGenerator(WithStyleOverrides(bad)).Generate(sampleResume(), modern1, io.Discard)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidStyle), err)
}

func TestStyleSheets(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "brand.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[header]\ncolor = \"#123456\"\nfont-size = \"14pt\"\n"), 0o644))
	cssPath := filepath.Join(dir, "brand.css")
	require.NoError(t, os.WriteFile(cssPath, []byte("name { color: #654321; font-size: 30px }"), 0o644))

	g := quietGenerator(WithStyleSheet(tomlPath), WithStyleSheet(cssPath))
	set, err := g.styles(modern1)
	require.NoError(t, err)
	assert.Equal(t, style.Hex("#123456"), set.Header.Color)
	assert.Equal(t, 14.0, set.Header.FontSize)
	assert.Equal(t, style.Hex("#654321"), set.Name.Color)
	assert.Equal(t, 22.5, set.Name.FontSize)

	broken := filepath.Join(dir, "broken.css")
	require.NoError(t, os.WriteFile(broken, []byte("name { wobble: 3 }"), 0o644))
	_, err = quietGenerator(WithStyleSheet(broken)).Generate(sampleResume(), modern1, io.Discard)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidStyle), err)

	_, err = quietGenerator(WithStyleSheet(filepath.Join(dir, "missing.css"))).Generate(sampleResume(), modern1, io.Discard)
	assert.True(t, errors.Is(err, errors.ErrCodeResource), err)
}

func TestProfileImage(t *testing.T) {
	creative := style.Key{Family: style.Creative, Number: 1}
	r := sampleResume()
	r.PersonalDetails.Profile = resume.TextList{"missing.png"}

	var logs bytes.Buffer
	g := quietGenerator(WithLogger(log.New(&logs)), WithBaseDir(t.TempDir()))
	_, err := g.Generate(r, creative, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "skipping profile image")

	_, err = g.WithOption(WithStrictResources(true)).Generate(r, creative, io.Discard)
	assert.True(t, errors.Is(err, errors.ErrCodeResource), err)

	// A 1x1 transparent GIF as a data URI.
	r.PersonalDetails.Profile = resume.TextList{"data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7"}
	_, err = g.WithOption(WithStrictResources(true)).Generate(r, creative, io.Discard)
	assert.NoError(t, err)
}

func TestGenerateFileAndBytes(t *testing.T) {
	g := quietGenerator(WithCreationDate(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), WithTitle("CV"))
	path := filepath.Join(t.TempDir(), "cv.pdf")

	res, err := g.GenerateFile(sampleResume(), modern1, path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(onDisk, []byte("%PDF-")))

	b, err := g.GenerateBytes(sampleResume(), modern1)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))

	_, err = g.GenerateFile(sampleResume(), modern1, filepath.Join(t.TempDir(), "no", "such", "dir", "cv.pdf"))
	assert.True(t, errors.Is(err, errors.ErrCodeIO), err)
}

func TestOptions(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	o := DefaultOptions()
	WithPageSizeLetter()(&o)
	assert.Equal(t, 612.0, o.PageWidth)
	assert.NoError(t, o.Validate())

	WithPadding(10, -1, 10, 10)(&o)
	assert.Error(t, o.Validate())

	WithPageSize(0, 100)(&o)
	assert.Error(t, o.Validate())

	w, h, err := PageSizeByName("Legal")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{612, 1008}, [2]float64{w, h})
	_, _, err = PageSizeByName("tabloid")
	assert.Error(t, err)
}

func TestWithOptionDoesNotShareSlices(t *testing.T) {
	base := quietGenerator(WithResourcePath("a"))
	derived := base.WithOption(WithResourcePath("b"))
	assert.Equal(t, []string{"a"}, base.Options().ResourcePaths)
	assert.Equal(t, []string{"a", "b"}, derived.Options().ResourcePaths)
}
