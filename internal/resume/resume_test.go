package resume

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
personalDetails:
  name: "  Jane   Doe "
  profession: Backend Engineer
  email: jane@example.com
  phone: "+1 555 0100"
  address: Berlin, Germany
  profile: avatar.png
  urls:
    - value: https://www.linkedin.com/in/janedoe
    - https://github.com/janedoe
summary: Builds reliable systems.
experiences:
  - company_name: Acme
    position: Staff Engineer
    start_date: "2020"
    achievements:
      - value: Cut p99 latency in half
      - "   "
      - Led the storage migration
  - about_company: stealth
educations:
  - degree: BSc Computer Science
skills:
  - name: Go
    level: 90
  - name: ""
achievements:
  - acheivement: Hackathon winner
    date: "2019"
  - achievement: Speaker at GopherCon
  - field: nothing here
strengths:
  - title: Focus
my_time:
  - activity: Coding
    percent: 60
`

func TestLoadYAML(t *testing.T) {
	r, err := Load(strings.NewReader(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", r.PersonalDetails.Profession)
	assert.Equal(t, TextList{"avatar.png"}, r.PersonalDetails.Profile)
	assert.Equal(t, TextList{"https://www.linkedin.com/in/janedoe", "https://github.com/janedoe"}, r.PersonalDetails.URLs)
	require.Len(t, r.Experiences, 2)
	assert.Len(t, r.Experiences[0].Achievements, 3)
	assert.Equal(t, "Hackathon winner", r.Achievements[0].Text())
	assert.Equal(t, "Speaker at GopherCon", r.Achievements[1].Text())
	assert.Equal(t, 60.0, r.MyTime[0].Percent)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("personalDetails:\n  nickname: jd\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`{"personalDetails":{"nickname":"jd"}}`), FormatJSON)
	assert.Error(t, err)

	_, err = Load(strings.NewReader("{}"), Format("toml"))
	assert.Error(t, err)
}

func TestLoadEmptyDocument(t *testing.T) {
	r, err := Load(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Resume{}, *r)
}

func TestLoadJSON(t *testing.T) {
	doc := `{
		"personalDetails": {"name": "Jane", "urls": [{"value": "https://janedoe.dev"}], "profile": ["a.png", "b.png"]},
		"experiences": [{"company_name": "Acme", "achievements": ["one", {"value": "two"}]}],
		"achievements": [{"acheivement": "Top 1%"}]
	}`
	r, err := Load(strings.NewReader(doc), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, TextList{"https://janedoe.dev"}, r.PersonalDetails.URLs)
	assert.Equal(t, "a.png", r.PersonalDetails.ProfileImage())
	assert.Equal(t, TextList{"one", "two"}, r.Experiences[0].Achievements)
	assert.Equal(t, "Top 1%", r.Achievements[0].Text())

	_, err = Load(strings.NewReader(`{"personalDetails": {"urls": 7}}`), FormatJSON)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"personalDetails":{"name":"Jane"}}`), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", r.PersonalDetails.Name)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	assert.Equal(t, FormatJSON, FormatFromPath("CV.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("cv.yml"))
}

func TestWithDefaults(t *testing.T) {
	r, err := Load(strings.NewReader(sampleYAML), FormatYAML)
	require.NoError(t, err)
	d := r.WithDefaults()

	assert.Equal(t, "Jane Doe", d.PersonalDetails.Name)

	first := d.Experiences[0]
	assert.Equal(t, UnknownLocation, first.Location)
	assert.Equal(t, "2020 - N/A", first.Period())
	assert.Equal(t, TextList{"Cut p99 latency in half", "Led the storage migration"}, first.Achievements)

	second := d.Experiences[1]
	assert.Equal(t, UnknownCompany, second.CompanyName)
	assert.Equal(t, UnknownPosition, second.Position)
	assert.Equal(t, "stealth", second.AboutCompany)

	assert.Equal(t, UnknownInstitution, d.Educations[0].Institution)
	assert.Equal(t, "BSc Computer Science", d.Educations[0].Degree)

	assert.Len(t, d.Skills, 1)
	require.Len(t, d.Achievements, 2)
	assert.Equal(t, "Speaker at GopherCon", d.Achievements[1].Title)

	// The source document is left untouched.
	assert.Equal(t, "", r.Experiences[1].CompanyName)
	assert.Len(t, r.Skills, 2)
}

func TestValidate(t *testing.T) {
	ok := Resume{PersonalDetails: PersonalDetails{Name: "Jane", Email: "jane@example.com"}}
	assert.NoError(t, ok.Validate())

	bad := Resume{
		PersonalDetails: PersonalDetails{Email: "not-an-email"},
		Skills:          []Skill{{Name: "Go", Level: 120}},
		MyTime:          []TimeShare{{Activity: "a", Percent: 70}, {Activity: "b", Percent: 50}},
	}
	err := bad.Validate()
	require.Error(t, err)
	for _, want := range []string{"name is required", "skills[0].level", "add up to", "not an email"} {
		assert.Contains(t, err.Error(), want)
	}
}
