// Package resume defines the résumé document model and its YAML/JSON input
// format. Keys follow the format of the web builder the data usually comes
// from, including its "acheivement" spelling.
package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gompdf/resumepdf/internal/text"
)

// Placeholders used when an entry leaves a field empty.
const (
	UnknownCompany     = "Unknown Company"
	UnknownPosition    = "Position not specified"
	UnknownLocation    = "Location not specified"
	UnknownDate        = "N/A"
	UnknownInstitution = "Unknown Institution"
	UnknownDegree      = "Degree not specified"
)

// Resume is the input document.
type Resume struct {
	PersonalDetails PersonalDetails `yaml:"personalDetails" json:"personalDetails"`
	Summary         string          `yaml:"summary" json:"summary"`
	Experiences     []Experience    `yaml:"experiences" json:"experiences"`
	Educations      []Education     `yaml:"educations" json:"educations"`
	Skills          []Skill         `yaml:"skills" json:"skills"`
	Achievements    []Achievement   `yaml:"achievements" json:"achievements"`
	Strengths       []Strength      `yaml:"strengths" json:"strengths"`
	MyTime          []TimeShare     `yaml:"my_time" json:"my_time"`
}

// PersonalDetails is the header block.
type PersonalDetails struct {
	Name       string   `yaml:"name" json:"name"`
	Profession string   `yaml:"profession" json:"profession"`
	Email      string   `yaml:"email" json:"email"`
	Phone      string   `yaml:"phone" json:"phone"`
	Address    string   `yaml:"address" json:"address"`
	Profile    TextList `yaml:"profile" json:"profile"`
	URLs       TextList `yaml:"urls" json:"urls"`
}

// ProfileImage returns the first profile image reference, if any.
func (p PersonalDetails) ProfileImage() string {
	for _, ref := range p.Profile {
		if strings.TrimSpace(ref) != "" {
			return strings.TrimSpace(ref)
		}
	}
	return ""
}

// Experience is one job.
type Experience struct {
	CompanyName  string   `yaml:"company_name" json:"company_name"`
	AboutCompany string   `yaml:"about_company" json:"about_company"`
	Position     string   `yaml:"position" json:"position"`
	Location     string   `yaml:"location" json:"location"`
	StartDate    string   `yaml:"start_date" json:"start_date"`
	EndDate      string   `yaml:"end_date" json:"end_date"`
	Achievements TextList `yaml:"achievements" json:"achievements"`
}

// Period returns "start - end".
func (e Experience) Period() string { return e.StartDate + " - " + e.EndDate }

// Education is one degree.
type Education struct {
	Institution  string `yaml:"institution" json:"institution"`
	Degree       string `yaml:"degree" json:"degree"`
	FieldOfStudy string `yaml:"field_of_study" json:"field_of_study"`
	Location     string `yaml:"location" json:"location"`
	StartDate    string `yaml:"start_date" json:"start_date"`
	EndDate      string `yaml:"end_date" json:"end_date"`
	Grade        string `yaml:"grade" json:"grade"`
	Description  string `yaml:"description" json:"description"`
}

// Period returns "start - end".
func (e Education) Period() string { return e.StartDate + " - " + e.EndDate }

// Skill is a named skill with an optional level in percent.
type Skill struct {
	Name  string  `yaml:"name" json:"name"`
	Level float64 `yaml:"level" json:"level"`
}

// Achievement is an award or notable result.
type Achievement struct {
	Title string `yaml:"acheivement" json:"acheivement"`
	// Alt accepts the correct spelling as well.
	Alt   string `yaml:"achievement" json:"achievement"`
	Field string `yaml:"field" json:"field"`
	Date  string `yaml:"date" json:"date"`
}

// Text returns the achievement text under either spelling.
func (a Achievement) Text() string {
	if a.Title != "" {
		return a.Title
	}
	return a.Alt
}

// Strength is a personal strength.
type Strength struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// TimeShare is one entry of the "my time" breakdown.
type TimeShare struct {
	Activity string  `yaml:"activity" json:"activity"`
	Percent  float64 `yaml:"percent" json:"percent"`
}

// TextList is a list of strings that also accepts a single string and
// items of the form {value: "..."}.
type TextList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *TextList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = TextList{n.Value}
		return nil
	case yaml.SequenceNode:
		out := make(TextList, 0, len(n.Content))
		for _, item := range n.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				out = append(out, item.Value)
			case yaml.MappingNode:
				var v struct {
					Value string `yaml:"value"`
				}
				if err := item.Decode(&v); err != nil {
					return err
				}
				out = append(out, v.Value)
			default:
				return fmt.Errorf("line %d: expected a string or {value: ...}", item.Line)
			}
		}
		*l = out
		return nil
	}
	return fmt.Errorf("line %d: expected a string or a list", n.Line)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *TextList) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*l = TextList{single}
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return errors.New("expected a string or a list")
	}
	out := make(TextList, 0, len(items))
	for _, raw := range items {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out = append(out, s)
			continue
		}
		var v struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.New("expected a string or {\"value\": ...}")
		}
		out = append(out, v.Value)
	}
	*l = out
	return nil
}

func orDefault(s, def string) string {
	if s = text.Normalize(s); s == "" {
		return def
	}
	return s
}

func normalizeList(l TextList) TextList {
	out := make(TextList, 0, len(l))
	for _, s := range l {
		if s = text.Normalize(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// WithDefaults returns a copy with text normalised, empty list items dropped
// and placeholders filled in for missing experience and education fields.
func (r Resume) WithDefaults() Resume {
	out := r
	p := &out.PersonalDetails
	p.Name = text.Normalize(p.Name)
	p.Profession = text.Normalize(p.Profession)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = text.Normalize(p.Address)
	p.URLs = normalizeList(p.URLs)
	p.Profile = normalizeList(p.Profile)
	out.Summary = strings.TrimSpace(out.Summary)

	out.Experiences = make([]Experience, len(r.Experiences))
	for i, e := range r.Experiences {
		e.CompanyName = orDefault(e.CompanyName, UnknownCompany)
		e.Position = orDefault(e.Position, UnknownPosition)
		e.Location = orDefault(e.Location, UnknownLocation)
		e.StartDate = orDefault(e.StartDate, UnknownDate)
		e.EndDate = orDefault(e.EndDate, UnknownDate)
		e.AboutCompany = strings.TrimSpace(e.AboutCompany)
		e.Achievements = normalizeList(e.Achievements)
		out.Experiences[i] = e
	}

	out.Educations = make([]Education, len(r.Educations))
	for i, e := range r.Educations {
		e.Institution = orDefault(e.Institution, UnknownInstitution)
		e.Degree = orDefault(e.Degree, UnknownDegree)
		e.FieldOfStudy = text.Normalize(e.FieldOfStudy)
		e.Location = text.Normalize(e.Location)
		e.StartDate = orDefault(e.StartDate, UnknownDate)
		e.EndDate = orDefault(e.EndDate, UnknownDate)
		e.Grade = text.Normalize(e.Grade)
		e.Description = strings.TrimSpace(e.Description)
		out.Educations[i] = e
	}

	out.Skills = nil
	for _, s := range r.Skills {
		if s.Name = text.Normalize(s.Name); s.Name != "" {
			out.Skills = append(out.Skills, s)
		}
	}
	out.Achievements = nil
	for _, a := range r.Achievements {
		a.Title, a.Alt = text.Normalize(a.Text()), ""
		if a.Title == "" {
			continue
		}
		a.Field = text.Normalize(a.Field)
		a.Date = text.Normalize(a.Date)
		out.Achievements = append(out.Achievements, a)
	}
	out.Strengths = nil
	for _, s := range r.Strengths {
		s.Title = text.Normalize(s.Title)
		s.Description = text.Normalize(s.Description)
		if s.Title != "" || s.Description != "" {
			out.Strengths = append(out.Strengths, s)
		}
	}
	out.MyTime = nil
	for _, m := range r.MyTime {
		if m.Activity = text.Normalize(m.Activity); m.Activity != "" {
			out.MyTime = append(out.MyTime, m)
		}
	}
	return out
}

// Validate checks the fields that cannot be defaulted. All problems are
// reported together.
func (r Resume) Validate() error {
	var errs []error
	if strings.TrimSpace(r.PersonalDetails.Name) == "" {
		errs = append(errs, errors.New("personalDetails.name is required"))
	}
	for i, s := range r.Skills {
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, fmt.Errorf("skills[%d].level %v is outside 0-100", i, s.Level))
		}
	}
	total := 0.0
	for i, m := range r.MyTime {
		if m.Percent < 0 || m.Percent > 100 {
			errs = append(errs, fmt.Errorf("my_time[%d].percent %v is outside 0-100", i, m.Percent))
		}
		total += m.Percent
	}
	if total > 100.0001 {
		errs = append(errs, fmt.Errorf("my_time percentages add up to %v", total))
	}
	if e := strings.TrimSpace(r.PersonalDetails.Email); e != "" && !strings.Contains(e, "@") {
		errs = append(errs, fmt.Errorf("personalDetails.email %q is not an email address", e))
	}
	return errors.Join(errs...)
}
