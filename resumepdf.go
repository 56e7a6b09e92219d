package resumepdf

import (
	"github.com/gompdf/resumepdf/internal/resume"
	"github.com/gompdf/resumepdf/internal/style"
	"github.com/gompdf/resumepdf/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type Result = api.Result

type Resume = resume.Resume
type PersonalDetails = resume.PersonalDetails
type Experience = resume.Experience
type Education = resume.Education
type Skill = resume.Skill
type Achievement = resume.Achievement
type Strength = resume.Strength
type TimeShare = resume.TimeShare
type TextList = resume.TextList

type LayoutKey = style.Key
type StyleOverrides = style.Overrides

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

// ParseLayout parses a layout key such as "modern-3".
func ParseLayout(s string) (LayoutKey, error) { return style.ParseKey(s) }

// LoadResume reads a résumé from a YAML or JSON file.
func LoadResume(path string) (*Resume, error) { return resume.LoadFile(path) }

var (
	WithPageSize        = api.WithPageSize
	WithPadding         = api.WithPadding
	WithBaseDir         = api.WithBaseDir
	WithResourcePath    = api.WithResourcePath
	WithStrictResources = api.WithStrictResources
	WithStyleOverrides  = api.WithStyleOverrides
	WithStyleSheet      = api.WithStyleSheet
	WithTitle           = api.WithTitle
	WithAuthor          = api.WithAuthor
	WithSubject         = api.WithSubject
	WithKeywords        = api.WithKeywords
	WithCreationDate    = api.WithCreationDate
	WithLogger          = api.WithLogger
	WithPageSizeA4      = api.WithPageSizeA4
	WithPageSizeLetter  = api.WithPageSizeLetter
	WithPageSizeLegal   = api.WithPageSizeLegal
)

const (
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight
)
