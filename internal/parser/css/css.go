// Package css parses the small CSS dialect used for résumé style overrides.
//
// A sheet is a list of blocks whose selectors name style slots:
//
//	name, header { color: #0056d2; font-weight: bold }
//	normal { font-size: 10px }
//
// Values are interpreted by the helpers in values.go.
package css

import (
	"errors"
	"io"
	"strings"
)

// Parser parses style sheets.
type Parser struct{}

// Rule is one selector block.
type Rule struct {
	Selectors    []string
	Declarations []*Declaration
}

// Declaration represents a CSS declaration (property-value pair)
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Stylesheet represents a parsed style sheet
type Stylesheet struct {
	Rules []*Rule
}

// NewParser creates a new CSS parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses CSS from a string
func (p *Parser) ParseString(content string) (*Stylesheet, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses CSS from an io.Reader. Malformed blocks are skipped.
func (p *Parser) Parse(r io.Reader) (*Stylesheet, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	sheet := &Stylesheet{Rules: []*Rule{}}
	for _, ruleStr := range splitRules(removeComments(string(content))) {
		rule, err := parseRule(ruleStr)
		if err != nil {
			continue
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet, nil
}

// Lookup returns the declarations that apply to selector, in source order.
// Later declarations override earlier ones unless the earlier one is
// !important.
func (s *Stylesheet) Lookup(selector string) map[string]string {
	out := map[string]string{}
	important := map[string]bool{}
	for _, rule := range s.Rules {
		matched := false
		for _, sel := range rule.Selectors {
			if strings.EqualFold(sel, selector) || sel == "*" {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, d := range rule.Declarations {
			if important[d.Property] && !d.Important {
				continue
			}
			out[d.Property] = d.Value
			important[d.Property] = d.Important
		}
	}
	return out
}

// ParseDeclarations parses an inline declaration list such as
// "font-size: 12px; color: #333".
func ParseDeclarations(s string) []*Declaration {
	return parseDeclarations(removeComments(s))
}

func parseRule(ruleStr string) (*Rule, error) {
	parts := strings.SplitN(ruleStr, "{", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid rule format")
	}

	selectors := parseSelectors(selectorText(parts[0]))
	if len(selectors) == 0 {
		return nil, errors.New("no selectors found")
	}
	body := strings.TrimSuffix(strings.TrimSpace(parts[1]), "}")

	return &Rule{
		Selectors:    selectors,
		Declarations: parseDeclarations(body),
	}, nil
}

// selectorText returns the selector list in front of a block. Text before
// the last ";" and lines not continued by a trailing comma are stray tokens.
func selectorText(prelude string) string {
	prelude = strings.TrimSpace(prelude)
	if i := strings.LastIndex(prelude, ";"); i >= 0 {
		prelude = prelude[i+1:]
	}
	lines := strings.Split(prelude, "\n")
	start := len(lines) - 1
	for start > 0 && strings.HasSuffix(strings.TrimSpace(lines[start-1]), ",") {
		start--
	}
	return strings.Join(lines[start:], " ")
}

func parseSelectors(selectorStr string) []string {
	selectors := strings.Split(selectorStr, ",")
	result := make([]string, 0, len(selectors))
	for _, selector := range selectors {
		selector = strings.TrimSpace(selector)
		if selector != "" {
			result = append(result, selector)
		}
	}
	return result
}

func parseDeclarations(declarationsStr string) []*Declaration {
	declarationStrings := strings.Split(declarationsStr, ";")
	result := make([]*Declaration, 0, len(declarationStrings))

	for _, declStr := range declarationStrings {
		declStr = strings.TrimSpace(declStr)
		if declStr == "" {
			continue
		}

		parts := strings.SplitN(declStr, ":", 2)
		if len(parts) != 2 {
			continue
		}

		property := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		important := false
		if strings.HasSuffix(value, "!important") {
			important = true
			value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
		}

		result = append(result, &Declaration{
			Property:  property,
			Value:     value,
			Important: important,
		})
	}

	return result
}

// removeComments removes CSS comments
func removeComments(content string) string {
	var result strings.Builder
	i := 0

	for i < len(content) {
		if i+1 < len(content) && content[i] == '/' && content[i+1] == '*' {
			commentEnd := strings.Index(content[i+2:], "*/")
			if commentEnd == -1 {
				break
			}
			i += commentEnd + 4
		} else {
			result.WriteByte(content[i])
			i++
		}
	}

	return result.String()
}

// splitRules splits content into top-level blocks. Whitespace between
// blocks collapses to one separator, a newline when the run had one, so a
// stray token stays apart from the selector that follows it.
func splitRules(content string) []string {
	var rules []string
	var currentRule strings.Builder
	braceCount := 0
	var sep byte

	for i := 0; i < len(content); i++ {
		char := content[i]

		if braceCount == 0 && isWhitespace(char) {
			if char == '\n' || char == '\r' {
				sep = '\n'
			} else if sep == 0 {
				sep = ' '
			}
			continue
		}
		if braceCount == 0 && sep != 0 {
			if currentRule.Len() > 0 {
				currentRule.WriteByte(sep)
			}
			sep = 0
		}

		switch char {
		case '{':
			braceCount++
		case '}':
			braceCount--
			if braceCount < 0 {
				// unmatched brace: drop what came before it
				braceCount = 0
				currentRule.Reset()
				continue
			}
			if braceCount == 0 {
				currentRule.WriteByte(char)
				rules = append(rules, currentRule.String())
				currentRule.Reset()
				continue
			}
		}
		currentRule.WriteByte(char)
	}

	return rules
}

func isWhitespace(char byte) bool {
	return char == ' ' || char == '\t' || char == '\n' || char == '\r'
}
