// Package text holds the string handling shared by the renderers: line
// breaking against a measured width, normalisation and initials.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Measurer returns the rendered width of s in the current font.
type Measurer func(s string) float64

// Wrap breaks text into lines no wider than width. Explicit newlines are
// kept, words are never reordered, and a word wider than width is split
// between runes. An empty paragraph yields an empty line.
func Wrap(text string, width float64, measure Measurer) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width, measure)...)
	}
	return lines
}

func wrapParagraph(para string, width float64, measure Measurer) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(word) <= width {
			current = word
			continue
		}
		pieces := splitWord(word, width, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWord cuts word into chunks that fit width. Every chunk holds at least
// one rune so the loop always makes progress.
func splitWord(word string, width float64, measure Measurer) []string {
	var out []string
	for word != "" {
		end := 0
		for i, r := range word {
			next := i + utf8.RuneLen(r)
			if end > 0 && measure(word[:next]) > width {
				break
			}
			end = next
		}
		out = append(out, word[:end])
		word = word[end:]
	}
	return out
}

// Normalize composes s to NFC, collapses runs of horizontal whitespace and
// trims each line. Newlines survive.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.FieldsFunc(line, isHorizontalSpace), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func isHorizontalSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// Initials returns up to two upper-case initials taken from the first
// letters of the words of name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}
