// Package html turns the rich-text fragments produced by résumé editors
// (summary, descriptions) into plain paragraphs the PDF renderer can draw.
package html

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Paragraph is one block of text.
type Paragraph struct {
	Text string
	// Bullet is set for <li> items of an unordered list.
	Bullet bool
	// Ordered is set for <li> items of an ordered list; Index is 1-based.
	Ordered bool
	Index   int
}

// ParseRichText splits s into paragraphs. Input without markup is split on
// blank lines. <p>, <div>, <br>, <li>, <ul> and <ol> start new blocks; any
// other element is flattened into the surrounding text.
func ParseRichText(s string) []Paragraph {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !strings.Contains(s, "<") {
		return plainParagraphs(s)
	}

	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return plainParagraphs(s)
	}

	w := &walker{}
	for _, n := range nodes {
		w.walk(n)
	}
	w.flush()
	return w.out
}

func plainParagraphs(s string) []Paragraph {
	var out []Paragraph
	for _, block := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if t := strings.TrimSpace(block); t != "" {
			out = append(out, Paragraph{Text: t})
		}
	}
	return out
}

type listContext struct {
	ordered bool
	counter int
}

type walker struct {
	out   []Paragraph
	buf   strings.Builder
	cur   Paragraph
	lists []listContext
}

func (w *walker) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.buf.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c)
		}
		return
	}

	switch n.DataAtom {
	case atom.Br:
		w.buf.WriteString("\n")
		return
	case atom.Ul, atom.Ol:
		w.flush()
		w.lists = append(w.lists, listContext{ordered: n.DataAtom == atom.Ol})
		w.children(n)
		w.flush()
		w.lists = w.lists[:len(w.lists)-1]
		return
	case atom.Li:
		w.flush()
		if len(w.lists) > 0 {
			top := &w.lists[len(w.lists)-1]
			if top.ordered {
				top.counter++
				w.cur = Paragraph{Ordered: true, Index: top.counter}
			} else {
				w.cur = Paragraph{Bullet: true}
			}
		} else {
			w.cur = Paragraph{Bullet: true}
		}
		w.children(n)
		w.flush()
		return
	case atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.flush()
		w.children(n)
		w.flush()
		return
	}
	w.children(n)
}

func (w *walker) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// flush closes the paragraph being collected, if it has any text.
func (w *walker) flush() {
	lines := strings.Split(w.buf.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	w.buf.Reset()
	if text != "" {
		p := w.cur
		p.Text = text
		w.out = append(w.out, p)
	}
	w.cur = Paragraph{}
}
