package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrEmptyMarkup is returned when trying to parse empty markup.
var ErrEmptyMarkup = errors.New("markup is empty")

// Parse parses markup into a complete HTML document tree. Fragments are
// completed the usual way, i.e. with <html>, <head> and <body> elements
// inserted as necessary.
func Parse(markup string) (*html.Node, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, ErrEmptyMarkup
	}
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// Attr returns the value of attribute key of n, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// FindByID returns the first element below h (including h) with an id
// attribute of value id.
func FindByID(h *html.Node, id string) *html.Node {
	if h == nil || id == "" {
		return nil
	}
	if h.Type == html.ElementNode && Attr(h, "id") == id {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := FindByID(ch, id); r != nil {
			return r
		}
	}
	return nil
}

// FindAll returns all elements of type a below h (including h), in document order.
func FindAll(a atom.Atom, h *html.Node) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = append(found, n)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if h != nil {
		walk(h)
	}
	return found
}

// Within is true if n is ancestor or a descendant of ancestor.
func Within(n, ancestor *html.Node) bool {
	if ancestor == nil {
		return false
	}
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of n and all its descendants.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if n != nil {
		walk(n)
	}
	return b.String()
}

// ClassTokens returns the distinct class names used in class attributes
// below h, in order of first appearance.
func ClassTokens(h *html.Node) []string {
	var tokens []string
	seen := make(map[string]bool)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, c := range strings.Fields(Attr(n, "class")) {
				if !seen[c] {
					seen[c] = true
					tokens = append(tokens, c)
				}
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if h != nil {
		walk(h)
	}
	tracer().Debugf("collected %d class tokens", len(tokens))
	return tokens
}
