package scope

import (
	"regexp"
	"strings"
)

// Regions is a document split into a head and a body region.
// The head holds the style block, the body holds the table.
type Regions struct {
	Head string
	Body string
}

// Split splits doc at the first occurrence of tag. If tag does not occur,
// the complete document is the head region and the body is empty.
func Split(doc string, tag string) Regions {
	if tag == "" {
		return Regions{Head: doc}
	}
	i := strings.Index(doc, tag)
	if i < 0 {
		return Regions{Head: doc}
	}
	return Regions{Head: doc[:i], Body: doc[i:]}
}

func (r Regions) String() string {
	return r.Head + r.Body
}

var idAttr = regexp.MustCompile(`(?:^|\s)id="([^"]+)"`)

// ExtractID returns the identifier the document's styles should be scoped to.
//
// The id of the table's opening tag is preferred. Renderers like gt put the
// identifier on a wrapper element preceding the table and use id attributes
// on header cells; therefore the head region (excluding its style blocks)
// is searched next, and only then the rest of the body. ExtractID returns
// the empty string if no identifier can be found.
func ExtractID(r Regions) string {
	tag := r.Body
	if i := strings.IndexByte(tag, '>'); i >= 0 {
		tag = tag[:i]
	}
	if id := findID(tag); id != "" {
		return id
	}
	if id := findID(styleBlock.ReplaceAllString(r.Head, "")); id != "" {
		return id
	}
	return findID(r.Body)
}

func findID(s string) string {
	m := idAttr.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
