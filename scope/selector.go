package scope

import (
	"regexp"
	"strings"
)

// ScopeSelector narrows a selector to the element with identifier id.
//
// The page-global selector is replaced by `#id .rootClass`. Any other
// selector not already starting with `#id` is prefixed with `#id `.
// Selector lists are scoped item by item. With an empty id, sel is
// returned unchanged.
func ScopeSelector(sel, id, global, rootClass string) string {
	if id == "" || strings.TrimSpace(sel) == "" {
		return sel
	}
	items := splitTopLevel(sel, ',')
	for i, item := range items {
		lead, core, trail := trimmed(item)
		items[i] = lead + scopeOne(core, id, global, rootClass) + trail
	}
	return strings.Join(items, ",")
}

func scopeOne(sel, id, global, rootClass string) string {
	if sel == "" {
		return sel
	}
	scoped := "#" + id
	switch {
	case strings.EqualFold(sel, global):
		if rootClass == "" {
			sel = scoped
		} else {
			sel = scoped + " ." + rootClass
		}
	case !hasIDPrefix(sel, scoped):
		sel = scoped + " " + sel
	}
	return CollapseID(sel, id)
}

// CollapseID collapses a run of `#id #id …` at the start of sel into a
// single `#id`. It is a no-op for selectors already scoped once.
func CollapseID(sel, id string) string {
	if id == "" {
		return sel
	}
	scoped := "#" + id
	for hasIDPrefix(sel, scoped) {
		rest := sel[len(scoped):]
		next := strings.TrimLeft(rest, " \t\r\n")
		if next == rest || !hasIDPrefix(next, scoped) {
			break
		}
		sel = next
	}
	return sel
}

// IsScoped is true if sel starts with the id selector `#id`.
func IsScoped(sel, id string) bool {
	return id != "" && hasIDPrefix(strings.TrimSpace(sel), "#"+id)
}

// hasIDPrefix checks if sel starts with the id selector scoped, ending on a
// token boundary: #tbl does not prefix #tbl1.
func hasIDPrefix(sel, scoped string) bool {
	if !strings.HasPrefix(sel, scoped) {
		return false
	}
	return len(sel) == len(scoped) || !isNameChar(sel[len(scoped)])
}

func isNameChar(c byte) bool {
	return c == '_' || c == '-' || c >= 0x80 ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// splitTopLevel splits s at sep, ignoring separators inside parentheses,
// brackets and quotes.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// trimmed splits s into leading white space, content and trailing white space.
func trimmed(s string) (string, string, string) {
	core := strings.TrimLeft(s, " \t\r\n\f")
	lead := s[:len(s)-len(core)]
	t := strings.TrimRight(core, " \t\r\n\f")
	return lead, t, core[len(t):]
}

// --- Class renaming --------------------------------------------------------

// RenameClasses inserts token in front of every name starting with
// "<prefix>_", in style rules and class attributes alike. Names are only
// recognized at a token boundary, i.e. not preceded by a letter, digit, '_'
// or '-'. As a renamed class is preceded by the token's last character,
// RenameClasses is idempotent for tokens ending in one of those.
//
// An empty prefix or token leaves text unchanged.
func RenameClasses(text, prefix, token string) string {
	return newClassRenamer(prefix, token).rename(text)
}

// classRenamer renames the classes of one renderer prefix. A nil renamer
// leaves text unchanged.
type classRenamer struct {
	re   *regexp.Regexp
	repl string
}

func newClassRenamer(prefix, token string) *classRenamer {
	if prefix == "" || token == "" {
		return nil
	}
	return &classRenamer{
		re:   regexp.MustCompile(`(^|[^A-Za-z0-9_\-])(` + regexp.QuoteMeta(prefix) + `_)`),
		repl: "${1}" + strings.ReplaceAll(token, "$", "$$") + "${2}",
	}
}

func (r *classRenamer) rename(text string) string {
	if r == nil {
		return text
	}
	return r.re.ReplaceAllString(text, r.repl)
}
