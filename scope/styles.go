package scope

import (
	"strings"

	"github.com/npillmayer/tblscope/dom/style/cssom"
)

// blockKind tells what to do with the contents of a {…} block.
type blockKind int8

const (
	declarations blockKind = iota // body of a qualified rule
	grouping                      // @media and friends: contains rules
	opaque                        // @font-face, @keyframes, …: left untouched
)

// ScopeStyles rewrites the selectors of all qualified rules in a style block
// with ScopeSelector. At-statements like @import and comments are
// copied as-is, rules nested in @media or @supports are scoped, and blocks
// of other at-rules are not touched. Declarations are never changed.
//
// ScopeStyles returns the rewritten style text and a log of selector rewrites.
func ScopeStyles(css, id, global, rootClass string) (string, []SelectorRewrite) {
	if id == "" {
		return css, nil
	}
	var b strings.Builder
	var log []SelectorRewrite
	var stack []blockKind
	start := 0
	for i := 0; i < len(css); i++ {
		switch c := css[i]; c {
		case '/':
			if i+1 < len(css) && css[i+1] == '*' {
				end := strings.Index(css[i+2:], "*/")
				if end < 0 {
					i = len(css)
				} else {
					i += end + 3
				}
			}
		case '"', '\'':
			i = skipString(css, i)
		case '{':
			chunk := css[start:i]
			if len(stack) > 0 && stack[len(stack)-1] != grouping {
				b.WriteString(chunk)
				stack = append(stack, opaque)
			} else {
				prelude, kind := rewritePrelude(chunk, id, global, rootClass, &log)
				b.WriteString(prelude)
				stack = append(stack, kind)
			}
			b.WriteByte('{')
			start = i + 1
		case '}':
			b.WriteString(css[start : i+1])
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			start = i + 1
		}
	}
	if start < len(css) {
		b.WriteString(css[start:])
	}
	return b.String(), log
}

// rewritePrelude rewrites the selector part of a chunk of style text found
// in front of an opening brace. The chunk may start with at-statements and
// comments, which are kept.
func rewritePrelude(chunk, id, global, rootClass string, log *[]SelectorRewrite) (string, blockKind) {
	cut := preludeStart(chunk)
	lead, sel := chunk[:cut], chunk[cut:]
	ws, core, trail := trimmed(sel)
	if strings.HasPrefix(core, "@") {
		name := strings.ToLower(strings.TrimPrefix(core, "@"))
		if i := strings.IndexAny(name, " \t\r\n("); i >= 0 {
			name = name[:i]
		}
		if cssom.Grouping(name) {
			return chunk, grouping
		}
		return chunk, opaque
	}
	scoped := ScopeSelector(core, id, global, rootClass)
	if scoped != core {
		tracer().Debugf("scope: %q → %q", core, scoped)
		*log = append(*log, SelectorRewrite{From: core, To: scoped})
	}
	return lead + ws + scoped + trail, declarations
}

// preludeStart returns the position in chunk where the prelude of the
// following block starts. Comments, stray semicolons and complete
// at-statements in front of it are skipped; everything from the first
// other character on belongs to the prelude.
func preludeStart(chunk string) int {
	cut := 0
	for i := 0; i < len(chunk); i++ {
		switch c := chunk[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f':
		case c == ';':
			cut = i + 1
		case c == '/' && i+1 < len(chunk) && chunk[i+1] == '*':
			end := strings.Index(chunk[i+2:], "*/")
			if end < 0 {
				return cut
			}
			i += end + 3
			cut = i + 1
		case c == '@':
			end := statementEnd(chunk, i)
			if end < 0 {
				return cut // prelude of an at-rule with a block
			}
			i = end
			cut = i + 1
		default:
			return cut
		}
	}
	return cut
}

// statementEnd returns the position of the ';' terminating the at-statement
// starting at chunk[i], or -1. Semicolons in strings, comments and
// parentheses do not count.
func statementEnd(chunk string, i int) int {
	depth := 0
	for ; i < len(chunk); i++ {
		switch chunk[i] {
		case '"', '\'':
			i = skipString(chunk, i)
		case '/':
			if i+1 < len(chunk) && chunk[i+1] == '*' {
				end := strings.Index(chunk[i+2:], "*/")
				if end < 0 {
					return -1
				}
				i += end + 3
			}
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// skipString returns the position of the closing quote of the string
// starting at css[i].
func skipString(css string, i int) int {
	q := css[i]
	for j := i + 1; j < len(css); j++ {
		switch css[j] {
		case '\\':
			j++
		case q:
			return j
		}
	}
	return len(css)
}
