/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tblscope/dom"
	"github.com/npillmayer/tblscope/dom/style"
	"github.com/npillmayer/tblscope/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses the text of a style block.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing style block: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return wrapRules(sheet.css.Rules)
}

func wrapRules(rs []*css.Rule) []cssom.Rule {
	rules := make([]cssom.Rule, len(rs))
	for i := range rs {
		rules[i] = Rule(*rs[i])
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// SelectorList returns the comma separated selectors of a qualified rule,
// trimmed. For at-rules it returns nil.
func (r Rule) SelectorList() []string {
	if r.Kind == css.AtRule {
		return nil
	}
	sels := r.Selectors
	if len(sels) == 0 && r.Prelude != "" {
		sels = strings.Split(r.Prelude, ",")
	}
	out := make([]string, 0, len(sels))
	for _, s := range sels {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AtRule returns the name of an at-rule without the leading '@', e.g. "media".
// For qualified rules it returns "".
func (r Rule) AtRule() string {
	if r.Kind != css.AtRule {
		return ""
	}
	return strings.TrimPrefix(r.Name, "@")
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// Nested returns the rules contained in an at-rule like @media.
func (r Rule) Nested() []cssom.Rule {
	return wrapRules(r.Rules)
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements searches an HTML parse tree for embedded <style>s.
// It returns the content of style-elements as style sheets, in document order.
// Renderers are free to put style elements anywhere, so the complete tree
// is searched, not just <head> and <body>.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	var sheets []*CSSStyles
	for _, st := range dom.FindAll(atom.Style, htmldoc) {
		text := dom.TextContent(st)
		c, err := Parse(text)
		if err != nil {
			return sheets, err
		}
		tracer().Debugf("extracted style element with %d rules", len(c.css.Rules))
		sheets = append(sheets, c)
	}
	return sheets, nil
}

// tracer traces with key 'tblscope.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("tblscope.cssom")
}
