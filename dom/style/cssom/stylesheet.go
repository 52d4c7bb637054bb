package cssom

import (
	"strings"

	"github.com/npillmayer/tblscope/dom/style"
	tp "github.com/xlab/treeprint"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the top-level rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	SelectorList() []string      // the single selectors of a qualified rule
	AtRule() string              // name of an at-rule without '@', or ""
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
	Nested() []Rule              // rules nested in an at-rule, e.g. @media
}

// Grouping is true for at-rules which contain qualified rules applying
// to the document, like @media.
func Grouping(atRule string) bool {
	switch strings.ToLower(atRule) {
	case "media", "supports", "document", "layer", "container":
		return true
	}
	return false
}

// Selectors returns every selector of a stylesheet, in order of appearance.
// Selectors of rules nested in grouping at-rules are included, others (for
// example the keyframe selectors of @keyframes) are not.
func Selectors(sheet StyleSheet) []string {
	var sels []string
	var collect func([]Rule)
	collect = func(rules []Rule) {
		for _, r := range rules {
			if r.AtRule() == "" {
				sels = append(sels, r.SelectorList()...)
			} else if Grouping(r.AtRule()) {
				collect(r.Nested())
			}
		}
	}
	collect(sheet.Rules())
	return sels
}

// Outline renders the rules of a stylesheet as a tree, for diagnostics.
//
//     .
//     ├── #tbl .gt_table
//     │   ├── color: blue
//     │   └── font-size: 16px
//     └── @media (max-width: 600px)
//         └── …
//
func Outline(sheet StyleSheet) string {
	root := tp.New()
	outlineRules(root, sheet.Rules())
	return root.String()
}

func outlineRules(branch tp.Tree, rules []Rule) {
	for _, r := range rules {
		label := strings.TrimSpace(r.Selector())
		if r.AtRule() != "" {
			label = strings.TrimSpace("@" + r.AtRule() + " " + label)
		}
		b := branch.AddBranch(label)
		for _, key := range r.Properties() {
			kv := style.KeyValue{Key: key, Value: r.Value(key)}
			if r.IsImportant(key) {
				b.AddNode(kv.String() + " !important")
			} else {
				b.AddNode(kv.String())
			}
		}
		outlineRules(b, r.Nested())
	}
}
