package scope

import (
	"regexp"
	"strings"
	"sync"
)

// Defaults match the markup emitted by gt.
const (
	DefaultClassPrefix    = "gt"
	DefaultRenameToken    = "new_"
	DefaultGlobalSelector = "html"
	DefaultTableTag       = "<table"
)

// Rewriter rewrites rendered table markup. The zero value is not usable,
// create one with New. Rewriters are immutable and may be shared between
// goroutines.
type Rewriter struct {
	prefix    string // class prefix of the renderer, without '_'
	rootClass string // class of the root table element
	token     string // inserted in front of renamed classes
	global    string // selector applying to the whole page
	tableTag  string // opening tag the document is split at
	renamer   *classRenamer
}

// New constructs a Rewriter with options, if you need any.
// Use it like this:
//
//     rw := scope.New(scope.ClassPrefix("gt"), scope.RenameToken("book_"))
//     result := rw.Apply(markup)
//
func New(opts ...Option) Rewriter {
	rw := Rewriter{
		prefix:   DefaultClassPrefix,
		token:    DefaultRenameToken,
		global:   DefaultGlobalSelector,
		tableTag: DefaultTableTag,
	}
	for _, option := range opts {
		rw = option(rw)
	}
	if rw.rootClass == "" && rw.prefix != "" {
		rw.rootClass = rw.prefix + "_table"
	}
	rw.renamer = newClassRenamer(rw.prefix, rw.token)
	return rw
}

// Option is a type to help initializing rewriters at creation time.
type Option func(Rewriter) Rewriter

// ClassPrefix sets the class prefix used by the renderer, e.g. "gt" for classes
// like gt_table. If no root class is set explicitly, it will be "<prefix>_table".
func ClassPrefix(prefix string) Option {
	return func(rw Rewriter) Rewriter {
		rw.prefix = strings.TrimSuffix(prefix, "_")
		return rw
	}
}

// RootClass sets the class of the table's root element.
func RootClass(class string) Option {
	return func(rw Rewriter) Rewriter {
		rw.rootClass = strings.TrimPrefix(class, ".")
		return rw
	}
}

// RenameToken sets the token inserted in front of every renderer class.
// An empty token switches renaming off.
func RenameToken(token string) Option {
	return func(rw Rewriter) Rewriter {
		rw.token = token
		return rw
	}
}

// GlobalSelector sets the selector the renderer uses for page-wide rules.
func GlobalSelector(sel string) Option {
	return func(rw Rewriter) Rewriter {
		rw.global = sel
		return rw
	}
}

// TableTag sets the opening tag marking the start of the body region.
func TableTag(tag string) Option {
	return func(rw Rewriter) Rewriter {
		rw.tableTag = tag
		return rw
	}
}

// Prefix returns the renderer's class prefix.
func (rw Rewriter) Prefix() string {
	return rw.prefix
}

// Token returns the rename token; empty if renaming is switched off.
func (rw Rewriter) Token() string {
	return rw.token
}

// Root returns the root class of the table, before renaming.
func (rw Rewriter) Root() string {
	return rw.rootClass
}

// --- API -------------------------------------------------------------------

// SelectorRewrite records a single selector rewrite.
type SelectorRewrite struct {
	From string
	To   string
}

// Result is the outcome of rewriting a document.
type Result struct {
	ID        string            // identifier the styles are scoped to, as it appears in Output
	Output    string            // the rewritten document
	Selectors []SelectorRewrite // every selector touched, in document order
}

// Scoped is true if the document's styles could be scoped to an identifier.
func (r Result) Scoped() bool {
	return r.ID != ""
}

// Rewrite is a shortcut for New(opts...).Apply(doc).Output.
func Rewrite(doc string, opts ...Option) string {
	return New(opts...).Apply(doc).Output
}

// Apply rewrites a rendered table document. Apply never fails; if the
// document does not carry an identifier, styles are left unscoped and only
// class names are renamed.
func (rw Rewriter) Apply(doc string) Result {
	var result Result
	regions := Split(doc, rw.tableTag)
	id := ExtractID(regions)
	if id == "" {
		tracer().Infof("scope: no identifier attribute found, leaving styles unscoped")
	} else {
		tracer().P("id", id).Debugf("scope: scoping styles to #%s", id)
		regions.Head, result.Selectors = rw.scopeHead(regions.Head, id)
	}
	result.Output = rw.renamer.rename(regions.String())
	result.ID = rw.renamer.rename(id)
	return result
}

// RewriteAll rewrites a batch of documents concurrently. Results are in the
// order of docs.
func RewriteAll(docs []string, opts ...Option) []string {
	results := New(opts...).ApplyAll(docs)
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Output
	}
	return out
}

// ApplyAll applies rw to a batch of documents concurrently. Results are in
// the order of docs.
func (rw Rewriter) ApplyAll(docs []string) []Result {
	results := make([]Result, len(docs))
	var wg sync.WaitGroup
	wg.Add(len(docs))
	for i := range docs {
		go func(i int) {
			defer wg.Done()
			results[i] = rw.Apply(docs[i])
		}(i)
	}
	wg.Wait()
	return results
}

var styleBlock = regexp.MustCompile(`(?is)(<style[^>]*>)(.*?)(</style>)`)

func (rw Rewriter) scopeHead(head string, id string) (string, []SelectorRewrite) {
	blocks := styleBlock.FindAllStringSubmatchIndex(head, -1)
	if len(blocks) == 0 {
		tracer().Infof("scope: no style block in head region")
		return head, nil
	}
	var b strings.Builder
	var log []SelectorRewrite
	last := 0
	for _, m := range blocks {
		// m[4]:m[5] is the content of the style element
		b.WriteString(head[last:m[4]])
		css, rewrites := ScopeStyles(head[m[4]:m[5]], id, rw.global, rw.rootClass)
		b.WriteString(css)
		log = append(log, rewrites...)
		last = m[5]
	}
	b.WriteString(head[last:])
	return b.String(), log
}
