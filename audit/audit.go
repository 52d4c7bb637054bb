package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/tblscope/dom"
	"github.com/npillmayer/tblscope/dom/style/cssom"
	"github.com/npillmayer/tblscope/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/tblscope/scope"
	"golang.org/x/net/html"
)

// Leak is a selector matching elements outside of the table.
type Leak struct {
	Selector string
	Matches  []string // matched host elements, e.g. "td.gt_row"
}

// Report is the result of an audit.
type Report struct {
	ID          string   // identifier the table has been scoped to
	Selectors   int      // number of selectors checked
	Unscoped    []string // selectors not starting with #ID
	BareClasses []string // class names still carrying the bare renderer prefix
	Artifacts   []string // selectors scoped to an empty identifier
	Leaks       []Leak   // selectors reaching into the host document
	Skipped     []string // selectors which could not be matched
}

// OK is true if the table is fully isolated. Skipped selectors do not count.
func (r Report) OK() bool {
	return len(r.Unscoped) == 0 && len(r.BareClasses) == 0 &&
		len(r.Artifacts) == 0 && len(r.Leaks) == 0
}

func (r Report) String() string {
	var b strings.Builder
	status := "OK"
	if !r.OK() {
		status = "NOT ISOLATED"
	}
	id := "<none>"
	if r.ID != "" {
		id = "#" + r.ID
	}
	fmt.Fprintf(&b, "scope %s: %d selectors, %s\n", id, r.Selectors, status)
	for _, s := range r.Unscoped {
		fmt.Fprintf(&b, "  unscoped selector: %s\n", s)
	}
	for _, c := range r.BareClasses {
		fmt.Fprintf(&b, "  bare class: %s\n", c)
	}
	for _, s := range r.Artifacts {
		fmt.Fprintf(&b, "  artifact: %q\n", s)
	}
	for _, l := range r.Leaks {
		fmt.Fprintf(&b, "  leak: %s → %s\n", l.Selector, strings.Join(l.Matches, ", "))
	}
	for _, s := range r.Skipped {
		fmt.Fprintf(&b, "  skipped: %s\n", s)
	}
	return b.String()
}

var (
	classSel = regexp.MustCompile(`\.(-?[_A-Za-z][_A-Za-z0-9\-]*)`)
	artifact = regexp.MustCompile(`(^|\s)#(\s|$)`)
)

// Check audits the markup of a rewritten table, scoped to id, with respect to
// the settings of rewriter rw. An error is returned only if the markup or one
// of its style blocks cannot be parsed.
func Check(markup string, id string, rw scope.Rewriter) (Report, error) {
	report := Report{ID: id}
	doc, err := dom.Parse(markup)
	if err != nil {
		return report, err
	}
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	if err != nil {
		return report, fmt.Errorf("audit: %w", err)
	}
	var selectors []string
	for _, sheet := range sheets {
		selectors = append(selectors, cssom.Selectors(sheet)...)
	}
	report.Selectors = len(selectors)
	bare := rw.Prefix() + "_"
	for _, sel := range selectors {
		if !scope.IsScoped(sel, id) {
			report.Unscoped = append(report.Unscoped, sel)
		}
		if artifact.MatchString(sel) {
			report.Artifacts = append(report.Artifacts, sel)
		}
	}
	if rw.Token() != "" && rw.Prefix() != "" {
		seen := make(map[string]bool)
		for _, c := range append(dom.ClassTokens(doc), selectorClasses(selectors)...) {
			if strings.HasPrefix(c, bare) && !seen[c] {
				seen[c] = true
				report.BareClasses = append(report.BareClasses, c)
			}
		}
	}
	if err = checkLeaks(&report, markup, selectors, rw); err != nil {
		return report, err
	}
	tracer().P("id", id).Debugf("audit: %d selectors, ok=%v", report.Selectors, report.OK())
	return report, nil
}

func selectorClasses(selectors []string) []string {
	var classes []string
	for _, sel := range selectors {
		for _, m := range classSel.FindAllStringSubmatch(sel, -1) {
			classes = append(classes, m[1])
		}
	}
	return classes
}

// hostMarkup creates content as a host document might contain it: a table
// and a paragraph carrying the renderer's original class names.
func hostMarkup(selectors []string, rw scope.Rewriter) string {
	classes := []string{}
	seen := map[string]bool{}
	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			classes = append(classes, c)
		}
	}
	add(rw.Root())
	for _, c := range selectorClasses(selectors) {
		if rw.Token() != "" {
			c = strings.TrimPrefix(c, rw.Token())
		}
		if rw.Prefix() == "" || strings.HasPrefix(c, rw.Prefix()+"_") {
			add(c)
		}
	}
	cls := strings.Join(classes, " ")
	return fmt.Sprintf(`<div class="%[1]s"><table class="%[1]s"><thead><tr><th class="%[1]s">host</th></tr></thead>`+
		`<tbody><tr><td class="%[1]s">host</td></tr></tbody></table><p class="%[1]s">host</p></div>`, cls)
}

func checkLeaks(report *Report, markup string, selectors []string, rw scope.Rewriter) error {
	doc, err := dom.Parse(hostMarkup(selectors, rw) + markup)
	if err != nil {
		return err
	}
	table := dom.FindByID(doc, report.ID)
	if report.ID != "" && table == nil {
		tracer().Infof("audit: no element with id=%q", report.ID)
	}
	for _, sel := range selectors {
		matcher, err := compile(sel)
		if err != nil {
			tracer().Debugf("audit: cannot match %q: %v", sel, err)
			report.Skipped = append(report.Skipped, sel)
			continue
		}
		var outside []string
		for _, n := range matcher.MatchAll(doc) {
			if !dom.Within(n, table) {
				outside = append(outside, describe(n))
			}
		}
		if len(outside) > 0 {
			report.Leaks = append(report.Leaks, Leak{Selector: sel, Matches: outside})
		}
	}
	return nil
}

// compile compiles a selector for matching. Pseudo-elements are dropped, as
// they style parts of the element matched by the rest of the selector.
func compile(sel string) (cascadia.Selector, error) {
	if i := strings.Index(sel, "::"); i > 0 {
		sel = sel[:i]
	}
	return cascadia.Compile(sel)
}

func describe(n *html.Node) string {
	s := n.Data
	for _, c := range strings.Fields(dom.Attr(n, "class")) {
		s += "." + c
	}
	return s
}
