package scope

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestScopeSelectorGlobal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tblscope.scope")
	defer teardown()
	//
	sel := ScopeSelector("html", "tbl1", "html", "my_table")
	if sel != "#tbl1 .my_table" {
		t.Errorf("expected global selector to become '#tbl1 .my_table', is %q", sel)
	}
	sel = ScopeSelector("html", "tbl1", "html", "")
	if sel != "#tbl1" {
		t.Errorf("expected global selector without root class to become '#tbl1', is %q", sel)
	}
}

func TestScopeSelectorPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tblscope.scope")
	defer teardown()
	//
	cases := []struct{ in, out string }{
		{".my_heading", "#tbl1 .my_heading"},
		{"#tbl1 .my_table .my_heading", "#tbl1 .my_table .my_heading"},
		{"#tbl1", "#tbl1"},
		{"#tbl10 .x", "#tbl1 #tbl10 .x"},
		{"#tbl1 #tbl1 .x", "#tbl1 .x"},
		{"thead > tr", "#tbl1 thead > tr"},
		{".a, .b", "#tbl1 .a, #tbl1 .b"},
		{"#tbl1 .a,\n.b", "#tbl1 .a,\n#tbl1 .b"},
		{":is(.a, .b) td", "#tbl1 :is(.a, .b) td"},
		{`[title="x, y"]`, `#tbl1 [title="x, y"]`},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, ScopeSelector(c.in, "tbl1", "html", "my_table"), "scoping %q", c.in)
	}
}

func TestScopeSelectorEmptyID(t *testing.T) {
	for _, sel := range []string{"html", ".gt_table", "#x .y"} {
		if s := ScopeSelector(sel, "", "html", "gt_table"); s != sel {
			t.Errorf("expected %q to be unchanged for empty id, is %q", sel, s)
		}
	}
}

func TestCollapseID(t *testing.T) {
	assert.Equal(t, "#a .b", CollapseID("#a #a .b", "a"))
	assert.Equal(t, "#a .b", CollapseID("#a   #a\n#a .b", "a"))
	assert.Equal(t, "#a .b", CollapseID("#a .b", "a"), "collapsing a scoped selector must be a no-op")
	assert.Equal(t, "#a #ab", CollapseID("#a #ab", "a"))
	assert.Equal(t, ".b", CollapseID(".b", "a"))
	assert.Equal(t, "#a #a", CollapseID("#a #a", ""))
}

func TestSplitTopLevel(t *testing.T) {
	parts := splitTopLevel(`a, :not(b, c), [x="1,2"]`, ',')
	assert.Equal(t, []string{"a", " :not(b, c)", ` [x="1,2"]`}, parts)
}

func TestRenameClasses(t *testing.T) {
	in := `<table class="my_table my_heading"><style>.my_table{}</style>`
	out := RenameClasses(in, "my", "new_")
	assert.Equal(t, `<table class="new_my_table new_my_heading"><style>.new_my_table{}</style>`, out)
	//
	assert.Equal(t, out, RenameClasses(out, "my", "new_"), "renaming must be idempotent")
	assert.Equal(t, "dummy_x x-my_y", RenameClasses("dummy_x x-my_y", "my", "new_"))
	assert.Equal(t, in, RenameClasses(in, "my", ""))
	assert.Equal(t, "$1my_a", RenameClasses("my_a", "my", "$1"))
}

func TestScopeStylesPrelude(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tblscope.scope")
	defer teardown()
	//
	cases := []struct {
		in, out string
	}{
		{`.a /* note */ { color: red; }`, `#t .a /* note */ { color: red; }`},
		{`[data-x="a;b"] { color: red; }`, `#t [data-x="a;b"] { color: red; }`},
		{`/* c; d */ .a { }`, `/* c; d */ #t .a { }`},
		{`@import url("x;y.css"); .a { }`, `@import url("x;y.css"); #t .a { }`},
		{`@charset "utf-8"; /* x */ html { }`, `@charset "utf-8"; /* x */ #t .r { }`},
		{`@media print { .a, [title='p;q'] { } }`, `@media print { #t .a, #t [title='p;q'] { } }`},
	}
	for _, c := range cases {
		out, log := ScopeStyles(c.in, "t", "html", "r")
		assert.Equal(t, c.out, out)
		assert.Len(t, log, 1, "expected one logged rewrite for %q", c.in)
	}
}

func TestPreludeStart(t *testing.T) {
	assert.Equal(t, 0, preludeStart(" .a "))
	assert.Equal(t, 11, preludeStart("/* x;y */ ;.a"))
	assert.Equal(t, 14, preludeStart(`@import "a;b";.a`))
	assert.Equal(t, 0, preludeStart("@media (x;y) "))
	assert.Equal(t, 1, preludeStart(`;[x="a;b"]`))
}

func TestRewriterKeepsCompiledRenamer(t *testing.T) {
	rw := New(ClassPrefix("my"))
	if rw.renamer == nil {
		t.Fatalf("expected rewriter to carry a class renamer")
	}
	re := rw.renamer.re
	in := `<style>.my_table{}</style><table id="my_a" class="my_table"></table>`
	result := rw.Apply(in)
	expected := `<style>#new_my_a .new_my_table{}</style><table id="new_my_a" class="new_my_table"></table>`
	assert.Equal(t, expected, result.Output)
	assert.Equal(t, expected, RenameClasses(result.Output, "my", DefaultRenameToken))
	assert.Equal(t, "new_my_a", result.ID)
	assert.Same(t, re, rw.renamer.re, "renamer must not be rebuilt per document")
	assert.Nil(t, New(RenameToken("")).renamer)
	assert.Nil(t, New(ClassPrefix("")).renamer)
}
