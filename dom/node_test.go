package dom_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tblscope/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

const fragment = `<div id="w"><style>.a { color: red; }</style>` +
	`<table id="t" class="x y"><tr><td class="y z">1</td></tr></table></div><p class="x">p</p>`

func TestFindByID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tblscope.dom")
	defer teardown()
	//
	doc, err := dom.Parse(fragment)
	require.NoError(t, err)
	tbl := dom.FindByID(doc, "t")
	if tbl == nil || tbl.DataAtom != atom.Table {
		t.Fatalf("expected to find table with id=t, found %v", tbl)
	}
	assert.Nil(t, dom.FindByID(doc, "missing"))
	assert.Nil(t, dom.FindByID(doc, ""))
	tds := dom.FindAll(atom.Td, doc)
	require.Len(t, tds, 1)
	td := tds[0]
	assert.True(t, dom.Within(td, tbl))
	assert.True(t, dom.Within(tbl, tbl))
	p := dom.FindAll(atom.P, doc)[0]
	assert.False(t, dom.Within(p, tbl))
	assert.False(t, dom.Within(p, nil))
}

func TestClassTokensAndText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tblscope.dom")
	defer teardown()
	//
	doc, err := dom.Parse(fragment)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, dom.ClassTokens(doc))
	styles := dom.FindAll(atom.Style, doc)
	require.Len(t, styles, 1)
	assert.Equal(t, ".a { color: red; }", dom.TextContent(styles[0]))
	assert.Equal(t, "x y", dom.Attr(dom.FindByID(doc, "t"), "class"))
}

func TestParseEmpty(t *testing.T) {
	_, err := dom.Parse("  \n")
	assert.ErrorIs(t, err, dom.ErrEmptyMarkup)
}
