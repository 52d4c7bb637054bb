package douceuradapter_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tblscope/dom"
	"github.com/npillmayer/tblscope/dom/style/cssom"
	"github.com/npillmayer/tblscope/dom/style/cssom/douceuradapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const styles = `
#t .gt_table, #t .gt_heading {
  color: #333333;
  font-size: 16px !important;
}
@media (max-width: 600px) {
  #t .gt_row { padding: 4px; }
}
@keyframes blink {
  from { opacity: 0; }
  to { opacity: 1; }
}
`

func TestParseSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tblscope.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(styles)
	require.NoError(t, err)
	require.False(t, sheet.Empty())
	sels := cssom.Selectors(sheet)
	assert.Equal(t, []string{"#t .gt_table", "#t .gt_heading", "#t .gt_row"}, sels)
	//
	rules := sheet.Rules()
	require.Len(t, rules, 3)
	r := rules[0]
	assert.Equal(t, "", r.AtRule())
	assert.Equal(t, []string{"color", "font-size"}, r.Properties())
	assert.Equal(t, "16px", r.Value("font-size").String())
	assert.True(t, r.IsImportant("font-size"))
	assert.False(t, r.IsImportant("color"))
	assert.True(t, r.Value("margin").IsEmpty())
	assert.Equal(t, "media", rules[1].AtRule())
	assert.Len(t, rules[1].Nested(), 1)
	assert.Equal(t, "keyframes", rules[2].AtRule())
}

func TestOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tblscope.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(styles)
	require.NoError(t, err)
	outline := cssom.Outline(sheet)
	t.Logf("outline =\n%s", outline)
	assert.Contains(t, outline, "#t .gt_table, #t .gt_heading")
	assert.Contains(t, outline, "font-size: 16px !important")
	assert.Contains(t, outline, "@media")
	assert.Contains(t, outline, "padding: 4px")
}

func TestAppendRules(t *testing.T) {
	a, err := douceuradapter.Parse(".a { color: red; }")
	require.NoError(t, err)
	b, err := douceuradapter.Parse(".b { color: blue; }")
	require.NoError(t, err)
	a.AppendRules(b)
	assert.Equal(t, []string{".a", ".b"}, cssom.Selectors(a))
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tblscope.cssom")
	defer teardown()
	//
	markup := `<div id="t"><style>.x { a: b; }</style><table><tr><td>1</td></tr></table>` +
		`<style>.y { c: d; }</style></div>`
	doc, err := dom.Parse(markup)
	require.NoError(t, err)
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	var all []string
	for _, s := range sheets {
		all = append(all, cssom.Selectors(s)...)
	}
	assert.Equal(t, ".x,.y", strings.Join(all, ","))
}
