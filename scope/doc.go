/*
Package scope rewrites the markup of a rendered HTML table so that its style
rules apply to this one table only.

Overview

Table renderers like R's gt emit a self-contained fragment: a <style> block,
followed by a <table> carrying a unique id and a fixed root class. The style
block contains rules for the whole page (selector `html`) and rules targeting
class names shared by every table the renderer ever produced (gt_table,
gt_col_heading, …). Embedding two of these fragments into one generated
document, or embedding one into a document whose own stylesheet styles
tables, lets rules bleed in both directions.

A Rewriter fixes this in three steps:

   1. The document is split into a head region (everything before the first
      <table) and a body region. Selectors are only rewritten in the head.
   2. Every selector of the head's style blocks is prefixed with `#id `; the
      page-global selector is narrowed to `#id .gt_table`.
   3. Every class name starting with the renderer prefix is renamed, in the
      head and the body alike, e.g. gt_table → new_gt_table.

This is a heuristic and not a CSS parser. It relies on the input having the
shape the renderer produces. Nested tables sharing the renderer's prefix, or
documents with more than one root table, result in incomplete isolation.
Malformed input never results in an error: the rewriter degrades to
returning the input largely unchanged. Package audit can be used to check
the result.

Status

Tested with gt output only. Other renderers should work if their markup has
the same shape; use the options of New to adapt prefixes and selectors.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tblscope.scope'.
func tracer() tracing.Trace {
	return tracing.Select("tblscope.scope")
}
