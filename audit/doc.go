/*
Package audit checks how well a rewritten table is isolated from the
document it gets embedded into.

Rewriting is a heuristic and cannot fail, which leaves the question of
whether it did its job. Check answers it mechanically instead of by eye:

   - every selector of the table's style blocks has to start with the id
     selector of the table;
   - no class name may still carry the renderer's bare prefix;
   - scoping to an empty identifier must not have left '# ' artifacts;
   - embedded next to host content using the renderer's original class
     names, no style rule may match an element outside of the table.

The last check parses host and table together and runs every selector
through cascadia. Selectors cascadia does not support (mostly dynamic
pseudo-classes) are reported as skipped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package audit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tblscope.audit'.
func tracer() tracing.Trace {
	return tracing.Select("tblscope.audit")
}
