/*
Package dom provides small helpers on HTML parse trees of rendered tables.

Overview

Parse trees are the ones of golang.org/x/net/html. The helpers locate
elements by id or tag, test ancestry and collect class tokens. They serve
package audit, which embeds rewritten tables into a synthetic host document
and checks which elements the table's style rules would reach.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'tblscope.dom'
func tracer() tracing.Trace {
	return tracing.Select("tblscope.dom")
}
