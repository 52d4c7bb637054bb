/*
Package tblscope makes rendered HTML tables safe to embed into generated documents.

Overview

Table renderers such as gt produce HTML fragments carrying their own
<style> block. These blocks contain page-wide rules and rules for class names
shared by all tables of the renderer. Put two of them into a book chapter and
they start styling each other, and the chapter's own stylesheet styles them both.

Embed runs the steps to prevent this:

   out, err := tblscope.Embed(markup, tblscope.Config{Wrap: true, Audit: true})

Sub-packages:

   scope   rewrites style rules and class names of a table (the core)
   audit   checks the isolation of a rewritten table
   reset   wraps a table into a style-reset container
   dom     helpers for HTML parse trees
   css     CSS values

Command tblscope (in cmd/tblscope) offers the same on the command line.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package tblscope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tblscope'.
func tracer() tracing.Trace {
	return tracing.Select("tblscope")
}
