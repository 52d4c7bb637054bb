/*
Command tblscope rewrites rendered HTML tables for embedding into generated documents.

Usage:

   tblscope rewrite [flags] [files...]   rewrite tables, print or write them
   tblscope check   [flags] [files...]   rewrite and audit isolation
   tblscope outline [flags] [file]       print the style rules as a tree

Without file arguments the table is read from stdin. Every flag may as well
be given as environment variable TBLSCOPE_<FLAG> (dashes become
underscores) or as a key in a config file passed with --config.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
