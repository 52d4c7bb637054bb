/*
Package cssom provides read access to CSS stylesheets.

Status

Covers what is needed to inspect the style blocks of rendered tables. It is
not a styling engine: there is no cascade, no specificity and no computed
style.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation on top of
https://github.com/aymerick/douceur may be found in sub-package
douceuradapter.

Outline prints a stylesheet as a tree, which comes in handy when
checking the output of a rewrite by eye.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package cssom
