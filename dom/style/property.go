/*
Package style holds the raw value types shared by stylesheet implementations.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package style

import "strings"

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsReset denotes if a property value discards inherited and cascaded values,
// i.e. is one of the CSS-wide keywords other than "inherit".
func (p Property) IsReset() bool {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "initial", "unset", "revert", "revert-layer":
		return true
	}
	return false
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}
