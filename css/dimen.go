/*
Package css provides CSS values for the declarations this module writes
itself, e.g. for style-reset containers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	flags uint32
}

/*
type DimenT
	= None
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
*/

// None is the unset dimension. Declarations with an unset dimension are omitted.
func None() DimenT {
	return DimenT{flags: dimenNone}
}

// Auto is the dimension left to the user agent.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Points creates a fixed CSS dimension of n points.
func Points(n float64) DimenT {
	return JustDimen(dimen.DU(n * float64(dimen.PT)))
}

// String returns the CSS text of a dimension. Fixed values are written in
// points, with at most two decimals. None results in the empty string.
func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		pt := float64(d.d) / float64(dimen.PT)
		s := strconv.FormatFloat(pt, 'f', 2, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		return s + "pt"
	}
	return ""
}

// ErrInvalidDimen is returned for CSS text which is not a dimension.
var ErrInvalidDimen = errors.New("invalid dimension")

// ParseDimen reads a dimension from CSS text. Fixed values are given in
// points, with or without unit "pt". The empty string and "none" result
// in the unset dimension.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none":
		return None(), nil
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(s, "pt"), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return None(), fmt.Errorf("%w: %q", ErrInvalidDimen, s)
	}
	return Points(n), nil
}

// ---------------------------------------------------------------------------

// Match starts matching d against one of its kinds.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is used in switch statements:
//
//     var du dimen.DU
//     switch m := d.Match(); m {
//     case m.Just(&du):
//         …
//     }
//
type Matcher struct {
	dimen DimenT
}

// Just matches a fixed dimension and extracts its value into du, if du is non-nil.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds a result for every kind of dimension.
type DimenPatterns[T any] struct {
	None    T
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern for the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenNone:
		return patterns.None
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}
