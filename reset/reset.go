/*
Package reset wraps rendered tables into style-reset containers.

Scoping keeps a table's rules from leaking out, but does nothing against
inherited properties: a host document setting `font-size` or `line-height`
on its article element still reaches into the table. A reset container
cuts the inheritance chain with `all: initial` and sets the few inherited
properties a table needs to look right.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package reset

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tblscope/css"
	"github.com/npillmayer/tblscope/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// tracer traces with key 'tblscope.reset'.
func tracer() tracing.Trace {
	return tracing.Select("tblscope.reset")
}

// DefaultClass is the class of reset containers.
const DefaultClass = "tblscope-reset"

// Container holds the settings of a reset container.
type Container struct {
	class      string
	fontFamily string
	fontSize   css.DimenT
	lineHeight css.DimenT
}

// Option is a type to help configuring containers.
type Option func(Container) Container

// Class sets the class of the container element.
func Class(name string) Option {
	return func(c Container) Container {
		c.class = name
		return c
	}
}

// FontFamily sets the font family inside the container.
func FontFamily(family string) Option {
	return func(c Container) Container {
		c.fontFamily = family
		return c
	}
}

// FontSize sets the font size inside the container. A fixed size must be
// positive, otherwise the font size is left unset.
func FontSize(d css.DimenT) Option {
	return func(c Container) Container {
		var du dimen.DU
		switch m := d.Match(); m {
		case m.Just(&du):
			if du <= 0 {
				tracer().Infof("reset: ignoring font size %s", d)
				d = css.None()
			}
		}
		c.fontSize = d
		return c
	}
}

// LineHeight sets the line height inside the container.
func LineHeight(d css.DimenT) Option {
	return func(c Container) Container {
		c.lineHeight = d
		return c
	}
}

// Declarations returns the style declarations of the container, in output order.
func (c Container) Declarations() []style.KeyValue {
	decl := []style.KeyValue{
		{Key: "all", Value: "initial"},
		{Key: "display", Value: "block"},
	}
	if c.fontFamily != "" {
		decl = append(decl, style.KeyValue{Key: "font-family", Value: style.Property(c.fontFamily)})
	}
	if v := dimenValue(c.fontSize, "medium"); v != "" {
		decl = append(decl, style.KeyValue{Key: "font-size", Value: v})
	}
	if v := dimenValue(c.lineHeight, "normal"); v != "" {
		decl = append(decl, style.KeyValue{Key: "line-height", Value: v})
	}
	return decl
}

// dimenValue is the declaration value for d. Font properties have no
// value `auto`, the keyword auto stands for is given by the caller.
func dimenValue(d css.DimenT, auto string) style.Property {
	return css.DimenPattern[style.Property](d).OneOf(css.DimenPatterns[style.Property]{
		None:    style.NullStyle,
		Auto:    style.Property(auto),
		Inherit: "inherit",
		Initial: "initial",
		Just:    style.Property(d.String()),
		Default: style.NullStyle,
	})
}

// New creates a container configuration.
func New(opts ...Option) Container {
	c := Container{class: DefaultClass, fontSize: css.None(), lineHeight: css.None()}
	for _, option := range opts {
		c = option(c)
	}
	return c
}

// Wrap is a shortcut for New(opts...).Wrap(fragment, id).
func Wrap(fragment, id string, opts ...Option) string {
	return New(opts...).Wrap(fragment, id)
}

// Wrap wraps fragment into a reset container. The container's id is derived
// from id, the identifier the fragment's styles are scoped to. With an empty
// id, the container is addressed by its class only.
func (c Container) Wrap(fragment, id string) string {
	var b strings.Builder
	sel, idAttr := "."+c.class, ""
	if id != "" {
		sel = "#" + id + "-reset"
		idAttr = fmt.Sprintf(` id="%s-reset"`, id)
	} else {
		tracer().Infof("reset: no identifier, container addressed by class %q", c.class)
	}
	b.WriteString("<style>\n")
	b.WriteString(sel + " {\n")
	for _, kv := range c.Declarations() {
		b.WriteString("  " + kv.String() + ";\n")
	}
	b.WriteString("}\n</style>\n")
	fmt.Fprintf(&b, `<div%s class="%s">`, idAttr, c.class)
	b.WriteString("\n" + fragment + "\n</div>\n")
	return b.String()
}
