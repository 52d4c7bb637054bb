package tblscope

import (
	"fmt"

	"github.com/npillmayer/tblscope/audit"
	"github.com/npillmayer/tblscope/css"
	"github.com/npillmayer/tblscope/reset"
	"github.com/npillmayer/tblscope/scope"
)

// Config collects the settings for embedding a table. The zero value
// rewrites gt output with the default settings of package scope.
type Config struct {
	ClassPrefix    string  // class prefix of the renderer, default "gt"
	RootClass      string  // root class of the table, default "<prefix>_table"
	RenameToken    string  // token inserted in front of renderer classes, default "new_"
	NoRename       bool    // switch class renaming off
	GlobalSelector string  // page-wide selector of the renderer, default "html"
	Wrap           bool    // wrap the table into a style-reset container
	FontFamily     string  // font family inside the reset container
	FontSize       string  // font size inside the reset container, e.g. "11" (points) or "inherit"
	LineHeight     string  // line height inside the reset container, e.g. "14pt" or "initial"
	Audit          bool    // audit the isolation of the rewritten table
}

// Rewriter returns the rewriter configured by c.
func (c Config) Rewriter() scope.Rewriter {
	var opts []scope.Option
	if c.ClassPrefix != "" {
		opts = append(opts, scope.ClassPrefix(c.ClassPrefix))
	}
	if c.RootClass != "" {
		opts = append(opts, scope.RootClass(c.RootClass))
	}
	if c.NoRename {
		opts = append(opts, scope.RenameToken(""))
	} else if c.RenameToken != "" {
		opts = append(opts, scope.RenameToken(c.RenameToken))
	}
	if c.GlobalSelector != "" {
		opts = append(opts, scope.GlobalSelector(c.GlobalSelector))
	}
	return scope.New(opts...)
}

func (c Config) container() (reset.Container, error) {
	size, err := css.ParseDimen(c.FontSize)
	if err != nil {
		return reset.Container{}, fmt.Errorf("font size: %w", err)
	}
	height, err := css.ParseDimen(c.LineHeight)
	if err != nil {
		return reset.Container{}, fmt.Errorf("line height: %w", err)
	}
	return reset.New(reset.FontFamily(c.FontFamily), reset.FontSize(size), reset.LineHeight(height)), nil
}

// Embedded is a table ready to be embedded.
type Embedded struct {
	Output   string                  // markup to embed
	ID       string                  // identifier the table's styles are scoped to
	Rewrites []scope.SelectorRewrite // selectors rewritten
	Report   *audit.Report           // isolation report, if requested
}

// Embed rewrites the markup of a rendered table, wraps it into a reset
// container and audits it, as configured. Rewriting never fails; an error
// is returned if the reset container is configured with invalid dimensions,
// or if an audit was requested and the markup could not be parsed.
func Embed(markup string, cfg Config) (Embedded, error) {
	rw := cfg.Rewriter()
	return cfg.finish(rw, rw.Apply(markup))
}

// EmbedAll embeds a batch of tables. Tables are rewritten concurrently;
// results are in the order of markups. The error, if any, names the
// position of the first table failing.
func EmbedAll(markups []string, cfg Config) ([]Embedded, error) {
	rw := cfg.Rewriter()
	results := rw.ApplyAll(markups)
	embedded := make([]Embedded, len(results))
	for i, result := range results {
		e, err := cfg.finish(rw, result)
		if err != nil {
			return embedded[:i], fmt.Errorf("table %d: %w", i+1, err)
		}
		embedded[i] = e
	}
	return embedded, nil
}

func (c Config) finish(rw scope.Rewriter, result scope.Result) (Embedded, error) {
	embedded := Embedded{Output: result.Output, ID: result.ID, Rewrites: result.Selectors}
	if c.Audit {
		// the reset container is not part of the table and is not audited
		report, err := audit.Check(result.Output, result.ID, rw)
		if err != nil {
			return embedded, err
		}
		if !report.OK() {
			tracer().Infof("table #%s is not fully isolated", result.ID)
		}
		embedded.Report = &report
	}
	if c.Wrap {
		container, err := c.container()
		if err != nil {
			return embedded, err
		}
		embedded.Output = container.Wrap(result.Output, result.ID)
	}
	return embedded, nil
}
