package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/tblscope/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %v", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	inherit := css.Inherit()
	if m := inherit.Match(); m.Just(nil) != nil {
		t.Errorf("expected inherit not to match a fixed dimension")
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    10,
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}

	e := css.DimenPattern[string](css.None())
	x := e.OneOf(css.DimenPatterns[string]{
		None:    "none",
		Default: "other",
	})
	if x != "none" {
		t.Errorf("expected unset dimension to match None, matched %q", x)
	}
}

func TestDimenString(t *testing.T) {
	cases := []struct {
		d   css.DimenT
		css string
	}{
		{css.Points(12), "12pt"},
		{css.Points(10.5), "10.5pt"},
		{css.Points(0), "0pt"},
		{css.JustDimen(dimen.PT * 100), "100pt"},
		{css.Auto(), "auto"},
		{css.Inherit(), "inherit"},
		{css.Initial(), "initial"},
		{css.None(), ""},
	}
	for _, c := range cases {
		if s := c.d.String(); s != c.css {
			t.Errorf("expected dimension to render as %q, is %q", c.css, s)
		}
	}
}

func TestParseDimen(t *testing.T) {
	cases := []struct {
		in  string
		css string
	}{
		{"10", "10pt"},
		{" 10.5pt ", "10.5pt"},
		{"inherit", "inherit"},
		{"Initial", "initial"},
		{"auto", "auto"},
		{"none", ""},
		{"", ""},
	}
	for _, c := range cases {
		d, err := css.ParseDimen(c.in)
		if err != nil {
			t.Errorf("expected %q to parse, got %v", c.in, err)
		} else if d.String() != c.css {
			t.Errorf("expected %q to parse as %q, is %q", c.in, c.css, d.String())
		}
	}
	if _, err := css.ParseDimen("12px"); !errors.Is(err, css.ErrInvalidDimen) {
		t.Errorf("expected 12px to be rejected, got %v", err)
	}
}
