package termr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex/terex"
)

func context(t *testing.T, input string) Resolver {
	t.Helper()
	ctx, err := ContextFrom(parse(t, input))
	if err != nil {
		t.Fatalf("cannot use %q as a context: %v", input, err)
	}
	return ctx
}

func TestSubstitute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	for _, test := range []struct {
		input, ctx, expected string
	}{
		{"x", "{x:2}", "2"},
		{"x+y", "{x:2}", "2+y"},
		{"x+y", "{x:1, y:2}", "3"},
		{"x^2", "x=3", "9"},
		{"sin(x)*y", "{z:1}", "sin(x)*y"},
		{"[x, y, x*y]", "{x:2}", "[2, y, 2*y]"},
		{"{a:x, b:y}", "{x:1}", "{a:1, b:y}"},
		{"{x:x}", "{x:5}", "{x:5}"},
		{"x[1]", "{x:[10, 20, 30]}", "20"},
		{"x[1]+1", "{x:y}", "y[1]+1"},
		{"x", "{x:y, y:2}", "y"},
		{"x=y", "{y:2}", "x=2"},
		{"x+1{m}", "{x:2{km}}", "2.001{km}"},
	} {
		e, err := Substitute(parse(t, test.input), context(t, test.ctx))
		if err != nil {
			t.Errorf("substituting %s into %s: %v", test.ctx, test.input, err)
			continue
		}
		if e.String() != test.expected {
			t.Errorf("expected %s under %s to be %s, is %s", test.input, test.ctx,
				test.expected, e)
		}
	}
}

func TestSubstituteFromMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	e, err := Substitute(parse(t, "x"), context(t, "{x:2}"))
	if err != nil {
		t.Fatal(err)
	}
	if !terex.Equal(e, terex.Num(2)) {
		t.Errorf("expected x under {x:2} to be 2, is %s", e)
	}
}

func TestSubstituteBindings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	ctx := Bindings{"x": terex.Num(1), "y": parse(t, "z^2")}
	e, err := Substitute(parse(t, "x+y"), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if e.String() != "1+z^2" {
		t.Errorf("expected 1+z^2, is %s", e)
	}
	unchanged := parse(t, "a*b")
	if e, _ = Substitute(unchanged, ctx); e != unchanged {
		t.Errorf("expected substitution without bound symbols to return its input")
	}
}

func TestSubstituteErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	for _, test := range []struct {
		input, ctx string
		err        error
	}{
		{"x[3]", "{x:[1]}", terex.ErrDomain},
		{"x[0]", "{x:3}", terex.ErrTypeMismatch},
		{"x+1", "{x:[1, 2]}", terex.ErrTypeMismatch},
		{"x+y", "{x:[1, 2], y:[1]}", terex.ErrLengthMismatch},
		{"x+y", "{x:1{m}, y:1{s}}", terex.ErrUnitMismatch},
	} {
		_, err := Substitute(parse(t, test.input), context(t, test.ctx))
		if !errors.Is(err, test.err) {
			t.Errorf("expected %v for %s under %s, have %v", test.err, test.input, test.ctx, err)
		}
	}
}

func TestContextFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	if _, err := ContextFrom(parse(t, "2=x")); !errors.Is(err, terex.ErrDomain) {
		t.Errorf("expected equation with a number on the left to be a domain error, have %v", err)
	}
	if _, err := ContextFrom(parse(t, "[x]")); !errors.Is(err, terex.ErrTypeMismatch) {
		t.Errorf("expected a sequence not to be a context, have %v", err)
	}
	if _, err := ContextFrom(parse(t, "x+1")); !errors.Is(err, terex.ErrTypeMismatch) {
		t.Errorf("expected a sum not to be a context, have %v", err)
	}
	ctx, err := ContextFrom(parse(t, "x=y+1"))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := ctx.Resolve("x"); !ok || v.String() != "y+1" {
		t.Errorf("expected x to be bound to y+1, is %v", v)
	}
	if _, ok := ctx.Resolve("y"); ok {
		t.Errorf("expected y to be unbound")
	}
}
