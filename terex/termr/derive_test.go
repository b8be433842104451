package termr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex/terex"
)

func TestDerivative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	for _, test := range []struct {
		input, expected string
	}{
		{"3", "0"},
		{"x", "1"},
		{"y", "0"},
		{"x+y", "1"},
		{"x^3", "3*x^2"},
		{"x*y", "y"},
		{"x/y", "1/y"},
		{"1/x", "-1/x^2"},
		{"-x", "-1"},
		{"sin(x)", "cos(x)"},
		{"cos(x)", "-sin(x)"},
		{"tan(x)", "1/cos(x)^2"},
		{"exp(2*x)", "exp(2*x)*2"},
		{"ln(x)", "1/x"},
		{"sqrt(x)", "1/(2*sqrt(x))"},
		{"abs(x)", "abs(x)/x"},
		{"sin(y)", "0"},
		{"y=x^2", "0=2*x"},
		{"x[0]*x", "x[0]"},
	} {
		d, err := Derivative(parse(t, test.input), x)
		if err != nil {
			t.Errorf("d/dx %s: %v", test.input, err)
			continue
		}
		if d.String() != test.expected {
			t.Errorf("expected d/dx %s to be %s, is %s", test.input, test.expected, d)
		}
	}
}

func TestDerivativeOfSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	d, err := Derivative(parse(t, "[1, x, x^2/2, x^3/6, sin(x), sin(y)]"), x)
	if err != nil {
		t.Fatal(err)
	}
	seq, ok := d.(*terex.Sequence)
	if !ok || seq.Len() != 6 {
		t.Fatalf("expected a sequence of 6 elements, have %s", d)
	}
	if !terex.Equal(seq.At(0), terex.Num(0)) {
		t.Errorf("expected first element to be 0, is %s", seq.At(0))
	}
	if !terex.Equal(seq.At(1), terex.Num(1)) {
		t.Errorf("expected second element to be 1, is %s", seq.At(1))
	}
	if !terex.Equal(seq.At(5), terex.Num(0)) {
		t.Errorf("expected last element to be 0, is %s", seq.At(5))
	}
}

func TestDerivativeByIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	d, err := Derivative(parse(t, "x[1]^2+x[0]+x"), terex.NewIndex(x, 1))
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2*x[1]" {
		t.Errorf("expected d/dx[1] to be 2*x[1], is %s", d)
	}
}

func TestDerivativeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	for _, input := range []string{"x^y+x^x", "2^x", "{a:x}", "[x, {a:x}]"} {
		if _, err := Derivative(parse(t, input), x); !errors.Is(err, terex.ErrDomain) {
			t.Errorf("expected domain error for d/dx %s, have %v", input, err)
		}
	}
	if _, err := Derivative(parse(t, "x"), terex.Num(2)); !errors.Is(err, terex.ErrDomain) {
		t.Errorf("expected domain error for derivation by a number, have %v", err)
	}
}

func TestLinearity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.termr")
	defer teardown()
	//
	a, b := terex.Num(3), terex.Num(5)
	for _, test := range []struct {
		f, g string
	}{
		{"x^2", "sin(x)"},
		{"x", "x^3"},
		{"exp(x)", "ln(x)"},
		{"x*y", "cos(x)"},
	} {
		f, g := parse(t, test.f), parse(t, test.g)
		bld := &Builder{}
		sum := bld.Add(bld.Mul(a, f), bld.Mul(b, g))
		if bld.Err() != nil {
			t.Fatal(bld.Err())
		}
		lhs, err := Derivative(sum, x)
		if err != nil {
			t.Fatal(err)
		}
		df, err := Derivative(f, x)
		if err != nil {
			t.Fatal(err)
		}
		dg, err := Derivative(g, x)
		if err != nil {
			t.Fatal(err)
		}
		rhs := bld.Add(bld.Mul(a, df), bld.Mul(b, dg))
		sl, err1 := Simplify(lhs)
		sr, err2 := Simplify(rhs)
		if err1 != nil || err2 != nil {
			t.Fatalf("cannot simplify: %v, %v", err1, err2)
		}
		if !terex.Equal(sl, sr) {
			t.Errorf("d/dx 3*%s+5*%s: expected %s, is %s", test.f, test.g, sr, sl)
		}
	}
}
