package terex

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var x, y, z = Sym("x"), Sym("y"), Sym("z")

func bin(op Op, l, r Expr) Expr {
	return Must(Binary(op, l, r))
}

func un(fn Func, arg Expr) Expr {
	return Must(Unary(fn, arg))
}

func TestConstantFolding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	if e := bin(Add, Num(1), Num(1)); !Equal(e, Num(2)) {
		t.Errorf("expected 1+1 to fold to 2, is %s", e)
	}
	if e := bin(Pow, Num(2), Num(10)); !Equal(e, Num(1024)) {
		t.Errorf("expected 2^10 to fold to 1024, is %s", e)
	}
	if e := un(Sin, Num(0)); !Equal(e, Num(0)) {
		t.Errorf("expected sin(0) to fold to 0, is %s", e)
	}
	if e := un(Negate, Num(0)); e.String() != "0" {
		t.Errorf("expected -0 to print as 0, is %s", e)
	}
	if e := bin(Add, x, Num(1)); e.String() != "x+1" {
		t.Errorf("expected x+1 not to fold, is %s", e)
	}
	if e := Eq(Num(1), Num(1)); e.String() != "1=1" {
		t.Errorf("expected equation 1=1 not to fold, is %s", e)
	}
}

func TestNoFoldingOfNonFiniteResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	e := bin(Div, Num(1), Num(0))
	if _, ok := e.(*BinaryOp); !ok || e.String() != "1/0" {
		t.Errorf("expected 1/0 to stay an operation, is %s", e)
	}
	if e := un(Ln, Num(-1)); e.String() != "ln(-1)" {
		t.Errorf("expected ln(-1) to stay unevaluated, is %s", e)
	}
}

func TestUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	m, _ := LookupUnit("m")
	km, _ := LookupUnit("km")
	s, _ := LookupUnit("s")
	if e := bin(Add, Quantity(1, km), Quantity(1, m)); e.String() != "1.001{km}" {
		t.Errorf("expected 1{km}+1{m} = 1.001{km}, is %s", e)
	}
	if e := bin(Mul, Quantity(2, m), Quantity(3, m)); e.String() != "6{m^2}" {
		t.Errorf("expected 6{m^2}, is %s", e)
	}
	if e := bin(Div, Quantity(10, m), Quantity(2, s)); e.String() != "5{m*s^-1}" {
		t.Errorf("expected 5{m*s^-1}, is %s", e)
	}
	if e := bin(Div, Quantity(3, km), Quantity(1, m)); !Equal(e, Num(3000)) {
		t.Errorf("expected dimensionless 3000, is %s", e)
	}
	if e := bin(Pow, Quantity(2, s), Num(-1)); e.String() != "0.5{Hz}" {
		t.Errorf("expected 0.5{Hz}, is %s", e)
	}
	if _, err := Binary(Add, Quantity(1, m), Quantity(1, s)); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("expected unit mismatch for m+s, have %v", err)
	}
	if _, err := Binary(Sub, Num(2), Quantity(1, m)); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("expected unit mismatch for 2-1{m}, have %v", err)
	}
	if _, err := Unary(Sin, Quantity(1, m)); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("expected unit mismatch for sin(1{m}), have %v", err)
	}
	if _, err := Binary(Pow, Quantity(4, m), Num(0.5)); !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error for 4{m}^0.5, have %v", err)
	}
}

func TestUnitExponentRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	m := BaseUnit(Length)
	u, err := m.Pow(MaxExponent)
	if err != nil || u.Exponent(Length) != MaxExponent {
		t.Errorf("expected m^%d, have %v, %v", MaxExponent, u, err)
	}
	if _, err = m.Pow(MaxExponent + 1); !errors.Is(err, ErrDomain) {
		t.Errorf("expected exponent %d to be out of range, have %v", MaxExponent+1, err)
	}
	if _, err = u.Mul(m); !errors.Is(err, ErrDomain) {
		t.Errorf("expected product exponent to be out of range, have %v", err)
	}
	if _, err = ScaleUnit(1e300).Pow(2); !errors.Is(err, ErrDomain) {
		t.Errorf("expected scale overflow, have %v", err)
	}
	km, _ := LookupUnit("km")
	if u, err = km.Pow(-2); err != nil || u.Scale() != 1e-6 || u.Exponent(Length) != -2 {
		t.Errorf("expected km^-2, have %v, %v", u, err)
	}
	if _, err = Binary(Pow, Quantity(2, m), Num(1e15)); !errors.Is(err, ErrDomain) {
		t.Errorf("expected huge power of quantity to fail, have %v", err)
	}
	if e := bin(Pow, Quantity(2, m), Num(3)); e.String() != "8{m^3}" {
		t.Errorf("expected 8{m^3}, is %s", e)
	}
}

func TestSequenceArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	a := Seq(Num(1), Num(2), Num(3), Num(4))
	b := Seq(Num(0), Num(1), Num(2), Num(3))
	if e := bin(Add, a, b); e.String() != "[1, 3, 5, 7]" {
		t.Errorf("expected [1, 3, 5, 7], is %s", e)
	}
	if e := bin(Mul, Seq(x, Num(2)), Seq(y, Num(3))); e.String() != "[x*y, 6]" {
		t.Errorf("expected [x*y, 6], is %s", e)
	}
	if _, err := Binary(Add, a, Seq(Num(1))); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected length mismatch, have %v", err)
	}
	if _, err := Binary(Add, a, Num(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected type mismatch for sequence+scalar, have %v", err)
	}
	if _, err := Binary(Add, x, a); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected type mismatch for symbol+sequence, have %v", err)
	}
	if e := un(Negate, Seq(Num(1), x)); e.String() != "[-1, -x]" {
		t.Errorf("expected [-1, -x], is %s", e)
	}
}

func TestMappingArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	m1 := Must(MapOf(Entry{x, Num(1)}, Entry{y, Num(2)}))
	m2 := Must(MapOf(Entry{z, Num(4)}, Entry{y, Num(3)}))
	if e := bin(Add, m1, m2); e.String() != "{x:1, y:5, z:4}" {
		t.Errorf("expected {x:1, y:5, z:4}, is %s", e)
	}
	if e := bin(Sub, m1, m2); e.String() != "{x:1, y:-1, z:-4}" {
		t.Errorf("expected {x:1, y:-1, z:-4}, is %s", e)
	}
	if e := bin(Div, m1, m2); e.String() != "{x:1, y:0.6666666666666666, z:0.25}" {
		t.Errorf("unexpected quotient %s", e)
	}
	if _, err := Binary(Pow, m1, m2); !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error for missing base, have %v", err)
	}
	if _, err := Binary(Add, m1, Seq()); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected type mismatch for mapping+sequence, have %v", err)
	}
	if _, err := Unary(Cos, m1); !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error for cos of mapping, have %v", err)
	}
	if _, err := MapOf(Entry{x, Num(1)}, Entry{x, Num(2)}); !errors.Is(err, ErrDomain) {
		t.Errorf("expected duplicate key to be rejected, have %v", err)
	}
}

func TestIndexing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	if e := Must(At(x, 1)); e.String() != "x[1]" {
		t.Errorf("expected x[1], is %s", e)
	}
	if e := Must(At(Seq(x, y), 1)); e != Expr(y) {
		t.Errorf("expected element y, is %s", e)
	}
	if _, err := At(Seq(x), 3); !errors.Is(err, ErrDomain) {
		t.Errorf("expected index out of range, have %v", err)
	}
	if _, err := At(Num(1), 0); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected literal not to be indexable, have %v", err)
	}
	if _, err := At(x, -1); !errors.Is(err, ErrDomain) {
		t.Errorf("expected negative index of symbol to fail, have %v", err)
	}
}

func TestEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	a := bin(Add, bin(Mul, x, x), Num(2))
	b := bin(Add, bin(Mul, Sym("x"), Sym("x")), Num(2))
	if !Equal(a, b) {
		t.Errorf("expected %s to equal %s", a, b)
	}
	if Equal(a, bin(Add, bin(Mul, x, y), Num(2))) {
		t.Errorf("expected x*x+2 to differ from x*y+2")
	}
	m, _ := LookupUnit("m")
	if Equal(Num(1), Quantity(1, m)) {
		t.Errorf("expected 1 to differ from 1{m}")
	}
	if !Equal(NewIndex(x, 1), NewIndex(Sym("x"), 1)) || Equal(NewIndex(x, 1), NewIndex(x, 2)) {
		t.Errorf("index nodes compare by symbol and position")
	}
	m1 := Must(MapOf(Entry{y, Num(2)}, Entry{x, Num(1)}))
	m2 := Must(MapOf(Entry{x, Num(1)}, Entry{y, Num(2)}))
	if !Equal(m1, m2) {
		t.Errorf("expected mappings to be independent of construction order")
	}
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	e := Seq(bin(Mul, un(Sin, x), y), NewIndex(z, 1))
	if !Contains(e, x) || !Contains(e, y) {
		t.Errorf("expected %s to contain x and y", e)
	}
	if Contains(e, z) {
		t.Errorf("index z[1] should not count as an occurrence of z")
	}
}

func TestHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.terex")
	defer teardown()
	//
	var e Expr = x
	for i := 0; i < MaxHeight; i++ {
		e = bin(Add, e, Num(1))
	}
	if e.Height() != MaxHeight+1 {
		t.Errorf("expected height %d, is %d", MaxHeight+1, e.Height())
	}
	if err := CheckHeight(e); !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected tree to be too deep, have %v", err)
	}
}
