package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/symex/terex"
)

// Derivative returns the derivative of t with respect to variable v, which
// is either a symbol or an index node.
//
// Derivatives of sequences are taken elementwise, derivatives of mappings
// are undefined. Powers with an exponent depending on v are not supported.
// The result is not simplified, apart from constant folding and the
// pruning of multiplications by 0 or 1.
func Derivative(t, v terex.Expr) (terex.Expr, error) {
	if t == nil {
		return nil, terex.DomainError("derivative of nil")
	}
	switch v.(type) {
	case *terex.Symbol, *terex.Index:
	default:
		return nil, terex.DomainError("cannot derive with respect to %v", v)
	}
	if err := terex.CheckHeight(t); err != nil {
		return nil, err
	}
	d := &deriver{v: v}
	return d.derive(t)
}

type deriver struct {
	v terex.Expr
	b Builder
}

var _ terex.Visitor[terex.Expr] = (*deriver)(nil)

func (d *deriver) derive(e terex.Expr) (terex.Expr, error) {
	if !terex.IsContainer(e) && !terex.Contains(e, d.v) {
		return terex.Num(0), nil
	}
	return terex.Visit[terex.Expr](e, d)
}

func (d *deriver) VisitLiteral(*terex.Literal) (terex.Expr, error) {
	return terex.Num(0), nil
}

func (d *deriver) VisitSymbol(s *terex.Symbol) (terex.Expr, error) {
	if terex.Equal(s, d.v) {
		return terex.Num(1), nil
	}
	return terex.Num(0), nil
}

func (d *deriver) VisitIndex(x *terex.Index) (terex.Expr, error) {
	if terex.Equal(x, d.v) {
		return terex.Num(1), nil
	}
	return terex.Num(0), nil
}

func (d *deriver) VisitBinary(e *terex.BinaryOp) (terex.Expr, error) {
	f, g := e.Left(), e.Right()
	df, err := d.derive(f)
	if err != nil {
		return nil, err
	}
	var r terex.Expr
	b := &d.b
	switch e.Op() {
	case terex.Equals:
		dg, err := d.derive(g)
		if err != nil {
			return nil, err
		}
		r = b.Eq(df, dg)
	case terex.Add, terex.Sub:
		dg, err := d.derive(g)
		if err != nil {
			return nil, err
		}
		if e.Op() == terex.Add {
			r = b.Add(df, dg)
		} else {
			r = b.Sub(df, dg)
		}
	case terex.Mul: // (fg)' = f'g + fg'
		dg, err := d.derive(g)
		if err != nil {
			return nil, err
		}
		r = b.Add(b.Mul(df, g), b.Mul(f, dg))
	case terex.Div:
		if !terex.Contains(g, d.v) { // (f/c)' = f'/c
			r = b.Div(df, g)
			break
		}
		dg, err := d.derive(g) // (f/g)' = (f'g - fg')/g²
		if err != nil {
			return nil, err
		}
		r = b.Div(b.Sub(b.Mul(df, g), b.Mul(f, dg)), b.Pow(g, b.Num(2)))
	case terex.Pow:
		if terex.Contains(g, d.v) {
			return nil, terex.DomainError("exponent of %s depends on %s", e, d.v)
		}
		// (fⁿ)' = n·fⁿ⁻¹·f'
		r = b.Mul(b.Mul(g, b.Pow(f, b.Sub(g, b.Num(1)))), df)
	}
	tracer().Debugf("d/d%s %s = %v", d.v, e, r)
	return r, b.Err()
}

func (d *deriver) VisitUnary(e *terex.UnaryOp) (terex.Expr, error) {
	u := e.Arg()
	du, err := d.derive(u)
	if err != nil {
		return nil, err
	}
	var r terex.Expr
	b := &d.b
	switch e.Func() {
	case terex.Negate:
		r = b.Neg(du)
	case terex.Sin:
		r = b.Mul(b.Apply(terex.Cos, u), du)
	case terex.Cos:
		r = b.Mul(b.Neg(b.Apply(terex.Sin, u)), du)
	case terex.Tan:
		r = b.Div(du, b.Pow(b.Apply(terex.Cos, u), b.Num(2)))
	case terex.Exp:
		r = b.Mul(e, du)
	case terex.Ln:
		r = b.Div(du, u)
	case terex.Sqrt:
		r = b.Div(du, b.Mul(b.Num(2), e))
	case terex.Abs:
		r = b.Div(b.Mul(du, e), u)
	default:
		return nil, terex.DomainError("no derivative known for %s", e.Func())
	}
	return r, b.Err()
}

func (d *deriver) VisitSequence(s *terex.Sequence) (terex.Expr, error) {
	return s.MapElements(d.derive)
}

func (d *deriver) VisitMapping(m *terex.Mapping) (terex.Expr, error) {
	return nil, terex.DomainError("cannot derive mapping %s", m)
}
