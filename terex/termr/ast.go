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

// Builder constructs trees from parts. It remembers the first error
// occuring during construction; after an error every further call returns
// nil, and Err reports the error. This lets clients build compound trees
// without checking every intermediate step:
//
//     b := &Builder{}
//     e := b.Mul(b.Num(2), b.Pow(x, b.Num(2)))
//     if b.Err() != nil { … }
//
// Builder prunes trivial operations on plain numbers: additions of 0,
// multiplications by 0 or 1, divisions by 1, and powers of 0 and 1.
type Builder struct {
	err error
}

// Err returns the first error the builder encountered, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Num creates a numeric literal.
func (b *Builder) Num(v float64) terex.Expr {
	return terex.Num(v)
}

// Add builds l+r.
func (b *Builder) Add(l, r terex.Expr) terex.Expr {
	switch {
	case b.failed(l, r):
		return nil
	case isNum(l, 0) && !terex.IsContainer(r):
		return r
	case isNum(r, 0) && !terex.IsContainer(l):
		return l
	}
	return b.binary(terex.Add, l, r)
}

// Sub builds l-r.
func (b *Builder) Sub(l, r terex.Expr) terex.Expr {
	switch {
	case b.failed(l, r):
		return nil
	case isNum(r, 0) && !terex.IsContainer(l):
		return l
	case isNum(l, 0) && !terex.IsContainer(r):
		return b.Neg(r)
	}
	return b.binary(terex.Sub, l, r)
}

// Mul builds l*r.
func (b *Builder) Mul(l, r terex.Expr) terex.Expr {
	switch {
	case b.failed(l, r):
		return nil
	case terex.IsContainer(l) || terex.IsContainer(r):
		return b.binary(terex.Mul, l, r)
	case isNum(l, 0) || isNum(r, 0):
		return terex.Num(0)
	case isNum(l, 1):
		return r
	case isNum(r, 1):
		return l
	}
	return b.binary(terex.Mul, l, r)
}

// Div builds l/r.
func (b *Builder) Div(l, r terex.Expr) terex.Expr {
	switch {
	case b.failed(l, r):
		return nil
	case isNum(r, 1) && !terex.IsContainer(l):
		return l
	}
	return b.binary(terex.Div, l, r)
}

// Pow builds l^r.
func (b *Builder) Pow(l, r terex.Expr) terex.Expr {
	switch {
	case b.failed(l, r):
		return nil
	case terex.IsContainer(l):
		return b.binary(terex.Pow, l, r)
	case isNum(r, 1):
		return l
	case isNum(r, 0):
		return terex.Num(1)
	}
	return b.binary(terex.Pow, l, r)
}

// Eq builds the equation l=r.
func (b *Builder) Eq(l, r terex.Expr) terex.Expr {
	if b.failed(l, r) {
		return nil
	}
	return b.binary(terex.Equals, l, r)
}

// Neg builds -e.
func (b *Builder) Neg(e terex.Expr) terex.Expr {
	return b.Apply(terex.Negate, e)
}

// Apply builds the function application fn(e).
func (b *Builder) Apply(fn terex.Func, e terex.Expr) terex.Expr {
	if b.failed(e) {
		return nil
	}
	u, err := terex.Unary(fn, e)
	if err != nil {
		b.err = err
		return nil
	}
	return u
}

func (b *Builder) binary(op terex.Op, l, r terex.Expr) terex.Expr {
	e, err := terex.Binary(op, l, r)
	if err != nil {
		b.err = err
		return nil
	}
	return e
}

// failed is true if the builder has seen an error before, or if one of
// the operands is missing.
func (b *Builder) failed(operands ...terex.Expr) bool {
	if b.err != nil {
		return true
	}
	for _, e := range operands {
		if e == nil {
			b.err = terex.DomainError("missing operand")
			return true
		}
	}
	return false
}

// --- Helpers ---------------------------------------------------------------

// isNum is true if e is the plain number v.
func isNum(e terex.Expr, v float64) bool {
	l, ok := e.(*terex.Literal)
	return ok && l.IsNumber() && l.Is(v)
}

// number returns the value of a plain number.
func number(e terex.Expr) (float64, bool) {
	if l, ok := e.(*terex.Literal); ok && l.IsNumber() {
		return l.Value(), true
	}
	return 0, false
}
