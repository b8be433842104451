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

// Resolver is a substitution context: it maps symbol names to trees.
type Resolver interface {
	Resolve(name string) (terex.Expr, bool)
}

// Bindings is a simple Resolver.
type Bindings map[string]terex.Expr

// Resolve is part of interface Resolver.
func (b Bindings) Resolve(name string) (terex.Expr, bool) {
	e, ok := b[name]
	return e, ok && e != nil
}

type mappingContext struct {
	m *terex.Mapping
}

func (mc mappingContext) Resolve(name string) (terex.Expr, bool) {
	return mc.m.Get(name)
}

// ContextFrom creates a substitution context from a tree. Mappings bind
// each key to its value; an equation x=e binds x to e. Equations with a
// left side other than a symbol are domain errors, other trees cannot
// serve as a context at all.
func ContextFrom(ctx terex.Expr) (Resolver, error) {
	switch c := ctx.(type) {
	case *terex.Mapping:
		return mappingContext{m: c}, nil
	case *terex.BinaryOp:
		if !c.IsEquation() {
			break
		}
		sym, ok := c.Left().(*terex.Symbol)
		if !ok {
			return nil, terex.DomainError("left side of context %s is not a symbol", c)
		}
		return Bindings{sym.Name(): c.Right()}, nil
	case nil:
		return Bindings{}, nil
	}
	return nil, terex.TypeMismatchError("%s cannot be used as a substitution context", ctx)
}

// Substitute replaces every symbol bound in ctx by its value. Unbound
// symbols are left in place. Replacements are not substituted again.
//
// Operations whose operands become numbers are folded. An index x[i] with
// x bound to a sequence is replaced by the i-th element of the sequence;
// with x bound to a symbol y it becomes y[i].
func Substitute(t terex.Expr, ctx Resolver) (terex.Expr, error) {
	if t == nil {
		return nil, terex.DomainError("substitution into nil")
	}
	if err := terex.CheckHeight(t); err != nil {
		return nil, err
	}
	if ctx == nil {
		return t, nil
	}
	s := substituter{ctx: ctx}
	return terex.Visit[terex.Expr](t, s)
}

type substituter struct {
	ctx Resolver
}

var _ terex.Visitor[terex.Expr] = substituter{}

func (s substituter) sub(e terex.Expr) (terex.Expr, error) {
	return terex.Visit[terex.Expr](e, s)
}

func (s substituter) VisitLiteral(l *terex.Literal) (terex.Expr, error) {
	return l, nil
}

func (s substituter) VisitSymbol(sym *terex.Symbol) (terex.Expr, error) {
	if v, ok := s.ctx.Resolve(sym.Name()); ok {
		tracer().Debugf("substituting %s ← %s", sym, v)
		return v, nil
	}
	return sym, nil
}

func (s substituter) VisitBinary(b *terex.BinaryOp) (terex.Expr, error) {
	l, err := s.sub(b.Left())
	if err != nil {
		return nil, err
	}
	r, err := s.sub(b.Right())
	if err != nil {
		return nil, err
	}
	return b.WithOperands(l, r)
}

func (s substituter) VisitUnary(u *terex.UnaryOp) (terex.Expr, error) {
	arg, err := s.sub(u.Arg())
	if err != nil {
		return nil, err
	}
	return u.WithArg(arg)
}

func (s substituter) VisitIndex(x *terex.Index) (terex.Expr, error) {
	v, ok := s.ctx.Resolve(x.Base().Name())
	if !ok {
		return x, nil
	}
	return terex.At(v, x.Pos())
}

func (s substituter) VisitSequence(seq *terex.Sequence) (terex.Expr, error) {
	return seq.MapElements(s.sub)
}

func (s substituter) VisitMapping(m *terex.Mapping) (terex.Expr, error) {
	return m.MapValues(s.sub)
}
