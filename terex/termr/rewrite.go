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

// Rewriter is a function
//
//     tree ↦ tree
//
// i.e., a term rewriting function. It returns its input if it finds
// nothing to rewrite.
type Rewriter func(terex.Expr) (terex.Expr, error)

// RewriteRule is a type representing a rule for term rewriting.
// It contains a pattern and a rewriting-function. The pattern will be applied
// to nodes of a tree, and if it matches the rewriter will be called on the redex.
type RewriteRule struct {
	Name    string
	Pattern func(terex.Expr) bool
	Rewrite Rewriter
}

// maxNodeRewrites limits the number of rewrites of a single node within
// one pass.
const maxNodeRewrites = 16

// Rewrite applies rules to every node of a tree, bottom-up: the children
// of a node are rewritten before the node itself. A node is handed to the
// first rule with a matching pattern which changes it, and then to the
// rules again, until no rule changes it any more.
//
// Rewrite is a single pass over the tree. Nodes created by a rule are not
// visited again within the same pass.
func Rewrite(t terex.Expr, rules []RewriteRule) (terex.Expr, error) {
	if err := terex.CheckHeight(t); err != nil {
		return nil, err
	}
	return terex.Visit[terex.Expr](t, rewriter{rules: rules})
}

type rewriter struct {
	rules []RewriteRule
}

var _ terex.Visitor[terex.Expr] = rewriter{}

func (rw rewriter) rewrite(e terex.Expr) (terex.Expr, error) {
	return terex.Visit[terex.Expr](e, rw)
}

// apply rewrites a node whose children are already rewritten.
func (rw rewriter) apply(e terex.Expr) (terex.Expr, error) {
	for n := 0; n < maxNodeRewrites; n++ {
		changed := false
		for _, rule := range rw.rules {
			if !rule.Pattern(e) {
				continue
			}
			r, err := rule.Rewrite(e)
			if err != nil {
				return nil, err
			}
			if !terex.Equal(r, e) {
				tracer().Debugf("rule %s: %s ⇒ %s", rule.Name, e, r)
				e, changed = r, true
				break
			}
		}
		if !changed {
			break
		}
	}
	return e, nil
}

func (rw rewriter) VisitLiteral(l *terex.Literal) (terex.Expr, error) {
	return rw.apply(l)
}

func (rw rewriter) VisitSymbol(s *terex.Symbol) (terex.Expr, error) {
	return rw.apply(s)
}

func (rw rewriter) VisitIndex(x *terex.Index) (terex.Expr, error) {
	return rw.apply(x)
}

func (rw rewriter) VisitBinary(b *terex.BinaryOp) (terex.Expr, error) {
	l, err := rw.rewrite(b.Left())
	if err != nil {
		return nil, err
	}
	r, err := rw.rewrite(b.Right())
	if err != nil {
		return nil, err
	}
	e, err := b.WithOperands(l, r)
	if err != nil {
		return nil, err
	}
	return rw.apply(e)
}

func (rw rewriter) VisitUnary(u *terex.UnaryOp) (terex.Expr, error) {
	arg, err := rw.rewrite(u.Arg())
	if err != nil {
		return nil, err
	}
	e, err := u.WithArg(arg)
	if err != nil {
		return nil, err
	}
	return rw.apply(e)
}

func (rw rewriter) VisitSequence(s *terex.Sequence) (terex.Expr, error) {
	seq, err := s.MapElements(rw.rewrite)
	if err != nil {
		return nil, err
	}
	return rw.apply(seq)
}

func (rw rewriter) VisitMapping(m *terex.Mapping) (terex.Expr, error) {
	mapping, err := m.MapValues(rw.rewrite)
	if err != nil {
		return nil, err
	}
	return rw.apply(mapping)
}
