package terex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Visitor is implemented by tree transformations. There is one method per
// node type; adding a node type to this package will add a method here, and
// every transformation has to handle it before it compiles again.
type Visitor[T any] interface {
	VisitLiteral(*Literal) (T, error)
	VisitSymbol(*Symbol) (T, error)
	VisitBinary(*BinaryOp) (T, error)
	VisitUnary(*UnaryOp) (T, error)
	VisitIndex(*Index) (T, error)
	VisitSequence(*Sequence) (T, error)
	VisitMapping(*Mapping) (T, error)
}

// Visit dispatches a tree node to the matching method of a visitor.
// Visitors call Visit for child nodes themselves.
func Visit[T any](e Expr, v Visitor[T]) (T, error) {
	switch x := e.(type) {
	case *Literal:
		return v.VisitLiteral(x)
	case *Symbol:
		return v.VisitSymbol(x)
	case *BinaryOp:
		return v.VisitBinary(x)
	case *UnaryOp:
		return v.VisitUnary(x)
	case *Index:
		return v.VisitIndex(x)
	case *Sequence:
		return v.VisitSequence(x)
	case *Mapping:
		return v.VisitMapping(x)
	}
	panic("unknown node type")
}

// Rebuild helpers for transformations. They return the original node if
// no child has changed, preserving structural sharing.

// WithOperands returns b if l and r are the operands of b, otherwise a
// new (folded) operation with operands l and r.
func (b *BinaryOp) WithOperands(l, r Expr) (Expr, error) {
	if l == b.left && r == b.right {
		return b, nil
	}
	return Binary(b.op, l, r)
}

// WithArg returns u if arg is the operand of u, otherwise a new (folded)
// unary operation.
func (u *UnaryOp) WithArg(arg Expr) (Expr, error) {
	if arg == u.arg {
		return u, nil
	}
	return Unary(u.fn, arg)
}

// MapElements applies f to every element of a sequence. The result shares
// the receiver if f returns every element unchanged.
func (s *Sequence) MapElements(f func(Expr) (Expr, error)) (*Sequence, error) {
	var elems []Expr // allocated on first change
	for i, el := range s.elems {
		e, err := f(el)
		if err != nil {
			return nil, err
		}
		if elems == nil && e != el {
			elems = make([]Expr, len(s.elems))
			copy(elems, s.elems[:i])
		}
		if elems != nil {
			elems[i] = e
		}
	}
	if elems == nil {
		return s, nil
	}
	return Seq(elems...), nil
}

// MapValues applies f to every value of a mapping, keeping the keys. The
// result shares the receiver if f returns every value unchanged.
func (m *Mapping) MapValues(f func(Expr) (Expr, error)) (*Mapping, error) {
	entries := m.Entries()
	changed := false
	for i, entry := range entries {
		v, err := f(entry.Value)
		if err != nil {
			return nil, err
		}
		if v != entry.Value {
			entries[i].Value = v
			changed = true
		}
	}
	if !changed {
		return m, nil
	}
	return MapOf(entries...)
}
