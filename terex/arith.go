package terex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"math"
)

// Binary creates a binary operation node, folding constants.
//
// Operations on two literals collapse into a literal, as long as the result
// is a finite number; `1/0` stays an operation node. Addition and subtraction
// of literals require equal dimensions (ErrUnitMismatch).
//
// Operations on two sequences of equal length are applied elementwise
// (ErrLengthMismatch otherwise), operations on two mappings per key. For keys
// present in only one mapping the missing operand is the identity of the
// operator. Mixing containers with other trees is an ErrTypeMismatch.
//
// The equation operator never folds and never looks into containers.
func Binary(op Op, l, r Expr) (Expr, error) {
	if l == nil || r == nil {
		return nil, DomainError("missing operand for %s", op)
	}
	if op == Equals {
		return newBinary(op, l, r), nil
	}
	switch lc := l.(type) {
	case *Sequence:
		rc, ok := r.(*Sequence)
		if !ok {
			return nil, TypeMismatchError("cannot apply %s to sequence and %s", op, kindOf(r))
		}
		return zipSequences(op, lc, rc)
	case *Mapping:
		rc, ok := r.(*Mapping)
		if !ok {
			return nil, TypeMismatchError("cannot apply %s to mapping and %s", op, kindOf(r))
		}
		return mergeMappings(op, lc, rc)
	}
	if IsContainer(r) {
		return nil, TypeMismatchError("cannot apply %s to %s and %s", op, kindOf(l), kindOf(r))
	}
	if ll, ok := l.(*Literal); ok {
		if rl, ok := r.(*Literal); ok {
			return foldBinary(op, ll, rl)
		}
	}
	return newBinary(op, l, r), nil
}

func foldBinary(op Op, l, r *Literal) (Expr, error) {
	var v float64
	var u *Unit
	var err error
	switch op {
	case Add, Sub:
		if !l.unit.SameDimension(r.unit) {
			return nil, unitMismatch("cannot combine %s and %s with %s", l, r, op)
		}
		rv := r.value * r.unit.Scale() / l.unit.Scale()
		if op == Sub {
			rv = -rv
		}
		v, u = l.value+rv, l.unit
	case Mul:
		v = l.value * r.value
		if u, err = l.unit.Mul(r.unit); err != nil {
			return nil, err
		}
	case Div:
		v = l.value / r.value
		if u, err = l.unit.Div(r.unit); err != nil {
			return nil, err
		}
	case Pow:
		if r.unit != nil {
			return nil, unitMismatch("exponent %s is not dimensionless", r)
		}
		if l.unit != nil {
			if !r.IsInteger() {
				return nil, DomainError("non-integral power %s of quantity %s", r, l)
			}
			if math.Abs(r.value) > MaxExponent {
				return nil, DomainError("power %s of quantity %s out of range", r, l)
			}
			if u, err = l.unit.Pow(int(r.value)); err != nil {
				return nil, err
			}
		}
		v = math.Pow(l.value, r.value)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		tracer().Debugf("not folding %s %s %s: result is not finite", l, op, r)
		return newBinary(op, l, r), nil
	}
	return Quantity(v, u), nil
}

func zipSequences(op Op, l, r *Sequence) (Expr, error) {
	if l.Len() != r.Len() {
		return nil, lengthMismatch("cannot apply %s to sequences of length %d and %d",
			op, l.Len(), r.Len())
	}
	elems := make([]Expr, l.Len())
	for i := range l.elems {
		e, err := Binary(op, l.elems[i], r.elems[i])
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return Seq(elems...), nil
}

// mergeMappings applies op per key. A key missing in one operand behaves as
// if it were mapped to the identity of op: 0 for + and -, 1 for * and /.
// A missing base of a power is an error.
func mergeMappings(op Op, l, r *Mapping) (Expr, error) {
	var entries []Entry
	for _, le := range l.Entries() {
		v := le.Value
		if rv, found := r.Get(le.Key.name); found {
			var err error
			if v, err = Binary(op, le.Value, rv); err != nil {
				return nil, err
			}
		} // else v op identity = v
		entries = append(entries, Entry{Key: le.Key, Value: v})
	}
	for _, re := range r.Entries() {
		if _, found := l.Get(re.Key.name); found {
			continue
		}
		var v Expr
		var err error
		switch op {
		case Add, Mul:
			v = re.Value
		case Sub:
			v, err = Unary(Negate, re.Value)
		case Div:
			v, err = Binary(Div, Num(1), re.Value)
		default:
			err = DomainError("key %s has no base for %s", re.Key.name, op)
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: re.Key, Value: v})
	}
	return MapOf(entries...)
}

// Unary creates a negation or function application node, folding constants.
// Functions are defined for dimensionless numbers only. Unary operations on
// sequences are applied elementwise, on mappings they are a domain error.
func Unary(fn Func, arg Expr) (Expr, error) {
	if arg == nil {
		return nil, DomainError("missing operand for %s", fn)
	}
	switch a := arg.(type) {
	case *Sequence:
		elems := make([]Expr, a.Len())
		for i, el := range a.elems {
			e, err := Unary(fn, el)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return Seq(elems...), nil
	case *Mapping:
		return nil, DomainError("cannot apply %s to a mapping", fn)
	case *Literal:
		if fn == Negate {
			return Quantity(-a.value, a.unit), nil
		}
		if a.unit != nil {
			return nil, unitMismatch("argument %s of %s is not dimensionless", a, fn)
		}
		if v := fn.Apply(a.value); !math.IsNaN(v) && !math.IsInf(v, 0) {
			return Num(v), nil
		}
	}
	return newUnary(fn, arg), nil
}

// Neg is a shortcut for Unary(Negate, e). Negation never fails for
// non-container trees.
func Neg(e Expr) (Expr, error) {
	return Unary(Negate, e)
}

// At indexes a tree: a sequence yields its element at position i (counting
// from 0), a symbol x yields the index node x[i]. Other trees cannot be
// indexed.
func At(e Expr, i int) (Expr, error) {
	switch x := e.(type) {
	case *Sequence:
		if i < 0 || i >= x.Len() {
			return nil, DomainError("index %d out of range for sequence of length %d", i, x.Len())
		}
		return x.elems[i], nil
	case *Symbol:
		if i < 0 {
			return nil, DomainError("negative index %d for %s", i, x)
		}
		return NewIndex(x, i), nil
	}
	return nil, TypeMismatchError("cannot index %s", kindOf(e))
}

func kindOf(e Expr) string {
	switch e.(type) {
	case *Literal:
		return "literal"
	case *Symbol:
		return "symbol"
	case *BinaryOp:
		return "operation"
	case *UnaryOp:
		return "function"
	case *Index:
		return "index"
	case *Sequence:
		return "sequence"
	case *Mapping:
		return "mapping"
	}
	return "unknown"
}
