package terex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
)

// MaxHeight is the maximum height of a tree accepted by transformations.
// Trees are built bottom-up and may grow beyond this limit, but walking them
// recursively will be refused with ErrTooDeep.
const MaxHeight = 10000

// Expr is the type of all tree nodes. The set of implementations is closed:
// *Literal, *Symbol, *BinaryOp, *UnaryOp, *Index, *Sequence and *Mapping.
type Expr interface {
	fmt.Stringer
	// Height is 1 for leaves and 1 + the maximum height of the children
	// for inner nodes.
	Height() int
	isExpr()
}

// CheckHeight returns an error wrapping ErrTooDeep if e is higher than MaxHeight.
func CheckHeight(e Expr) error {
	if e.Height() > MaxHeight {
		return fmt.Errorf("%w: height %d exceeds %d", ErrTooDeep, e.Height(), MaxHeight)
	}
	return nil
}

// --- Literals --------------------------------------------------------------

// Literal is a numeric leaf, optionally carrying a unit.
type Literal struct {
	value float64
	unit  *Unit // nil for plain numbers
}

// Num creates a plain numeric literal.
func Num(v float64) *Literal {
	if v == 0 {
		v = 0 // no negative zero
	}
	return &Literal{value: v}
}

// Quantity creates a literal with a unit. A dimensionless unit is folded
// into the value, thus Quantity(1, km/m) is the plain number 1000.
func Quantity(v float64, u *Unit) *Literal {
	if u != nil && u.Dimensionless() {
		v *= u.Scale()
		u = nil
	}
	lit := Num(v)
	lit.unit = u
	return lit
}

// Value returns the numeric value of a literal, expressed in its unit.
func (l *Literal) Value() float64 { return l.value }

// Unit returns the unit of a literal, or nil.
func (l *Literal) Unit() *Unit { return l.unit }

// IsNumber is true for literals without a unit.
func (l *Literal) IsNumber() bool { return l.unit == nil }

// Is checks for a plain number of value v.
func (l *Literal) Is(v float64) bool {
	return l.unit == nil && l.value == v
}

// IsInteger is true for plain numbers without a fractional part.
func (l *Literal) IsInteger() bool {
	return l.unit == nil && l.value == math.Trunc(l.value) && math.Abs(l.value) < 1<<53
}

func (l *Literal) Height() int { return 1 }
func (l *Literal) isExpr()     {}

// --- Symbols ---------------------------------------------------------------

// Symbol is a named variable.
type Symbol struct {
	name string
}

// Sym creates a symbol.
func Sym(name string) *Symbol {
	return &Symbol{name: name}
}

// Name returns the name of a symbol.
func (s *Symbol) Name() string { return s.name }

func (s *Symbol) Height() int { return 1 }
func (s *Symbol) isExpr()     {}

// --- Operations ------------------------------------------------------------

// BinaryOp is an arithmetic operation or an equation.
type BinaryOp struct {
	op          Op
	left, right Expr
	height      int
}

func newBinary(op Op, l, r Expr) *BinaryOp {
	return &BinaryOp{op: op, left: l, right: r, height: 1 + max(l.Height(), r.Height())}
}

// Eq creates an equation. Equations are not folded: 1=1 stays an equation.
func Eq(l, r Expr) *BinaryOp {
	return newBinary(Equals, l, r)
}

// Op returns the operator.
func (b *BinaryOp) Op() Op { return b.op }

// Left returns the left operand.
func (b *BinaryOp) Left() Expr { return b.left }

// Right returns the right operand.
func (b *BinaryOp) Right() Expr { return b.right }

// IsEquation is true for nodes with operator Equals.
func (b *BinaryOp) IsEquation() bool { return b.op == Equals }

func (b *BinaryOp) Height() int { return b.height }
func (b *BinaryOp) isExpr()     {}

// UnaryOp is a negation or the application of a named function.
type UnaryOp struct {
	fn     Func
	arg    Expr
	height int
}

func newUnary(fn Func, arg Expr) *UnaryOp {
	return &UnaryOp{fn: fn, arg: arg, height: 1 + arg.Height()}
}

// Func returns the operator.
func (u *UnaryOp) Func() Func { return u.fn }

// Arg returns the operand.
func (u *UnaryOp) Arg() Expr { return u.arg }

func (u *UnaryOp) Height() int { return u.height }
func (u *UnaryOp) isExpr()     {}

// --- Index -----------------------------------------------------------------

// Index is an indexed access `x[i]` into a collection variable x which is not
// yet bound to a value.
type Index struct {
	base *Symbol
	pos  int
}

// NewIndex creates an index node for a symbol.
func NewIndex(base *Symbol, pos int) *Index {
	return &Index{base: base, pos: pos}
}

// Base returns the indexed symbol.
func (x *Index) Base() *Symbol { return x.base }

// Pos returns the index position.
func (x *Index) Pos() int { return x.pos }

func (x *Index) Height() int { return 1 }
func (x *Index) isExpr()     {}

// --- Containers ------------------------------------------------------------

// Sequence is an ordered list of trees.
type Sequence struct {
	elems  []Expr
	height int
}

// Seq creates a sequence. The argument slice is copied.
func Seq(elems ...Expr) *Sequence {
	s := &Sequence{elems: make([]Expr, len(elems)), height: 1}
	copy(s.elems, elems)
	for _, e := range elems {
		s.height = max(s.height, 1+e.Height())
	}
	return s
}

// Len returns the number of elements.
func (s *Sequence) Len() int { return len(s.elems) }

// At returns element i. It panics for positions out of range.
func (s *Sequence) At(i int) Expr { return s.elems[i] }

// Elements returns a copy of the elements.
func (s *Sequence) Elements() []Expr {
	elems := make([]Expr, len(s.elems))
	copy(elems, s.elems)
	return elems
}

func (s *Sequence) Height() int { return s.height }
func (s *Sequence) isExpr()     {}

// Entry is a key-value pair of a mapping.
type Entry struct {
	Key   *Symbol
	Value Expr
}

// Mapping maps symbols to trees. Keys are unique and entries are ordered by
// key name.
type Mapping struct {
	entries *treemap.Map // name -> Entry
	height  int
}

// MapOf creates a mapping. Duplicate keys are a domain error.
func MapOf(entries ...Entry) (*Mapping, error) {
	m := &Mapping{entries: treemap.NewWithStringComparator(), height: 1}
	for _, e := range entries {
		if e.Key == nil || e.Value == nil {
			return nil, DomainError("incomplete mapping entry")
		}
		if _, found := m.entries.Get(e.Key.name); found {
			return nil, DomainError("duplicate key %s in mapping", e.Key.name)
		}
		m.entries.Put(e.Key.name, e)
		m.height = max(m.height, 1+e.Value.Height())
	}
	return m, nil
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return m.entries.Size() }

// Get returns the value for a key name.
func (m *Mapping) Get(name string) (Expr, bool) {
	e, found := m.entries.Get(name)
	if !found {
		return nil, false
	}
	return e.(Entry).Value, true
}

// Entries returns the entries in key order.
func (m *Mapping) Entries() []Entry {
	entries := make([]Entry, 0, m.entries.Size())
	it := m.entries.Iterator()
	for it.Next() {
		entries = append(entries, it.Value().(Entry))
	}
	return entries
}

func (m *Mapping) Height() int { return m.height }
func (m *Mapping) isExpr()     {}

// --- Helpers ---------------------------------------------------------------

// Must is a helper wrapping a call returning a tree and an error. It panics
// if the error is non-nil. Intended for trees known to be valid, e.g., in
// variable initializations.
func Must(e Expr, err error) Expr {
	if err != nil {
		panic(err)
	}
	return e
}

// IsContainer is true for sequences and mappings.
func IsContainer(e Expr) bool {
	switch e.(type) {
	case *Sequence, *Mapping:
		return true
	}
	return false
}

// Contains checks whether tree e contains a node structurally equal to v.
// Index nodes are opaque: x[1] does not contain x.
func Contains(e Expr, v Expr) bool {
	if Equal(e, v) {
		return true
	}
	switch x := e.(type) {
	case *BinaryOp:
		return Contains(x.left, v) || Contains(x.right, v)
	case *UnaryOp:
		return Contains(x.arg, v)
	case *Sequence:
		for _, el := range x.elems {
			if Contains(el, v) {
				return true
			}
		}
	case *Mapping:
		for _, entry := range x.Entries() {
			if Contains(entry.Value, v) {
				return true
			}
		}
	}
	return false
}
