package terex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"math"
	"strconv"
	"strings"
)

// --- Canonical text --------------------------------------------------------

func (l *Literal) String() string  { return render(l) }
func (s *Symbol) String() string   { return s.name }
func (b *BinaryOp) String() string { return render(b) }
func (u *UnaryOp) String() string  { return render(u) }
func (x *Index) String() string    { return render(x) }
func (s *Sequence) String() string { return render(s) }
func (m *Mapping) String() string  { return render(m) }

// Repr returns the debug form of a tree, which quotes the canonical text:
//
//    Expr('x*x+2')
//
func Repr(e Expr) string {
	if e == nil {
		return "Expr(nil)"
	}
	return "Expr('" + e.String() + "')"
}

func render(e Expr) string {
	var b strings.Builder
	write(&b, e)
	return b.String()
}

// write emits the canonical text of a tree. Parentheses are inserted only
// where the parser would otherwise build a different tree, with one
// exception: right operands starting with a minus sign are parenthesized.
func write(b *strings.Builder, e Expr) {
	switch x := e.(type) {
	case *Literal:
		b.WriteString(formatNumber(x.value))
		if x.unit != nil {
			b.WriteByte('{')
			b.WriteString(x.unit.String())
			b.WriteByte('}')
		}
	case *Symbol:
		b.WriteString(x.name)
	case *BinaryOp:
		lbp, rbp := x.op.BindingPowers()
		t := trailing(x.left)
		writeOperand(b, x.left, t < lbp || (t == lbp && !x.op.Associative()))
		b.WriteString(x.op.String())
		writeOperand(b, x.right, leading(x.right) <= rbp || startsNegative(x.right))
	case *UnaryOp:
		if x.fn == Negate {
			b.WriteByte('-')
			writeOperand(b, x.arg, leading(x.arg) <= PrefixBindingPower)
			return
		}
		b.WriteString(x.fn.String())
		writeOperand(b, x.arg, true)
	case *Index:
		b.WriteString(x.base.name)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(x.pos))
		b.WriteByte(']')
	case *Sequence:
		b.WriteByte('[')
		for i, el := range x.elems {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, el)
		}
		b.WriteByte(']')
	case *Mapping:
		b.WriteByte('{')
		for i, entry := range x.Entries() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(entry.Key.name)
			b.WriteByte(':')
			write(b, entry.Value)
		}
		b.WriteByte('}')
	default:
		panic("unknown node type")
	}
}

func writeOperand(b *strings.Builder, e Expr, parens bool) {
	if parens {
		b.WriteByte('(')
	}
	write(b, e)
	if parens {
		b.WriteByte(')')
	}
}

// leading returns the binding power of the top-level operator of e, as seen
// by an operator to the left of e.
func leading(e Expr) int {
	if b, ok := e.(*BinaryOp); ok {
		lbp, _ := b.op.BindingPowers()
		return lbp
	}
	return atomBindingPower
}

// trailing returns the binding power the rightmost operand of e has been
// parsed with. An operator to the right of e with a higher binding power
// would otherwise capture that operand.
func trailing(e Expr) int {
	switch x := e.(type) {
	case *BinaryOp:
		_, rbp := x.op.BindingPowers()
		return rbp
	case *UnaryOp:
		if x.fn == Negate {
			return PrefixBindingPower
		}
	case *Literal:
		if x.value < 0 {
			return PrefixBindingPower
		}
	}
	return atomBindingPower
}

func startsNegative(e Expr) bool {
	switch x := e.(type) {
	case *Literal:
		return x.value < 0
	case *UnaryOp:
		return x.fn == Negate
	case *BinaryOp:
		return startsNegative(x.left)
	}
	return false
}

// formatNumber prints integral values without exponent as long as they are
// exactly representable, others in shortest round-trip form.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
