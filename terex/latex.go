package terex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"strconv"
	"strings"
)

// Latex renders a tree as LaTeX math. Quotients are typeset as fractions
// and exponents as superscripts; otherwise parentheses are placed the same
// way as in the canonical text.
//
//    x^2/2 + sin(x)   ⇒   \frac{x^{2}}{2} + \sin\left(x\right)
//
func Latex(e Expr) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	writeLatex(&b, e)
	return b.String()
}

var latexOps = [...]string{" = ", " + ", " - ", " \\cdot ", "", ""}

var latexFuncs = [...]string{"-", "\\sin", "\\cos", "\\tan", "\\exp", "\\ln", "\\sqrt", ""}

func writeLatex(b *strings.Builder, e Expr) {
	switch x := e.(type) {
	case *Literal:
		writeLatexNumber(b, x.value)
		if x.unit != nil {
			b.WriteString("\\,")
			writeLatexUnit(b, x.unit)
		}
	case *Symbol:
		writeLatexName(b, x.name)
	case *BinaryOp:
		switch x.op {
		case Div:
			b.WriteString("\\frac{")
			writeLatex(b, x.left)
			b.WriteString("}{")
			writeLatex(b, x.right)
			b.WriteByte('}')
		case Pow:
			writeLatexOperand(b, x.left, latexTrailing(x.left) <= PrefixBindingPower ||
				isBinary(x.left))
			b.WriteString("^{")
			writeLatex(b, x.right)
			b.WriteByte('}')
		default:
			lbp, rbp := x.op.BindingPowers()
			t := latexTrailing(x.left)
			writeLatexOperand(b, x.left, t < lbp || (t == lbp && !x.op.Associative()))
			b.WriteString(latexOps[x.op])
			writeLatexOperand(b, x.right, latexLeading(x.right) <= rbp || startsNegative(x.right))
		}
	case *UnaryOp:
		switch x.fn {
		case Negate:
			b.WriteByte('-')
			writeLatexOperand(b, x.arg, latexLeading(x.arg) <= PrefixBindingPower)
		case Sqrt:
			b.WriteString("\\sqrt{")
			writeLatex(b, x.arg)
			b.WriteByte('}')
		case Abs:
			b.WriteString("\\left|")
			writeLatex(b, x.arg)
			b.WriteString("\\right|")
		default:
			b.WriteString(latexFuncs[x.fn])
			writeLatexOperand(b, x.arg, true)
		}
	case *Index:
		writeLatexName(b, x.base.name)
		b.WriteString("_{")
		b.WriteString(strconv.Itoa(x.pos))
		b.WriteByte('}')
	case *Sequence:
		b.WriteString("\\left[")
		for i, el := range x.elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLatex(b, el)
		}
		b.WriteString("\\right]")
	case *Mapping:
		b.WriteString("\\left\\{")
		for i, entry := range x.Entries() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLatexName(b, entry.Key.name)
			b.WriteString(": ")
			writeLatex(b, entry.Value)
		}
		b.WriteString("\\right\\}")
	default:
		panic("unknown node type")
	}
}

func writeLatexOperand(b *strings.Builder, e Expr, parens bool) {
	if parens {
		b.WriteString("\\left(")
	}
	writeLatex(b, e)
	if parens {
		b.WriteString("\\right)")
	}
}

// Fractions are set apart typographically and never need parentheses
// as operands of other operators, except as a base of a power.
func latexLeading(e Expr) int {
	if b, ok := e.(*BinaryOp); ok && b.op == Div {
		return atomBindingPower
	}
	return leading(e)
}

func latexTrailing(e Expr) int {
	if b, ok := e.(*BinaryOp); ok && b.op == Div {
		return atomBindingPower
	}
	return trailing(e)
}

func isBinary(e Expr) bool {
	_, ok := e.(*BinaryOp)
	return ok
}

// writeLatexNumber prints exponent notation as a power of ten.
func writeLatexNumber(b *strings.Builder, v float64) {
	s := formatNumber(v)
	mant, exp, found := strings.Cut(s, "e")
	if !found {
		b.WriteString(s)
		return
	}
	n, _ := strconv.Atoi(exp)
	b.WriteString(mant)
	b.WriteString(" \\cdot 10^{")
	b.WriteString(strconv.Itoa(n))
	b.WriteByte('}')
}

// writeLatexName sets multi-letter names upright and subscripts
// the part after an underscore.
func writeLatexName(b *strings.Builder, name string) {
	base, sub, found := strings.Cut(name, "_")
	if len(base) > 1 {
		b.WriteString("\\mathrm{" + base + "}")
	} else {
		b.WriteString(base)
	}
	if found {
		b.WriteString("_{" + sub + "}")
	}
}

func writeLatexUnit(b *strings.Builder, u *Unit) {
	for i, factor := range strings.Split(u.String(), "*") {
		if i > 0 {
			b.WriteString("\\cdot")
		}
		name, exp, found := strings.Cut(factor, "^")
		if _, err := strconv.ParseFloat(name, 64); err == nil {
			b.WriteString(name)
		} else {
			b.WriteString("\\mathrm{" + name + "}")
		}
		if found {
			b.WriteString("^{" + exp + "}")
		}
	}
}
