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

// Op is the operator of a binary operation node.
type Op int8

// Binary operators, in order of increasing binding power. Equals is the
// equation operator; it is never folded.
const (
	Equals Op = iota
	Add
	Sub
	Mul
	Div
	Pow
)

var opSymbols = [...]string{"=", "+", "-", "*", "/", "^"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[op]
}

// OpFor returns the operator for a one-character operator symbol.
func OpFor(sym string) (Op, bool) {
	for i, s := range opSymbols {
		if s == sym {
			return Op(i), true
		}
	}
	return 0, false
}

// Binding powers shared between parser and printer.
const (
	// PrefixBindingPower is the binding power of prefix minus/plus. It binds
	// stronger than any binary operator, thus `-x^2` denotes `(-x)^2`.
	PrefixBindingPower = 50
	// IndexBindingPower is the binding power of postfix indexing `x[i]`.
	IndexBindingPower = 60
	// UnitBindingPower is the binding power of a postfix unit annotation `2{m}`.
	UnitBindingPower = 70
	// FunctionBindingPower is the binding power named functions use for
	// their operand, which will be an atom or an indexed symbol.
	FunctionBindingPower = IndexBindingPower - 1
	atomBindingPower     = 100
)

// BindingPowers returns the left binding power of an operator, together
// with the binding power its right operand is parsed with. Left-associative
// operators parse their right operand with their own binding power, the
// right-associative power operator with one less.
//
//    =      10 / 10    (non-associative)
//    + -    20 / 20
//    * /    30 / 30
//    ^      40 / 39
//
func (op Op) BindingPowers() (left, right int) {
	switch op {
	case Equals:
		return 10, 10
	case Add, Sub:
		return 20, 20
	case Mul, Div:
		return 30, 30
	case Pow:
		return 40, 39
	}
	panic("unknown operator")
}

// Associative is false for the equation operator, which may not be chained.
func (op Op) Associative() bool {
	return op != Equals
}

// --- Unary operators and functions ----------------------------------------

// Func is the operator of a unary operation node: either negation or a named
// mathematical function.
type Func int8

// Unary operators.
const (
	Negate Func = iota
	Sin
	Cos
	Tan
	Exp
	Ln
	Sqrt
	Abs
)

var funcNames = [...]string{"-", "sin", "cos", "tan", "exp", "ln", "sqrt", "abs"}

var funcImpl = [...]func(float64) float64{
	func(x float64) float64 { return -x },
	math.Sin,
	math.Cos,
	math.Tan,
	math.Exp,
	math.Log,
	math.Sqrt,
	math.Abs,
}

func (f Func) String() string {
	if f < 0 || int(f) >= len(funcNames) {
		return "?"
	}
	return funcNames[f]
}

// Apply evaluates f for a number.
func (f Func) Apply(x float64) float64 {
	return funcImpl[f](x)
}

// LookupFunc finds a named function. Negation has no name and is not found.
func LookupFunc(name string) (Func, bool) {
	for i := Sin; int(i) < len(funcNames); i++ {
		if funcNames[i] == name {
			return i, true
		}
	}
	return 0, false
}

// Functions lists all named functions.
func Functions() []Func {
	fns := make([]Func, 0, len(funcNames)-1)
	for i := Sin; int(i) < len(funcNames); i++ {
		fns = append(fns, i)
	}
	return fns
}
