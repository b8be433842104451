package termr

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

	"github.com/npillmayer/symex/terex"
)

// Rules is the rule set of the simplifier, in order of application.
//
// Constant folding is not a rule of its own: every node rebuilt by a rule
// or by the rewriting of its children is folded on construction. There are
// no rules for polynomial or trigonometric identities.
var Rules = []RewriteRule{
	{Name: "double-negation", Pattern: isNegation, Rewrite: doubleNegation},
	{Name: "power-identities", Pattern: isOperation(terex.Pow), Rewrite: powerIdentities},
	{Name: "collect-factors", Pattern: isProduct, Rewrite: collectFactors},
	{Name: "collect-terms", Pattern: isSum, Rewrite: collectTerms},
	{Name: "cancel-quotient", Pattern: isOperation(terex.Div), Rewrite: cancelQuotient},
}

// --- Patterns --------------------------------------------------------------

func isOperation(op terex.Op) func(terex.Expr) bool {
	return func(e terex.Expr) bool {
		b, ok := e.(*terex.BinaryOp)
		return ok && b.Op() == op
	}
}

func isNegation(e terex.Expr) bool {
	u, ok := e.(*terex.UnaryOp)
	return ok && u.Func() == terex.Negate
}

// isProduct matches products and negated products.
func isProduct(e terex.Expr) bool {
	if isNegation(e) {
		e = e.(*terex.UnaryOp).Arg()
	}
	return isOperation(terex.Mul)(e)
}

func isSum(e terex.Expr) bool {
	return isOperation(terex.Add)(e) || isOperation(terex.Sub)(e)
}

// --- Rewriters -------------------------------------------------------------

// doubleNegation rewrites --x to x.
func doubleNegation(e terex.Expr) (terex.Expr, error) {
	arg := e.(*terex.UnaryOp).Arg()
	if isNegation(arg) {
		return arg.(*terex.UnaryOp).Arg(), nil
	}
	return e, nil
}

// powerIdentities rewrites x^0 to 1, x^1 to x, 1^x to 1 and (x^a)^b to
// x^(a*b) for numbers a and b.
func powerIdentities(e terex.Expr) (terex.Expr, error) {
	p := e.(*terex.BinaryOp)
	base, exp := p.Left(), p.Right()
	switch {
	case isNum(exp, 0) || isNum(base, 1):
		return terex.Num(1), nil
	case isNum(exp, 1):
		return base, nil
	}
	if inner, ok := base.(*terex.BinaryOp); ok && inner.Op() == terex.Pow {
		a, ok1 := number(inner.Right())
		b, ok2 := number(exp)
		if ok1 && ok2 {
			return terex.Binary(terex.Pow, inner.Left(), terex.Num(a*b))
		}
	}
	return e, nil
}

// collectFactors brings a product into the form c*f1^n1*f2^n2*…, with
// numeric coefficient c and factors in order of first occurence. Factors
// with equal bases are combined by adding their exponents.
func collectFactors(e terex.Expr) (terex.Expr, error) {
	p, ok := productOf(e)
	if !ok {
		return e, nil
	}
	return p.expr()
}

// collectTerms brings a sum into the form c1*t1+c2*t2+…+c, with numeric
// coefficients and terms in order of first occurence, and the constant
// last. The coefficients of equal terms are added.
func collectTerms(e terex.Expr) (terex.Expr, error) {
	s := &sum{index: make(map[string]int)}
	if !s.collect(e, 1) {
		return e, s.err
	}
	return s.expr()
}

// cancelQuotient rewrites x/1 to x, 0/x to 0 and x/x to 1. Integral
// coefficients of numerator and denominator are divided by their greatest
// common divisor, and a negative sign is moved to the numerator.
func cancelQuotient(e terex.Expr) (terex.Expr, error) {
	q := e.(*terex.BinaryOp)
	num, den := q.Left(), q.Right()
	_, literalDen := den.(*terex.Literal)
	switch {
	case isNum(den, 1):
		return num, nil
	case isNum(num, 0) && !literalDen:
		return terex.Num(0), nil
	case terex.Equal(num, den) && !literalDen:
		return terex.Num(1), nil
	}
	pn, ok1 := productOf(num)
	pd, ok2 := productOf(den)
	if !ok1 || !ok2 {
		return e, nil
	}
	cn, ok1 := integral(pn.coef)
	cd, ok2 := integral(pd.coef)
	if !ok1 || !ok2 || cd == 0 {
		return e, nil
	}
	g := gcd(cn, cd)
	if cd < 0 {
		g = -g
	}
	if g == 1 {
		return e, nil
	}
	pn.coef = terex.Num(float64(cn / g))
	pd.coef = terex.Num(float64(cd / g))
	b := &Builder{}
	n, err := pn.expr()
	if err != nil {
		return nil, err
	}
	d, err := pd.expr()
	if err != nil {
		return nil, err
	}
	r := b.Div(n, d)
	return r, b.Err()
}

// --- Products --------------------------------------------------------------

// power is a factor base^exp of a product.
type power struct {
	base terex.Expr
	exp  float64
}

// product is a product of powers with a literal coefficient.
type product struct {
	coef    *terex.Literal
	factors []power
	index   map[string]int // base text -> position in factors
}

// productOf collects the factors of a product. It fails if the
// coefficient cannot be folded.
func productOf(e terex.Expr) (*product, bool) {
	p := &product{coef: terex.Num(1), index: make(map[string]int)}
	if !p.collect(e) {
		return nil, false
	}
	return p, true
}

func (p *product) collect(e terex.Expr) bool {
	switch x := e.(type) {
	case *terex.Literal:
		return p.scale(x)
	case *terex.UnaryOp:
		if x.Func() == terex.Negate {
			return p.scale(terex.Num(-1)) && p.collect(x.Arg())
		}
	case *terex.BinaryOp:
		switch x.Op() {
		case terex.Mul:
			return p.collect(x.Left()) && p.collect(x.Right())
		case terex.Pow:
			if n, ok := number(x.Right()); ok {
				p.multiply(x.Left(), n)
				return true
			}
		}
	}
	p.multiply(e, 1)
	return true
}

func (p *product) scale(l *terex.Literal) bool {
	c, err := terex.Binary(terex.Mul, p.coef, l)
	if err != nil {
		return false
	}
	coef, ok := c.(*terex.Literal)
	if ok {
		p.coef = coef
	}
	return ok
}

func (p *product) multiply(base terex.Expr, exp float64) {
	key := base.String()
	if i, found := p.index[key]; found {
		p.factors[i].exp += exp
		return
	}
	p.index[key] = len(p.factors)
	p.factors = append(p.factors, power{base: base, exp: exp})
}

// expr builds the product. A coefficient of -1 negates the first factor.
func (p *product) expr() (terex.Expr, error) {
	if p.coef.Value() == 0 {
		return p.coef, nil
	}
	b := &Builder{}
	negate := p.coef.Is(-1)
	var acc terex.Expr
	if !p.coef.Is(1) && !negate {
		acc = p.coef
	}
	first := true
	for _, f := range p.factors {
		if f.exp == 0 {
			continue
		}
		fe := b.Pow(f.base, b.Num(f.exp))
		if first && negate {
			fe = b.Neg(fe)
		}
		first = false
		if acc == nil {
			acc = fe
		} else {
			acc = b.Mul(acc, fe)
		}
	}
	if first { // no factors left
		return p.coef, nil
	}
	return acc, b.Err()
}

// key identifies the factors of a product, ignoring the coefficient.
func (p *product) key() string {
	var sb strings.Builder
	for _, f := range p.factors {
		if f.exp == 0 {
			continue
		}
		sb.WriteString(f.base.String())
		sb.WriteByte('^')
		sb.WriteString(strconv.FormatFloat(f.exp, 'g', -1, 64))
		sb.WriteByte('|')
	}
	return sb.String()
}

// --- Sums ------------------------------------------------------------------

// sum is a sum of terms with numeric coefficients and a literal constant.
type sum struct {
	terms    []*product // each with a plain numeric coefficient
	index    map[string]int
	constant *terex.Literal
	err      error
}

func (s *sum) collect(e terex.Expr, sign float64) bool {
	switch x := e.(type) {
	case *terex.Literal:
		return s.addConstant(x, sign)
	case *terex.UnaryOp:
		if x.Func() == terex.Negate {
			return s.collect(x.Arg(), -sign)
		}
	case *terex.BinaryOp:
		switch x.Op() {
		case terex.Add:
			return s.collect(x.Left(), sign) && s.collect(x.Right(), sign)
		case terex.Sub:
			return s.collect(x.Left(), sign) && s.collect(x.Right(), -sign)
		}
	}
	p, ok := productOf(e)
	if !ok {
		return false
	}
	if p.key() == "" {
		return s.addConstant(p.coef, sign)
	}
	if !p.coef.IsNumber() { // quantities stay a factor of the term
		p.factors = append([]power{{base: p.coef, exp: 1}}, p.factors...)
		p.coef = terex.Num(1)
	}
	p.coef = terex.Num(sign * p.coef.Value())
	key := p.key()
	if i, found := s.index[key]; found {
		t := s.terms[i]
		t.coef = terex.Num(t.coef.Value() + p.coef.Value())
		return true
	}
	s.index[key] = len(s.terms)
	s.terms = append(s.terms, p)
	return true
}

func (s *sum) addConstant(l *terex.Literal, sign float64) bool {
	if sign < 0 {
		l = terex.Quantity(-l.Value(), l.Unit())
	}
	if s.constant == nil {
		s.constant = l
		return true
	}
	c, err := terex.Binary(terex.Add, s.constant, l)
	if err != nil {
		s.err = err
		return false
	}
	constant, ok := c.(*terex.Literal)
	if ok {
		s.constant = constant
	}
	return ok
}

// expr builds the sum. Terms with negative coefficients are subtracted,
// except for a leading one.
func (s *sum) expr() (terex.Expr, error) {
	b := &Builder{}
	var acc terex.Expr
	for _, t := range s.terms {
		c := t.coef.Value()
		if c == 0 {
			continue
		}
		if acc != nil && c < 0 {
			t.coef = terex.Num(-c)
		}
		term, err := t.expr()
		if err != nil {
			return nil, err
		}
		switch {
		case acc == nil:
			acc = term
		case c < 0:
			acc = b.Sub(acc, term)
		default:
			acc = b.Add(acc, term)
		}
	}
	if c := s.constant; c != nil && c.Value() != 0 {
		switch {
		case acc == nil:
			acc = c
		case c.Value() < 0:
			acc = b.Sub(acc, terex.Quantity(-c.Value(), c.Unit()))
		default:
			acc = b.Add(acc, c)
		}
	}
	if acc == nil {
		if s.constant != nil {
			return s.constant, nil
		}
		return terex.Num(0), nil
	}
	return acc, b.Err()
}

// --- Helpers ---------------------------------------------------------------

// integral returns the value of a plain integral number, if it is
// exactly representable as an integer.
func integral(l *terex.Literal) (int64, bool) {
	if !l.IsNumber() || !l.IsInteger() || math.Abs(l.Value()) > 1<<53 {
		return 0, false
	}
	return int64(l.Value()), true
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
