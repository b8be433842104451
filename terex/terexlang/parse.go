package terexlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/symex/scanner"
	"github.com/npillmayer/symex/terex"
)

// DefaultMaxDepth is the default limit for the nesting depth of expressions.
const DefaultMaxDepth = 256

// ParseError is the error type for malformed input.
type ParseError struct {
	Msg    string // what went wrong
	Offset int    // byte offset of the offending token
	Input  string // the complete input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

// Context returns the input line with a caret pointing to the error position.
func (e *ParseError) Context() string {
	line := strings.ReplaceAll(e.Input, "\n", " ")
	return line + "\n" + strings.Repeat(" ", e.Offset) + "^"
}

// Option configures a parser.
type Option func(p *parser)

// MaxDepth limits the nesting depth of parsed expressions. Input nested
// deeper results in a ParseError.
func MaxDepth(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parse parses the textual form of an expression into a tree.
//
// Syntax errors are returned as *ParseError. Errors of constant folding,
// like adding meters to seconds, are returned as they are.
func Parse(input string, opts ...Option) (terex.Expr, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	if p.scan, err = lex.Scanner(input); err != nil {
		return nil, err
	}
	p.scan.SetErrorHandler(func(e error) {
		tracer().Debugf("scanner: %v", e)
	})
	p.advance()
	e, err := p.expression(0)
	if err != nil {
		tracer().Debugf("parsing %q failed: %v", input, err)
		return nil, err
	}
	if p.tok.TokType() != scanner.EOF {
		return nil, p.errorAt(p.tok, "unexpected %s, parsing terminated early", describe(p.tok))
	}
	return e, nil
}

// MustParse is like Parse, but panics if the input cannot be parsed.
// Intended for expressions known to be valid, e.g., in variable
// initializations.
func MustParse(input string) terex.Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

// parser is a Pratt parser (top down operator precedence parser). Binding
// powers are shared with the printer of package terex.
type parser struct {
	input    string
	scan     scanner.Tokenizer
	tok      scanner.Token // lookahead
	depth    int
	maxDepth int
}

func (p *parser) advance() {
	p.tok = p.scan.NextToken()
}

func (p *parser) expect(lit rune) error {
	if p.tok.TokType() != scanner.TokType(lit) {
		return p.errorAt(p.tok, "expected '%c', have %s", lit, describe(p.tok))
	}
	p.advance()
	return nil
}

func (p *parser) expression(rbp int) (terex.Expr, error) {
	if p.depth++; p.depth > p.maxDepth {
		return nil, p.errorAt(p.tok, "expression nested too deeply")
	}
	defer func() { p.depth-- }()
	tok := p.tok
	p.advance()
	left, err := p.nud(tok)
	if err != nil {
		return nil, err
	}
	for rbp < leftBindingPower(p.tok) {
		tok = p.tok
		p.advance()
		if left, err = p.led(tok, left); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func leftBindingPower(tok scanner.Token) int {
	switch tok.TokType() {
	case '=', '+', '-', '*', '/', '^':
		op, _ := terex.OpFor(tok.Lexeme())
		lbp, _ := op.BindingPowers()
		return lbp
	case '[':
		return terex.IndexBindingPower
	case '{':
		return terex.UnitBindingPower
	}
	return 0
}

// nud handles a token at the start of an expression.
func (p *parser) nud(tok scanner.Token) (terex.Expr, error) {
	switch tok.TokType() {
	case scanner.Float:
		v, err := strconv.ParseFloat(tok.Lexeme(), 64)
		if err != nil || math.IsInf(v, 0) {
			return nil, p.errorAt(tok, "number %s out of range", tok.Lexeme())
		}
		return terex.Num(v), nil
	case scanner.Ident:
		if fn, ok := terex.LookupFunc(tok.Lexeme()); ok {
			arg, err := p.expression(terex.FunctionBindingPower)
			if err != nil {
				return nil, err
			}
			return terex.Unary(fn, arg)
		}
		return terex.Sym(tok.Lexeme()), nil
	case '-':
		arg, err := p.expression(terex.PrefixBindingPower)
		if err != nil {
			return nil, err
		}
		return terex.Neg(arg)
	case '+':
		return p.expression(terex.PrefixBindingPower)
	case '(':
		e, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		if p.tok.TokType() != ')' {
			return nil, p.errorAt(p.tok, "unbalanced parenthesis opened at %d, have %s",
				tok.Span().From(), describe(p.tok))
		}
		p.advance()
		return e, nil
	case '[':
		return p.sequence(tok)
	case '{':
		return p.mapping(tok)
	}
	return nil, p.errorAt(tok, "unexpected %s", describe(tok))
}

// led handles a token following an expression.
func (p *parser) led(tok scanner.Token, left terex.Expr) (terex.Expr, error) {
	switch tok.TokType() {
	case '[':
		return p.index(tok, left)
	case '{':
		return p.unit(tok, left)
	}
	op, _ := terex.OpFor(tok.Lexeme())
	_, rbp := op.BindingPowers()
	right, err := p.expression(rbp)
	if err != nil {
		return nil, err
	}
	if !op.Associative() && p.tok.TokType() == tok.TokType() {
		return nil, p.errorAt(p.tok, "operator %s may not be chained", op)
	}
	tracer().Debugf("%s %s %s", left, op, right)
	return terex.Binary(op, left, right)
}

// --- Compound atoms --------------------------------------------------------

func (p *parser) sequence(open scanner.Token) (terex.Expr, error) {
	var elems []terex.Expr
	if p.tok.TokType() == ']' {
		p.advance()
		return terex.Seq(), nil
	}
	for {
		el, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		switch p.tok.TokType() {
		case ',':
			p.advance()
			continue
		case ']':
			p.advance()
			return terex.Seq(elems...), nil
		}
		return nil, p.errorAt(p.tok, "unbalanced bracket opened at %d, have %s",
			open.Span().From(), describe(p.tok))
	}
}

func (p *parser) mapping(open scanner.Token) (terex.Expr, error) {
	var entries []terex.Entry
	if p.tok.TokType() == '}' {
		p.advance()
		return terex.MapOf()
	}
	seen := make(map[string]bool)
	for {
		keytok := p.tok
		key, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		sym, ok := key.(*terex.Symbol)
		if !ok {
			return nil, p.errorAt(keytok, "mapping key %s is not a symbol", key)
		}
		if seen[sym.Name()] {
			return nil, p.errorAt(keytok, "duplicate key %s", sym.Name())
		}
		seen[sym.Name()] = true
		if err = p.expect(':'); err != nil {
			return nil, err
		}
		value, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		entries = append(entries, terex.Entry{Key: sym, Value: value})
		switch p.tok.TokType() {
		case ',':
			p.advance()
			continue
		case '}':
			p.advance()
			return terex.MapOf(entries...)
		}
		return nil, p.errorAt(p.tok, "unbalanced brace opened at %d, have %s",
			open.Span().From(), describe(p.tok))
	}
}

func (p *parser) index(open scanner.Token, left terex.Expr) (terex.Expr, error) {
	postok := p.tok
	if postok.TokType() != scanner.Float {
		return nil, p.errorAt(postok, "index must be an integer, have %s", describe(postok))
	}
	pos, err := strconv.Atoi(postok.Lexeme())
	if err != nil {
		return nil, p.errorAt(postok, "index must be an integer, have %s", describe(postok))
	}
	p.advance()
	if err = p.expect(']'); err != nil {
		return nil, err
	}
	switch left.(type) {
	case *terex.Symbol, *terex.Sequence:
		return terex.At(left, pos)
	}
	return nil, p.errorAt(open, "cannot index %s", left)
}

// --- Units -----------------------------------------------------------------

// unit parses a unit annotation following a number:
//
//    unit  ::=  term { ('*'|'/') term }
//    term  ::=  atom [ '^' ['-'] integer ]
//    atom  ::=  name | number | '(' unit ')'
//
func (p *parser) unit(open scanner.Token, left terex.Expr) (terex.Expr, error) {
	lit, ok := left.(*terex.Literal)
	if !ok || !lit.IsNumber() {
		return nil, p.errorAt(open, "unit annotation requires a plain number, have %s", left)
	}
	u, err := p.unitProduct()
	if err != nil {
		return nil, err
	}
	if p.tok.TokType() != '}' {
		return nil, p.errorAt(p.tok, "unbalanced brace opened at %d, have %s",
			open.Span().From(), describe(p.tok))
	}
	p.advance()
	return terex.Quantity(lit.Value(), u), nil
}

func (p *parser) unitProduct() (*terex.Unit, error) {
	u, err := p.unitTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.TokType() == '*' || p.tok.TokType() == '/' {
		optok := p.tok
		p.advance()
		v, err := p.unitTerm()
		if err != nil {
			return nil, err
		}
		if optok.TokType() == '/' {
			u, err = u.Div(v)
		} else {
			u, err = u.Mul(v)
		}
		if err != nil {
			return nil, p.errorAt(optok, "%v", err)
		}
	}
	return u, nil
}

func (p *parser) unitTerm() (*terex.Unit, error) {
	u, err := p.unitAtom()
	if err != nil || p.tok.TokType() != '^' {
		return u, err
	}
	p.advance()
	sign := 1
	if p.tok.TokType() == '-' {
		sign = -1
		p.advance()
	}
	exptok := p.tok
	n, err := strconv.Atoi(exptok.Lexeme())
	if err != nil || exptok.TokType() != scanner.Float {
		return nil, p.errorAt(exptok, "unit exponent must be an integer, have %s", describe(exptok))
	}
	p.advance()
	if u, err = u.Pow(sign * n); err != nil {
		return nil, p.errorAt(exptok, "%v", err)
	}
	return u, nil
}

func (p *parser) unitAtom() (*terex.Unit, error) {
	tok := p.tok
	switch tok.TokType() {
	case scanner.Ident:
		p.advance()
		u, ok := terex.LookupUnit(tok.Lexeme())
		if !ok {
			return nil, p.errorAt(tok, "unknown unit %s", tok.Lexeme())
		}
		return u, nil
	case scanner.Float:
		p.advance()
		f, err := strconv.ParseFloat(tok.Lexeme(), 64)
		if err != nil || f == 0 || math.IsInf(f, 0) {
			return nil, p.errorAt(tok, "invalid unit factor %s", tok.Lexeme())
		}
		return terex.ScaleUnit(f), nil
	case '(':
		if p.depth++; p.depth > p.maxDepth {
			return nil, p.errorAt(tok, "unit nested too deeply")
		}
		defer func() { p.depth-- }()
		p.advance()
		u, err := p.unitProduct()
		if err != nil {
			return nil, err
		}
		if err = p.expect(')'); err != nil {
			return nil, err
		}
		return u, nil
	}
	return nil, p.errorAt(tok, "unexpected %s in unit", describe(tok))
}

// --- Errors ----------------------------------------------------------------

func (p *parser) errorAt(tok scanner.Token, format string, args ...interface{}) error {
	return &ParseError{
		Msg:    fmt.Sprintf(format, args...),
		Offset: int(tok.Span().From()),
		Input:  p.input,
	}
}

func describe(tok scanner.Token) string {
	switch tok.TokType() {
	case scanner.EOF:
		return "end of input"
	case scanner.Error:
		return fmt.Sprintf("unknown token %q", tok.Lexeme())
	}
	return fmt.Sprintf("%q", tok.Lexeme())
}
