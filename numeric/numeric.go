package numeric

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

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/npillmayer/symex/native"
	"github.com/npillmayer/symex/terex"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Program is a compiled tree, ready for evaluation.
type Program struct {
	source string
	vars   []string
	prog   *vm.Program
}

// Compile translates a tree into a program. Variables of the tree are
// bound at evaluation time.
func Compile(t terex.Expr) (*Program, error) {
	if t == nil {
		return nil, terex.DomainError("cannot compile nil")
	}
	if err := terex.CheckHeight(t); err != nil {
		return nil, err
	}
	c := &compiler{vars: make(map[string]bool)}
	src, err := terex.Visit[string](t, c)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("compiled %s ⇒ %s", t, src)
	prog, err := expr.Compile(src, functions()...)
	if err != nil {
		return nil, fmt.Errorf("cannot compile %s: %w", t, err)
	}
	vars := maps.Keys(c.vars)
	slices.Sort(vars)
	return &Program{source: src, vars: vars, prog: prog}, nil
}

// Source returns the program text in expr-lang syntax.
func (p *Program) Source() string {
	return p.source
}

// Vars returns the names of the variables of a program, sorted.
func (p *Program) Vars() []string {
	return slices.Clone(p.vars)
}

// Eval runs a program. env has to bind every variable of the program to
// a number, or, for indexed variables, to a sequence of numbers. Values
// are converted with native.FromNative, thus expression text like "1/2"
// is accepted as well.
//
// The result is a float64 or, for sequences, an []any.
func (p *Program) Eval(env map[string]any) (any, error) {
	vals := make(map[string]any, len(p.vars))
	for _, name := range p.vars {
		v, ok := env[name]
		if !ok {
			return nil, terex.DomainError("variable %s is unbound", name)
		}
		n, err := numericValue(name, v)
		if err != nil {
			return nil, err
		}
		vals[varPrefix+name] = n
	}
	out, err := expr.Run(p.prog, vals)
	if err != nil {
		return nil, fmt.Errorf("evaluation of %s failed: %w", p.source, err)
	}
	return result(out)
}

func numericValue(name string, v any) (any, error) {
	if f, ok := native.Float(v); ok {
		return f, nil
	}
	t, err := native.FromNative(v)
	if err != nil {
		return nil, err
	}
	n := native.ToNative(t)
	if !isNumeric(n) {
		return nil, terex.DomainError("value %s of variable %s is not numeric", t, name)
	}
	return n, nil
}

func isNumeric(v any) bool {
	switch x := v.(type) {
	case float64:
		return true
	case []any:
		for _, el := range x {
			if !isNumeric(el) {
				return false
			}
		}
		return true
	}
	return false
}

func result(v any) (any, error) {
	if f, ok := native.Float(v); ok {
		return f, nil
	}
	if s, ok := v.([]any); ok {
		r := make([]any, len(s))
		for i, el := range s {
			x, err := result(el)
			if err != nil {
				return nil, err
			}
			r[i] = x
		}
		return r, nil
	}
	return nil, terex.TypeMismatchError("evaluation resulted in %v of type %T", v, v)
}

// --- Functions -------------------------------------------------------------

const (
	varPrefix  = "v_"
	funcPrefix = "fn_"
)

// functions registers the named functions of package terex with expr-lang.
func functions() []expr.Option {
	var opts []expr.Option
	for _, fn := range terex.Functions() {
		opts = append(opts, expr.Function(funcPrefix+fn.String(),
			func(params ...any) (any, error) {
				if len(params) != 1 {
					return nil, fmt.Errorf("%s takes 1 argument, got %d", fn, len(params))
				}
				x, ok := native.Float(params[0])
				if !ok {
					return nil, terex.TypeMismatchError("%s of non-number %v", fn, params[0])
				}
				return fn.Apply(x), nil
			}))
	}
	return opts
}

// --- Compiler --------------------------------------------------------------

// compiler emits fully parenthesized expr-lang source. Variables and
// functions are prefixed to keep them apart from expr-lang builtins.
type compiler struct {
	vars map[string]bool
}

var _ terex.Visitor[string] = (*compiler)(nil)

var exprOps = map[terex.Op]string{
	terex.Add: "+",
	terex.Sub: "-",
	terex.Mul: "*",
	terex.Div: "/",
	terex.Pow: "**",
}

func (c *compiler) VisitLiteral(l *terex.Literal) (string, error) {
	if !l.IsNumber() {
		return "", terex.DomainError("cannot evaluate quantity %s", l)
	}
	v := l.Value()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", terex.DomainError("cannot evaluate non-finite number")
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	if v < 0 {
		return "(" + s + ")", nil
	}
	return s, nil
}

func (c *compiler) VisitSymbol(sym *terex.Symbol) (string, error) {
	c.vars[sym.Name()] = true
	return varPrefix + sym.Name(), nil
}

func (c *compiler) VisitBinary(b *terex.BinaryOp) (string, error) {
	op, ok := exprOps[b.Op()]
	if !ok {
		return "", terex.DomainError("cannot evaluate equation %s", b)
	}
	l, err := terex.Visit[string](b.Left(), c)
	if err != nil {
		return "", err
	}
	r, err := terex.Visit[string](b.Right(), c)
	if err != nil {
		return "", err
	}
	return "(" + l + " " + op + " " + r + ")", nil
}

func (c *compiler) VisitUnary(u *terex.UnaryOp) (string, error) {
	arg, err := terex.Visit[string](u.Arg(), c)
	if err != nil {
		return "", err
	}
	if u.Func() == terex.Negate {
		return "(-" + arg + ")", nil
	}
	return funcPrefix + u.Func().String() + "(" + arg + ")", nil
}

func (c *compiler) VisitIndex(x *terex.Index) (string, error) {
	c.vars[x.Base().Name()] = true
	return fmt.Sprintf("%s%s[%d]", varPrefix, x.Base().Name(), x.Pos()), nil
}

func (c *compiler) VisitSequence(s *terex.Sequence) (string, error) {
	elems := make([]string, s.Len())
	for i, el := range s.Elements() {
		e, err := terex.Visit[string](el, c)
		if err != nil {
			return "", err
		}
		elems[i] = e
	}
	return "[" + strings.Join(elems, ", ") + "]", nil
}

func (c *compiler) VisitMapping(m *terex.Mapping) (string, error) {
	return "", terex.DomainError("cannot evaluate mapping %s", m)
}
