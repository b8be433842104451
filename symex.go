package symex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symex/native"
	"github.com/npillmayer/symex/numeric"
	"github.com/npillmayer/symex/runtime"
	"github.com/npillmayer/symex/terex"
	"github.com/npillmayer/symex/terex/terexlang"
	"github.com/npillmayer/symex/terex/termr"
)

// tracer traces with key 'symex'.
func tracer() tracing.Trace {
	return tracing.Select("symex")
}

// Engine is a session of the expression engine. It holds named definitions
// in a stack of scopes; everything else is stateless.
//
// An Engine is not safe for concurrent use, but the trees it returns are
// immutable and may be shared freely.
type Engine struct {
	maxDepth int
	rt       *runtime.Runtime
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDepth limits the nesting depth of parsed text.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		e.maxDepth = n
	}
}

// New creates an engine with an empty global scope.
func New(opts ...Option) *Engine {
	eng := &Engine{
		maxDepth: terexlang.DefaultMaxDepth,
		rt:       runtime.NewRuntimeEnvironment(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// --- Construction ----------------------------------------------------------

// Construct creates a tree from text or a Go value, see native.FromNative.
func (eng *Engine) Construct(v any) (terex.Expr, error) {
	if s, ok := v.(string); ok {
		return eng.Parse(s)
	}
	return native.FromNative(v)
}

// Parse parses the textual form of a tree.
func (eng *Engine) Parse(input string) (terex.Expr, error) {
	return terexlang.Parse(input, terexlang.MaxDepth(eng.maxDepth))
}

// Print returns the canonical text of a tree.
func (eng *Engine) Print(t terex.Expr) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// DebugPrint returns the canonical text of a tree, quoted as Expr('…').
func (eng *Engine) DebugPrint(t terex.Expr) string {
	return terex.Repr(t)
}

// Latex renders a tree as LaTeX math.
func (eng *Engine) Latex(t terex.Expr) string {
	return terex.Latex(t)
}

// --- Transformations -------------------------------------------------------

// Sub substitutes the symbols of t bound by ctx. The context may be anything
// accepted by native.Context: a mapping, an equation x=e, their textual
// forms, a Go map or a termr.Resolver (e.g., a runtime.Scope).
func (eng *Engine) Sub(t, ctx any) (terex.Expr, error) {
	tree, err := eng.Construct(t)
	if err != nil {
		return nil, err
	}
	var c termr.Resolver
	if s, ok := ctx.(string); ok {
		var e terex.Expr
		if e, err = eng.Parse(s); err != nil {
			return nil, err
		}
		c, err = termr.ContextFrom(e)
	} else {
		c, err = native.Context(ctx)
	}
	if err != nil {
		return nil, err
	}
	return termr.Substitute(tree, c)
}

// Derivative differentiates t with respect to v, which has to be a symbol
// or an index (or the text of one). The result is not simplified.
func (eng *Engine) Derivative(t, v any) (terex.Expr, error) {
	tree, err := eng.Construct(t)
	if err != nil {
		return nil, err
	}
	variable, err := eng.Construct(v)
	if err != nil {
		return nil, err
	}
	return termr.Derivative(tree, variable)
}

// Simplify rewrites t towards a simpler form.
func (eng *Engine) Simplify(t any) (terex.Expr, error) {
	tree, err := eng.Construct(t)
	if err != nil {
		return nil, err
	}
	return termr.Simplify(tree)
}

// Apply combines two operands with a binary operator, given as one of
// "+", "-", "*", "/", "^" and "=".
func (eng *Engine) Apply(op string, l, r any) (terex.Expr, error) {
	o, ok := terex.OpFor(op)
	if !ok {
		return nil, terex.DomainError("unknown operator %q", op)
	}
	left, err := eng.Construct(l)
	if err != nil {
		return nil, err
	}
	right, err := eng.Construct(r)
	if err != nil {
		return nil, err
	}
	return terex.Binary(o, left, right)
}

// Index selects element i of a sequence. Indexing a symbol x results in
// the index node x[i].
func (eng *Engine) Index(t any, i int) (terex.Expr, error) {
	tree, err := eng.Construct(t)
	if err != nil {
		return nil, err
	}
	return terex.At(tree, i)
}

// ToNative converts a tree to a Go value as far as possible,
// see native.ToNative.
func (eng *Engine) ToNative(t terex.Expr) any {
	return native.ToNative(t)
}

// Equal compares a tree with another tree or a Go value.
func (eng *Engine) Equal(t terex.Expr, v any) bool {
	return native.Equal(t, v)
}

// --- Definitions -----------------------------------------------------------

// Define binds a name to a tree in the current scope.
func (eng *Engine) Define(name string, v any) error {
	sym, err := eng.Parse(name)
	if err != nil {
		return err
	}
	if _, ok := sym.(*terex.Symbol); !ok {
		return terex.DomainError("cannot define %s, not a symbol", name)
	}
	tree, err := eng.Construct(v)
	if err != nil {
		return err
	}
	eng.rt.ScopeTree.Current().Define(name, tree)
	return nil
}

// Definitions returns the definitions visible from the current scope.
func (eng *Engine) Definitions() []*runtime.Tag {
	return eng.rt.ScopeTree.Current().Visible()
}

// PushScope opens a new scope. Definitions made afterwards shadow
// definitions of outer scopes, until the scope is popped.
func (eng *Engine) PushScope(name string) {
	eng.rt.ScopeTree.PushNewScope(name)
}

// PopScope drops the current scope and all of its definitions.
// The global scope cannot be popped.
func (eng *Engine) PopScope() error {
	sc, err := eng.rt.ScopeTree.PopScope()
	if err != nil {
		return err
	}
	tracer().Infof("dropped %d definitions of scope %s", sc.Tags().Size(), sc.Name)
	return nil
}

// Resolve substitutes every defined symbol of t, repeatedly, until no
// more definitions apply. Definitions referring to themselves, directly or
// indirectly, are an error.
func (eng *Engine) Resolve(t any) (terex.Expr, error) {
	tree, err := eng.Construct(t)
	if err != nil {
		return nil, err
	}
	scope := eng.rt.ScopeTree.Current()
	limit := len(scope.Visible()) + 1
	for i := 0; i <= limit; i++ {
		r, err := termr.Substitute(tree, scope)
		if err != nil {
			return nil, err
		}
		if terex.Equal(r, tree) {
			return r, nil
		}
		tree = r
	}
	return nil, terex.DomainError("definitions are circular for %s", t)
}

// Evaluate resolves definitions within t and evaluates the result
// numerically, binding the remaining variables from env.
func (eng *Engine) Evaluate(t any, env map[string]any) (any, error) {
	tree, err := eng.Resolve(t)
	if err != nil {
		return nil, err
	}
	prog, err := numeric.Compile(tree)
	if err != nil {
		return nil, err
	}
	return prog.Eval(env)
}
