/*
Package termr implements term rewriting for trees of package terex:
substitution of symbols, symbolic derivation and rule based simplification.

All transformations are pure functions from trees to trees. They never
modify their input, and they share every subtree which is left unchanged.
A transformation which changes nothing returns its input.

Substitution replaces symbols by trees bound in a Resolver:

	ctx, _ := termr.ContextFrom(terexlang.MustParse("{x:2}"))
	t, err := termr.Substitute(e, ctx)

Derivation builds the derivative of a tree, without reducing the result
beyond constant folding. Simplification rewrites a tree with the rules
listed in Rules until none of them applies any more.

	d, err := termr.Derivative(e, terex.Sym("x"))
	s, err := termr.Simplify(d)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.termr'.
func tracer() tracing.Trace {
	return tracing.Select("symex.termr")
}
