/*
Package terex provides term expressions: immutable trees for symbolic
mathematics, together with constant folding, container arithmetic, physical
units and a canonical printer.

Trees are built from a small, closed set of node types:

	*Literal     a number, optionally carrying a unit (2, 0.5, 9.81{m*s^-2})
	*Symbol      a named variable (x)
	*BinaryOp    + - * / ^ and the equation operator =
	*UnaryOp     negation and named functions (sin, cos, tan, exp, ln, sqrt, abs)
	*Index       indexed access into a yet unbound collection variable (x[1])
	*Sequence    an ordered list of trees ([1, x])
	*Mapping     symbol keys mapped to trees ({x:1, y:2}), kept in key order

Nodes are never modified after construction. Operations which compute new trees
share unchanged subtrees with their input, thus trees may freely be handed
around between goroutines.

Constructors perform constant folding: an operation on literals collapses
to a literal, as long as the result is a finite number.

	e, err := terex.Binary(terex.Add, terex.Num(1), terex.Num(1))  // e is the literal 2

Operations on two sequences are applied elementwise, operations on two
mappings are applied per key. Mixing containers with scalars is an error
(ErrTypeMismatch).

Every tree prints to a canonical textual form, which is accepted by the
parser in package terexlang. Printing a tree and parsing the result yields a
tree structurally equal to the original.

Transformations of trees (substitution, derivation, simplification) live in
package termr. They walk trees using the Visitor interface of this package.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package terex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.terex'.
func tracer() tracing.Trace {
	return tracing.Select("symex.terex")
}
