/*
Package symex is a symbolic expression engine.

Symex parses textual mathematical expressions into immutable trees and
transforms them: substitution of symbols, differentiation and algebraic
simplification. Besides numbers (optionally carrying a physical unit) and
symbols, trees may contain sequences and mappings, with arithmetic applied
elementwise. Trees convert from and to plain Go values. Package structure
is as follows:

■ terex: Package terex implements the tree data type, together with constant
folding, container arithmetic, units and the canonical printer.

■ terex/terexlang: Package terexlang implements the parser for the textual
form of trees.

■ terex/termr: Package termr implements transformations of trees:
substitution, differentiation and rule-based simplification.

■ native: Package native converts between trees and Go values.

■ numeric: Package numeric compiles trees for repeated numeric evaluation.

■ runtime: Package runtime provides scopes of named definitions for sessions.

The base package contains the Engine, a facade over all the other packages,
which accepts text and Go values wherever a tree is expected:

	eng := symex.New()
	d, _ := eng.Derivative("2*x^2", "x")
	s, _ := eng.Simplify(d)
	fmt.Println(eng.Print(s))  // prints 4*x

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symex
