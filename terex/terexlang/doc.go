/*
Package terexlang provides a parser for the textual form of term expressions.

The language is the one printed by package terex:

	x*x+2                    arithmetic with + - * / ^ and prefix minus
	sin(x)^2                 named functions sin cos tan exp ln sqrt abs
	y = 2*x                  equations (not chainable)
	[1, x, x^2]              sequences
	{x:1, y:2}               mappings from symbols to expressions
	x[1]                     indexed access to a collection variable
	9.81{m*s^-2}             numbers with units

Prefix minus binds stronger than any binary operator, thus `-x^2` denotes
`(-x)^2`. Power is right-associative, all other arithmetic operators are
left-associative.

Parsing folds constants, i.e. `1+1` results in the same tree as `2`.
Malformed input results in a *ParseError, carrying the byte offset of the
offending token.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package terexlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.terexlang'
func tracer() tracing.Trace {
	return tracing.Select("symex.terexlang")
}
