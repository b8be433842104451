/*
Package numeric evaluates trees numerically.

A tree is compiled once into a program of the expr-lang expression language
and may then be evaluated repeatedly for different values of its variables:

	prog, err := numeric.Compile(terexlang.MustParse("sin(x)^2 + y"))
	v, err := prog.Eval(map[string]any{"x": 0.5, "y": 1})  // v is a float64

Sequences compile to arrays and evaluate to []any. Mappings, equations and
quantities carrying a unit cannot be evaluated.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package numeric

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.numeric'.
func tracer() tracing.Trace {
	return tracing.Select("symex.numeric")
}
