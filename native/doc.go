/*
Package native bridges between trees and plain Go values.

FromNative converts Go numbers, slices, arrays and string-keyed maps into
trees; strings are parsed as expression text. ToNative converts back as far
as possible: numbers without a unit become float64, sequences become []any
and mappings become map[string]any. Everything symbolic stays a tree.

	t, _ := native.FromNative(map[string]any{"x": 1, "y": "x+1"})
	v := native.ToNative(t)  // map[string]any{"x": 1.0, "y": <tree x+1>}

Contexts for substitution may be given as native values, too (see Context),
and may be loaded from YAML documents (see FromYAML).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package native

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.native'.
func tracer() tracing.Trace {
	return tracing.Select("symex.native")
}
