package native

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/npillmayer/symex/terex"
)

// FromYAML decodes a YAML document and converts it to a tree.
// Strings within the document are parsed as expression text, thus
//
//	x: 2
//	y: x^2 + 1
//
// results in the mapping {x:2, y:x^2+1}.
func FromYAML(data []byte) (terex.Expr, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cannot decode YAML: %w", err)
	}
	tracer().Debugf("decoded YAML document of type %T", v)
	return FromNative(v)
}
