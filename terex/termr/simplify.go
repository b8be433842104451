package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/symex/terex"
)

// maxPasses limits the number of rewriting passes of Simplify.
const maxPasses = 64

// Simplify rewrites a tree with the rules in Rules, until a pass over the
// tree does not change it any more. Simplification distributes over
// sequences and the values of mappings.
//
// Simplification is far from complete: it folds constants, collects like
// terms and factors, and cancels the neutral elements of operations. It is
// idempotent.
func Simplify(t terex.Expr) (terex.Expr, error) {
	if t == nil {
		return nil, terex.DomainError("cannot simplify nil")
	}
	for pass := 1; pass <= maxPasses; pass++ {
		s, err := Rewrite(t, Rules)
		if err != nil {
			return nil, err
		}
		if terex.Equal(s, t) {
			tracer().Debugf("simplified after %d passes: %s", pass, t)
			return t, nil
		}
		t = s
	}
	tracer().Infof("simplification did not settle after %d passes: %s", maxPasses, t)
	return t, nil
}
