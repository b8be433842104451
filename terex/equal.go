package terex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Equal compares two trees structurally. Literals compare by value and unit,
// symbols by name. Structural equality coincides with equality of the
// canonical text.
func Equal(a, b Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch x := a.(type) {
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.value == y.value && x.unit.Equal(y.unit) &&
			(x.unit == nil) == (y.unit == nil)
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.name == y.name
	case *BinaryOp:
		y, ok := b.(*BinaryOp)
		return ok && x.op == y.op && Equal(x.left, y.left) && Equal(x.right, y.right)
	case *UnaryOp:
		y, ok := b.(*UnaryOp)
		return ok && x.fn == y.fn && Equal(x.arg, y.arg)
	case *Index:
		y, ok := b.(*Index)
		return ok && x.pos == y.pos && x.base.name == y.base.name
	case *Sequence:
		y, ok := b.(*Sequence)
		if !ok || len(x.elems) != len(y.elems) {
			return false
		}
		for i := range x.elems {
			if !Equal(x.elems[i], y.elems[i]) {
				return false
			}
		}
		return true
	case *Mapping:
		y, ok := b.(*Mapping)
		if !ok || x.Len() != y.Len() {
			return false
		}
		xe, ye := x.Entries(), y.Entries()
		for i := range xe {
			if xe[i].Key.name != ye[i].Key.name || !Equal(xe[i].Value, ye[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
