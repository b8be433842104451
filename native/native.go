package native

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"reflect"

	"github.com/npillmayer/symex/terex"
	"github.com/npillmayer/symex/terex/terexlang"
	"github.com/npillmayer/symex/terex/termr"
	"golang.org/x/exp/constraints"
)

// Number creates a literal from any Go number.
func Number[T constraints.Integer | constraints.Float](v T) *terex.Literal {
	return terex.Num(float64(v))
}

// Float converts a Go number of any kind (including named number types)
// to float64. It returns false for non-numbers.
func Float(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// FromNative converts a Go value to a tree.
//
//	terex.Expr        the tree itself
//	string            parsed as expression text
//	int…, uint…, float…  a literal; NaN and infinities are domain errors
//	slice, array      a sequence of the converted elements
//	map[string]…      a mapping; keys have to be valid symbol names
//
// Anything else results in an error wrapping terex.ErrTypeMismatch.
// Syntax errors of strings are returned as *terexlang.ParseError.
func FromNative(v any) (terex.Expr, error) {
	switch x := v.(type) {
	case nil:
		return nil, terex.TypeMismatchError("cannot convert nil to a tree")
	case terex.Expr:
		return x, nil
	case string:
		return terexlang.Parse(x)
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	case []any:
		elems := make([]terex.Expr, len(x))
		for i, el := range x {
			e, err := FromNative(el)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return terex.Seq(elems...), nil
	case map[string]any:
		entries := make([]terex.Entry, 0, len(x))
		for k, el := range x {
			en, err := entry(k, el)
			if err != nil {
				return nil, err
			}
			entries = append(entries, en)
		}
		return terex.MapOf(entries...)
	}
	return fromValue(reflect.ValueOf(v))
}

// fromValue converts values of types not covered by FromNative's type switch.
func fromValue(rv reflect.Value) (terex.Expr, error) {
	if f, ok := Float(rv.Interface()); ok {
		return finite(f)
	}
	switch rv.Kind() {
	case reflect.String:
		return terexlang.Parse(rv.String())
	case reflect.Slice, reflect.Array:
		elems := make([]terex.Expr, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			e, err := FromNative(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return terex.Seq(elems...), nil
	case reflect.Map:
		entries := make([]terex.Entry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k := it.Key()
			if k.Kind() == reflect.Interface {
				k = k.Elem()
			}
			if k.Kind() != reflect.String {
				return nil, terex.TypeMismatchError("map key %v is not a string", it.Key())
			}
			en, err := entry(k.String(), it.Value().Interface())
			if err != nil {
				return nil, err
			}
			entries = append(entries, en)
		}
		return terex.MapOf(entries...)
	}
	return nil, terex.TypeMismatchError("cannot convert value of type %T to a tree", rv.Interface())
}

// finite creates a literal. NaN and infinities have no textual form and
// are domain errors.
func finite(f float64) (terex.Expr, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, terex.DomainError("cannot convert non-finite number %v to a tree", f)
	}
	return terex.Num(f), nil
}

func entry(key string, v any) (terex.Entry, error) {
	k, err := terexlang.Parse(key)
	sym, ok := k.(*terex.Symbol)
	if err != nil || !ok {
		return terex.Entry{}, terex.DomainError("map key %q is not a symbol", key)
	}
	e, err := FromNative(v)
	if err != nil {
		return terex.Entry{}, err
	}
	return terex.Entry{Key: sym, Value: e}, nil
}

// ToNative converts a tree to a Go value as far as possible.
// Numbers without a unit become float64, sequences []any and mappings
// map[string]any, with their elements converted recursively. Every other
// tree, including quantities with a unit, is returned unchanged.
func ToNative(t terex.Expr) any {
	switch x := t.(type) {
	case *terex.Literal:
		if x.IsNumber() {
			return x.Value()
		}
	case *terex.Sequence:
		s := make([]any, x.Len())
		for i, el := range x.Elements() {
			s[i] = ToNative(el)
		}
		return s
	case *terex.Mapping:
		m := make(map[string]any, x.Len())
		for _, e := range x.Entries() {
			m[e.Key.Name()] = ToNative(e.Value)
		}
		return m
	}
	return t
}

// Equal compares a tree with a Go value. It is true if v converts to a
// tree structurally equal to t.
func Equal(t terex.Expr, v any) bool {
	e, err := FromNative(v)
	if err != nil {
		tracer().Debugf("cannot compare with %v: %v", v, err)
		return false
	}
	return terex.Equal(t, e)
}

// Context creates a substitution context from a value:
//
//	nil               an empty context
//	termr.Resolver    the resolver itself
//	terex.Expr        a mapping or an equation x=e, see termr.ContextFrom
//	anything else     converted by FromNative, then as above
func Context(v any) (termr.Resolver, error) {
	switch c := v.(type) {
	case nil:
		return termr.Bindings{}, nil
	case termr.Resolver:
		return c, nil
	case terex.Expr:
		return termr.ContextFrom(c)
	}
	ctx, err := FromNative(v)
	if err != nil {
		return nil, err
	}
	return termr.ContextFrom(ctx)
}
