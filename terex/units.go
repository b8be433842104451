package terex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"math"
	"strings"
)

// Dimension is one of the seven SI base dimensions.
type Dimension int

// SI base dimensions, in the order they are printed.
const (
	Mass Dimension = iota
	Length
	Time
	Current
	Temperature
	Amount
	Luminosity
	dimensions
)

var baseUnitNames = [dimensions]string{"kg", "m", "s", "A", "K", "mol", "cd"}

// Unit is a physical unit: a vector of exponents for the SI base dimensions
// plus a scale factor relative to the SI base units. Kilometers, for example,
// have a length exponent of 1 and a scale of 1000.
//
// Units are values and never change after creation. A nil *Unit denotes a
// dimensionless number; all methods accept nil receivers.
type Unit struct {
	dims  [dimensions]int8
	scale float64
}

// BaseUnit returns the SI base unit for a dimension.
func BaseUnit(d Dimension) *Unit {
	u := &Unit{scale: 1}
	u.dims[d] = 1
	return u
}

// ScaleUnit returns a dimensionless unit with a scale factor, e.g. a
// factor of 1000 inside a unit expression like `{1000*m}`.
func ScaleUnit(f float64) *Unit {
	return &Unit{scale: f}
}

func (u *Unit) get() Unit {
	if u == nil {
		return Unit{scale: 1}
	}
	return *u
}

// Exponent returns the exponent of a base dimension.
func (u *Unit) Exponent(d Dimension) int {
	return int(u.get().dims[d])
}

// Scale returns the factor by which a quantity in unit u has to be
// multiplied to be expressed in SI base units.
func (u *Unit) Scale() float64 {
	return u.get().scale
}

// Dimensionless is true if all dimension exponents are zero.
func (u *Unit) Dimensionless() bool {
	return u.get().dims == [dimensions]int8{}
}

// SameDimension checks if quantities in u and v may be added.
func (u *Unit) SameDimension(v *Unit) bool {
	return u.get().dims == v.get().dims
}

// Equal compares dimensions and scale.
func (u *Unit) Equal(v *Unit) bool {
	a, b := u.get(), v.get()
	return a.dims == b.dims && a.scale == b.scale
}

// MaxExponent bounds the exponents of base dimensions within a unit.
const MaxExponent = math.MaxInt8

// Mul returns the product unit u·v. Exponents beyond MaxExponent and
// scales which are not finite numbers are domain errors.
func (u *Unit) Mul(v *Unit) (*Unit, error) {
	a, b := u.get(), v.get()
	w := &Unit{scale: a.scale * b.scale}
	for i := range w.dims {
		e := int(a.dims[i]) + int(b.dims[i])
		if e > MaxExponent || e < -MaxExponent {
			return nil, DomainError("exponent of %s out of range in %s*%s", baseUnitNames[i], u, v)
		}
		w.dims[i] = int8(e)
	}
	return w.checked()
}

// Div returns the quotient unit u/v.
func (u *Unit) Div(v *Unit) (*Unit, error) {
	inv, err := v.Pow(-1)
	if err != nil {
		return nil, err
	}
	return u.Mul(inv)
}

// Pow returns the unit u^n.
func (u *Unit) Pow(n int) (*Unit, error) {
	if n > MaxExponent || n < -MaxExponent {
		return nil, DomainError("unit exponent %d out of range", n)
	}
	a := u.get()
	w := &Unit{scale: math.Pow(a.scale, float64(n))}
	for i := range w.dims {
		e := int(a.dims[i]) * n
		if e > MaxExponent || e < -MaxExponent {
			return nil, DomainError("exponent of %s out of range in (%s)^%d", baseUnitNames[i], u, n)
		}
		w.dims[i] = int8(e)
	}
	return w.checked()
}

func (u *Unit) checked() (*Unit, error) {
	if u.scale == 0 || math.IsInf(u.scale, 0) || math.IsNaN(u.scale) {
		return nil, DomainError("unit scale out of range")
	}
	return u, nil
}

// String returns the canonical text of a unit, as used within braces after
// a numeric literal. Units matching an entry of the unit table print with
// its name, others print as a product of powers of base units.
func (u *Unit) String() string {
	for _, entry := range unitTable {
		if entry.unit.Equal(u) {
			return entry.name
		}
	}
	a := u.get()
	var factors []string
	if a.scale != 1 {
		factors = append(factors, formatNumber(a.scale))
	}
	for d, e := range a.dims {
		switch {
		case e == 0:
			continue
		case e == 1:
			factors = append(factors, baseUnitNames[d])
		default:
			factors = append(factors, fmt.Sprintf("%s^%d", baseUnitNames[d], e))
		}
	}
	if len(factors) == 0 {
		return "1"
	}
	return strings.Join(factors, "*")
}

// --- Unit table ------------------------------------------------------------

type namedUnit struct {
	name string
	unit *Unit
}

func unitOf(scale float64, kg, m, s, a int8) *Unit {
	return &Unit{dims: [dimensions]int8{kg, m, s, a}, scale: scale}
}

// unitTable lists the unit names known to the parser. The first entry
// matching a unit is used for printing it.
var unitTable = []namedUnit{
	{"kg", BaseUnit(Mass)},
	{"m", BaseUnit(Length)},
	{"s", BaseUnit(Time)},
	{"A", BaseUnit(Current)},
	{"K", BaseUnit(Temperature)},
	{"mol", BaseUnit(Amount)},
	{"cd", BaseUnit(Luminosity)},
	{"g", unitOf(1e-3, 1, 0, 0, 0)},
	{"km", unitOf(1e3, 0, 1, 0, 0)},
	{"cm", unitOf(1e-2, 0, 1, 0, 0)},
	{"mm", unitOf(1e-3, 0, 1, 0, 0)},
	{"min", unitOf(60, 0, 0, 1, 0)},
	{"h", unitOf(3600, 0, 0, 1, 0)},
	{"Hz", unitOf(1, 0, 0, -1, 0)},
	{"N", unitOf(1, 1, 1, -2, 0)},
	{"Pa", unitOf(1, 1, -1, -2, 0)},
	{"J", unitOf(1, 1, 2, -2, 0)},
	{"W", unitOf(1, 1, 2, -3, 0)},
	{"C", unitOf(1, 0, 0, 1, 1)},
	{"V", unitOf(1, 1, 2, -3, -1)},
}

// LookupUnit finds a unit by name.
func LookupUnit(name string) (*Unit, bool) {
	for _, entry := range unitTable {
		if entry.name == name {
			return entry.unit, true
		}
	}
	return nil, false
}
