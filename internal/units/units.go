// Package units provides the unit representation and conversion facility
// used when translating configured quantities into a model's base unit
// system. Units carry a dimension vector and a linear scale factor relative
// to SI; thermometric scales additionally carry an affine offset.
package units

import (
	"fmt"
)

// Dimension is the exponent vector of a unit over the base quantities the
// property framework works in.
type Dimension struct {
	Mass        int8
	Length      int8
	Time        int8
	Temperature int8
	Amount      int8
}

// dimensionless is the zero Dimension.
var dimensionless = Dimension{}

// String renders the dimension in a compact mass/length/time/temp/amount form.
func (d Dimension) String() string {
	return fmt.Sprintf("[M%d L%d T%d Θ%d N%d]", d.Mass, d.Length, d.Time, d.Temperature, d.Amount)
}

// mul adds the exponents of two dimensions.
func (d Dimension) mul(o Dimension) Dimension {
	return Dimension{
		Mass:        d.Mass + o.Mass,
		Length:      d.Length + o.Length,
		Time:        d.Time + o.Time,
		Temperature: d.Temperature + o.Temperature,
		Amount:      d.Amount + o.Amount,
	}
}

// div subtracts the exponents of two dimensions.
func (d Dimension) div(o Dimension) Dimension {
	return Dimension{
		Mass:        d.Mass - o.Mass,
		Length:      d.Length - o.Length,
		Time:        d.Time - o.Time,
		Temperature: d.Temperature - o.Temperature,
		Amount:      d.Amount - o.Amount,
	}
}

// pow multiplies all exponents by n.
func (d Dimension) pow(n int8) Dimension {
	return Dimension{
		Mass:        d.Mass * n,
		Length:      d.Length * n,
		Time:        d.Time * n,
		Temperature: d.Temperature * n,
		Amount:      d.Amount * n,
	}
}

// Unit is a named measurement unit. The factor converts a value in this unit
// into the coherent SI value for its dimension; offset is non-zero only for
// standalone thermometric scales (degC, degF), which convert affinely.
type Unit struct {
	name   string
	dim    Dimension
	factor float64
	offset float64
}

// None is the "no units" sentinel. A configured quantity tagged with None is
// taken verbatim, with no conversion.
var None = Unit{}

// IsNone reports whether u is the "no units" sentinel.
func (u Unit) IsNone() bool {
	return u == None
}

// Name returns the symbol the unit was registered or parsed under.
func (u Unit) Name() string {
	if u.IsNone() {
		return "none"
	}
	return u.name
}

// Dimension returns the unit's dimension vector.
func (u Unit) Dimension() Dimension {
	return u.dim
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return u.Name()
}

// affine reports whether the unit converts with a non-zero offset.
func (u Unit) affine() bool {
	return u.offset != 0
}

// IncompatibleUnitsError reports a conversion between units of different
// dimensions.
type IncompatibleUnitsError struct {
	From Unit
	To   Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("cannot convert from %s %s to %s %s: dimensions differ",
		e.From.Name(), e.From.dim, e.To.Name(), e.To.dim)
}

// ConvertValue converts a value expressed in from into the equivalent value
// expressed in to. Converting to or from the None sentinel is an error; the
// caller decides whether an untagged value needs conversion at all.
func ConvertValue(value float64, from, to Unit) (float64, error) {
	if from.IsNone() || to.IsNone() {
		return 0, fmt.Errorf("cannot convert value %v: conversion requires units on both sides (from=%s, to=%s)",
			value, from.Name(), to.Name())
	}
	if from.dim != to.dim {
		return 0, &IncompatibleUnitsError{From: from, To: to}
	}
	// Affine scales are only meaningful for standalone temperatures; compound
	// units built by Parse never carry an offset.
	si := value*from.factor + from.offset
	return (si - to.offset) / to.factor, nil
}

// SI returns the coherent SI unit sharing u's dimension: factor one, no
// offset. Passing the None sentinel returns None.
func SI(u Unit) Unit {
	if u.IsNone() {
		return None
	}
	return Unit{name: siName(u.dim), dim: u.dim, factor: 1}
}

// siName renders a dimension as a product of SI base symbols.
func siName(d Dimension) string {
	type part struct {
		symbol string
		exp    int8
	}
	parts := []part{
		{"kg", d.Mass},
		{"m", d.Length},
		{"s", d.Time},
		{"K", d.Temperature},
		{"mol", d.Amount},
	}

	name := ""
	for _, p := range parts {
		if p.exp == 0 {
			continue
		}
		if name != "" {
			name += "*"
		}
		if p.exp == 1 {
			name += p.symbol
		} else {
			name += fmt.Sprintf("%s^%d", p.symbol, p.exp)
		}
	}
	if name == "" {
		return "dimensionless"
	}
	return name
}

// MustConvertValue is a ConvertValue wrapper for values known to be
// convertible, such as registered constants. It panics on error.
func MustConvertValue(value float64, from, to Unit) float64 {
	v, err := ConvertValue(value, from, to)
	if err != nil {
		panic(err)
	}
	return v
}
