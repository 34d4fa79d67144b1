package config

import "github.com/vk/propconf/internal/units"

// BoundSpec is a configured (lower, default, upper) specification for a
// state variable. The two variants mirror the accepted file shapes: a
// 3-element tuple (values already in base units) and a 4-element tuple
// whose last element tags the unit of the first three.
type BoundSpec interface {
	isBoundSpec()
}

// UnitlessBounds holds bounds assumed to already be in the base unit.
type UnitlessBounds struct {
	Lower   float64
	Default float64
	Upper   float64
}

func (UnitlessBounds) isBoundSpec() {}

// UnitedBounds holds bounds expressed in Unit; they are converted into the
// base unit on extraction.
type UnitedBounds struct {
	Lower   float64
	Default float64
	Upper   float64
	Unit    units.Unit
}

func (UnitedBounds) isBoundSpec() {}

// ParamEntry is a configured value for a parameter. The variants mirror the
// accepted file shapes: a bare number, a (value, unit) pair, and a sub-keyed
// collection of either for multi-valued parameters.
type ParamEntry interface {
	isParamEntry()
}

// RawValue is a bare number with no unit tag. It is assigned verbatim; the
// parameter's default units are assumed.
type RawValue struct {
	Value float64
}

func (RawValue) isParamEntry() {}

// UnitedValue is a (value, unit) pair, converted into the parameter's unit
// on assignment.
type UnitedValue struct {
	Value float64
	Unit  units.Unit
}

func (UnitedValue) isParamEntry() {}

// IndexedValues holds per-index entries for a multi-valued parameter, e.g.
// the A/B/C coefficients of a correlation.
type IndexedValues map[string]ParamEntry

func (IndexedValues) isParamEntry() {}
