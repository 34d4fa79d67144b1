package model

import "github.com/vk/propconf/internal/units"

// Var is a state variable on a block: a modeled quantity with optional
// bounds and a current value, all expressed in the block's base unit for
// that quantity.
type Var struct {
	name  string
	unit  units.Unit
	lower *float64
	upper *float64
	value float64
	set   bool
}

// NewVar creates an unbounded, unset state variable.
func NewVar(name string, unit units.Unit) *Var {
	return &Var{name: name, unit: unit}
}

// Name returns the variable's name.
func (v *Var) Name() string {
	return v.name
}

// Unit returns the base unit the variable is expressed in.
func (v *Var) Unit() units.Unit {
	return v.unit
}

// SetBounds stores the bounds. Nil means unbounded on that side. No
// ordering check is performed.
func (v *Var) SetBounds(lower, upper *float64) {
	v.lower = lower
	v.upper = upper
}

// Bounds returns the stored bounds; nil means unbounded on that side.
func (v *Var) Bounds() (lower, upper *float64) {
	return v.lower, v.upper
}

// SetValue stores the current value.
func (v *Var) SetValue(val float64) {
	v.value = val
	v.set = true
}

// Value returns the current value. The second return reports whether a
// value has been assigned at all.
func (v *Var) Value() (float64, bool) {
	return v.value, v.set
}
