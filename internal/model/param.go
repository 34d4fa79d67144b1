package model

import "github.com/vk/propconf/internal/units"

// Param is a fixed numeric coefficient of the model. Its unit is the target
// unit configured values are converted into; its value is mutated in place
// by the parameter setter.
type Param struct {
	name  string
	unit  units.Unit
	value float64
	set   bool
}

// NewParam creates an unset parameter with the given target unit.
func NewParam(name string, unit units.Unit) *Param {
	return &Param{name: name, unit: unit}
}

// Name returns the parameter's name.
func (p *Param) Name() string {
	return p.name
}

// Unit returns the parameter's target unit.
func (p *Param) Unit() units.Unit {
	return p.unit
}

// SetValue stores a value, replacing any previous one.
func (p *Param) SetValue(v float64) {
	p.value = v
	p.set = true
}

// Value returns the stored value. The second return reports whether a value
// has been assigned at all.
func (p *Param) Value() (float64, bool) {
	return p.value, p.set
}
