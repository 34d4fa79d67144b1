package resolve

import (
	"fmt"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/model"
	"github.com/vk/propconf/internal/units"
)

// Bounds is a state variable's (lower, upper) pair in base units. Nil fields
// mean no bound was configured.
type Bounds struct {
	Lower *float64
	Upper *float64
}

// BoundsFromConfig looks up the bound specification for a state variable on
// the block's configuration and returns the bounds and default value in the
// base unit. A missing specification is a valid state and yields all-nil
// results; bounds are optional.
//
// No ordering check (lower <= default <= upper) is performed; that is the
// caller's responsibility.
func BoundsFromConfig(b *model.Block, state string, base units.Unit) (Bounds, *float64, error) {
	spec, ok := b.Params().Config().StateBounds[state]
	if !ok || spec == nil {
		return Bounds{}, nil, nil
	}

	switch v := spec.(type) {
	case config.UnitlessBounds:
		// Already in base units by assumption.
		return Bounds{Lower: ptr(v.Lower), Upper: ptr(v.Upper)}, ptr(v.Default), nil
	case config.UnitedBounds:
		lower, err := units.ConvertValue(v.Lower, v.Unit, base)
		if err != nil {
			return Bounds{}, nil, fmt.Errorf("converting %s bounds for %s: %w", state, b.Name(), err)
		}
		upper, err := units.ConvertValue(v.Upper, v.Unit, base)
		if err != nil {
			return Bounds{}, nil, fmt.Errorf("converting %s bounds for %s: %w", state, b.Name(), err)
		}
		def, err := units.ConvertValue(v.Default, v.Unit, base)
		if err != nil {
			return Bounds{}, nil, fmt.Errorf("converting %s default for %s: %w", state, b.Name(), err)
		}
		return Bounds{Lower: &lower, Upper: &upper}, &def, nil
	default:
		return Bounds{}, nil, fmt.Errorf("unrecognized bound specification for %s on %s", state, b.Name())
	}
}

func ptr(v float64) *float64 {
	return &v
}
