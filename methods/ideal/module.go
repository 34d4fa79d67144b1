// Package ideal provides property methods for ideal-gas behavior.
package ideal

import (
	"fmt"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/registry"
)

// gasConstant is the molar gas constant in J/mol/K.
const gasConstant = 8.314462618

// Module implements the registry.Module interface for this package.
type Module struct{}

// DensMolIG computes ideal-gas molar density in mol/m^3 from the block's
// temperature and pressure state.
func DensMolIG(b config.Block) (float64, error) {
	temp, err := b.StateValue("temperature")
	if err != nil {
		return 0, err
	}
	if temp <= 0 {
		return 0, fmt.Errorf("%s: nonpositive temperature %v", b.Name(), temp)
	}
	pres, err := b.StateValue("pressure")
	if err != nil {
		return 0, err
	}
	return pres / (gasConstant * temp), nil
}

// EnthMolIG computes ideal-gas molar enthalpy in J/mol relative to the
// reference temperature, using a constant heat capacity parameter.
func EnthMolIG(b config.Block) (float64, error) {
	temp, err := b.StateValue("temperature")
	if err != nil {
		return 0, err
	}
	cp, err := b.ParamValue("cp_mol_ig")
	if err != nil {
		return 0, err
	}
	tempRef, err := b.ParamValue("temperature_ref")
	if err != nil {
		return 0, err
	}
	return cp * (temp - tempRef), nil
}

// Register registers the ideal namespace with the engine.
func (m *Module) Register(r *registry.Registry) {
	ns := config.NewNamespace("ideal")
	ns.AddMethod("dens_mol_ig", DensMolIG)
	ns.AddMethod("enth_mol_ig", EnthMolIG)
	r.RegisterNamespace(ns)
}
