// Package constant provides property methods that read a single constant
// parameter, for properties modeled as fixed values.
package constant

import (
	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// method returns a callable that reads the property's backing parameter.
func method(prop string) config.Method {
	return func(b config.Block) (float64, error) {
		return b.ParamValue(prop + "_const")
	}
}

// Register registers the constant namespace with the engine.
func (m *Module) Register(r *registry.Registry) {
	ns := config.NewNamespace("constant")
	for _, prop := range []string{"dens_mol_liq", "cp_mol_liq", "therm_cond_liq"} {
		ns.AddMethod(prop, method(prop))
	}
	r.RegisterNamespace(ns)
}
