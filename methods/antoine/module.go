// Package antoine provides the Antoine saturation-pressure correlation as
// an expression provider, the "method object" configuration style.
package antoine

import (
	"context"
	"math"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/model"
	"github.com/vk/propconf/internal/registry"
	"github.com/vk/propconf/internal/resolve"
	"github.com/vk/propconf/internal/units"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// PressureSat evaluates log10(Psat/bar) = A - B/(T + C) with T in K and
// returns the saturation pressure in Pa. The A/B/C coefficients are the
// indexed entries of the pressure_sat_coeff parameter.
type PressureSat struct{}

// ReturnExpression implements config.ExpressionProvider.
func (PressureSat) ReturnExpression(b config.Block) (float64, error) {
	temp, err := b.StateValue("temperature")
	if err != nil {
		return 0, err
	}
	coeffA, err := b.ParamValue("pressure_sat_coeff_A")
	if err != nil {
		return 0, err
	}
	coeffB, err := b.ParamValue("pressure_sat_coeff_B")
	if err != nil {
		return 0, err
	}
	coeffC, err := b.ParamValue("pressure_sat_coeff_C")
	if err != nil {
		return 0, err
	}
	return 1e5 * math.Pow(10, coeffA-coeffB/(temp+coeffC)), nil
}

// coeffUnits maps each coefficient index to the unit of the constructed
// parameter: A is dimensionless, B and C are temperatures in the correlation
// form used here.
var coeffUnits = map[string]units.Unit{
	"A": units.None,
	"B": units.MustParse("K"),
	"C": units.MustParse("K"),
}

// BuildParameters constructs the pressure_sat_coeff_{A,B,C} parameters on
// the block and assigns them from its parameter data, converting any
// unit-tagged entries.
func BuildParameters(ctx context.Context, pb *model.ParameterBlock) error {
	for _, index := range []string{"A", "B", "C"} {
		pb.AddParam("pressure_sat_coeff_"+index, coeffUnits[index])
		if err := resolve.SetParamValue(ctx, pb, "pressure_sat_coeff", coeffUnits[index], nil, index); err != nil {
			return err
		}
	}
	return nil
}

// Register registers the antoine namespace with the engine.
func (m *Module) Register(r *registry.Registry) {
	ns := config.NewNamespace("antoine")
	ns.Add("pressure_sat", config.Provider{P: PressureSat{}})
	r.RegisterNamespace(ns)
}
