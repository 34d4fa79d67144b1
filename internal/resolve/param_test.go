package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/model"
	"github.com/vk/propconf/internal/units"
)

func TestSetParamValue(t *testing.T) {
	ctx := context.Background()

	t.Run("united value converts into target unit", func(t *testing.T) {
		cfg := config.New()
		cfg.ParameterData["mw"] = config.UnitedValue{Value: 78.1136, Unit: units.MustParse("g/mol")}
		pb := model.NewParameterBlock("props", cfg)
		pb.AddParam("mw", units.MustParse("kg/mol"))

		require.NoError(t, SetParamValue(ctx, pb, "mw", units.MustParse("kg/mol"), nil, ""))

		v, ok := mustParam(t, pb, "mw").Value()
		require.True(t, ok)
		assert.InDelta(t, 78.1136e-3, v, 1e-12)
	})

	t.Run("united value with both units unset assigns verbatim", func(t *testing.T) {
		cfg := config.New()
		cfg.ParameterData["omega"] = config.UnitedValue{Value: 0.212, Unit: units.None}
		pb := model.NewParameterBlock("props", cfg)
		pb.AddParam("omega", units.None)

		require.NoError(t, SetParamValue(ctx, pb, "omega", units.None, nil, ""))

		v, ok := mustParam(t, pb, "omega").Value()
		require.True(t, ok)
		assert.Equal(t, 0.212, v)
	})

	t.Run("raw value assigns verbatim regardless of target unit", func(t *testing.T) {
		cfg := config.New()
		cfg.ParameterData["mw"] = config.RawValue{Value: 2.0}
		pb := model.NewParameterBlock("props", cfg)
		pb.AddParam("mw", units.MustParse("kg/mol"))

		require.NoError(t, SetParamValue(ctx, pb, "mw", units.MustParse("kg/mol"), nil, ""))

		v, ok := mustParam(t, pb, "mw").Value()
		require.True(t, ok)
		assert.Equal(t, 2.0, v)
	})

	t.Run("explicit config source overrides block config", func(t *testing.T) {
		own := config.New()
		own.ParameterData["mw"] = config.RawValue{Value: 1}
		other := config.New()
		other.ParameterData["mw"] = config.RawValue{Value: 2}
		pb := model.NewParameterBlock("props", own)
		pb.AddParam("mw", units.None)

		require.NoError(t, SetParamValue(ctx, pb, "mw", units.None, other, ""))

		v, _ := mustParam(t, pb, "mw").Value()
		assert.Equal(t, 2.0, v)
	})

	t.Run("indexed entry targets suffixed param and sub-keyed data", func(t *testing.T) {
		kelvin := units.MustParse("K")
		cfg := config.New()
		cfg.ParameterData["kappa"] = config.IndexedValues{
			"1": config.UnitedValue{Value: 2048.2, Unit: units.MustParse("K")},
			"2": config.RawValue{Value: -30.0},
		}
		pb := model.NewParameterBlock("props", cfg)
		pb.AddParam("kappa_1", kelvin)
		pb.AddParam("kappa_2", kelvin)

		require.NoError(t, SetParamValue(ctx, pb, "kappa", kelvin, nil, "1"))
		require.NoError(t, SetParamValue(ctx, pb, "kappa", kelvin, nil, "2"))

		v1, _ := mustParam(t, pb, "kappa_1").Value()
		assert.Equal(t, 2048.2, v1)
		v2, _ := mustParam(t, pb, "kappa_2").Value()
		assert.Equal(t, -30.0, v2)
	})

	t.Run("idempotent across repeated assignment", func(t *testing.T) {
		cfg := config.New()
		cfg.ParameterData["mw"] = config.UnitedValue{Value: 78.1136, Unit: units.MustParse("g/mol")}
		pb := model.NewParameterBlock("props", cfg)
		pb.AddParam("mw", units.MustParse("kg/mol"))

		target := units.MustParse("kg/mol")
		require.NoError(t, SetParamValue(ctx, pb, "mw", target, nil, ""))
		first, _ := mustParam(t, pb, "mw").Value()
		require.NoError(t, SetParamValue(ctx, pb, "mw", target, nil, ""))
		second, _ := mustParam(t, pb, "mw").Value()

		assert.Equal(t, first, second)
	})

	t.Run("works on components", func(t *testing.T) {
		compCfg := config.New()
		compCfg.ParameterData["mw"] = config.UnitedValue{Value: 78.1136, Unit: units.MustParse("g/mol")}
		pb := model.NewParameterBlock("props", config.New())
		comp := pb.AddComponent("benzene", compCfg)
		comp.AddParam("mw", units.MustParse("kg/mol"))

		require.NoError(t, SetParamValue(ctx, comp, "mw", units.MustParse("kg/mol"), nil, ""))

		v, err := comp.ParamValue("mw")
		require.NoError(t, err)
		assert.InDelta(t, 78.1136e-3, v, 1e-12)
	})
}

func TestSetParamValueErrors(t *testing.T) {
	ctx := context.Background()
	kelvin := units.MustParse("K")

	t.Run("missing parameter object", func(t *testing.T) {
		cfg := config.New()
		cfg.ParameterData["mw"] = config.RawValue{Value: 1}
		pb := model.NewParameterBlock("props", cfg)

		err := SetParamValue(ctx, pb, "mw", units.None, nil, "")
		var notFound *model.ParamNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("missing parameter data", func(t *testing.T) {
		pb := model.NewParameterBlock("props", config.New())
		pb.AddParam("mw", units.None)

		err := SetParamValue(ctx, pb, "mw", units.None, nil, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "props")
		assert.Contains(t, err.Error(), "mw")
	})

	t.Run("index requested on scalar data", func(t *testing.T) {
		cfg := config.New()
		cfg.ParameterData["kappa"] = config.RawValue{Value: 1}
		pb := model.NewParameterBlock("props", cfg)
		pb.AddParam("kappa_1", kelvin)

		err := SetParamValue(ctx, pb, "kappa", kelvin, nil, "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not indexed")
	})

	t.Run("indexed data without index", func(t *testing.T) {
		cfg := config.New()
		cfg.ParameterData["kappa"] = config.IndexedValues{"1": config.RawValue{Value: 1}}
		pb := model.NewParameterBlock("props", cfg)
		pb.AddParam("kappa", kelvin)

		err := SetParamValue(ctx, pb, "kappa", kelvin, nil, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index is required")
	})

	t.Run("unit dimension mismatch surfaces conversion error", func(t *testing.T) {
		cfg := config.New()
		cfg.ParameterData["mw"] = config.UnitedValue{Value: 1, Unit: units.MustParse("bar")}
		pb := model.NewParameterBlock("props", cfg)
		pb.AddParam("mw", units.MustParse("kg/mol"))

		err := SetParamValue(ctx, pb, "mw", units.MustParse("kg/mol"), nil, "")
		var incompatible *units.IncompatibleUnitsError
		require.ErrorAs(t, err, &incompatible)
	})
}

func mustParam(t *testing.T, pb *model.ParameterBlock, name string) *model.Param {
	t.Helper()
	p, err := pb.Param(name)
	require.NoError(t, err)
	return p
}
