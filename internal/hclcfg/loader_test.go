package hclcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/registry"
	"github.com/vk/propconf/internal/units"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testRegistry() *registry.Registry {
	r := registry.New()
	ideal := config.NewNamespace("ideal")
	ideal.AddMethod("enth_mol_ig", func(b config.Block) (float64, error) { return 0, nil })
	r.RegisterNamespace(ideal)
	r.RegisterMethod("dens_mol_liq_direct", func(b config.Block) (float64, error) { return 0, nil })
	return r
}

const validPackage = `
property_package "benzene_toluene" {
  base_units {
    temperature = "K"
    pressure    = "Pa"
  }

  state_bounds {
    temperature = [25, 30, 100, "degC"]
    pressure    = [5e4, 1e5, 1e6]
  }

  methods {
    enth_mol_ig     = "ideal"
    dens_mol_liq    = "dens_mol_liq_direct"
    entr_mol_ig     = null
  }

  parameter_data {
    gas_const = [8.314462618, "J/mol/K"]
  }

  component "benzene" {
    methods {
      enth_mol_ig = "ideal.enth_mol_ig"
    }

    parameter_data {
      mw                 = [78.1136, "g/mol"]
      omega              = 0.212
      pressure_sat_coeff = {
        A = 4.202
        B = [1322.0, "K"]
        C = [-38.56, "K"]
      }
    }
  }
}
`

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, validPackage)
	loader := NewLoader()

	pc, err := loader.Load(context.Background(), path, testRegistry())
	require.NoError(t, err)

	assert.Equal(t, "benzene_toluene", pc.Name)
	assert.Equal(t, units.MustParse("K"), pc.BaseUnit("temperature"))
	assert.True(t, pc.BaseUnit("flow_mol").IsNone())

	// Bounds shapes survive as distinct variants.
	tempSpec, ok := pc.Config.StateBounds["temperature"].(config.UnitedBounds)
	require.True(t, ok)
	assert.Equal(t, 25.0, tempSpec.Lower)
	assert.Equal(t, units.MustParse("degC"), tempSpec.Unit)

	presSpec, ok := pc.Config.StateBounds["pressure"].(config.UnitlessBounds)
	require.True(t, ok)
	assert.Equal(t, 1e5, presSpec.Default)

	// Method slots: set, set, declared-but-unset.
	spec, declared := pc.Config.Method("enth_mol_ig")
	require.True(t, declared)
	assert.NotNil(t, spec)

	spec, declared = pc.Config.Method("entr_mol_ig")
	require.True(t, declared)
	assert.Nil(t, spec)

	_, declared = pc.Config.Method("never_mentioned")
	assert.False(t, declared)

	// Package-level parameter data.
	gasConst, ok := pc.Config.ParameterData["gas_const"].(config.UnitedValue)
	require.True(t, ok)
	assert.Equal(t, 8.314462618, gasConst.Value)

	// Component config with all three parameter shapes.
	benzene, ok := pc.Components["benzene"]
	require.True(t, ok)

	mw, ok := benzene.ParameterData["mw"].(config.UnitedValue)
	require.True(t, ok)
	assert.Equal(t, 78.1136, mw.Value)
	assert.Equal(t, units.MustParse("g/mol"), mw.Unit)

	_, ok = benzene.ParameterData["omega"].(config.RawValue)
	assert.True(t, ok)

	coeffs, ok := benzene.ParameterData["pressure_sat_coeff"].(config.IndexedValues)
	require.True(t, ok)
	require.Len(t, coeffs, 3)
	_, ok = coeffs["A"].(config.RawValue)
	assert.True(t, ok)
	coeffB, ok := coeffs["B"].(config.UnitedValue)
	require.True(t, ok)
	assert.Equal(t, 1322.0, coeffB.Value)

	// A dotted member reference resolved to a callable, not a namespace.
	compSpec, declared := benzene.Method("enth_mol_ig")
	require.True(t, declared)
	_, ok = compSpec.(config.Callable)
	assert.True(t, ok)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		contains string
	}{
		{
			name: "unknown method reference",
			content: `
property_package "p" {
  methods {
    enth_mol_ig = "cubic"
  }
}
`,
			contains: "no registered method",
		},
		{
			name: "bounds tuple wrong arity",
			content: `
property_package "p" {
  state_bounds {
    temperature = [1, 2]
  }
}
`,
			contains: "expected 3 or 4 elements",
		},
		{
			name: "bounds with bad unit",
			content: `
property_package "p" {
  state_bounds {
    temperature = [1, 2, 3, "notaunit"]
  }
}
`,
			contains: "unknown unit symbol",
		},
		{
			name: "parameter pair wrong arity",
			content: `
property_package "p" {
  parameter_data {
    mw = [1, "kg/mol", 3]
  }
}
`,
			contains: "pair",
		},
		{
			name: "nested indexed entry",
			content: `
property_package "p" {
  parameter_data {
    kappa = { a = { b = 1 } }
  }
}
`,
			contains: "expected a number",
		},
		{
			name:     "no package block",
			content:  ``,
			contains: "exactly one property_package",
		},
		{
			name: "two package blocks",
			content: `
property_package "a" {}
property_package "b" {}
`,
			contains: "exactly one property_package",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.content)
			_, err := NewLoader().Load(context.Background(), path, testRegistry())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}
