package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/model"
	"github.com/vk/propconf/internal/registry"
	"github.com/vk/propconf/internal/resolve"
	"github.com/vk/propconf/internal/units"
)

func TestConstantMethodsReadBackingParam(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	spec, ok := r.Lookup("constant")
	require.True(t, ok)

	cfg := config.New()
	cfg.SetMethod("dens_mol_liq", spec)

	pb := model.NewParameterBlock("props", cfg)
	pb.AddParam("dens_mol_liq_const", units.MustParse("mol/m^3")).SetValue(11250)
	b := model.NewBlock("state[0]", pb)

	mthd, err := resolve.Method(b, "dens_mol_liq")
	require.NoError(t, err)

	got, err := mthd(b)
	require.NoError(t, err)
	assert.Equal(t, 11250.0, got)
}

func TestConstantMethodMissingParam(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	spec, _ := r.Lookup("constant")

	cfg := config.New()
	cfg.SetMethod("cp_mol_liq", spec)
	b := model.NewBlock("state[0]", model.NewParameterBlock("props", cfg))

	mthd, err := resolve.Method(b, "cp_mol_liq")
	require.NoError(t, err)

	_, err = mthd(b)
	assert.Error(t, err, "evaluation must surface the missing backing parameter")
}
