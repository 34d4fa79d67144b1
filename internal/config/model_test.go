package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodSlots(t *testing.T) {
	cfg := New()

	// Absent vs declared-but-unset vs set are three distinct states.
	_, declared := cfg.Method("dens_mol_liq")
	assert.False(t, declared)

	cfg.Declare("dens_mol_liq")
	spec, declared := cfg.Method("dens_mol_liq")
	assert.True(t, declared)
	assert.Nil(t, spec)

	cfg.SetMethod("dens_mol_liq", Callable{Fn: func(b Block) (float64, error) { return 0, nil }})
	spec, declared = cfg.Method("dens_mol_liq")
	assert.True(t, declared)
	assert.NotNil(t, spec)

	// Re-declaring must not clear the configured value.
	cfg.Declare("dens_mol_liq")
	spec, _ = cfg.Method("dens_mol_liq")
	assert.NotNil(t, spec)

	cfg.Declare("enth_mol_liq")
	assert.Equal(t, []string{"dens_mol_liq", "enth_mol_liq"}, cfg.MethodKeys())
}

func TestNamespace(t *testing.T) {
	ns := NewNamespace("ideal")
	ns.AddMethod("dens_mol_ig", func(b Block) (float64, error) { return 1, nil })

	member, ok := ns.Member("dens_mol_ig")
	require.True(t, ok)
	assert.IsType(t, Callable{}, member)

	_, ok = ns.Member("missing")
	assert.False(t, ok)

	assert.Panics(t, func() {
		ns.AddMethod("dens_mol_ig", func(b Block) (float64, error) { return 2, nil })
	})
}
