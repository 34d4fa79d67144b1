package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/propconf/internal/config"
)

func noop(b config.Block) (float64, error) { return 0, nil }

func TestLookup(t *testing.T) {
	r := New()
	r.RegisterMethod("dens_mol_ig", noop)

	ns := config.NewNamespace("ideal")
	ns.AddMethod("enth_mol_liq", noop)
	r.RegisterNamespace(ns)

	testCases := []struct {
		name   string
		ref    string
		expect bool
	}{
		{name: "standalone method", ref: "dens_mol_ig", expect: true},
		{name: "whole namespace", ref: "ideal", expect: true},
		{name: "dotted namespace member", ref: "ideal.enth_mol_liq", expect: true},
		{name: "unknown name", ref: "cubic", expect: false},
		{name: "unknown member", ref: "ideal.pressure_sat", expect: false},
		{name: "dotted ref into non-namespace", ref: "dens_mol_ig.x", expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec, ok := r.Lookup(tc.ref)
			assert.Equal(t, tc.expect, ok)
			if tc.expect {
				require.NotNil(t, spec)
			}
		})
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New()
	r.RegisterMethod("dens_mol_ig", noop)
	assert.Panics(t, func() {
		r.RegisterMethod("dens_mol_ig", noop)
	})
}

func TestNames(t *testing.T) {
	r := New()
	r.RegisterMethod("b_method", noop)
	r.RegisterMethod("a_method", noop)
	assert.Equal(t, []string{"a_method", "b_method"}, r.Names())
}
