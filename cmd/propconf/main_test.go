package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validHCL = `
property_package "glycol" {
  base_units {
    temperature = "K"
  }

  state_bounds {
    temperature = [25, 30, 100, "degC"]
  }

  methods {
    dens_mol_ig = "ideal"
  }
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_ValidPackage(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "glycol.hcl", validHCL)
	out := &bytes.Buffer{}

	err := run(out, []string{"-log-level", "error", path})
	require.NoError(t, err)
	require.Contains(t, out.String(), "dens_mol_ig")
	require.Contains(t, out.String(), "0 failure(s)")
}

func TestRun_ParseFailure(t *testing.T) {
	t.Parallel()

	invalidHCL := `
property_package "broken" {
  methods {
`
	path := writeFile(t, "broken.hcl", invalidHCL)
	out := &bytes.Buffer{}

	err := run(out, []string{"-log-level", "error", path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load configuration")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_BadFlagValue(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-log-format", "xml", "whatever.hcl"})
	require.Error(t, err)
}
