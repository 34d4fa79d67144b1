package config

import (
	"sort"

	"github.com/vk/propconf/internal/units"
)

// Config is the configuration block attached to a parameter block or to a
// single component: declared property-method slots, state-variable bounds,
// and parameter data. Configs are built by a Loader (or directly in tests)
// and are read-only to the resolve package.
type Config struct {
	// methods holds the declared slots. A key that is present with a nil
	// value is declared-but-unset, which is a different condition from the
	// key being absent entirely.
	methods map[string]MethodSpec

	// StateBounds maps a state-variable name to its bound specification.
	// Absence of a state is a valid configuration, not an error.
	StateBounds map[string]BoundSpec

	// ParameterData maps a parameter name to its configured entry.
	ParameterData map[string]ParamEntry
}

// New creates an empty Config.
func New() *Config {
	return &Config{
		methods:       make(map[string]MethodSpec),
		StateBounds:   make(map[string]BoundSpec),
		ParameterData: make(map[string]ParamEntry),
	}
}

// Declare adds method slots in the declared-but-unset state. Declaring an
// existing slot is a no-op and does not clear a configured value.
func (c *Config) Declare(keys ...string) {
	for _, key := range keys {
		if _, exists := c.methods[key]; !exists {
			c.methods[key] = nil
		}
	}
}

// SetMethod declares the slot if needed and sets its value. A nil spec
// returns the slot to the declared-but-unset state.
func (c *Config) SetMethod(key string, spec MethodSpec) {
	c.methods[key] = spec
}

// Method looks up a declared slot. The second return reports whether the
// slot is declared at all; a declared slot may still hold a nil spec.
func (c *Config) Method(key string) (MethodSpec, bool) {
	spec, declared := c.methods[key]
	return spec, declared
}

// MethodKeys returns all declared slot names in sorted order.
func (c *Config) MethodKeys() []string {
	keys := make([]string, 0, len(c.methods))
	for key := range c.methods {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// PackageConfig is the unified representation of one loaded property
// package: the package-level config plus per-component configs and the
// base unit system the model is expressed in.
type PackageConfig struct {
	Name string

	// BaseUnits maps a state-variable or quantity name to the base unit
	// configured for it, e.g. "temperature" -> K.
	BaseUnits map[string]units.Unit

	// Config is the package-level configuration, attached to the parameter
	// block when the model is built.
	Config *Config

	// Components holds the per-component configurations.
	Components map[string]*Config
}

// BaseUnit returns the base unit configured for the named quantity, or the
// None sentinel when the quantity has no configured base unit.
func (pc *PackageConfig) BaseUnit(quantity string) units.Unit {
	if u, ok := pc.BaseUnits[quantity]; ok {
		return u
	}
	return units.None
}

// ComponentNames returns the component names in sorted order.
func (pc *PackageConfig) ComponentNames() []string {
	names := make([]string, 0, len(pc.Components))
	for name := range pc.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
