// Package yamlcfg provides the YAML implementation of the config.Loader
// interface, accepting the same property-package shapes as the HCL loader:
// bound tuples with or without unit tags, bare or unit-tagged parameter
// values, and sub-keyed parameter collections.
package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/ctxlog"
	"github.com/vk/propconf/internal/units"
)

type yamlComponent struct {
	Methods       map[string]*string `yaml:"methods"`
	ParameterData map[string]any     `yaml:"parameter_data"`
}

type yamlPackage struct {
	Name          string                   `yaml:"name"`
	BaseUnits     map[string]string        `yaml:"base_units"`
	StateBounds   map[string][]any         `yaml:"state_bounds"`
	Methods       map[string]*string       `yaml:"methods"`
	ParameterData map[string]any           `yaml:"parameter_data"`
	Components    map[string]yamlComponent `yaml:"components"`
}

type yamlRoot struct {
	Package *yamlPackage `yaml:"property_package"`
}

// Loader is the YAML-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses a single YAML property-package file and translates it into
// the unified model, resolving method references against src.
func (l *Loader) Load(ctx context.Context, path string, src config.MethodSource) (*config.PackageConfig, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding property package file.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	var root yamlRoot
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}
	if root.Package == nil {
		return nil, fmt.Errorf("%s must contain a property_package mapping", path)
	}
	if root.Package.Name == "" {
		return nil, fmt.Errorf("%s: property_package requires a name", path)
	}

	pc, err := translatePackage(root.Package, src)
	if err != nil {
		return nil, fmt.Errorf("in %s: %w", path, err)
	}

	logger.Debug("Successfully decoded property package file.",
		"path", path, "package", pc.Name, "components", len(pc.Components))
	return pc, nil
}

func translatePackage(pkg *yamlPackage, src config.MethodSource) (*config.PackageConfig, error) {
	pc := &config.PackageConfig{
		Name:       pkg.Name,
		BaseUnits:  make(map[string]units.Unit),
		Config:     config.New(),
		Components: make(map[string]*config.Config),
	}

	for quantity, expr := range pkg.BaseUnits {
		u, err := units.Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("package %q: base_units %q: %w", pkg.Name, quantity, err)
		}
		pc.BaseUnits[quantity] = u
	}

	for state, tuple := range pkg.StateBounds {
		spec, err := boundSpecFromYAML(tuple)
		if err != nil {
			return nil, fmt.Errorf("package %q: state_bounds %q: %w", pkg.Name, state, err)
		}
		pc.Config.StateBounds[state] = spec
	}

	if err := translateMethods(pkg.Methods, pc.Config, src); err != nil {
		return nil, fmt.Errorf("package %q: %w", pkg.Name, err)
	}
	if err := translateParameterData(pkg.ParameterData, pc.Config); err != nil {
		return nil, fmt.Errorf("package %q: %w", pkg.Name, err)
	}

	for name, comp := range pkg.Components {
		cfg := config.New()
		if err := translateMethods(comp.Methods, cfg, src); err != nil {
			return nil, fmt.Errorf("component %q: %w", name, err)
		}
		if err := translateParameterData(comp.ParameterData, cfg); err != nil {
			return nil, fmt.Errorf("component %q: %w", name, err)
		}
		pc.Components[name] = cfg
	}

	return pc, nil
}

func translateMethods(methods map[string]*string, cfg *config.Config, src config.MethodSource) error {
	for slot, ref := range methods {
		if ref == nil {
			cfg.Declare(slot)
			continue
		}
		spec, ok := src.Lookup(*ref)
		if !ok {
			return fmt.Errorf("methods %q: no registered method or namespace named %q", slot, *ref)
		}
		cfg.SetMethod(slot, spec)
	}
	return nil
}

func translateParameterData(data map[string]any, cfg *config.Config) error {
	for name, raw := range data {
		entry, err := paramEntryFromYAML(raw, true)
		if err != nil {
			return fmt.Errorf("parameter_data %q: %w", name, err)
		}
		cfg.ParameterData[name] = entry
	}
	return nil
}

func boundSpecFromYAML(tuple []any) (config.BoundSpec, error) {
	switch len(tuple) {
	case 3:
		nums, err := floatsFromYAML(tuple)
		if err != nil {
			return nil, err
		}
		return config.UnitlessBounds{Lower: nums[0], Default: nums[1], Upper: nums[2]}, nil
	case 4:
		nums, err := floatsFromYAML(tuple[:3])
		if err != nil {
			return nil, err
		}
		expr, ok := tuple[3].(string)
		if !ok {
			return nil, fmt.Errorf("4th element must be a unit string")
		}
		u, err := units.Parse(expr)
		if err != nil {
			return nil, err
		}
		return config.UnitedBounds{Lower: nums[0], Default: nums[1], Upper: nums[2], Unit: u}, nil
	default:
		return nil, fmt.Errorf("expected 3 or 4 elements, got %d", len(tuple))
	}
}

func paramEntryFromYAML(raw any, allowIndexed bool) (config.ParamEntry, error) {
	switch v := raw.(type) {
	case int, int64, float64:
		f, _ := floatFromYAML(v)
		return config.RawValue{Value: f}, nil

	case []any:
		if len(v) != 2 {
			return nil, fmt.Errorf("expected a [value, unit] pair, got %d elements", len(v))
		}
		f, err := floatFromYAML(v[0])
		if err != nil {
			return nil, err
		}
		expr, ok := v[1].(string)
		if !ok {
			return nil, fmt.Errorf("2nd element must be a unit string")
		}
		u, err := units.Parse(expr)
		if err != nil {
			return nil, err
		}
		return config.UnitedValue{Value: f, Unit: u}, nil

	case map[string]any:
		if !allowIndexed {
			return nil, fmt.Errorf("expected a number or a [value, unit] pair")
		}
		indexed := make(config.IndexedValues)
		for index, elem := range v {
			entry, err := paramEntryFromYAML(elem, false)
			if err != nil {
				return nil, fmt.Errorf("index %q: %w", index, err)
			}
			indexed[index] = entry
		}
		return indexed, nil

	default:
		return nil, fmt.Errorf("expected a number, a [value, unit] pair, or a sub-keyed mapping")
	}
}

func floatsFromYAML(vals []any) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, err := floatFromYAML(v)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func floatFromYAML(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
