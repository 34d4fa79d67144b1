package hclcfg

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/units"
)

// translatePackage converts a decoded property_package block into the
// format-agnostic model.
func translatePackage(ctx context.Context, pkg *packageBlock, src config.MethodSource) (*config.PackageConfig, error) {
	pc := &config.PackageConfig{
		Name:       pkg.Name,
		BaseUnits:  make(map[string]units.Unit),
		Config:     config.New(),
		Components: make(map[string]*config.Config),
	}

	if err := translateBaseUnits(pkg.BaseUnits, pc.BaseUnits); err != nil {
		return nil, fmt.Errorf("package %q: %w", pkg.Name, err)
	}
	if err := translateStateBounds(pkg.StateBounds, pc.Config); err != nil {
		return nil, fmt.Errorf("package %q: %w", pkg.Name, err)
	}
	if err := translateMethods(pkg.Methods, pc.Config, src); err != nil {
		return nil, fmt.Errorf("package %q: %w", pkg.Name, err)
	}
	if err := translateParameterData(pkg.ParameterData, pc.Config); err != nil {
		return nil, fmt.Errorf("package %q: %w", pkg.Name, err)
	}

	for _, comp := range pkg.Components {
		if _, exists := pc.Components[comp.Name]; exists {
			return nil, fmt.Errorf("package %q: duplicate component %q", pkg.Name, comp.Name)
		}
		cfg := config.New()
		if err := translateMethods(comp.Methods, cfg, src); err != nil {
			return nil, fmt.Errorf("component %q: %w", comp.Name, err)
		}
		if err := translateParameterData(comp.ParameterData, cfg); err != nil {
			return nil, fmt.Errorf("component %q: %w", comp.Name, err)
		}
		pc.Components[comp.Name] = cfg
	}

	return pc, nil
}

// sortedAttributes evaluates a free-form block's attributes in name order so
// translation errors are deterministic.
func sortedAttributes(block *attrsBlock) ([]*hcl.Attribute, error) {
	if block == nil {
		return nil, nil
	}
	attrMap, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s", diags.Error())
	}

	names := make([]string, 0, len(attrMap))
	for name := range attrMap {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]*hcl.Attribute, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, attrMap[name])
	}
	return attrs, nil
}

func translateBaseUnits(block *attrsBlock, into map[string]units.Unit) error {
	attrs, err := sortedAttributes(block)
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("base_units %q: %s", attr.Name, diags.Error())
		}
		if val.Type() != cty.String {
			return fmt.Errorf("base_units %q: expected a unit string", attr.Name)
		}
		u, err := units.Parse(val.AsString())
		if err != nil {
			return fmt.Errorf("base_units %q: %w", attr.Name, err)
		}
		into[attr.Name] = u
	}
	return nil
}

// translateMethods fills method slots. Every attribute declares its slot;
// a null value leaves the slot declared-but-unset, a string is resolved
// against the registry.
func translateMethods(block *attrsBlock, cfg *config.Config, src config.MethodSource) error {
	attrs, err := sortedAttributes(block)
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("methods %q: %s", attr.Name, diags.Error())
		}
		if val.IsNull() {
			cfg.Declare(attr.Name)
			continue
		}
		if val.Type() != cty.String {
			return fmt.Errorf("methods %q: expected a method reference string or null", attr.Name)
		}
		ref := val.AsString()
		spec, ok := src.Lookup(ref)
		if !ok {
			return fmt.Errorf("methods %q: no registered method or namespace named %q", attr.Name, ref)
		}
		cfg.SetMethod(attr.Name, spec)
	}
	return nil
}

func translateStateBounds(block *attrsBlock, cfg *config.Config) error {
	attrs, err := sortedAttributes(block)
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("state_bounds %q: %s", attr.Name, diags.Error())
		}
		spec, err := boundSpecFromCty(val)
		if err != nil {
			return fmt.Errorf("state_bounds %q: %w", attr.Name, err)
		}
		cfg.StateBounds[attr.Name] = spec
	}
	return nil
}

// boundSpecFromCty interprets a 3-element tuple as unitless bounds and a
// 4-element tuple as bounds tagged with the unit in the last element.
func boundSpecFromCty(val cty.Value) (config.BoundSpec, error) {
	if !val.Type().IsTupleType() {
		return nil, fmt.Errorf("expected a [lower, default, upper] or [lower, default, upper, unit] tuple")
	}
	elems := val.AsValueSlice()

	switch len(elems) {
	case 3:
		nums, err := floatsFromCty(elems)
		if err != nil {
			return nil, err
		}
		return config.UnitlessBounds{Lower: nums[0], Default: nums[1], Upper: nums[2]}, nil
	case 4:
		nums, err := floatsFromCty(elems[:3])
		if err != nil {
			return nil, err
		}
		if elems[3].Type() != cty.String {
			return nil, fmt.Errorf("4th element must be a unit string")
		}
		u, err := units.Parse(elems[3].AsString())
		if err != nil {
			return nil, err
		}
		return config.UnitedBounds{Lower: nums[0], Default: nums[1], Upper: nums[2], Unit: u}, nil
	default:
		return nil, fmt.Errorf("expected 3 or 4 elements, got %d", len(elems))
	}
}

func translateParameterData(block *attrsBlock, cfg *config.Config) error {
	attrs, err := sortedAttributes(block)
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("parameter_data %q: %s", attr.Name, diags.Error())
		}
		entry, err := paramEntryFromCty(val, true)
		if err != nil {
			return fmt.Errorf("parameter_data %q: %w", attr.Name, err)
		}
		cfg.ParameterData[attr.Name] = entry
	}
	return nil
}

// paramEntryFromCty interprets a parameter value: a bare number, a
// [value, unit] pair, or, when allowIndexed is set, an object of sub-keyed
// entries of the first two shapes.
func paramEntryFromCty(val cty.Value, allowIndexed bool) (config.ParamEntry, error) {
	ty := val.Type()

	switch {
	case ty == cty.Number:
		v, err := floatFromCty(val)
		if err != nil {
			return nil, err
		}
		return config.RawValue{Value: v}, nil

	case ty.IsTupleType():
		elems := val.AsValueSlice()
		if len(elems) != 2 {
			return nil, fmt.Errorf("expected a [value, unit] pair, got %d elements", len(elems))
		}
		v, err := floatFromCty(elems[0])
		if err != nil {
			return nil, err
		}
		if elems[1].Type() != cty.String {
			return nil, fmt.Errorf("2nd element must be a unit string")
		}
		u, err := units.Parse(elems[1].AsString())
		if err != nil {
			return nil, err
		}
		return config.UnitedValue{Value: v, Unit: u}, nil

	case ty.IsObjectType() && allowIndexed:
		indexed := make(config.IndexedValues)
		for name, elem := range val.AsValueMap() {
			entry, err := paramEntryFromCty(elem, false)
			if err != nil {
				return nil, fmt.Errorf("index %q: %w", name, err)
			}
			indexed[name] = entry
		}
		return indexed, nil

	default:
		return nil, fmt.Errorf("expected a number, a [value, unit] pair, or a sub-keyed object")
	}
}

func floatsFromCty(vals []cty.Value) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, err := floatFromCty(v)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func floatFromCty(val cty.Value) (float64, error) {
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("expected a number: %w", err)
	}
	var f float64
	if err := gocty.FromCtyValue(num, &f); err != nil {
		return 0, fmt.Errorf("expected a number: %w", err)
	}
	return f, nil
}
