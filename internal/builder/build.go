package builder

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/ctxlog"
	"github.com/vk/propconf/internal/model"
	"github.com/vk/propconf/internal/resolve"
	"github.com/vk/propconf/internal/units"
)

// paramHolder is a block that can both construct parameters and have them
// assigned: a parameter block or a component.
type paramHolder interface {
	resolve.ParamHolder
	AddParam(name string, unit units.Unit) *model.Param
}

// Build constructs the parameter block and a state block from a loaded
// package configuration. Every configured parameter is constructed and
// assigned; every state variable named in the bounds or base-unit sections
// is constructed, bounded, and initialized to its configured default.
func Build(ctx context.Context, pc *config.PackageConfig) (*model.Block, error) {
	logger := ctxlog.FromContext(ctx)

	pb := model.NewParameterBlock(pc.Name, pc.Config)
	if err := buildParams(ctx, pb, pc.Config); err != nil {
		return nil, err
	}

	for _, name := range pc.ComponentNames() {
		cfg := pc.Components[name]
		comp := pb.AddComponent(name, cfg)
		if err := buildParams(ctx, comp, cfg); err != nil {
			return nil, err
		}
	}

	b := model.NewBlock(pc.Name+".state", pb)
	for _, state := range stateNames(pc) {
		v := b.AddVar(state, pc.BaseUnit(state))

		bounds, def, err := resolve.BoundsFromConfig(b, state, pc.BaseUnit(state))
		if err != nil {
			return nil, err
		}
		v.SetBounds(bounds.Lower, bounds.Upper)
		if def != nil {
			v.SetValue(*def)
		}
	}

	logger.Debug("Built property package model.",
		"package", pc.Name,
		"components", len(pc.Components),
		"state_vars", len(b.VarNames()))
	return b, nil
}

// buildParams constructs and assigns one parameter object per configured
// entry, expanding sub-keyed entries into name_index parameters.
func buildParams(ctx context.Context, h paramHolder, cfg *config.Config) error {
	names := make([]string, 0, len(cfg.ParameterData))
	for name := range cfg.ParameterData {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch entry := cfg.ParameterData[name].(type) {
		case config.RawValue:
			h.AddParam(name, units.None)
			if err := resolve.SetParamValue(ctx, h, name, units.None, nil, ""); err != nil {
				return err
			}
		case config.UnitedValue:
			target := units.SI(entry.Unit)
			h.AddParam(name, target)
			if err := resolve.SetParamValue(ctx, h, name, target, nil, ""); err != nil {
				return err
			}
		case config.IndexedValues:
			indices := make([]string, 0, len(entry))
			for index := range entry {
				indices = append(indices, index)
			}
			sort.Strings(indices)

			for _, index := range indices {
				target := units.None
				if united, ok := entry[index].(config.UnitedValue); ok {
					target = units.SI(united.Unit)
				}
				h.AddParam(name+"_"+index, target)
				if err := resolve.SetParamValue(ctx, h, name, target, nil, index); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%s has unrecognized parameter data for %q", h.Name(), name)
		}
	}
	return nil
}

// stateNames returns the union of the bounded states and the quantities
// with configured base units, sorted.
func stateNames(pc *config.PackageConfig) []string {
	seen := make(map[string]struct{})
	for state := range pc.Config.StateBounds {
		seen[state] = struct{}{}
	}
	for quantity := range pc.BaseUnits {
		seen[quantity] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
