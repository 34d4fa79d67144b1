package resolve

import (
	"context"
	"fmt"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/ctxlog"
	"github.com/vk/propconf/internal/model"
	"github.com/vk/propconf/internal/units"
)

// ParamHolder is any block that owns constructed parameters and a config
// block: a parameter block or a component.
type ParamHolder interface {
	Name() string
	Config() *config.Config
	Param(name string) (*model.Param, error)
}

// SetParamValue resolves the configured data for a parameter and assigns it
// to the constructed parameter object in place, converting units when the
// data carries a unit tag.
//
// cfg overrides the block's own config as the data source when non-nil.
// index addresses one entry of a multi-valued parameter: the target object
// is then named param+"_"+index (a convention the block's construction code
// must honor) and the data is sub-keyed by index.
//
// A value/unit pair is assigned verbatim only when both the target unit and
// the supplied unit are unset; otherwise it is converted. A bare value is
// always assigned verbatim, with a debug note that default units are
// assumed. Assignment is idempotent: the conversion always starts from the
// configured value, never from a previously stored one.
func SetParamValue(ctx context.Context, b ParamHolder, param string, unit units.Unit, cfg *config.Config, index string) error {
	if cfg == nil {
		cfg = b.Config()
	}

	var (
		obj   *model.Param
		entry config.ParamEntry
		err   error
	)
	if index == "" {
		obj, err = b.Param(param)
		if err != nil {
			return err
		}
		var ok bool
		entry, ok = cfg.ParameterData[param]
		if !ok {
			return fmt.Errorf("%s has no parameter data for %q", b.Name(), param)
		}
	} else {
		obj, err = b.Param(param + "_" + index)
		if err != nil {
			return err
		}
		outer, ok := cfg.ParameterData[param]
		if !ok {
			return fmt.Errorf("%s has no parameter data for %q", b.Name(), param)
		}
		indexed, ok := outer.(config.IndexedValues)
		if !ok {
			return fmt.Errorf("%s parameter data for %q is not indexed, but index %q was requested", b.Name(), param, index)
		}
		entry, ok = indexed[index]
		if !ok {
			return fmt.Errorf("%s has no parameter data for %q index %q", b.Name(), param, index)
		}
	}

	switch v := entry.(type) {
	case config.UnitedValue:
		if unit.IsNone() && v.Unit.IsNone() {
			obj.SetValue(v.Value)
			return nil
		}
		converted, err := units.ConvertValue(v.Value, v.Unit, unit)
		if err != nil {
			return fmt.Errorf("%s parameter %q: %w", b.Name(), param, err)
		}
		obj.SetValue(converted)
		return nil
	case config.RawValue:
		ctxlog.FromContext(ctx).Debug("no units provided for parameter, assuming default units",
			"block", b.Name(), "param", param)
		obj.SetValue(v.Value)
		return nil
	case config.IndexedValues:
		return fmt.Errorf("%s parameter data for %q is indexed; an index is required", b.Name(), param)
	default:
		return fmt.Errorf("%s has unrecognized parameter data for %q", b.Name(), param)
	}
}
