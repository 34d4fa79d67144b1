package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/propconf/internal/builder"
	"github.com/vk/propconf/internal/ctxlog"
	"github.com/vk/propconf/internal/model"
	"github.com/vk/propconf/internal/resolve"
)

// Run loads the property package, builds its model, and exercises every
// declared method slot and state bound. Unset optional methods are reported
// as warnings; any other resolution failure fails the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	pc, err := a.loader.Load(ctx, a.config.ConfigPath, a.registry)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration loaded and translated into unified model.", "package", pc.Name)

	b, err := builder.Build(ctx, pc)
	if err != nil {
		return fmt.Errorf("failed to build model for %s: %w", pc.Name, err)
	}

	failures := 0
	warnings := 0

	report := func(scope, key, status string) {
		fmt.Fprintf(a.outW, "%-12s %-24s %s\n", status, key, scope)
	}

	for _, key := range pc.Config.MethodKeys() {
		switch _, err := resolve.Method(b, key); {
		case err == nil:
			report("package", key, "ok")
		case errors.As(err, new(*resolve.NotProvidedError)):
			warnings++
			report("package", key, "not-provided")
			a.logger.Warn("Property method not provided.", "property", key)
		default:
			failures++
			report("package", key, "error")
			a.logger.Error("Method resolution failed.", "property", key, "error", err)
		}
	}

	for _, name := range pc.ComponentNames() {
		for _, key := range pc.Components[name].MethodKeys() {
			switch _, err := resolve.ComponentMethod(b, key, name); {
			case err == nil:
				report("component "+name, key, "ok")
			case errors.As(err, new(*resolve.NotProvidedError)):
				warnings++
				report("component "+name, key, "not-provided")
				a.logger.Warn("Property method not provided.", "component", name, "property", key)
			default:
				failures++
				report("component "+name, key, "error")
				a.logger.Error("Method resolution failed.", "component", name, "property", key, "error", err)
			}
		}
	}

	a.reportState(b)

	fmt.Fprintf(a.outW, "\n%s: %d failure(s), %d warning(s)\n", pc.Name, failures, warnings)
	if failures > 0 {
		return fmt.Errorf("validation of %s failed with %d error(s)", pc.Name, failures)
	}
	return nil
}

// reportState prints the constructed state variables with their bounds and
// defaults in base units.
func (a *App) reportState(b *model.Block) {
	for _, name := range b.VarNames() {
		v, err := b.Var(name)
		if err != nil {
			continue
		}

		lower, upper := v.Bounds()
		line := fmt.Sprintf("state        %-24s [%s, %s]", name, formatBound(lower), formatBound(upper))
		if val, ok := v.Value(); ok {
			line += fmt.Sprintf(" default=%v", val)
		}
		if !v.Unit().IsNone() {
			line += " " + v.Unit().Name()
		}
		fmt.Fprintln(a.outW, line)
	}
}

func formatBound(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%v", *v)
}
