package config

import "context"

// MethodSource resolves a configured method reference (a string naming a
// registered method or namespace) into its spec. The registry package
// provides the concrete implementation; loaders depend only on this
// interface.
type MethodSource interface {
	Lookup(name string) (MethodSpec, bool)
}

// Loader is the interface for a format-specific configuration loader. Load
// reads a property-package definition from path, resolves method references
// against src, and returns the unified model.
type Loader interface {
	Load(ctx context.Context, path string, src MethodSource) (*PackageConfig, error)
}
