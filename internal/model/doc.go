// Package model holds the block objects the resolution helpers operate on:
// the parameter block owning a property package's configuration, components,
// and parameters; the component objects carrying per-component configuration;
// and the state block bound to a parameter block.
//
// Attribute-style access in the source framework maps to name-keyed
// registries here; every not-found error carries the owning block's name so
// failures are traceable across many block instances sharing one code path.
package model
