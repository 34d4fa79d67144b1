// Package registry provides the central "glue" between configuration files
// and compiled property-method code.
//
// The Registry stores mappings between the string identifiers used in
// property-package configuration (e.g. "ideal", "antoine.pressure_sat") and
// the Go callables, expression providers, and namespaces that implement
// them. Loaders resolve method references against the registry while
// translating a configuration file into the unified model, so a dangling
// reference fails at load time rather than during model construction.
package registry
