// Package config defines the format-agnostic configuration model for a
// property package: declared property-method slots, state-variable bound
// specifications, and parameter data, along with the Loader interface that
// format-specific loaders (HCL, YAML) implement.
//
// All shape variance allowed in configuration files — method references
// that may be a callable, a namespace, or an expression provider; bound
// tuples with or without a unit tag; parameter values that are bare
// numbers, value/unit pairs, or sub-keyed collections — is normalized into
// explicit tagged variants at load time, so the resolution code in the
// resolve package never inspects raw values.
package config
