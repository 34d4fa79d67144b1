// Package resolve implements the configuration-resolution helpers shared by
// property packages: resolving which callable computes a property, fetching
// named component objects, converting bound tuples into base units, and
// assigning parameter values with optional unit conversion.
//
// Every helper is a short lookup-and-convert operation over caller-owned
// configuration and block objects. Nothing here solves equations or
// validates models; errors propagate to the model-construction code that
// invoked the helper.
package resolve
