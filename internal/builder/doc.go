// Package builder materializes block objects from a loaded property-package
// configuration: the parameter block with its components and parameters, and
// a state block whose variables are bounded and initialized from the
// configured state bounds.
//
// Parameters carrying a unit tag are normalized into the coherent SI unit of
// their dimension; untagged parameters are stored verbatim, matching the
// parameter setter's default-units behavior.
package builder
