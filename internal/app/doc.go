// Package app wires the application together: logger construction, method
// registration, configuration loading, model building, and the validation
// pass that exercises every declared method slot and state bound of a
// property package.
package app
