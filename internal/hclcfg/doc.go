// Package hclcfg provides the concrete HCL implementation of the
// config.Loader interface. It is responsible for parsing property_package
// files, resolving method references against the registry, and normalizing
// every value shape (bound tuples, value/unit pairs, sub-keyed parameter
// collections) into the tagged variants of the config model.
package hclcfg
