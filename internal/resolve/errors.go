package resolve

import "fmt"

// InvalidKeyError reports a lookup of a configuration option that was never
// declared on the resolved config. This is a wiring defect between the
// framework and the property package, not a missing user choice.
type InvalidKeyError struct {
	Block string
	Key   string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%s called for invalid configuration option %q; "+
		"please contact the developer of the property package", e.Block, e.Key)
}

// NotProvidedError reports that a property was requested but the user left
// its method slot unset. This is the expected failure for an optional
// property the user has not configured.
type NotProvidedError struct {
	Block    string
	Property string
}

func (e *NotProvidedError) Error() string {
	return fmt.Sprintf("property package instance %s called for %s, but was "+
		"not provided with a method for this property; please add a method for "+
		"this property in the property parameter configuration", e.Block, e.Property)
}

// MalformedValueError reports a configured value that exists but cannot be
// reduced to a callable.
type MalformedValueError struct {
	Block string
	Key   string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("%s received invalid value for argument %q; value must "+
		"be a method, a type with a ReturnExpression method, or a namespace "+
		"containing one of the previous", e.Block, e.Key)
}
