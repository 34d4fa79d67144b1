package config

import "fmt"

// Block is the surface a property method sees when it is invoked. Concrete
// block types live in the model package; methods only need identity and
// read access to constructed parameter and state-variable values.
type Block interface {
	Name() string
	ParamValue(name string) (float64, error)
	StateValue(name string) (float64, error)
}

// Method computes the value of a property expression on a block.
type Method func(b Block) (float64, error)

// ExpressionProvider is the "method object" configuration style: a type
// wrapping the expression builder behind a ReturnExpression method.
type ExpressionProvider interface {
	ReturnExpression(b Block) (float64, error)
}

// MethodSpec is a configured value for a property-method slot. Exactly three
// shapes are accepted: a Callable, a *Namespace, or a Provider. The variant
// is fixed when the configuration is parsed; resolution applies one rule per
// variant with no further type inspection.
type MethodSpec interface {
	isMethodSpec()
}

// Callable wraps a ready-to-use property method.
type Callable struct {
	Fn Method
}

func (Callable) isMethodSpec() {}

// Provider wraps an ExpressionProvider; resolution yields the provider's
// bound ReturnExpression method, not the provider itself.
type Provider struct {
	P ExpressionProvider
}

func (Provider) isMethodSpec() {}

// Namespace is a named collection of method specs, the analog of configuring
// a whole method library for a slot. By convention a namespace configured for
// slot K is replaced by its member named K during resolution.
type Namespace struct {
	name    string
	members map[string]MethodSpec
}

func (*Namespace) isMethodSpec() {}

// NewNamespace creates an empty namespace with the given display name.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:    name,
		members: make(map[string]MethodSpec),
	}
}

// Name returns the namespace's display name.
func (ns *Namespace) Name() string {
	return ns.name
}

// Add registers a member under the given name.
func (ns *Namespace) Add(name string, spec MethodSpec) *Namespace {
	if _, exists := ns.members[name]; exists {
		panic(fmt.Sprintf("namespace %q already has a member named %q", ns.name, name))
	}
	ns.members[name] = spec
	return ns
}

// AddMethod registers a plain callable member under the given name.
func (ns *Namespace) AddMethod(name string, fn Method) *Namespace {
	return ns.Add(name, Callable{Fn: fn})
}

// Member looks up a member by name.
func (ns *Namespace) Member(name string) (MethodSpec, bool) {
	spec, ok := ns.members[name]
	return spec, ok
}
