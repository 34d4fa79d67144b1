package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/vk/propconf/internal/config"
)

// Module is the interface that built-in method libraries implement to be
// registered with an application instance.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered property-method specs for a single
// application instance. Entries are either standalone methods/providers or
// whole namespaces; namespace members are additionally addressable by a
// dotted "namespace.member" reference.
type Registry struct {
	specs map[string]config.MethodSpec
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		specs: make(map[string]config.MethodSpec),
	}
}

// RegisterMethod registers a standalone property method under name.
func (r *Registry) RegisterMethod(name string, fn config.Method) {
	r.register(name, config.Callable{Fn: fn})
}

// RegisterProvider registers an expression provider under name.
func (r *Registry) RegisterProvider(name string, p config.ExpressionProvider) {
	r.register(name, config.Provider{P: p})
}

// RegisterNamespace registers a namespace under its own name.
func (r *Registry) RegisterNamespace(ns *config.Namespace) {
	r.register(ns.Name(), ns)
}

func (r *Registry) register(name string, spec config.MethodSpec) {
	if _, exists := r.specs[name]; exists {
		panic(fmt.Sprintf("method spec with name '%s' already registered", name))
	}
	slog.Debug("Registering method spec.", "name", name)
	r.specs[name] = spec
}

// Lookup resolves a configured method reference. A plain name matches a
// registered entry; a "namespace.member" reference matches one member of a
// registered namespace. Lookup implements config.MethodSource.
func (r *Registry) Lookup(name string) (config.MethodSpec, bool) {
	if spec, ok := r.specs[name]; ok {
		return spec, ok
	}

	nsName, member, found := strings.Cut(name, ".")
	if !found {
		return nil, false
	}
	ns, ok := r.specs[nsName].(*config.Namespace)
	if !ok {
		return nil, false
	}
	return ns.Member(member)
}

// Names returns all registered top-level names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
