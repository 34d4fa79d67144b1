package model

import (
	"fmt"
	"sort"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/units"
)

// ComponentNotFoundError reports a lookup of a component that is not
// registered on a parameter block.
type ComponentNotFoundError struct {
	Block     string
	Component string
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("%s has no component named %q", e.Block, e.Component)
}

// ParamNotFoundError reports a lookup of a parameter that was never
// constructed on a block.
type ParamNotFoundError struct {
	Block string
	Param string
}

func (e *ParamNotFoundError) Error() string {
	return fmt.Sprintf("%s has no parameter named %q", e.Block, e.Param)
}

// ParameterBlock owns a property package's configuration together with the
// component and parameter objects constructed from it.
type ParameterBlock struct {
	name       string
	config     *config.Config
	components map[string]*Component
	params     map[string]*Param
}

// NewParameterBlock creates an empty parameter block carrying cfg.
func NewParameterBlock(name string, cfg *config.Config) *ParameterBlock {
	return &ParameterBlock{
		name:       name,
		config:     cfg,
		components: make(map[string]*Component),
		params:     make(map[string]*Param),
	}
}

// Name returns the block's display name.
func (pb *ParameterBlock) Name() string {
	return pb.name
}

// Config returns the package-level configuration.
func (pb *ParameterBlock) Config() *config.Config {
	return pb.config
}

// AddComponent registers a component with its own configuration.
func (pb *ParameterBlock) AddComponent(name string, cfg *config.Config) *Component {
	if _, exists := pb.components[name]; exists {
		panic(fmt.Sprintf("component %q already registered on %s", name, pb.name))
	}
	comp := &Component{
		name:   fmt.Sprintf("%s.%s", pb.name, name),
		config: cfg,
		params: make(map[string]*Param),
	}
	pb.components[name] = comp
	return comp
}

// GetComponent returns the component registered under name.
func (pb *ParameterBlock) GetComponent(name string) (*Component, error) {
	comp, ok := pb.components[name]
	if !ok {
		return nil, &ComponentNotFoundError{Block: pb.name, Component: name}
	}
	return comp, nil
}

// ComponentNames returns registered component names in sorted order.
func (pb *ParameterBlock) ComponentNames() []string {
	names := make([]string, 0, len(pb.components))
	for name := range pb.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddParam constructs an unset parameter on the block.
func (pb *ParameterBlock) AddParam(name string, unit units.Unit) *Param {
	if _, exists := pb.params[name]; exists {
		panic(fmt.Sprintf("parameter %q already constructed on %s", name, pb.name))
	}
	p := NewParam(name, unit)
	pb.params[name] = p
	return p
}

// Param returns the parameter constructed under name.
func (pb *ParameterBlock) Param(name string) (*Param, error) {
	p, ok := pb.params[name]
	if !ok {
		return nil, &ParamNotFoundError{Block: pb.name, Param: name}
	}
	return p, nil
}

// ParamNames returns constructed parameter names in sorted order.
func (pb *ParameterBlock) ParamNames() []string {
	names := make([]string, 0, len(pb.params))
	for name := range pb.params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Component is a chemical species registered on a parameter block, carrying
// its own configuration and parameters.
type Component struct {
	name   string
	config *config.Config
	params map[string]*Param
}

// Name returns the component's qualified display name.
func (c *Component) Name() string {
	return c.name
}

// Config returns the component's configuration.
func (c *Component) Config() *config.Config {
	return c.config
}

// AddParam constructs an unset parameter on the component.
func (c *Component) AddParam(name string, unit units.Unit) *Param {
	if _, exists := c.params[name]; exists {
		panic(fmt.Sprintf("parameter %q already constructed on %s", name, c.name))
	}
	p := NewParam(name, unit)
	c.params[name] = p
	return p
}

// Param returns the parameter constructed under name.
func (c *Component) Param(name string) (*Param, error) {
	p, ok := c.params[name]
	if !ok {
		return nil, &ParamNotFoundError{Block: c.name, Param: name}
	}
	return p, nil
}

// ParamNames returns constructed parameter names in sorted order.
func (c *Component) ParamNames() []string {
	names := make([]string, 0, len(c.params))
	for name := range c.params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParamValue returns the stored value of a constructed, assigned parameter.
// It satisfies the evaluation surface property methods see.
func (c *Component) ParamValue(name string) (float64, error) {
	p, err := c.Param(name)
	if err != nil {
		return 0, err
	}
	v, ok := p.Value()
	if !ok {
		return 0, fmt.Errorf("parameter %q on %s has no value assigned", name, c.name)
	}
	return v, nil
}

// Block is a state block: the object property expressions are built on,
// bound to the parameter block that owns its configuration.
type Block struct {
	name   string
	params *ParameterBlock
	vars   map[string]*Var
}

// NewBlock creates a state block bound to params.
func NewBlock(name string, params *ParameterBlock) *Block {
	return &Block{
		name:   name,
		params: params,
		vars:   make(map[string]*Var),
	}
}

// AddVar constructs a state variable on the block.
func (b *Block) AddVar(name string, unit units.Unit) *Var {
	if _, exists := b.vars[name]; exists {
		panic(fmt.Sprintf("state variable %q already constructed on %s", name, b.name))
	}
	v := NewVar(name, unit)
	b.vars[name] = v
	return v
}

// Var returns the state variable constructed under name.
func (b *Block) Var(name string) (*Var, error) {
	v, ok := b.vars[name]
	if !ok {
		return nil, fmt.Errorf("%s has no state variable named %q", b.name, name)
	}
	return v, nil
}

// VarNames returns constructed state-variable names in sorted order.
func (b *Block) VarNames() []string {
	names := make([]string, 0, len(b.vars))
	for name := range b.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StateValue returns the current value of a constructed, assigned state
// variable. It satisfies the evaluation surface property methods see.
func (b *Block) StateValue(name string) (float64, error) {
	v, err := b.Var(name)
	if err != nil {
		return 0, err
	}
	val, ok := v.Value()
	if !ok {
		return 0, fmt.Errorf("state variable %q on %s has no value assigned", name, b.name)
	}
	return val, nil
}

// Name returns the block's display name.
func (b *Block) Name() string {
	return b.name
}

// Params returns the owning parameter block.
func (b *Block) Params() *ParameterBlock {
	return b.params
}

// ParamValue returns the stored value of a parameter on the owning parameter
// block. It satisfies the evaluation surface property methods see.
func (b *Block) ParamValue(name string) (float64, error) {
	p, err := b.params.Param(name)
	if err != nil {
		return 0, err
	}
	v, ok := p.Value()
	if !ok {
		return 0, fmt.Errorf("parameter %q on %s has no value assigned", name, b.params.Name())
	}
	return v, nil
}
