package hclcfg

import "github.com/hashicorp/hcl/v2"

// attrsBlock captures a block whose attribute names are free-form, such as
// methods or parameter_data. The attributes are extracted and interpreted
// during translation.
type attrsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// componentBlock represents a `component` block inside a property package.
type componentBlock struct {
	Name          string      `hcl:"name,label"`
	Methods       *attrsBlock `hcl:"methods,block"`
	ParameterData *attrsBlock `hcl:"parameter_data,block"`
}

// packageBlock represents a `property_package` block.
type packageBlock struct {
	Name          string            `hcl:"name,label"`
	BaseUnits     *attrsBlock       `hcl:"base_units,block"`
	StateBounds   *attrsBlock       `hcl:"state_bounds,block"`
	Methods       *attrsBlock       `hcl:"methods,block"`
	ParameterData *attrsBlock       `hcl:"parameter_data,block"`
	Components    []*componentBlock `hcl:"component,block"`
}

// rootSchema is the top-level structure of a property-package file.
type rootSchema struct {
	Packages []*packageBlock `hcl:"property_package,block"`
}
