package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/ctxlog"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses a single .hcl property-package file and translates it into the
// unified model, resolving method references against src.
func (l *Loader) Load(ctx context.Context, path string, src config.MethodSource) (*config.PackageConfig, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding property package file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}

	var root rootSchema
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", path, diags.Error())
	}

	if len(root.Packages) != 1 {
		return nil, fmt.Errorf("%s must contain exactly one property_package block, found %d", path, len(root.Packages))
	}

	pc, err := translatePackage(ctx, root.Packages[0], src)
	if err != nil {
		return nil, fmt.Errorf("in %s: %w", path, err)
	}

	logger.Debug("Successfully decoded property package file.",
		"path", path, "package", pc.Name, "components", len(pc.Components))
	return pc, nil
}
