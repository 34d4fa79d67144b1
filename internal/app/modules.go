package app

import (
	"github.com/vk/propconf/internal/registry"
	"github.com/vk/propconf/methods/antoine"
	"github.com/vk/propconf/methods/constant"
	"github.com/vk/propconf/methods/ideal"
)

// coreModules is the definitive list of all method libraries that are
// compiled into the propconf binary.
var coreModules = []registry.Module{
	&antoine.Module{},
	&constant.Module{},
	&ideal.Module{},
}
