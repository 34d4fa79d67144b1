package resolve

import (
	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/model"
)

// Method resolves the configuration option named by key on the block's
// parameter block into the callable that computes the property.
func Method(b *model.Block, key string) (config.Method, error) {
	return methodFrom(b.Name(), b.Params().Config(), key)
}

// ComponentMethod resolves key against the configuration of the named
// component instead of the package-level configuration. The component
// lookup's not-found error propagates untouched.
func ComponentMethod(b *model.Block, key, comp string) (config.Method, error) {
	c, err := b.Params().GetComponent(comp)
	if err != nil {
		return nil, err
	}
	return methodFrom(b.Name(), c.Config(), key)
}

// methodFrom applies one resolution rule per spec variant. A namespace
// configured for key is replaced by its member of the same name before the
// callable check, so a library can be configured wholesale for a slot.
func methodFrom(owner string, cfg *config.Config, key string) (config.Method, error) {
	spec, declared := cfg.Method(key)
	if !declared {
		return nil, &InvalidKeyError{Block: owner, Key: key}
	}
	if spec == nil {
		return nil, &NotProvidedError{Block: owner, Property: key}
	}

	if ns, ok := spec.(*config.Namespace); ok {
		member, ok := ns.Member(key)
		if !ok {
			return nil, &MalformedValueError{Block: owner, Key: key}
		}
		spec = member
	}

	switch v := spec.(type) {
	case config.Callable:
		if v.Fn == nil {
			return nil, &MalformedValueError{Block: owner, Key: key}
		}
		return v.Fn, nil
	case config.Provider:
		if v.P == nil {
			return nil, &MalformedValueError{Block: owner, Key: key}
		}
		return v.P.ReturnExpression, nil
	default:
		// A namespace nested inside a namespace, or an unknown variant.
		return nil, &MalformedValueError{Block: owner, Key: key}
	}
}

// ComponentObject returns the component registered under comp on the block's
// parameter block. It delegates to the registry lookup and propagates its
// error untouched.
func ComponentObject(b *model.Block, comp string) (*model.Component, error) {
	return b.Params().GetComponent(comp)
}
