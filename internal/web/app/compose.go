// Package app composes web modules into a single root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/textdata/web/internal/web/module"
)

// ComposeInput carries the modules and shared wiring for composition.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Composer wires root mux mounts from module declarations.
type Composer struct{}

// Compose builds a root HTTP handler from the given modules. Each module
// owns its declared prefix; duplicate prefixes are a wiring error.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
	}

	return root, nil
}

// resolveMount validates a module mount. Prefixes are registered verbatim
// so exact paths like /release-log do not pick up a subtree match.
func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := strings.TrimSpace(mount.Prefix)
	if prefix == "" {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if !strings.HasPrefix(prefix, "/") {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix %q must start with /", feature.ID(), prefix)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}
