// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Dependencies carries the shared wiring handed to every module at mount
// time.
type Dependencies struct {
	AppName string
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
