// Package routepath stores canonical HTTP paths for web modules.
package routepath

const (
	Root         = "/"
	Health       = "/up"
	ReleaseLog   = "/release-log"
	StaticPrefix = "/static/"
)
