package container

import (
	"fmt"
	"strings"
)

// Scope is the sharing policy of a definition.
type Scope int

const (
	// Shared definitions are constructed once per container and every
	// resolution returns that same instance.
	//
	//	// Laravel: $app->singleton(...)
	Shared Scope = iota

	// PerRequest definitions are constructed on every resolution. The
	// container keeps no reference to the instances it hands out.
	//
	//	// Laravel: $app->bind(...)
	PerRequest
)

// String returns the human-readable name of the scope.
func (s Scope) String() string {
	switch s {
	case Shared:
		return "shared"
	case PerRequest:
		return "per-request"
	default:
		return "unknown"
	}
}

// ParseScope converts a configuration value into a Scope. The common aliases
// "singleton", "prototype" and "transient" are accepted.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shared", "singleton":
		return Shared, nil
	case "per-request", "perrequest", "prototype", "transient":
		return PerRequest, nil
	default:
		return Shared, fmt.Errorf("container: unknown scope %q", s)
	}
}
