package effx

import (
	"github.com/google/uuid"

	"github.com/effx-go/effx/internal/registry"
)

// Scope is the visibility level of a binding partition: Owner(id), Global,
// or Omnipresent.
type Scope = registry.Scope

// OwnerScope returns the scope for a single execution context with the
// given opaque identity.
func OwnerScope(id string) Scope {
	return registry.OwnerScope(id)
}

// GlobalScope returns the shared scope for deliberately serialized test
// groups.
func GlobalScope() Scope {
	return registry.GlobalScope()
}

// OmnipresentScope returns the process-wide default scope.
func OmnipresentScope() Scope {
	return registry.OmnipresentScope()
}

// NewOwnerID mints a fresh opaque owner identity. UUIDs guarantee that
// concurrently initialized tests can never collide on a partition.
func NewOwnerID() string {
	return uuid.NewString()
}
