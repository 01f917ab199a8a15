package registry

import "fmt"

// scopeKind tags the three visibility levels a binding can have.
type scopeKind int

const (
	scopeOwner scopeKind = iota
	scopeGlobal
	scopeOmnipresent
)

// Scope identifies the visibility level of a binding partition.
// It is a tagged variant: Owner(id) for a single execution context,
// Global for a deliberately serialized test group, and Omnipresent for
// process-wide defaults seeded at bootstrap.
//
// Scope is a comparable value type and is used directly as a map key.
type Scope struct {
	kind scopeKind
	id   string
}

// OwnerScope returns the scope for a single execution context with the
// given opaque identity.
func OwnerScope(id string) Scope {
	return Scope{kind: scopeOwner, id: id}
}

// GlobalScope returns the shared scope for serialized test groups.
func GlobalScope() Scope {
	return Scope{kind: scopeGlobal}
}

// OmnipresentScope returns the process-wide default scope.
func OmnipresentScope() Scope {
	return Scope{kind: scopeOmnipresent}
}

// IsOwner reports whether the scope is an Owner scope.
func (s Scope) IsOwner() bool {
	return s.kind == scopeOwner
}

// IsGlobal reports whether the scope is the Global scope.
func (s Scope) IsGlobal() bool {
	return s.kind == scopeGlobal
}

// IsOmnipresent reports whether the scope is the Omnipresent scope.
func (s Scope) IsOmnipresent() bool {
	return s.kind == scopeOmnipresent
}

// OwnerID returns the owner identity, or "" for Global and Omnipresent.
func (s Scope) OwnerID() string {
	return s.id
}

// String renders the scope for error messages and trace logs.
func (s Scope) String() string {
	switch s.kind {
	case scopeOwner:
		return fmt.Sprintf("owner(%s)", s.id)
	case scopeGlobal:
		return "global"
	case scopeOmnipresent:
		return "omnipresent"
	default:
		panic("unrecognized scope kind")
	}
}
