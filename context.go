package effx

import "context"

// ownerContextKey is the private context key for owner propagation.
type ownerContextKey struct{}

// WithOwner returns a context carrying the owner identity. Bind it at spawn
// time so child goroutines dispatch under their parent's scope — owner
// discovery is always explicit, never an ancestor lookup.
func WithOwner(ctx context.Context, owner Owner) context.Context {
	return context.WithValue(ctx, ownerContextKey{}, owner)
}

// OwnerFromContext returns the owner bound by WithOwner, if any.
func OwnerFromContext(ctx context.Context) (Owner, bool) {
	owner, ok := ctx.Value(ownerContextKey{}).(Owner)
	return owner, ok
}
