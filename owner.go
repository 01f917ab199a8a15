package effx

import (
	"sync"

	"github.com/effx-go/effx/internal/registry"
)

// Owner is a test's handle on its binding partition. Obtain one with Init
// (per-owner mode) or InitGlobal (serialized global mode) and pass it
// explicitly to any spawned goroutine that dispatches effects — there is no
// ancestor lookup; propagation is always explicit, by parameter or via
// WithOwner on a context.
type Owner struct {
	scope registry.Scope
}

// Scope returns the owner's registry scope.
func (o Owner) Scope() Scope {
	return o.scope
}

// Init records an owner identity for the test and returns it. Multiple calls
// with the same TestReporter return the same Owner, so mocks set up in
// helpers share the test's partition.
//
// If the TestReporter supports Cleanup (like *testing.T), teardown is
// registered automatically: Verify runs first and fails the test on unmet
// expectations, then CleanAfterTest purges the owner and global partitions.
func Init(t TestReporter) Owner {
	return initOwner(t, registry.OwnerScope(NewOwnerID()))
}

// InitGlobal is Init for a deliberately serialized test group sharing one
// binding set under the Global scope. Tests using InitGlobal must not run
// concurrently with each other; the registry does not enforce this.
func InitGlobal(t TestReporter) Owner {
	return initOwner(t, registry.GlobalScope())
}

// Verify gathers every unmet expected-call-count entry in the owner's scope
// and returns one aggregated *VerificationError, or nil. Init-registered
// teardown calls this automatically; call it directly when managing the
// lifecycle by hand.
func Verify(o Owner) error {
	return reg.Verify(o.scope)
}

// CleanAfterTest removes the binding partitions for the owner's scope and
// for Global. Omnipresent bindings survive. Init-registered teardown calls
// this automatically, after Verify.
func CleanAfterTest(o Owner) {
	reg.CleanAfterTest(o.scope)

	ownersMu.Lock()
	for t, owner := range owners {
		if owner == o {
			delete(owners, t)
		}
	}
	ownersMu.Unlock()
}

func initOwner(t TestReporter, scope registry.Scope) Owner {
	ownersMu.Lock()
	defer ownersMu.Unlock()

	if owner, ok := owners[t]; ok {
		return owner
	}

	owner := Owner{scope: scope}
	owners[t] = owner

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			finishTest(t, owner)
		})
	}

	return owner
}

// finishTest is the automatic teardown: verify, then clean. Cleanup runs
// even when verification fails, so a failed test never leaks its partition
// into later owners.
func finishTest(t TestReporter, owner Owner) {
	t.Helper()

	err := reg.Verify(owner.scope)

	CleanAfterTest(owner)

	if err != nil {
		t.Fatalf("%v", err)
	}
}

// activeOwners reports how many tests currently hold an owner identity.
// Omnipresent seeding is only legal when this is zero.
func activeOwners() int {
	ownersMu.Lock()
	defer ownersMu.Unlock()

	return len(owners)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level owner registry is intentional for test coordination
	owners = make(map[TestReporter]Owner)
	//nolint:gochecknoglobals // Mutex for owners
	ownersMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup
// functions. This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}
