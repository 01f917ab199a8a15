package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Error philosophy:
//
// Failures: bind-time and call-time errors are returned as wrapped sentinel
// errors so callers can fail the enclosing test deterministically with
// errors.Is. They are never retried and never silently defaulted.
//
// Panics: conditions which imply a programming mistake in the harness itself
// (not in the test being run) panic instead.

// Bind-time errors. State is left unchanged when these are returned.
var (
	// ErrFunctionNotDeclared means the bind target is not among the
	// interface's declared effects.
	ErrFunctionNotDeclared = errors.New("function not declared")

	// ErrBadDeclaration means an effect declaration is malformed: a default
	// that is not a func, or a default whose arity disagrees with the
	// declared arity.
	ErrBadDeclaration = errors.New("bad effect declaration")

	// ErrUnboundedTail means a binding would be unreachable: either a second
	// unbounded binding for the same (name, arity), or any binding appended
	// after an unbounded one.
	ErrUnboundedTail = errors.New("binding after unbounded tail")

	// ErrBadBinding means the bind implementation is not a func, Value, or
	// Default marker.
	ErrBadBinding = errors.New("bad binding implementation")
)

// Call-time errors. All identify scope, interface, name, and arity when
// wrapped by the registry.
var (
	// ErrNotFound means no binding entry ever existed for (name, arity).
	ErrNotFound = errors.New("function not found in mock")

	// ErrUnmocked means the only entry for (name, arity) is the placeholder
	// seeded at mock creation: the interface is bound, this function is not.
	ErrUnmocked = errors.New("function not mocked")

	// ErrExhausted means entries exist but every expected-call ceiling has
	// been consumed.
	ErrExhausted = errors.New("mocked function calls exhausted")

	// ErrNotBound means no mock exists anywhere in the scope chain. Dispatch
	// treats this as "not mocked" and runs the default implementation.
	ErrNotBound = errors.New("interface not bound in any scope")

	// ErrNoDefault means a binding deferred to the interface default, but the
	// declaration registered no default implementation.
	ErrNoDefault = errors.New("no default implementation declared")
)

// Expectation describes one unmet expected-call count, for verification
// reporting.
type Expectation struct {
	Interface string
	Name      string
	Arity     int
	Expected  uint
	Actual    uint
}

func (e Expectation) String() string {
	return fmt.Sprintf("%s.%s/%d: expected %d calls, got %d",
		e.Interface, e.Name, e.Arity, e.Expected, e.Actual)
}

// VerificationError aggregates every unmet expected-call-count entry for a
// scope into one failure. It is raised once, at test teardown, never
// mid-test.
type VerificationError struct {
	Scope Scope
	Unmet []Expectation
}

func (e *VerificationError) Error() string {
	lines := make([]string, 0, len(e.Unmet)+1)
	lines = append(lines, fmt.Sprintf("verification failed for scope %s:", e.Scope))

	for _, unmet := range e.Unmet {
		lines = append(lines, "  "+unmet.String())
	}

	return strings.Join(lines, "\n")
}
