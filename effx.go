// Package effx lets test code substitute alternate implementations for
// declared side-effecting functions at runtime, with call-count
// expectations, chained multi-step bindings, and visibility scoped to an
// execution-context hierarchy (owner, global, omnipresent).
//
// This is the public API entry point. The binding engine lives in
// internal/registry.
package effx

import (
	log "github.com/sirupsen/logrus"

	"github.com/effx-go/effx/internal/registry"
)

// Types re-exported from internal/registry.

// EffectDecl declares one effect function: name, arity, and optional
// default implementation.
type EffectDecl = registry.EffectDecl

// Expectation describes one unmet expected-call count.
type Expectation = registry.Expectation

// VerificationError aggregates every unmet expected-call-count entry for a
// scope into one teardown failure.
type VerificationError = registry.VerificationError

// Registry is the serialized binding store. Most tests use the package-level
// instance through Init/Bind/Dispatch; NewRegistry exists for embedding the
// engine elsewhere.
type Registry = registry.Registry

// TestReporter is the minimal interface effx needs from test frameworks.
// *testing.T satisfies it.
type TestReporter = registry.TestReporter

// Errors re-exported from internal/registry.
var (
	ErrFunctionNotDeclared = registry.ErrFunctionNotDeclared
	ErrBadDeclaration      = registry.ErrBadDeclaration
	ErrUnboundedTail       = registry.ErrUnboundedTail
	ErrBadBinding          = registry.ErrBadBinding
	ErrNotFound            = registry.ErrNotFound
	ErrUnmocked            = registry.ErrUnmocked
	ErrExhausted           = registry.ErrExhausted
	ErrNotBound            = registry.ErrNotBound
	ErrNoDefault           = registry.ErrNoDefault
)

// NewRegistry returns a fresh, empty binding registry independent of the
// package-level one.
func NewRegistry() *Registry {
	return registry.New()
}

// reg is the process-wide registry behind the package-level API. Per the
// serialization contract, it is a single owned service guarded by a mutex,
// not ad hoc shared state.
//
//nolint:gochecknoglobals // Package-level registry is intentional for test coordination
var reg = registry.New()

// Declare registers iface's effect set with the package-level registry.
// Call it at process startup, typically from an init function next to the
// effect definitions, before any test binds or dispatches.
func Declare(iface string, effects ...EffectDecl) error {
	return reg.Declare(iface, effects...)
}

// SetTraceLogger installs a logrus logger for debug traces of binding
// resolution on the package-level registry. Pass nil to silence tracing.
func SetTraceLogger(logger *log.Logger) {
	reg.SetTraceLogger(logger)
}
