// Package registry implements the scoped effect binding registry: the
// serialized store mapping scope -> interface -> mock, the ordered-queue
// matching of bindings to calls, and the scope-fallback resolution.
//
// This is the engine behind the public effx package. All mutable state lives
// in one Registry guarded by a single mutex, so every operation runs to
// completion before the next begins and no caller ever observes a partially
// updated mock.
package registry

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Registry is the shared binding store. It composes the catalog of declared
// effects, the per-scope mock partitions, and the scope resolver under a
// single-writer discipline.
type Registry struct {
	mu         sync.Mutex
	catalog    *catalog
	partitions map[Scope]map[string]*Mock
	trace      *log.Logger
}

// New returns an empty registry. Trace logging is off until SetTraceLogger
// installs a logger.
func New() *Registry {
	silent := log.New()
	silent.SetOutput(io.Discard)
	silent.SetLevel(log.PanicLevel)

	return &Registry{
		catalog:    newCatalog(),
		partitions: make(map[Scope]map[string]*Mock),
		trace:      silent,
	}
}

// SetTraceLogger installs a logger for debug traces of binding resolution.
// Pass nil to silence tracing again.
func (r *Registry) SetTraceLogger(logger *log.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if logger == nil {
		logger = log.New()
		logger.SetOutput(io.Discard)
		logger.SetLevel(log.PanicLevel)
	}

	r.trace = logger
}

// Declare registers iface's effect set, replacing any prior declaration.
func (r *Registry) Declare(iface string, effects ...EffectDecl) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.catalog.declare(iface, effects)
}

// AddFun appends a binding for (name, arity) to the mock for
// (scope, iface), creating and seeding the mock on first use. It fails with
// ErrFunctionNotDeclared when (name, arity) is not among iface's declared
// effects, and with ErrUnboundedTail when the binding could never be
// selected; in both cases state is unchanged.
func (r *Registry) AddFun(scope Scope, iface, name string, arity int, impl Impl, expected *uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.catalog.declared(iface, name, arity) {
		return fmt.Errorf("%w: %s.%s/%d", ErrFunctionNotDeclared, iface, name, arity)
	}

	mocks, ok := r.partitions[scope]
	if !ok {
		mocks = make(map[string]*Mock)
		r.partitions[scope] = mocks
	}

	mock, ok := mocks[iface]
	if !ok {
		mock = newMock(iface, r.catalog.keys(iface))
		mocks[iface] = mock
	}

	entry := &MockedFun{
		Name:          name,
		Arity:         arity,
		Impl:          impl,
		ExpectedCalls: expected,
	}

	err := mock.add(entry)
	if err != nil {
		return err
	}

	r.trace.WithFields(log.Fields{
		"scope":     scope.String(),
		"interface": iface,
		"function":  fmt.Sprintf("%s/%d", name, arity),
		"bounded":   expected != nil,
	}).Debug("binding added")

	return nil
}

// Call resolves the effective mock for (scope, iface) through the
// Owner -> Global -> Omnipresent chain, selects the first non-exhausted
// entry for (name, len(args)) in insertion order, consumes one call from it,
// and executes its implementation.
//
// The first mock found in the chain answers the call; failures within it are
// final and are not retried at wider scopes. The selected implementation runs
// outside the registry lock, so a binding may itself dispatch effects without
// deadlocking.
func (r *Registry) Call(scope Scope, iface, name string, args []any) ([]any, error) {
	arity := len(args)

	impl, defaultFn, err := r.selectImpl(scope, iface, name, arity)
	if err != nil {
		return nil, err
	}

	switch impl.Kind() {
	case KindValue:
		return slices.Clone(impl.vals), nil
	case KindFunc:
		return callFunc(impl.fn, args), nil
	case KindDefault:
		return callFunc(defaultFn, args), nil
	case KindUnmocked:
		// next() reports placeholders as ErrUnmocked before selection.
		panic("unmocked placeholder selected for execution")
	default:
		panic("unrecognized impl kind")
	}
}

// selectImpl performs the serialized part of Call: scope resolution, entry
// selection, and the calls-made increment. The increment happens before
// execution, so a panicking implementation still consumes its slot.
func (r *Registry) selectImpl(scope Scope, iface, name string, arity int) (Impl, any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, level := range callChain(scope) {
		mock, ok := r.partitions[level][iface]
		if !ok {
			continue
		}

		entry, err := mock.next(name, arity)
		if err != nil {
			return Impl{}, nil, fmt.Errorf("%s.%s/%d in scope %s: %w", iface, name, arity, scope, err)
		}

		entry.CallsMade++

		var defaultFn any

		if entry.Impl.Kind() == KindDefault {
			defaultFn, ok = r.catalog.defaultImpl(iface, name, arity)
			if !ok {
				return Impl{}, nil, fmt.Errorf("%s.%s/%d in scope %s: %w", iface, name, arity, scope, ErrNoDefault)
			}
		}

		r.trace.WithFields(log.Fields{
			"scope":      scope.String(),
			"resolved":   level.String(),
			"interface":  iface,
			"function":   fmt.Sprintf("%s/%d", name, arity),
			"calls_made": entry.CallsMade,
		}).Debug("call selected")

		return entry.Impl, defaultFn, nil
	}

	return Impl{}, nil, fmt.Errorf("%s.%s/%d in scope %s: %w", iface, name, arity, scope, ErrNotBound)
}

// Mocked reports whether a mock exists at the exact scope or at Omnipresent.
// Global is intentionally not consulted; see the resolver for the contract.
func (r *Registry) Mocked(scope Scope, iface string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, level := range mockedChain(scope) {
		if _, ok := r.partitions[level][iface]; ok {
			return true
		}
	}

	return false
}

// DefaultCall executes iface's declared default for name directly, without
// consulting any binding partition. Dispatch uses this for the unmocked
// path.
func (r *Registry) DefaultCall(iface, name string, args []any) ([]any, error) {
	arity := len(args)

	r.mu.Lock()
	defaultFn, ok := r.catalog.defaultImpl(iface, name, arity)
	r.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%s.%s/%d: %w", iface, name, arity, ErrNoDefault)
	}

	return callFunc(defaultFn, args), nil
}

// Unsatisfied returns, for every interface bound in scope, the entries whose
// expected-call count is set and not met. Interfaces are reported in name
// order and entries in insertion order, so the result is stable.
func (r *Registry) Unsatisfied(scope Scope) []Expectation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.unsatisfiedLocked(scope)
}

func (r *Registry) unsatisfiedLocked(scope Scope) []Expectation {
	mocks := r.partitions[scope]

	ifaces := make([]string, 0, len(mocks))
	for iface := range mocks {
		ifaces = append(ifaces, iface)
	}

	sort.Strings(ifaces)

	var unmet []Expectation
	for _, iface := range ifaces {
		unmet = append(unmet, mocks[iface].unsatisfied()...)
	}

	return unmet
}

// CleanAfterTest removes the partitions for scope and for Global. The
// Omnipresent partition is never touched; it lives for the process.
func (r *Registry) CleanAfterTest(scope Scope) {
	if scope.IsOmnipresent() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.partitions, scope)
	delete(r.partitions, GlobalScope())

	r.trace.WithField("scope", scope.String()).Debug("partitions cleaned")
}
