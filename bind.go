package effx

import (
	"fmt"
	"reflect"

	"github.com/effx-go/effx/internal/registry"
)

// Value is the constant-result binding marker returned by BindValue.
type Value struct {
	vals []any
}

// BindValue wraps constant values as a binding implementation: the bound
// call ignores all arguments and returns vals. The binding's arity defaults
// to 0; set it with WithArity when the effect takes arguments.
func BindValue(vals ...any) Value {
	return Value{vals: vals}
}

// Default is the explicit defer-to-default binding marker returned by
// BindDefault.
type Default struct {
	arity int
}

// BindDefault marks a binding that defers to the interface's own default
// implementation for the effect with the given arity. Use it to fill in
// declared functions you don't care to replace once an interface is bound.
func BindDefault(arity int) Default {
	return Default{arity: arity}
}

// BindOption adjusts a single binding.
type BindOption func(*bindConfig)

type bindConfig struct {
	calls *uint
	arity *int
}

// WithCalls sets the binding's expected-call count. The binding is consumed
// after exactly n calls, and Verify fails the test unless it was called
// exactly n times.
func WithCalls(n uint) BindOption {
	return func(cfg *bindConfig) {
		cfg.calls = &n
	}
}

// WithArity overrides the binding's arity. Needed for BindValue on effects
// that take arguments; for funcs the arity is taken from the signature.
func WithArity(n int) BindOption {
	return func(cfg *bindConfig) {
		cfg.arity = &n
	}
}

// Bind appends a binding for iface's effect under the owner's scope. impl
// may be a func (invoked with the call's arguments), a BindValue result, or
// a BindDefault marker. Bindings for the same (name, arity) queue up and are
// consumed in bind order.
func (o Owner) Bind(iface, name string, impl any, opts ...BindOption) error {
	return bind(o.scope, iface, name, impl, opts)
}

// MustBind is Bind that panics on error. Bind errors indicate a
// test-authoring mistake, so most tests prefer the panic.
func (o Owner) MustBind(iface, name string, impl any, opts ...BindOption) {
	err := o.Bind(iface, name, impl, opts...)
	if err != nil {
		panic(err)
	}
}

// Omnipresent appends a process-wide default binding for iface's effect,
// visible to every owner unless shadowed by an owner or global binding.
// It may only be called outside active tests — seed it at process bootstrap,
// before any Init — and panics otherwise, or on a bad binding: both are
// bootstrap bugs, not test failures.
func Omnipresent(iface, name string, impl any, opts ...BindOption) {
	if n := activeOwners(); n > 0 {
		panic(fmt.Sprintf("effx.Omnipresent(%s.%s) called during an active test (%d owners live)", iface, name, n))
	}

	err := bind(registry.OmnipresentScope(), iface, name, impl, opts)
	if err != nil {
		panic(err)
	}
}

func bind(scope registry.Scope, iface, name string, impl any, opts []BindOption) error {
	var cfg bindConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	regImpl, arity, err := buildImpl(impl, cfg)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", iface, name, err)
	}

	return reg.AddFun(scope, iface, name, arity, regImpl, cfg.calls)
}

// buildImpl maps the public impl forms onto the registry's tagged variant
// and resolves the binding arity.
func buildImpl(impl any, cfg bindConfig) (registry.Impl, int, error) {
	switch marker := impl.(type) {
	case Value:
		arity := 0
		if cfg.arity != nil {
			arity = *cfg.arity
		}

		return registry.ImplValue(marker.vals...), arity, nil
	case Default:
		return registry.ImplDefault(), marker.arity, nil
	default:
		if impl == nil || reflect.TypeOf(impl).Kind() != reflect.Func {
			return registry.Impl{}, 0, fmt.Errorf("%w: %T is not a func, Value, or Default", ErrBadBinding, impl)
		}

		arity := reflect.TypeOf(impl).NumIn()
		if cfg.arity != nil {
			arity = *cfg.arity
		}

		return registry.ImplFunc(impl), arity, nil
	}
}
