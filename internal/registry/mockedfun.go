package registry

// ImplKind tags the variant held by an Impl.
type ImplKind int

const (
	// KindUnmocked is the placeholder seeded for every declared effect when a
	// mock is created. Calling it is an error.
	KindUnmocked ImplKind = iota
	// KindDefault defers to the interface's own default implementation.
	KindDefault
	// KindFunc is a replacement callable, invoked via reflection.
	KindFunc
	// KindValue is a constant result: the call ignores its arguments and
	// returns the stored values.
	KindValue
)

// Impl is the replacement behavior of a binding, represented as a tagged
// variant so call-time selection can switch exhaustively instead of
// overloading a single callable type.
type Impl struct {
	kind ImplKind
	fn   any
	vals []any
}

// ImplUnmocked returns the placeholder variant.
func ImplUnmocked() Impl {
	return Impl{kind: KindUnmocked}
}

// ImplDefault returns the defer-to-default variant.
func ImplDefault() Impl {
	return Impl{kind: KindDefault}
}

// ImplFunc returns the callable variant. fn must be a func; the facade
// validates this before the registry ever sees it.
func ImplFunc(fn any) Impl {
	return Impl{kind: KindFunc, fn: fn}
}

// ImplValue returns the constant-result variant.
func ImplValue(vals ...any) Impl {
	return Impl{kind: KindValue, vals: vals}
}

// Kind returns the variant tag.
func (im Impl) Kind() ImplKind {
	return im.kind
}

// MockedFun is one binding entry: a declared effect name and arity, its
// replacement behavior, an optional expected-call ceiling, and the count of
// calls consumed so far.
//
// Invariant: CallsMade never exceeds *ExpectedCalls when ExpectedCalls is
// set; the registry stops selecting an entry once it is exhausted.
type MockedFun struct {
	Name          string
	Arity         int
	Impl          Impl
	ExpectedCalls *uint
	CallsMade     uint
}

// Satisfied reports whether the entry's expectation is met: no ceiling, or
// exactly the expected number of calls made.
func (f *MockedFun) Satisfied() bool {
	return f.ExpectedCalls == nil || f.CallsMade == *f.ExpectedCalls
}

// Exhausted reports whether the entry's ceiling is fully consumed, making it
// ineligible for further selection. An unbounded entry is never exhausted.
func (f *MockedFun) Exhausted() bool {
	return f.ExpectedCalls != nil && f.CallsMade == *f.ExpectedCalls
}

// matches reports whether the entry answers calls for (name, arity).
func (f *MockedFun) matches(name string, arity int) bool {
	return f.Name == name && f.Arity == arity
}
