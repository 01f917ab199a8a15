package registry

// Scope resolution is a pure fallback algorithm over the three visibility
// levels. Call and Mocked intentionally use different chains:
//
//   - Call falls back Owner -> Global -> Omnipresent, so owner bindings
//     shadow a serialized group's shared bindings, which shadow suite-wide
//     defaults.
//   - Mocked consults only the exact scope and Omnipresent. It answers
//     "would a call here definitely not fall through to the default path,"
//     which only the exact scope or Omnipresent can guarantee independent of
//     test mode.
//
// The asymmetry is a deliberate, tested contract; both chains are pinned
// independently in resolver_test.go.

// callChain returns the fallback order used to resolve a call made under
// scope.
func callChain(scope Scope) []Scope {
	switch {
	case scope.IsOwner():
		return []Scope{scope, GlobalScope(), OmnipresentScope()}
	case scope.IsGlobal():
		return []Scope{GlobalScope(), OmnipresentScope()}
	default:
		return []Scope{OmnipresentScope()}
	}
}

// mockedChain returns the fallback order used to answer "is this interface
// definitely mocked here."
func mockedChain(scope Scope) []Scope {
	if scope.IsOmnipresent() {
		return []Scope{OmnipresentScope()}
	}

	return []Scope{scope, OmnipresentScope()}
}
