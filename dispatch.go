package effx

// Dispatch is the runtime replacement for a generated dispatch wrapper: call
// it at an effect call site with the current owner, and it either forwards
// into the binding registry or runs the declared default.
//
// In a production build (no effxtest tag) Enabled is a false constant, so the
// branch below folds away and every dispatch compiles to direct default
// execution: the binding partitions are never consulted. In a test build the
// mocked check decides per call.
//
// Call-time failures (ErrUnmocked, ErrNotFound, ErrExhausted) surface as the
// returned error; treat them as test assertion failures, never as values to
// retry or default.
func Dispatch(owner Owner, iface, name string, args ...any) ([]any, error) {
	if !Enabled {
		return reg.DefaultCall(iface, name, args)
	}

	if !reg.Mocked(owner.scope, iface) {
		return reg.DefaultCall(iface, name, args)
	}

	return reg.Call(owner.scope, iface, name, args)
}

// Mocked reports whether a dispatch under owner for iface would definitely
// not fall through to the default path: a mock exists at the owner's exact
// scope or at Omnipresent. Global is intentionally not consulted — only the
// exact scope and Omnipresent can make that guarantee independent of test
// mode.
func Mocked(owner Owner, iface string) bool {
	return reg.Mocked(owner.scope, iface)
}
