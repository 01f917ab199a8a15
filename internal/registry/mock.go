package registry

import (
	"fmt"
	"slices"
)

// Mock is the ordered collection of binding entries for one
// (scope, interface) pair. It owns the matching and consumption logic:
// entries sharing a (name, arity) are consumed strictly in insertion order.
//
// A Mock is created lazily on the first bind for its pair and seeded with one
// Unmocked placeholder per declared effect, so an interface always answers
// for its whole declared set once any part of it is bound.
type Mock struct {
	iface   string
	entries []*MockedFun
}

// newMock creates a Mock for iface seeded with placeholders for the declared
// (name, arity) set.
func newMock(iface string, declared []funcKey) *Mock {
	mock := &Mock{iface: iface}

	for _, key := range declared {
		mock.entries = append(mock.entries, &MockedFun{
			Name:  key.name,
			Arity: key.arity,
			Impl:  ImplUnmocked(),
		})
	}

	return mock
}

// add appends a binding entry, first removing the Unmocked placeholder for
// the exact (name, arity) if one is still present.
//
// The unbounded-tail convention is enforced here: at most one entry per
// (name, arity) may lack an expected-call ceiling, and nothing may be
// appended behind it, because an entry queued after an unbounded one can
// never be selected.
func (m *Mock) add(entry *MockedFun) error {
	for _, existing := range m.entries {
		if !existing.matches(entry.Name, entry.Arity) {
			continue
		}

		if existing.Impl.Kind() != KindUnmocked && existing.ExpectedCalls == nil {
			return fmt.Errorf("%w: %s.%s/%d already has an unbounded binding",
				ErrUnboundedTail, m.iface, entry.Name, entry.Arity)
		}
	}

	m.entries = slices.DeleteFunc(m.entries, func(existing *MockedFun) bool {
		return existing.matches(entry.Name, entry.Arity) && existing.Impl.Kind() == KindUnmocked
	})

	m.entries = append(m.entries, entry)

	return nil
}

// next selects the entry that answers a call to (name, arity): the first
// non-exhausted entry in insertion order. The three failure shapes are
// distinguished: no entry ever existed (ErrNotFound), the placeholder is all
// there is (ErrUnmocked), or every entry's ceiling is consumed
// (ErrExhausted).
func (m *Mock) next(name string, arity int) (*MockedFun, error) {
	found := false

	for _, entry := range m.entries {
		if !entry.matches(name, arity) {
			continue
		}

		found = true

		if entry.Impl.Kind() == KindUnmocked {
			return nil, ErrUnmocked
		}

		if !entry.Exhausted() {
			return entry, nil
		}
	}

	if !found {
		return nil, ErrNotFound
	}

	return nil, ErrExhausted
}

// unsatisfied returns the expectations for entries whose expected-call count
// is set and not yet met, in insertion order.
func (m *Mock) unsatisfied() []Expectation {
	var unmet []Expectation

	for _, entry := range m.entries {
		if entry.ExpectedCalls == nil || entry.Satisfied() {
			continue
		}

		unmet = append(unmet, Expectation{
			Interface: m.iface,
			Name:      entry.Name,
			Arity:     entry.Arity,
			Expected:  *entry.ExpectedCalls,
			Actual:    entry.CallsMade,
		})
	}

	return unmet
}
