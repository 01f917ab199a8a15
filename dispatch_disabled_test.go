//go:build !effxtest

package effx_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/effx-go/effx"
)

// TestDispatch_Disabled_AlwaysRunsDefault verifies the production gate:
// without the effxtest build tag, Dispatch executes the declared default
// even when a binding exists for the owner, and never consumes it.
func TestDispatch_Disabled_AlwaysRunsDefault(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(effx.Enabled).To(BeFalse())

	iface := declareKV(t, g)
	owner := effx.Init(t)

	g.Expect(owner.Bind(iface, "get", effx.BindValue(7))).To(Succeed())

	vals, err := effx.Dispatch(owner, iface, "get")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(vals).To(Equal([]any{42}), "default wins with the gate off")
}

// TestDispatch_Disabled_UndeclaredDefaultErrors verifies that dispatching an
// effect declared without a default reports ErrNoDefault instead of
// consulting bindings.
func TestDispatch_Disabled_UndeclaredDefaultErrors(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	iface := declareKV(t, g)
	owner := effx.Init(t)

	_, err := effx.Dispatch(owner, iface, "put", "k", 1)
	g.Expect(err).To(MatchError(effx.ErrNoDefault))
}
