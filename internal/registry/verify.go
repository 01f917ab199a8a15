package registry

import log "github.com/sirupsen/logrus"

// Verify gathers the unmet expected-call-count entries for scope and, if any
// exist, returns a single aggregated *VerificationError naming every one.
// It is meant to run once at test teardown, after the test body and before
// CleanAfterTest.
func (r *Registry) Verify(scope Scope) error {
	r.mu.Lock()
	unmet := r.unsatisfiedLocked(scope)
	r.mu.Unlock()

	if len(unmet) == 0 {
		return nil
	}

	r.trace.WithFields(log.Fields{
		"scope": scope.String(),
		"unmet": len(unmet),
	}).Debug("verification failed")

	return &VerificationError{Scope: scope, Unmet: unmet}
}

// TestReporter is the minimal interface the harness needs from test
// frameworks. *testing.T satisfies it.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}
