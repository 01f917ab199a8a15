//go:build effxtest

package effx

// Enabled reports whether dispatch consults the binding registry. Build with
// -tags effxtest in test builds; without the tag, Dispatch compiles to
// direct default execution.
const Enabled = true
