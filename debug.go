//go:build !vectordebug

package vector

// debugChecks enables precondition assertions on unchecked operations.
// Build with -tags vectordebug to turn them on.
const debugChecks = false
