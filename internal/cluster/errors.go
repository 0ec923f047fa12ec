package cluster

import "fmt"

// ConfigurationError represents a recoverable spec-level problem. Builders
// collect these on the build result instead of aborting, so a caller sees
// every configuration problem in a single pass.
type ConfigurationError struct {
	Field   string // Configuration field that failed validation
	Message string // Human-readable error message
}

// Error implements the error interface.
func (e ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
}

// PreconditionError indicates an operation was attempted on a resource that
// is missing a required capability, e.g. rotating credentials on a cluster
// without an attached secret, or reading an endpoint that was never supplied
// at import time. It is fatal to the specific call only.
type PreconditionError struct {
	Op      string // Operation that failed
	Message string // What was missing
}

// Error implements the error interface.
func (e PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// AlreadyExistsError indicates a duplicate registration, e.g. a second
// single-user rotation job on the same cluster.
type AlreadyExistsError struct {
	Resource string // Resource kind, e.g. "rotation job"
	ID       string // Identity under which the duplicate was registered
}

// Error implements the error interface.
func (e AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Resource, e.ID)
}
