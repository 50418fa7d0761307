package core

import "fmt"

// ConfigurationError reports an invalid matrix configuration, such as an
// algorithm id the capability table does not know. It is raised before any
// experiment unit is invoked and aborts the whole run.
type ConfigurationError struct {
	Subject string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Subject, e.Reason)
}

// SchemaError reports an experiment unit result set that violates the
// named-output contract: a required name resolved to zero or multiple
// values, or a declared rating metric was missing or non-finite.
type SchemaError struct {
	Name   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("result schema: %s: %s", e.Name, e.Reason)
}

// ExecutionError wraps a failure inside an experiment unit run. The cause
// is preserved unmodified; a single failing cell invalidates the batch.
type ExecutionError struct {
	Entry MatrixEntry
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("experiment %s/%s: %v", e.Entry.Algorithm, e.Entry.Size, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
