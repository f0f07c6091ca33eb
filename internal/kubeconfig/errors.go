package kubeconfig

import "fmt"

// ConfigUnavailableError describes why the kubeconfig could not be read.
// Load recovers from it by returning an empty Document; only LoadStrict
// surfaces it.
type ConfigUnavailableError struct {
	Path string
	// Reason is one of "missing", "unreadable" or "unparsable".
	Reason string
	Err    error
}

func (e *ConfigUnavailableError) Error() string {
	return fmt.Sprintf("kubeconfig %s is %s: %v", e.Path, e.Reason, e.Err)
}

func (e *ConfigUnavailableError) Unwrap() error {
	return e.Err
}

// WriteError is returned when the kubeconfig cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write kubeconfig %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
