package domain

import "fmt"

// ValidationError reports invalid user input (entry too short, malformed
// settings). Recovered locally, shown inline, never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigurationError reports a missing credential. It directs the user to
// the settings surface rather than aborting the process.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// NewConfigurationError builds a ConfigurationError from a format string.
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// CollaboratorKind distinguishes the error signals the external
// collaborators are able to express.
type CollaboratorKind string

const (
	CollaboratorInvalidCredential CollaboratorKind = "invalid_credential"
	CollaboratorQuotaExceeded     CollaboratorKind = "quota_exceeded"
	CollaboratorGeneric           CollaboratorKind = "generic"
)

// CollaboratorError reports a failed call to an external collaborator.
// Classification failures abort the analyze operation; music-search
// failures are swallowed by the orchestrator.
type CollaboratorError struct {
	Service string // "openai" | "youtube"
	Kind    CollaboratorKind
	Msg     string
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Msg)
}
