package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateSnippet is returned when registering a snippet whose label
	// is already taken within the same document.
	ErrDuplicateSnippet = zerr.New("duplicate snippet identifier")

	// ErrMissingDependency is returned when a snippet declares a dependency
	// that does not exist in the registry.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the dependency declarations form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrSnippetNotFound is returned when a requested snippet is not in the registry.
	ErrSnippetNotFound = zerr.New("snippet not found")

	// ErrUnknownOption is returned when a chunk header carries an
	// unrecognized option key.
	ErrUnknownOption = zerr.New("unknown chunk option")

	// ErrInvalidOption is returned when a chunk option value cannot be
	// converted to the option's type.
	ErrInvalidOption = zerr.New("invalid chunk option value")

	// ErrNoDocumentSpecified is returned when a command that operates on a
	// document is invoked without one.
	ErrNoDocumentSpecified = zerr.New("no document specified")

	// ErrEngineNotConfigured is returned when a snippet must be executed but
	// no engine command is configured.
	ErrEngineNotConfigured = zerr.New("engine command not configured")

	// ErrExecutionFailed is returned when a snippet execution fails.
	// The remaining snippets are not attempted.
	ErrExecutionFailed = zerr.New("snippet execution failed")
)
