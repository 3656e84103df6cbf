package domain

// SnippetStatus represents the lifecycle state of a snippet during a build.
type SnippetStatus string

const (
	// StatusPending indicates the snippet is waiting its turn in the
	// resolved order.
	StatusPending SnippetStatus = "pending"
	// StatusRunning indicates the snippet is currently executing.
	StatusRunning SnippetStatus = "running"
	// StatusCompleted indicates the snippet executed successfully.
	StatusCompleted SnippetStatus = "completed"
	// StatusFailed indicates the snippet execution failed.
	StatusFailed SnippetStatus = "failed"
	// StatusCached indicates execution was skipped because a valid cache
	// entry was found.
	StatusCached SnippetStatus = "cached"
	// StatusSkipped indicates the snippet was not executed (eval: false).
	StatusSkipped SnippetStatus = "skipped"
)

// IsTerminal checks if a status is a terminal state.
func (s SnippetStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCached, StatusSkipped:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard
// slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
