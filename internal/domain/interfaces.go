package domain

import "time"

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// AuditEntry is one dispatched invocation as persisted by an AuditStore.
type AuditEntry struct {
	ID         int64
	Invocation string
	SenderID   string
	SenderName string
	Command    string
	Input      string
	Stage      string
	Kind       string
	Message    string
	Error      string
	Async      bool
	StartedAt  time.Time
	DurationMS int64
}

// AuditFilter narrows AuditStore.List.
type AuditFilter struct {
	SenderID string
	Command  string
	Kind     string
	Since    *time.Time
	Limit    int
}

// AuditStore defines operations for the invocation audit trail.
type AuditStore interface {
	// Insert adds an entry and returns its row id.
	Insert(entry AuditEntry) (int64, error)

	// List returns entries matching the filter, newest first.
	List(filter AuditFilter) ([]AuditEntry, error)

	// Count returns the number of entries per result kind.
	Count() (map[string]int64, error)

	// Prune deletes entries started before cutoff and returns how many went.
	Prune(cutoff time.Time) (int64, error)

	// Close closes the store connection.
	Close() error
}

// OutputWriter defines operations for writing output.
type OutputWriter interface {
	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager shows long content through a pager when the output is a terminal.
	Pager(content string)
}
