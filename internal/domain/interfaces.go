package domain

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error reports a user-facing error. Placeholders of the form {name}
	// in message are replaced from replacements.
	Error(message string, replacements map[string]string)

	// Close closes the logger.
	Close() error
}

// Outputter renders structured command results with the configured formatter.
type Outputter interface {
	// Output renders data.
	Output(data any) error
}

// Styler styles the parts of formatted output.
type Styler interface {
	// Info styles keys and labels.
	Info(text string) string

	// Header styles section titles.
	Header(text string) string
}
