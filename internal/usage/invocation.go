package usage

// Invocation wraps a failure raised by a command's own logic.
func Invocation(command string, cause error) *Error {
	reason := "unknown error"
	if cause != nil {
		reason = cause.Error()
	}
	return &Error{
		Kind:     ErrInvocation,
		Template: "'{cmd}' failed: {reason}",
		Replacements: map[string]string{
			"cmd":    command,
			"reason": reason,
		},
		Err: cause,
	}
}
