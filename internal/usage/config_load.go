package usage

// ConfigLoad is returned when a config file or a required file cannot be
// read or parsed.
func ConfigLoad(path string, cause error) *Error {
	reason := "unknown error"
	if cause != nil {
		reason = cause.Error()
	}
	return &Error{
		Kind:     ErrConfigLoad,
		Template: "could not load '{path}': {reason}",
		Replacements: map[string]string{
			"path":   path,
			"reason": reason,
		},
		Err: cause,
	}
}
