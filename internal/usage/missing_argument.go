package usage

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:         ErrMissingArgument,
		Template:     "missing required argument '{arg}'",
		Replacements: map[string]string{"arg": arg},
	}
}
