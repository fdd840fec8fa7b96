package usage

// InvalidFlag is returned when a flag is not valid for the resolved command.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:         ErrInvalidFlag,
		Template:     "invalid flag '{flag}'",
		Replacements: map[string]string{"flag": flag},
	}
}
