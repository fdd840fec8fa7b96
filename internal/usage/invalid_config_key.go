package usage

// InvalidConfigKey is returned when a key is neither registered nor present
// in any loaded config file.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:         ErrInvalidConfigKey,
		Template:     "'{key}' is not a known config key",
		Replacements: map[string]string{"key": key},
	}
}
