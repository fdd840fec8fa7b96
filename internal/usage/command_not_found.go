package usage

import "strings"

// CommandNotFound is returned when a token has no matching subcommand.
// path is the space-joined path consumed so far, including the bad token.
func CommandNotFound(path string, suggestions ...string) *Error {
	var b strings.Builder
	b.WriteString("'{cmd}' is not a registered command. See 'terminus help'.")

	if len(suggestions) > 0 {
		if len(suggestions) == 1 {
			b.WriteString("\n\nThe most similar command is")
		} else {
			b.WriteString("\n\nThe most similar commands are")
		}
		for _, s := range suggestions {
			b.WriteString("\n\t")
			b.WriteString(s)
		}
	}

	return &Error{
		Kind:         ErrCommandNotFound,
		Template:     b.String(),
		Replacements: map[string]string{"cmd": path},
		Suggestions:  suggestions,
	}
}
