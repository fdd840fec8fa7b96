package usage

import "strings"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrCommandNotFound
	ErrConfigLoad
	ErrInvocation
	ErrInvalidFlag
	ErrMissingArgument
	ErrInvalidConfigKey
)

func (k ErrorKind) String() string {
	switch k {
	case ErrCommandNotFound:
		return "command not found"
	case ErrConfigLoad:
		return "config load"
	case ErrInvocation:
		return "invocation"
	case ErrInvalidFlag:
		return "invalid flag"
	case ErrMissingArgument:
		return "missing argument"
	case ErrInvalidConfigKey:
		return "invalid config key"
	default:
		return "unknown"
	}
}

// ExitFailure is the process exit status for every kind of error.
// Kinds only change the message that is reported.
const ExitFailure = 1

// Error represents a user-facing error with semantic type information.
//
// Template may contain {name} placeholders which are filled from
// Replacements when the message is rendered.
type Error struct {
	Kind         ErrorKind
	Template     string
	Replacements map[string]string
	Suggestions  []string
	Err          error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return Interpolate(e.Template, e.Replacements)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Interpolate replaces {name} placeholders in message with values from
// replacements. Unknown placeholders are left untouched.
func Interpolate(message string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return message
	}
	pairs := make([]string, 0, len(replacements)*2)
	for k, v := range replacements {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
