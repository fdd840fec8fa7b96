package runner

import (
	"io"

	"github.com/footprint-tools/terminus/internal/app"
)

func appOptions(stdout io.Writer) app.Options {
	return appOptionsWithStderr(stdout, io.Discard)
}

func appOptionsWithStderr(stdout, stderr io.Writer) app.Options {
	return app.Options{
		Stdout:     stdout,
		Stderr:     stderr,
		IsTerminal: func(io.Writer) bool { return false },
	}
}
