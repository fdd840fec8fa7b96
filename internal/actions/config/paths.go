package config

import (
	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
)

func Paths(app *domain.Application) dispatchers.Action {
	deps := DepsFrom(app)
	return func(args []string, options domain.Values) error {
		return paths(args, options, deps)
	}
}

// paths prints the config files that were loaded, lowest precedence first.
func paths(_ []string, _ domain.Values, deps Deps) error {
	files := deps.Files
	if files == nil {
		files = []string{}
	}
	return deps.Output.Output(files)
}
