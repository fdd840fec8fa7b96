package actions

import (
	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
)

func ShowVersion(a *domain.Application) dispatchers.Action {
	deps := depsFrom(a)
	return func(args []string, options domain.Values) error {
		return showVersion(args, options, deps)
	}
}

func showVersion(_ []string, _ domain.Values, deps actionDependencies) error {
	return deps.Output.Output(map[string]string{
		"name":    dispatchers.ProgramName,
		"version": deps.Version(),
	})
}
