package config

import (
	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
)

func List(app *domain.Application) dispatchers.Action {
	deps := DepsFrom(app)
	return func(args []string, options domain.Values) error {
		return list(args, options, deps)
	}
}

// list prints the merged config, or the per-command overrides with --extra.
func list(_ []string, options domain.Values, deps Deps) error {
	if options.Bool("extra", false) {
		extra := deps.Extra
		if extra == nil {
			extra = map[string]domain.Values{}
		}
		return deps.Output.Output(extra)
	}
	return deps.Output.Output(deps.Config)
}
