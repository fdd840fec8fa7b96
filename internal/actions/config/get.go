package config

import (
	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/usage"
)

func Get(app *domain.Application) dispatchers.Action {
	deps := DepsFrom(app)
	return func(args []string, options domain.Values) error {
		return get(args, options, deps)
	}
}

func get(args []string, _ domain.Values, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]

	value, found := deps.Config[key]
	if !found {
		return usage.InvalidConfigKey(key)
	}

	return deps.Output.Output(value)
}
