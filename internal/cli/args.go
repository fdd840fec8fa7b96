package cli

import "github.com/footprint-tools/terminus/internal/dispatchers"

var (
	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	HelpCommandArg = []dispatchers.ArgSpec{
		{
			Name:        "command",
			Description: "Command path to describe (e.g., site list)",
			Required:    false,
		},
	}
)
