package cli

import "github.com/footprint-tools/terminus/internal/dispatchers"

// An empty, non-nil list makes a command reject every option.
var (
	NoFlags = []dispatchers.FlagDescriptor{}

	ConfigListFlags = []dispatchers.FlagDescriptor{
		{
			Name:        "extra",
			Description: "List per-command overrides instead of the merged config",
		},
	}
)
