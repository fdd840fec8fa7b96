package cli

import (
	"github.com/footprint-tools/terminus/internal/actions"
	configactions "github.com/footprint-tools/terminus/internal/actions/config"
	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
)

// BuildTree returns the built-in command tree. External commands are added
// to it later by the extension loader.
func BuildTree(app *domain.Application) *dispatchers.Group {
	root := dispatchers.NewRoot("Run site commands from the terminal")

	dispatchers.NewCommand(root, dispatchers.CommandSpec{
		Name:    "help",
		Summary: "Show help for a command",
		Args:    HelpCommandArg,
		Action:  actions.Help(app, root),
	})

	dispatchers.NewCommand(root, dispatchers.CommandSpec{
		Name:    "version",
		Summary: "Show terminus version",
		Flags:   NoFlags,
		Action:  actions.ShowVersion(app),
	})

	config := dispatchers.NewGroup(root, dispatchers.GroupSpec{
		Name:    "config",
		Summary: "Inspect configuration",
	})

	dispatchers.NewCommand(config, dispatchers.CommandSpec{
		Name:    "get",
		Summary: "Print one config value",
		Flags:   NoFlags,
		Args:    ConfigKeyArg,
		Action:  configactions.Get(app),
	})

	dispatchers.NewCommand(config, dispatchers.CommandSpec{
		Name:    "list",
		Summary: "Print the merged configuration",
		Aliases: []string{"ls"},
		Flags:   ConfigListFlags,
		Action:  configactions.List(app),
	})

	dispatchers.NewCommand(config, dispatchers.CommandSpec{
		Name:    "paths",
		Summary: "Print the config files that were loaded",
		Flags:   NoFlags,
		Action:  configactions.Paths(app),
	})

	return root
}
