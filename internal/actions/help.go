package actions

import (
	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
)

// Help shows the usage of the command named by args, or of root when args
// is empty. root is read at invocation time so commands loaded after the
// tree was built are listed too.
func Help(a *domain.Application, root dispatchers.CommandNode) dispatchers.Action {
	deps := depsFrom(a)
	return func(args []string, options domain.Values) error {
		return help(args, options, root, deps)
	}
}

func help(args []string, _ domain.Values, root dispatchers.CommandNode, deps actionDependencies) error {
	res, err := dispatchers.Resolve(root, args)
	if err != nil {
		return err
	}
	return res.Node.ShowUsage(deps.Stdout)
}
