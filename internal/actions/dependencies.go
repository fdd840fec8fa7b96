package actions

import (
	"io"

	"github.com/footprint-tools/terminus/internal/app"
	"github.com/footprint-tools/terminus/internal/domain"
)

type actionDependencies struct {
	Output  domain.Outputter
	Stdout  io.Writer
	Version func() string
}

func depsFrom(a *domain.Application) actionDependencies {
	return actionDependencies{
		Output:  a.Output,
		Stdout:  a.Stdout,
		Version: func() string { return app.Version },
	}
}
