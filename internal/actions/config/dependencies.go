package config

import "github.com/footprint-tools/terminus/internal/domain"

type Deps struct {
	Config domain.Values
	Extra  map[string]domain.Values
	Files  []string
	Output domain.Outputter
}

func DepsFrom(app *domain.Application) Deps {
	return Deps{
		Config: app.Config,
		Extra:  app.Extra,
		Files:  app.Files,
		Output: app.Output,
	}
}
