package domain

import "io"

// Application carries the per-run dependencies handed to command actions.
type Application struct {
	Config Values
	Extra  map[string]Values
	Files  []string // config files that contributed a layer, lowest precedence first
	Logger Logger
	Output Outputter
	Stdout io.Writer
}
