package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/paths"
)

// EnvPrefix is prepended to the upper-cased key name to form the
// environment variable that sets it.
const EnvPrefix = "TERMINUS_"

// Result is the merged output of a Stack.
type Result struct {
	Args    []string
	Options domain.Values
	Config  domain.Values
	Extra   map[string]domain.Values
	Files   []string
}

// ExtraFor returns the overrides registered for exactly path, or an empty map.
func (r *Result) ExtraFor(path string) domain.Values {
	if extra, ok := r.Extra[path]; ok {
		return extra.Clone()
	}
	return domain.Values{}
}

// Stack merges configuration from, lowest to highest precedence:
// defaults, the global file, the project file, the environment and
// runtime options.
type Stack struct {
	GlobalPath  string
	ProjectPath string
	Getenv      func(string) string
}

// NewStack returns a Stack using the standard file locations.
func NewStack() *Stack {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return &Stack{
		GlobalPath:  paths.GlobalConfigPath(),
		ProjectPath: paths.ProjectConfigPath(wd),
		Getenv:      os.Getenv,
	}
}

// Build splits argv and merges every layer. Each file is read once.
func (s *Stack) Build(argv []string) (*Result, error) {
	args, options := SplitArgs(argv)
	runtime := newLayer("runtime")
	runtime.Config = extractRuntime(options)

	res := &Result{
		Args:    args,
		Options: options,
		Config:  domain.DefaultValues(),
		Extra:   map[string]domain.Values{},
	}

	for _, path := range s.filePaths() {
		layer, found, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		if found {
			res.Files = append(res.Files, path)
		}
		res.apply(layer)
	}

	res.apply(s.envLayer())
	res.apply(runtime)

	return res, nil
}

func (s *Stack) filePaths() []string {
	var out []string
	if s.GlobalPath != "" {
		out = append(out, s.GlobalPath)
	}
	// The project file may be the same file as the global one when run from $HOME.
	if s.ProjectPath != "" && !samePath(s.ProjectPath, s.GlobalPath) {
		out = append(out, s.ProjectPath)
	}
	return out
}

func (s *Stack) envLayer() *Layer {
	layer := newLayer("environment")
	if s.Getenv == nil {
		return layer
	}

	for _, key := range domain.ConfigKeys {
		value := s.Getenv(EnvPrefix + strings.ToUpper(key.Name))
		if value == "" {
			continue
		}
		if _, isList := key.Default.([]string); isList {
			layer.Config[key.Name] = filepath.SplitList(value)
			continue
		}
		layer.Config[key.Name] = value
	}
	return layer
}

// apply overlays a layer: top-level keys are replaced whole, extra entries
// are merged one level deep.
func (r *Result) apply(layer *Layer) {
	r.Config.Merge(layer.Config)
	for path, opts := range layer.Extra {
		if _, ok := r.Extra[path]; !ok {
			r.Extra[path] = domain.Values{}
		}
		r.Extra[path].Merge(opts)
	}
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
