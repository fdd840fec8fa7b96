package config

import (
	"strings"

	"github.com/footprint-tools/terminus/internal/domain"
)

// SplitArgs separates argv into positional tokens and named options.
//
//	--key=value  -> key: "value"
//	--key        -> key: true
//	--no-key     -> key: false
//	-k           -> k: true
//	--           -> every following argument is positional
func SplitArgs(argv []string) ([]string, domain.Values) {
	args := []string{}
	options := domain.Values{}

	for i, a := range argv {
		if a == "--" {
			args = append(args, argv[i+1:]...)
			break
		}

		if len(a) < 2 || a[0] != '-' {
			args = append(args, a)
			continue
		}

		name := strings.TrimLeft(a, "-")
		if name == "" {
			args = append(args, a)
			continue
		}

		if idx := strings.Index(name, "="); idx != -1 {
			options[name[:idx]] = name[idx+1:]
			continue
		}

		if strings.HasPrefix(a, "--no-") && len(name) > 3 {
			options[name[3:]] = false
			continue
		}

		options[name] = true
	}

	return args, options
}

// extractRuntime moves options that name runtime-settable config keys out of
// options and returns them as a config layer.
func extractRuntime(options domain.Values) domain.Values {
	runtime := domain.Values{}

	// --no-color is the conventional spelling of --colorize=false.
	if v, ok := options["color"]; ok {
		runtime[domain.KeyColorize] = v
		delete(options, "color")
	}

	for name, value := range options {
		key, ok := domain.GetConfigKey(name)
		if !ok || !key.Runtime {
			continue
		}
		if _, isList := key.Default.([]string); isList {
			// A bare --require carries no path.
			if s, ok := value.(string); ok && s != "" {
				runtime[name] = []string{s}
			}
		} else {
			runtime[name] = value
		}
		delete(options, name)
	}

	return runtime
}
