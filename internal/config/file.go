package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/usage"
)

// Layer is one configuration source.
type Layer struct {
	Source string
	Config domain.Values
	Extra  map[string]domain.Values
}

func newLayer(source string) *Layer {
	return &Layer{
		Source: source,
		Config: domain.Values{},
		Extra:  map[string]domain.Values{},
	}
}

// ReadFile reads a YAML or, for a .toml extension, TOML config file into a
// layer.
//
// A missing file yields an empty layer and found=false. A file that cannot
// be read or parsed yields a *usage.Error of kind ErrConfigLoad.
func ReadFile(path string) (layer *Layer, found bool, err error) {
	layer = newLayer(path)
	if path == "" {
		return layer, false, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return layer, false, nil
	}
	if err != nil {
		return nil, false, usage.ConfigLoad(path, err)
	}

	if err := layer.parse(data, decoderFor(path), filepath.Dir(path)); err != nil {
		return nil, false, usage.ConfigLoad(path, err)
	}
	return layer, true, nil
}

type decodeFunc func(data []byte, v any) error

func decoderFor(path string) decodeFunc {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal
	}
	return yaml.Unmarshal
}

// parse fills the layer. Registered keys go to Config; any other key whose
// value is a mapping is a per-command entry in Extra. Keys without a value
// are skipped so they leave earlier layers untouched.
func (l *Layer) parse(data []byte, decode decodeFunc, baseDir string) error {
	raw := map[string]any{}
	if err := decode(data, &raw); err != nil {
		return err
	}

	for key, value := range raw {
		if value == nil {
			continue
		}
		if nested, ok := value.(map[string]any); ok {
			if domain.IsValidConfigKey(key) {
				return fmt.Errorf("key %q must be a scalar or a list", key)
			}
			opts, err := normalizeMap(nested)
			if err != nil {
				return fmt.Errorf("section %q: %w", key, err)
			}
			l.Extra[normalizePath(key)] = opts
			continue
		}

		v, err := normalizeValue(value)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		l.Config[key] = v
	}

	if l.Config.Has(domain.KeyRequire) {
		l.Config[domain.KeyRequire] = resolveRelative(l.Config.Strings(domain.KeyRequire), baseDir)
	}
	return nil
}

func normalizeMap(in map[string]any) (domain.Values, error) {
	out := make(domain.Values, len(in))
	for k, v := range in {
		if v == nil {
			continue
		}
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = nv
	}
	return out, nil
}

func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case string, bool:
		return val, nil
	case []any:
		return domain.Values{"v": val}.Strings("v"), nil
	case map[string]any:
		return nil, errors.New("nested sections are not supported")
	default:
		return fmt.Sprint(val), nil
	}
}

// normalizePath collapses runs of whitespace so "site  list" and
// "site list" name the same command.
func normalizePath(p string) string {
	return strings.Join(strings.Fields(p), " ")
}

func resolveRelative(list []string, baseDir string) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		if p != "" && !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		out = append(out, p)
	}
	return out
}
