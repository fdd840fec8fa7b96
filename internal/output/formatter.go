// Package output renders command results in the format selected by the
// "format" config key.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/ui/style"
)

// Formatter writes structured data to w.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFor returns the formatter registered under name.
// Unknown names fall back to the pretty formatter, styled by styler.
func FormatterFor(name string, styler domain.Styler) Formatter {
	switch name {
	case "json":
		return JSONFormatter{}
	case "bash":
		return BashFormatter{}
	default:
		return PrettyFormatter{Styler: styler}
	}
}

// JSONFormatter writes indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// BashFormatter writes one tab-separated key/value pair per line so output
// can be consumed with `read` or `cut`. Nested keys are joined with dots.
type BashFormatter struct{}

func (BashFormatter) Format(w io.Writer, data any) error {
	var b strings.Builder
	writeBash(&b, "", normalize(data))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeBash(b *strings.Builder, prefix string, data any) {
	switch v := data.(type) {
	case map[string]any:
		for _, k := range sortedKeys(v) {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if nested, ok := v[k].(map[string]any); ok {
				writeBash(b, key, nested)
				continue
			}
			fmt.Fprintf(b, "%s\t%s\n", key, scalar(v[k]))
		}
	case []string:
		for _, item := range v {
			if prefix != "" {
				fmt.Fprintf(b, "%s\t%s\n", prefix, item)
			} else {
				fmt.Fprintln(b, item)
			}
		}
	default:
		fmt.Fprintln(b, scalar(v))
	}
}

// PrettyFormatter writes aligned, styled key/value rows for people.
// A nil Styler leaves text unstyled.
type PrettyFormatter struct {
	Styler domain.Styler
}

func (f PrettyFormatter) Format(w io.Writer, data any) error {
	styler := f.Styler
	if styler == nil {
		styler = style.NopStyler{}
	}
	var b strings.Builder
	writePretty(&b, styler, "", normalize(data))
	_, err := io.WriteString(w, b.String())
	return err
}

func writePretty(b *strings.Builder, styler domain.Styler, indent string, data any) {
	switch v := data.(type) {
	case map[string]any:
		keys := sortedKeys(v)
		width := 0
		for _, k := range keys {
			if _, nested := v[k].(map[string]any); !nested {
				width = max(width, len(k))
			}
		}
		for _, k := range keys {
			if nested, ok := v[k].(map[string]any); ok {
				fmt.Fprintf(b, "%s%s\n", indent, styler.Header(k))
				writePretty(b, styler, indent+"  ", nested)
				continue
			}
			fmt.Fprintf(b, "%s%s  %s\n", indent, styler.Info(fmt.Sprintf("%-*s", width, k)), scalar(v[k]))
		}
	case []string:
		for _, item := range v {
			fmt.Fprintf(b, "%s%s\n", indent, item)
		}
	default:
		fmt.Fprintf(b, "%s%s\n", indent, scalar(v))
	}
}

// normalize converts the map and list shapes produced by the config layer
// into map[string]any and []string.
func normalize(data any) any {
	switch v := data.(type) {
	case domain.Values:
		return normalize(map[string]any(v))
	case map[string]domain.Values:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = normalize(val)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = normalize(val)
		}
		return out
	case []any:
		return domain.Values{"v": v}.Strings("v")
	default:
		return v
	}
}

func scalar(v any) string {
	return domain.Values{"v": v}.String("v", "")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
