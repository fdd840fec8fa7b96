package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Values is a string-keyed map of option or configuration values.
// Values are strings, booleans or string lists.
type Values map[string]any

// Has returns true if the key is present, whatever its value.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// String returns the value of key as a string, or defaultVal if not present.
func (v Values) String(key, defaultVal string) string {
	raw, ok := v[key]
	if !ok || raw == nil {
		return defaultVal
	}
	switch val := raw.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(val)
	}
}

// Bool returns the value of key as a boolean, or defaultVal if not present
// or not parseable.
func (v Values) Bool(key string, defaultVal bool) bool {
	raw, ok := v[key]
	if !ok {
		return defaultVal
	}
	switch val := raw.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return defaultVal
		}
		return b
	default:
		return defaultVal
	}
}

// Strings returns the value of key as a list. A scalar becomes a single
// element list; a missing key returns nil.
func (v Values) Strings(key string) []string {
	raw, ok := v[key]
	if !ok || raw == nil {
		return nil
	}
	switch val := raw.(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	default:
		return []string{fmt.Sprint(val)}
	}
}

// Keys returns the keys in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Merge copies every key of other into v, replacing existing keys.
func (v Values) Merge(other Values) {
	for k, val := range other {
		v[k] = val
	}
}
