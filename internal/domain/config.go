package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     any
	Description string
	Runtime     bool // may be set from the command line as --<name>=<value>
}

// Reserved configuration keys.
const (
	KeyFormat   = "format"
	KeyColorize = "colorize"
	KeyRequire  = "require"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
)

// ConfigKeys defines all registered configuration keys.
// Order determines display order in `terminus config list`.
var ConfigKeys = []ConfigKey{
	{
		Name:        KeyFormat,
		Default:     "pretty",
		Description: "Output format: pretty, json, bash",
		Runtime:     true,
	},
	{
		Name:        KeyColorize,
		Default:     "auto",
		Description: "Colorize output: auto, true, false",
		Runtime:     true,
	},
	{
		Name:        KeyRequire,
		Default:     []string{},
		Description: "Command manifest files to load before running a command",
		Runtime:     true,
	},
	{
		Name:        KeyLogLevel,
		Default:     "warn",
		Description: "Minimum level printed to stderr: debug, info, warn, error",
		Runtime:     true,
	},
	{
		Name:        KeyLogFile,
		Default:     "",
		Description: "Append log lines to this file",
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is registered.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// DefaultValues returns a fresh map holding the default of every key.
func DefaultValues() Values {
	out := make(Values, len(ConfigKeys))
	for _, key := range ConfigKeys {
		if list, ok := key.Default.([]string); ok {
			out[key.Name] = append([]string(nil), list...)
			continue
		}
		out[key.Name] = key.Default
	}
	return out
}
