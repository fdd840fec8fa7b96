package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName       = ".terminus"
	globalConfigName = "config.yml"

	// GlobalConfigEnv overrides the global config file location.
	GlobalConfigEnv = "TERMINUS_CONFIG"
	// ProjectConfigEnv overrides the project config file location.
	ProjectConfigEnv = "TERMINUS_PROJECT_CONFIG"
)

// ProjectConfigNames are the project file names looked for in each
// directory, in order.
var ProjectConfigNames = []string{"terminus.yml", "terminus.yaml", "terminus.toml"}

// AppDataDir returns the per-user application directory (~/.terminus).
func AppDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, appDirName)
}

// GlobalConfigPath returns the path of the user-wide config file.
// The file does not need to exist.
func GlobalConfigPath() string {
	if p := os.Getenv(GlobalConfigEnv); p != "" {
		return p
	}
	return filepath.Join(AppDataDir(), globalConfigName)
}

// ProjectConfigPath returns the nearest project file found walking up from
// start, or "" when there is none.
func ProjectConfigPath(start string) string {
	if p := os.Getenv(ProjectConfigEnv); p != "" {
		return p
	}
	return FindUp(start, ProjectConfigNames...)
}

// FindUp looks for the first of names in dir and then in each parent.
func FindUp(dir string, names ...string) string {
	if dir == "" {
		return ""
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
