package extensions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/log"
	"github.com/footprint-tools/terminus/internal/usage"
)

// Manifest is the content of a required command file.
type Manifest struct {
	Commands []ManifestCommand `yaml:"commands"`
}

// ManifestCommand declares one external leaf command.
type ManifestCommand struct {
	Path    string   `yaml:"path"` // space-separated command path, e.g. "site backup"
	Exec    string   `yaml:"exec"` // relative paths are resolved against the manifest's directory
	Summary string   `yaml:"summary"`
	Aliases []string `yaml:"aliases"`
}

var (
	errNoPath       = errors.New("command without a path")
	errNoExecutable = errors.New("command without an exec entry")
)

// LoadFile reads the manifest at path and registers its commands under
// root, creating intermediate groups as needed. Every failure is returned
// as a usage.ConfigLoad error naming path.
func (l *Loader) LoadFile(root *dispatchers.Group, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return usage.ConfigLoad(path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return usage.ConfigLoad(path, err)
	}

	baseDir := filepath.Dir(path)
	for i, c := range m.Commands {
		if err := l.register(root, c, baseDir); err != nil {
			return usage.ConfigLoad(path, fmt.Errorf("commands[%d]: %w", i, err))
		}
	}

	log.Debug("extensions: loaded %d command(s) from %s", len(m.Commands), path)
	return nil
}

func (l *Loader) register(root *dispatchers.Group, c ManifestCommand, baseDir string) error {
	segments := strings.Fields(c.Path)
	if len(segments) == 0 {
		return errNoPath
	}
	if strings.TrimSpace(c.Exec) == "" {
		return fmt.Errorf("%q: %w", c.Path, errNoExecutable)
	}

	parent := root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := parent.Child(seg)
		if !ok {
			parent = dispatchers.NewGroup(parent, dispatchers.GroupSpec{Name: seg})
			continue
		}
		group, isGroup := child.(*dispatchers.Group)
		if !isGroup {
			return fmt.Errorf("%q: %q is a command, not a group", c.Path, seg)
		}
		parent = group
	}

	name := segments[len(segments)-1]
	seen := map[string]bool{}
	for _, n := range append([]string{name}, c.Aliases...) {
		if _, taken := parent.Child(n); taken || seen[n] {
			return fmt.Errorf("%q: %q is already registered", c.Path, n)
		}
		seen[n] = true
	}

	commandPath := strings.Join(segments, " ")
	executable := resolveExecutable(c.Exec, baseDir)
	summary := c.Summary
	if summary == "" {
		summary = "External command " + executable
	}

	dispatchers.NewCommand(parent, dispatchers.CommandSpec{
		Name:    name,
		Summary: summary,
		Aliases: c.Aliases,
		Args:    []dispatchers.ArgSpec{{Name: "args", Description: "Passed to " + executable}},
		Action:  l.execAction(commandPath, executable),
	})
	return nil
}

// resolveExecutable leaves bare names for PATH lookup at run time and
// anchors relative paths at baseDir.
func resolveExecutable(exe, baseDir string) string {
	exe = strings.TrimSpace(exe)
	if filepath.IsAbs(exe) || !strings.ContainsAny(exe, "/"+string(filepath.Separator)) {
		return exe
	}
	return filepath.Join(baseDir, exe)
}
