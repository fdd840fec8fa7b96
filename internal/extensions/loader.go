// Package extensions registers external executables as leaf commands.
//
// An executable named terminus-<name> on PATH becomes the top-level command
// <name>. Manifest files listed under the require config key declare
// executables at any depth of the tree.
package extensions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/log"
	"github.com/footprint-tools/terminus/internal/usage"
)

// Prefix is prepended to a command name to find its executable on PATH.
const Prefix = dispatchers.ProgramName + "-"

// Loader adds external commands to a tree.
type Loader struct {
	LookPath func(file string) (string, error)
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// NewLoader returns a Loader searching PATH and passing the given streams
// to the executables it runs.
func NewLoader(stdout, stderr io.Writer) *Loader {
	return &Loader{
		LookPath: exec.LookPath,
		Stdin:    os.Stdin,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// LoadCommand registers Prefix+name under root if such an executable is on
// PATH and root has no child called name. A missing executable is not an
// error.
func (l *Loader) LoadCommand(root *dispatchers.Group, name string) error {
	if !isCommandName(name) {
		return nil
	}
	if _, taken := root.Child(name); taken {
		return nil
	}

	path, err := l.LookPath(Prefix + name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, exec.ErrDot) {
			return nil
		}
		return fmt.Errorf("look up %s%s: %w", Prefix, name, err)
	}

	log.Debug("extensions: %s resolved to %s", name, path)

	dispatchers.NewCommand(root, dispatchers.CommandSpec{
		Name:    name,
		Summary: "External command " + path,
		Args:    []dispatchers.ArgSpec{{Name: "args", Description: "Passed to " + path}},
		Action:  l.execAction(name, path),
	})
	return nil
}

func isCommandName(name string) bool {
	if name == "" || strings.HasPrefix(name, "-") {
		return false
	}
	return !strings.ContainsAny(name, `/\`+string(os.PathListSeparator))
}

// execAction runs the executable at path with the residual args followed by
// one --key=value argument per option, in key order.
func (l *Loader) execAction(command, path string) dispatchers.Action {
	return func(args []string, options domain.Values) error {
		argv := make([]string, 0, len(args)+len(options))
		argv = append(argv, args...)
		argv = append(argv, optionArgs(options)...)

		cmd := exec.Command(path, argv...)
		cmd.Stdin = l.Stdin
		cmd.Stdout = l.Stdout
		cmd.Stderr = l.Stderr

		if err := cmd.Run(); err != nil {
			return usage.Invocation(command, err)
		}
		return nil
	}
}

func optionArgs(options domain.Values) []string {
	out := make([]string, 0, len(options))
	for _, key := range options.Keys() {
		out = append(out, "--"+key+"="+options.String(key, ""))
	}
	return out
}
