package extensions

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/usage"
)

func noop([]string, domain.Values) error { return nil }

// writeScript creates an executable shell script in dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func newTestLoader(stdout *bytes.Buffer, found map[string]string) *Loader {
	return &Loader{
		LookPath: func(file string) (string, error) {
			if path, ok := found[file]; ok {
				return path, nil
			}
			return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
		},
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
	}
}

func TestLoadCommand_RegistersExecutable(t *testing.T) {
	script := writeScript(t, t.TempDir(), "terminus-deploy", `echo "$@"`)
	var stdout bytes.Buffer
	loader := newTestLoader(&stdout, map[string]string{"terminus-deploy": script})
	root := dispatchers.NewRoot("")

	require.NoError(t, loader.LoadCommand(root, "deploy"))

	res, err := dispatchers.Resolve(root, []string{"deploy", "prod"})
	require.NoError(t, err)
	require.Equal(t, "deploy", res.Name())

	err = res.Node.Invoke(res.Args, domain.Values{"force": true}, domain.Values{"region": "eu"})
	require.NoError(t, err)
	require.Equal(t, "prod --force=true --region=eu\n", stdout.String())
}

func TestLoadCommand_MissingExecutableIsIgnored(t *testing.T) {
	loader := newTestLoader(&bytes.Buffer{}, nil)
	root := dispatchers.NewRoot("")

	require.NoError(t, loader.LoadCommand(root, "deploy"))
	require.Empty(t, root.Subcommands())
}

func TestLoadCommand_ExistingCommandWins(t *testing.T) {
	looked := false
	loader := &Loader{LookPath: func(string) (string, error) {
		looked = true
		return "/bin/true", nil
	}}
	root := dispatchers.NewRoot("")
	builtin := dispatchers.NewCommand(root, dispatchers.CommandSpec{Name: "version", Action: noop})

	require.NoError(t, loader.LoadCommand(root, "version"))

	require.False(t, looked)
	child, ok := root.Child("version")
	require.True(t, ok)
	require.Same(t, builtin, child)
}

func TestLoadCommand_SkipsNonCommandTokens(t *testing.T) {
	loader := &Loader{LookPath: func(string) (string, error) {
		t.Fatal("LookPath must not be called")
		return "", nil
	}}
	root := dispatchers.NewRoot("")

	for _, name := range []string{"", "-x", "../evil", "a/b"} {
		require.NoError(t, loader.LoadCommand(root, name))
	}
	require.Empty(t, root.Subcommands())
}

func TestLoadCommand_LookupFailure(t *testing.T) {
	boom := errors.New("boom")
	loader := &Loader{LookPath: func(string) (string, error) { return "", boom }}

	err := loader.LoadCommand(dispatchers.NewRoot(""), "deploy")

	require.ErrorIs(t, err, boom)
}

func TestExecAction_NonZeroExitIsInvocationError(t *testing.T) {
	script := writeScript(t, t.TempDir(), "terminus-fail", "exit 3")
	loader := newTestLoader(&bytes.Buffer{}, map[string]string{"terminus-fail": script})
	root := dispatchers.NewRoot("")
	require.NoError(t, loader.LoadCommand(root, "fail"))

	child, _ := root.Child("fail")
	err := child.Invoke(nil, domain.Values{}, domain.Values{})

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrInvocation, ue.Kind)
	require.Equal(t, "fail", ue.Replacements["cmd"])

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 3, exitErr.ExitCode())
}

func TestOptionArgs(t *testing.T) {
	got := optionArgs(domain.Values{
		"org":     "acme",
		"dry-run": false,
		"tags":    []string{"a", "b"},
	})

	require.Equal(t, []string{"--dry-run=false", "--org=acme", "--tags=a,b"}, got)
}
