package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/output"
	"github.com/footprint-tools/terminus/internal/usage"
)

type captureOutput struct {
	data []any
}

func (c *captureOutput) Output(data any) error {
	c.data = append(c.data, data)
	return nil
}

func testDeps(out domain.Outputter) Deps {
	return Deps{
		Config: domain.Values{"format": "pretty", "org": "acme"},
		Extra: map[string]domain.Values{
			"site list": {"org": "acme"},
		},
		Files:  []string{"/home/me/.terminus/config.yml"},
		Output: out,
	}
}

// =========== GET TESTS ===========

func TestGet_Success(t *testing.T) {
	out := &captureOutput{}

	err := get([]string{"org"}, domain.Values{}, testDeps(out))

	require.NoError(t, err)
	require.Equal(t, []any{"acme"}, out.data)
}

func TestGet_MissingKey(t *testing.T) {
	err := get([]string{}, domain.Values{}, testDeps(&captureOutput{}))

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)
	require.Contains(t, err.Error(), "key")
}

func TestGet_KeyNotFound(t *testing.T) {
	out := &captureOutput{}

	err := get([]string{"nonexistent"}, domain.Values{}, testDeps(out))

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrInvalidConfigKey, ue.Kind)
	require.Contains(t, err.Error(), "nonexistent")
	require.Empty(t, out.data)
}

// =========== LIST TESTS ===========

func TestList_Config(t *testing.T) {
	out := &captureOutput{}
	deps := testDeps(out)

	require.NoError(t, list(nil, domain.Values{}, deps))

	require.Equal(t, []any{deps.Config}, out.data)
}

func TestList_Extra(t *testing.T) {
	out := &captureOutput{}
	deps := testDeps(out)

	require.NoError(t, list(nil, domain.Values{"extra": true}, deps))

	require.Equal(t, []any{deps.Extra}, out.data)
}

func TestList_ExtraEmpty(t *testing.T) {
	out := &captureOutput{}
	deps := testDeps(out)
	deps.Extra = nil

	require.NoError(t, list(nil, domain.Values{"extra": "true"}, deps))

	require.Equal(t, []any{map[string]domain.Values{}}, out.data)
}

func TestList_BashOutput(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(output.New(&buf, output.BashFormatter{}))

	require.NoError(t, list(nil, domain.Values{}, deps))

	require.Equal(t, "format\tpretty\norg\tacme\n", buf.String())
}

// =========== PATHS TESTS ===========

func TestPaths_ListsLoadedFiles(t *testing.T) {
	out := &captureOutput{}

	require.NoError(t, paths(nil, domain.Values{}, testDeps(out)))

	require.Equal(t, []any{[]string{"/home/me/.terminus/config.yml"}}, out.data)
}

func TestPaths_NoFilesIsEmptyList(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(output.New(&buf, output.JSONFormatter{}))
	deps.Files = nil

	require.NoError(t, paths(nil, domain.Values{}, deps))

	require.Equal(t, "[]\n", buf.String())
}

// =========== CONSTRUCTOR TESTS ===========

func TestDepsFrom(t *testing.T) {
	out := &captureOutput{}
	app := &domain.Application{
		Config: domain.Values{"format": "json"},
		Files:  []string{"a"},
		Output: out,
	}

	deps := DepsFrom(app)

	require.Equal(t, app.Config, deps.Config)
	require.Equal(t, app.Files, deps.Files)
	require.Same(t, out, deps.Output.(*captureOutput))

	require.NoError(t, Get(app)([]string{"format"}, domain.Values{}))
	require.Equal(t, []any{"json"}, out.data)
}
