package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/terminus/internal/app"
	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
)

func buildTestTree(t *testing.T) (*dispatchers.Group, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return BuildTree(app.NewForTesting(&out)), &out
}

func childNames(g *dispatchers.Group) []string {
	names := []string{}
	for _, c := range g.Subcommands() {
		names = append(names, c.Name())
	}
	return names
}

func TestBuildTree_ReturnsRoot(t *testing.T) {
	root, _ := buildTestTree(t)

	require.NotNil(t, root)
	require.Equal(t, "terminus", root.Name())
	require.NoError(t, dispatchers.Validate(root))
}

func TestBuildTree_HasExpectedTopLevelCommands(t *testing.T) {
	root, _ := buildTestTree(t)

	require.Equal(t, []string{"help", "version", "config"}, childNames(root))
}

func TestBuildTree_ConfigHasSubcommands(t *testing.T) {
	root, _ := buildTestTree(t)

	child, found := root.Child("config")
	require.True(t, found, "config group not found")

	config, ok := child.(*dispatchers.Group)
	require.True(t, ok)
	require.Equal(t, []string{"get", "list", "paths"}, childNames(config))
}

func TestBuildTree_ConfigListAlias(t *testing.T) {
	root, _ := buildTestTree(t)

	res, err := dispatchers.Resolve(root, []string{"config", "ls"})

	require.NoError(t, err)
	require.Equal(t, "list", res.Node.Name())
	require.Equal(t, "config ls", res.Name())
}

func TestBuildTree_ConfigGetRunsAgainstApplication(t *testing.T) {
	root, out := buildTestTree(t)

	res, err := dispatchers.Resolve(root, []string{"config", "get", "format"})
	require.NoError(t, err)

	require.NoError(t, res.Node.Invoke(res.Args, domain.Values{}, domain.Values{}))
	require.Equal(t, "pretty\n", out.String())
}

func TestBuildTree_VersionRejectsOptions(t *testing.T) {
	root, _ := buildTestTree(t)

	child, _ := root.Child("version")
	err := child.Invoke(nil, domain.Values{"verbose": true}, domain.Values{})

	require.EqualError(t, err, "invalid flag '--verbose'")
}

func TestBuildTree_HelpListsCommands(t *testing.T) {
	root, out := buildTestTree(t)

	child, _ := root.Child("help")
	require.NoError(t, child.Invoke([]string{"config"}, domain.Values{}, domain.Values{}))

	require.Contains(t, out.String(), "paths")
	require.Contains(t, out.String(), "Print the config files that were loaded")
}
