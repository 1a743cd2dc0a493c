package payload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/payload/pkg/paths"
)

// execute runs the root command with args, capturing stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmdStructure(t *testing.T) {
	cmd := NewRootCmd()

	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"assemble", "deps", "files", "install",
		"gen-config", "topics", "version", "completion",
	} {
		assert.True(t, names[want], "missing command %q", want)
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("dry-run"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("format"))
}

func TestRootCmdNoArgs(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "payload version")
	assert.Contains(t, out, "commit:")
}

func TestGenConfigCmd(t *testing.T) {
	out, err := execute(t, "gen-config")
	require.NoError(t, err)
	assert.Contains(t, out, "[assemble]")
	assert.Contains(t, out, "# skip_empty_packages = true")
	assert.Contains(t, out, "# [[filters.msys2]]")
}

func TestAssembleCmdRequiresPrefix(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, t.TempDir())

	_, err := execute(t, "assemble", "some-package")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no destination prefix")
}

func TestAssembleCmdRequiresSeeds(t *testing.T) {
	_, err := execute(t, "assemble")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestCompletionCmd(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "payload"))

	_, err = execute(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "filters")
	assert.Contains(t, out, "resolvers")
	assert.Contains(t, out, "config")
}

func TestTopicsCmd(t *testing.T) {
	out, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "Available help topics:")
}

func TestHelpTopicContent(t *testing.T) {
	out, err := execute(t, "help", "resolvers")
	require.NoError(t, err)
	assert.Contains(t, out, "pkgfile")
}
