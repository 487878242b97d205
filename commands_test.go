package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMenuCommand(t *testing.T) {
	cfg := writeConfig(t, `duration_policy = "reject"`)

	out, err := execute(t, "1\nSong A\nArtist A\n180\n6\n9\n", "menu", "--config", cfg)

	require.NoError(t, err)
	assert.Contains(t, out, "Song added to the playlist.")
	assert.Contains(t, out, "Now playing: Song A - Artist A (180 seconds)")
	assert.Contains(t, out, "Exiting...")
}

func TestMenuCommand_ClampPolicyFromConfig(t *testing.T) {
	cfg := writeConfig(t, `duration_policy = "clamp"`)

	out, err := execute(t, "1\nSong A\nArtist A\n-30\n6\n9\n", "menu", "--config", cfg)

	require.NoError(t, err)
	assert.Contains(t, out, "Now playing: Song A - Artist A (0 seconds)")
}

func TestMenuCommand_SeedFlagIsDeterministic(t *testing.T) {
	cfg := writeConfig(t, `shuffle_seed = 5`)
	input := "1\nA\nx\n1\n1\nB\nx\n1\n1\nC\nx\n1\n1\nD\nx\n1\n3\n9\n"

	first, err := execute(t, input, "menu", "--config", cfg, "--seed", "42")
	require.NoError(t, err)
	second, err := execute(t, input, "menu", "--config", cfg, "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Shuffled playlist:")
}

func TestMenuCommand_MissingConfig(t *testing.T) {
	_, err := execute(t, "", "menu", "--config", filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Failed to load configuration: "), err.Error())
}

func TestMenuCommand_InvalidPolicy(t *testing.T) {
	cfg := writeConfig(t, `duration_policy = "sometimes"`)

	_, err := execute(t, "", "menu", "--config", cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration_policy")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, err := execute(t, "", "extra")

	assert.Error(t, err)
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"config", "seed"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing flag %q", name)
	}
	menuCmd, _, err := cmd.Find([]string{"menu"})
	require.NoError(t, err)
	assert.Equal(t, "menu", menuCmd.Name())
}
