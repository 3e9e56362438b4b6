package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"divinescribe/internal/config"
)

// isolate keeps config discovery away from the developer's files.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestHymnsCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "hymns")
	require.NoError(t, err)
	assert.Contains(t, out, "Amazing Grace")
	assert.Contains(t, out, "John Newton")
	assert.Contains(t, out, "Holy, Holy, Holy")
	assert.Contains(t, out, "3 verses")
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "divinescribe dev\n", out)
}

func TestInvalidEndpointFlagFails(t *testing.T) {
	isolate(t)
	_, err := execute(t, "--endpoint", "ftp://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSubcommandsIgnoreBrokenConfig(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("divinescribe.yaml", []byte("completion: [unclosed\n"), 0o600))

	_, err := execute(t)
	require.Error(t, err, "the TUI needs a loadable config")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "divinescribe dev\n", out)

	out, err = execute(t, "--endpoint", "ftp://example.com", "hymns")
	require.NoError(t, err)
	assert.Contains(t, out, "Amazing Grace")
}

func TestFlagsOverrideConfig(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
completion:
  model: from-file
typewriter:
  delay: 10ms
`), 0o600))

	a := &app{configPath: path, model: "from-flag"}
	require.NoError(t, a.setup())
	assert.Equal(t, "from-flag", a.cfg.Completion.Model)

	opts := a.uiOptions(context.Background(), nil)
	assert.Equal(t, 10*time.Millisecond, opts.Delays.Text)
	assert.NotNil(t, opts.Sermons)
	assert.NotNil(t, opts.Quizzes)
}
