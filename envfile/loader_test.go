package envfile_test

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/0xalexb/aio-config/envfile"
	"github.com/0xalexb/aio-config/environ"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	files map[string]string
	reads int
}

func (f *fakeReader) ReadText(path string) (string, error) {
	f.reads++

	text, ok := f.files[path]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	return text, nil
}

func newLoader(t *testing.T, files map[string]string, env environ.Map) (*envfile.Loader, *fakeReader, *envfile.State, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer

	reader := &fakeReader{files: files}
	state := &envfile.State{}
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return envfile.NewLoader(state, reader, env, logger), reader, state, &logs
}

func TestPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	assert.Equal(t, filepath.Join(dir, ".env"), envfile.Path(dir))
	assert.True(t, filepath.IsAbs(envfile.Path(".")))
}

func TestLoader_Load_AddsMissingVariables(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := environ.Map{}
	loader, _, state, logs := newLoader(t, map[string]string{
		envfile.Path(dir): "A=1\nB=two",
	}, env)

	loader.Load(dir, false)

	assert.Equal(t, environ.Map{"A": "1", "B": "two"}, env)
	assert.Equal(t, []string{"A", "B"}, state.Loaded())
	assert.Contains(t, logs.String(), "added environment variable(s): A, B")

	marker, ok := state.Marker()
	require.True(t, ok)
	assert.Equal(t, envfile.Path(dir), marker)
}

func TestLoader_Load_ExistingVariablesWin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := environ.Map{"A": "12"}
	loader, _, state, logs := newLoader(t, map[string]string{
		envfile.Path(dir): "A=1",
	}, env)

	loader.Load(dir, false)

	assert.Equal(t, "12", env["A"])
	assert.Empty(t, state.Loaded())
	assert.NotContains(t, logs.String(), "added environment variable(s)")
}

func TestLoader_Load_SecondCallIsNoop(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := environ.Map{}
	loader, reader, _, _ := newLoader(t, map[string]string{
		envfile.Path(dir): "A=1",
	}, env)

	loader.Load(dir, false)
	delete(env, "A")
	loader.Load(dir, false)

	assert.Equal(t, 1, reader.reads)
	assert.NotContains(t, env, "A")
}

func TestLoader_Load_ForceAlwaysReads(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := environ.Map{}
	loader, reader, _, _ := newLoader(t, map[string]string{
		envfile.Path(dir): "A=1",
	}, env)

	loader.Load(dir, false)
	delete(env, "A")
	loader.Load(dir, true)
	loader.Load(dir, true)

	assert.Equal(t, 3, reader.reads)
	assert.Equal(t, "1", env["A"])
}

func TestLoader_Load_OtherDirectoryReads(t *testing.T) {
	t.Parallel()

	first := t.TempDir()
	second := t.TempDir()
	env := environ.Map{}
	loader, reader, state, _ := newLoader(t, map[string]string{
		envfile.Path(first):  "A=1",
		envfile.Path(second): "B=2",
	}, env)

	loader.Load(first, false)
	loader.Load(second, false)

	assert.Equal(t, 2, reader.reads)
	assert.Equal(t, environ.Map{"A": "1", "B": "2"}, env)
	assert.Equal(t, []string{"B"}, state.Loaded())

	marker, _ := state.Marker()
	assert.Equal(t, envfile.Path(second), marker)
}

func TestLoader_Load_MissingFileIsTolerated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := environ.Map{"KEEP": "x"}
	loader, reader, state, logs := newLoader(t, map[string]string{}, env)

	loader.Load(dir, false)

	assert.Equal(t, environ.Map{"KEEP": "x"}, env)
	assert.Contains(t, logs.String(), "cannot read env file")
	assert.Contains(t, logs.String(), envfile.Path(dir))
	assert.Contains(t, logs.String(), "file does not exist")
	assert.Contains(t, logs.String(), "skipping")

	marker, ok := state.Marker()
	require.True(t, ok)
	assert.Equal(t, envfile.Path(dir), marker)

	loader.Load(dir, false)
	assert.Equal(t, 1, reader.reads)
}

func TestLoader_Load_StaleVariablesAreKept(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := environ.Map{}
	files := map[string]string{envfile.Path(dir): "A=1\nB=2"}
	loader, _, _, _ := newLoader(t, files, env)

	loader.Load(dir, false)

	files[envfile.Path(dir)] = "A=changed"
	loader.Load(dir, true)

	assert.Equal(t, environ.Map{"A": "1", "B": "2"}, env)
}

type failingEnv struct {
	environ.Map
}

func (failingEnv) Setenv(string, string) error {
	return errors.New("setenv refused")
}

func TestLoader_Load_SetenvFailureIsLogged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var logs bytes.Buffer

	state := &envfile.State{}
	reader := &fakeReader{files: map[string]string{envfile.Path(dir): "A=1"}}
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	envfile.NewLoader(state, reader, failingEnv{environ.Map{}}, logger).Load(dir, false)

	assert.Empty(t, state.Loaded())
	assert.Contains(t, logs.String(), "setenv refused")
}

func TestState_Reset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := environ.Map{}
	loader, reader, state, _ := newLoader(t, map[string]string{envfile.Path(dir): "A=1"}, env)

	loader.Load(dir, false)
	state.Reset()

	_, ok := state.Marker()
	assert.False(t, ok)
	assert.Empty(t, state.Loaded())

	loader.Load(dir, false)
	assert.Equal(t, 2, reader.reads)
}

func TestProcessState_IsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, envfile.ProcessState(), envfile.ProcessState())
}
