package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEnvFile_StopsAtModuleRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "cmd", "clocktui")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))

	_, ok := findEnvFile(nested)
	assert.False(t, ok)

	env := filepath.Join(root, ".env")
	require.NoError(t, os.WriteFile(env, []byte("FLOATCLOCK_STORE=x\n"), 0o644))
	got, ok := findEnvFile(nested)
	assert.True(t, ok)
	assert.Equal(t, env, got)
}

func TestLoadEnv_KeepsExistingVariables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FLOATCLOCK_STORE=fromfile\nFLOATCLOCK_LOG_LEVEL=debug\n"), 0o644))
	chdir(t, dir)
	t.Setenv("FLOATCLOCK_STORE", "fromenv")
	t.Setenv("FLOATCLOCK_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("FLOATCLOCK_LOG_LEVEL"))

	require.NoError(t, LoadEnv())
	assert.Equal(t, "fromenv", os.Getenv("FLOATCLOCK_STORE"))
	assert.Equal(t, "debug", os.Getenv("FLOATCLOCK_LOG_LEVEL"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0o644))
	chdir(t, dir)

	assert.True(t, IsMissing(LoadEnv()))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
