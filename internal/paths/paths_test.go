package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir(t *testing.T) {
	dir := AppDataDir()

	require.NotEqual(t, ".", dir)
	require.True(t, filepath.IsAbs(dir), "AppDataDir should be absolute: %s", dir)
	require.Equal(t, appDirName, filepath.Base(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestAppLocalDataDir_Platform(t *testing.T) {
	dir := AppLocalDataDir()
	require.True(t, strings.HasSuffix(dir, appDirName), "AppLocalDataDir should end with %s: %s", appDirName, dir)

	switch runtime.GOOS {
	case "darwin":
		require.Contains(t, dir, "Application Support")
	case "windows":
		require.Contains(t, dir, "Local")
	}
}

func TestAppLocalDataDir_WithXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Test only runs on Linux")
	}

	t.Setenv("XDG_DATA_HOME", "/tmp/custom/data")

	require.Equal(t, "/tmp/custom/data/cmdkit", AppLocalDataDir())
}

func TestAppLocalDataDir_WithoutXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Test only runs on Linux")
	}

	t.Setenv("XDG_DATA_HOME", "")

	require.Contains(t, AppLocalDataDir(), filepath.Join(".local", "share"))
}

func TestConfigFilePath(t *testing.T) {
	path, err := ConfigFilePath()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, ".cmdshrc"), path)
}

func TestFilePaths(t *testing.T) {
	require.Equal(t, filepath.Join(AppDataDir(), "cmdsh.log"), LogFilePath())
	require.Equal(t, filepath.Join(AppDataDir(), "choices.yaml"), ChoicesFilePath())
	require.Equal(t, filepath.Join(AppLocalDataDir(), "audit.db"), AuditDBPath())
}

func TestPaths_NoDotDotComponents(t *testing.T) {
	cfgPath, err := ConfigFilePath()
	require.NoError(t, err)

	for _, p := range []string{AppDataDir(), AppLocalDataDir(), LogFilePath(), ChoicesFilePath(), AuditDBPath(), cfgPath} {
		require.False(t, strings.Contains(p, ".."), "Path should not contain '..': %s", p)
	}
}
