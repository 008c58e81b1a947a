package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	s, err := FromMap(map[string]string{
		"prefix":        "!",
		"permissions":   " admin , ,admin.reload",
		"sender_name":   "ops",
		"enable_log":    "false",
		"log_level":     "warn",
		"async_workers": "2",
		"async_queue":   "16",
		"cooldown":      "750ms",
		"audit_enabled": "true",
		"audit_path":    "/tmp/a.db",
	})
	require.NoError(t, err)

	require.Equal(t, Settings{
		Prefix:       "!",
		Permissions:  []string{"admin", "admin.reload"},
		SenderName:   "ops",
		EnableLog:    false,
		LogLevel:     "warn",
		AsyncWorkers: 2,
		AsyncQueue:   16,
		Cooldown:     750 * time.Millisecond,
		AuditEnabled: true,
		AuditPath:    "/tmp/a.db",
	}, s)
}

func TestFromMap_Invalid(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"async_workers", "many", "async_workers: invalid integer 'many'"},
		{"async_queue", "1.5", "async_queue: invalid integer '1.5'"},
		{"enable_log", "sometimes", "enable_log: invalid boolean 'sometimes'"},
		{"audit_enabled", "y", "audit_enabled: invalid boolean 'y'"},
		{"cooldown", "soon", "cooldown: invalid duration 'soon'"},
		{"cooldown", "-1s", "cooldown: invalid duration '-1s'"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := FromMap(map[string]string{tt.key: tt.value})
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "prefix=!", "log_level=debug", "async_workers=2")

	t.Setenv("CMDSH_LOG_LEVEL", "error")
	t.Setenv("CMDSH_PERMISSIONS", "admin,fun")
	t.Setenv("CMDSH_COOLDOWN", "2s")

	s, err := Load(filepath.Join(home, "missing-is-an-error.env"))
	require.Error(t, err)

	dotenv := filepath.Join(home, "test.env")
	require.NoError(t, os.WriteFile(dotenv, []byte("CMDSH_ASYNC_WORKERS=9\nCMDSH_LOG_LEVEL=warn\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("CMDSH_ASYNC_WORKERS") })

	s, err = Load(dotenv)
	require.NoError(t, err)

	require.Equal(t, "!", s.Prefix, "from file")
	require.Equal(t, "error", s.LogLevel, "real environment beats dotenv and file")
	require.Equal(t, 9, s.AsyncWorkers, "dotenv beats file")
	require.Equal(t, 64, s.AsyncQueue, "default")
	require.Equal(t, "console", s.SenderName, "default")
	require.Equal(t, []string{"admin", "fun"}, s.Permissions)
	require.Equal(t, 2*time.Second, s.Cooldown)
}

func TestLoad_NoDotenvFile(t *testing.T) {
	setupTempHome(t)
	t.Chdir(t.TempDir())

	s, err := Load()
	require.NoError(t, err)
	require.True(t, s.EnableLog)
	require.Equal(t, 4, s.AsyncWorkers)
	require.Zero(t, s.Cooldown)
}

func TestSettings_HasPermission(t *testing.T) {
	s := Settings{Permissions: []string{"admin", "Fun"}}
	require.True(t, s.HasPermission("admin"))
	require.True(t, s.HasPermission("fun"))
	require.False(t, s.HasPermission("admin.reload"))

	all := Settings{Permissions: []string{"*"}}
	require.True(t, all.HasPermission("anything"))

	require.False(t, Settings{}.HasPermission("admin"))
}
