package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := Default()
	require.Equal(t, "http://localhost:1234", settings.BaseURL)
	require.Equal(t, 2*time.Second, settings.PropagationDelay.Std())
	require.NoError(t, settings.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "cyrest.yaml", `
base_url: http://localhost:8080
propagation_delay: 500ms
log_level: debug
`)

	settings, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", settings.BaseURL)
	require.Equal(t, 500*time.Millisecond, settings.PropagationDelay.Std())
	require.Equal(t, "debug", settings.LogLevel)
	// untouched field keeps its default
	require.Equal(t, 10*time.Second, settings.RequestTimeout.Std())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "cyrest.yaml", "propagation_delay: fast\n")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fast")
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "cyrest.yaml", "log_level: chatty\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateRequiresBaseURL(t *testing.T) {
	t.Parallel()

	settings := Default()
	settings.BaseURL = ""
	require.Error(t, settings.Validate())
}
