//go:build windows

package startup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsimtools/simratemon/internal/startup"
)

func TestShortcutPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("APPDATA", tmpDir)

	path, err := startup.ShortcutPath()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir,
		`Microsoft\Windows\Start Menu\Programs\Startup`,
		"SimRateMonitor.lnk"), path)
}

func TestShortcutPath_NoAppData(t *testing.T) {
	t.Setenv("APPDATA", "")

	_, err := startup.ShortcutPath()
	assert.Error(t, err)
}

func TestEnabled_ReflectsShortcutFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("APPDATA", tmpDir)

	// No shortcut yet
	assert.False(t, startup.Enabled())

	path, err := startup.ShortcutPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("lnk"), 0o644))

	assert.True(t, startup.Enabled())

	// Deleting the .lnk behind our back must be reflected
	require.NoError(t, startup.Disable())
	assert.False(t, startup.Enabled())
}
