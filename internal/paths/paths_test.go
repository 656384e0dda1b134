package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJellynamePaths(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	home, err := UserHomeDir()
	require.NoError(t, err)

	dir, err := JellynameDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "jellyname"), dir)

	configPath, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), configPath)

	historyPath, err := HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "history.db"), historyPath)

	logPath, err := LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "logs", "jellyname.log"), logPath)
}

func TestUserHomeDirIgnoresSudoRoot(t *testing.T) {
	t.Setenv("SUDO_USER", "root")

	home, err := UserHomeDir()
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}

func TestUserHomeDirUnknownSudoUserFallsBack(t *testing.T) {
	t.Setenv("SUDO_USER", "no-such-user-xyz")

	home, err := UserHomeDir()
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}

func TestActualUser(t *testing.T) {
	t.Setenv("SUDO_USER", "mediauser")
	assert.Equal(t, "mediauser", ActualUser())

	t.Setenv("SUDO_USER", "")
	assert.NotEmpty(t, ActualUser())
}
