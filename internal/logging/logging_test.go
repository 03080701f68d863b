package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudcost.log")

	err := Initialize(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	t.Cleanup(InitializeDefault)

	Named("model").Debug("estimated scenario")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"estimated scenario"`)
	assert.Contains(t, string(data), `"logger":"model"`)
}

func TestInitializeUnknownLevelFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudcost.log")

	require.NoError(t, Initialize(Config{Level: "loud", Format: "json", Output: path}))
	t.Cleanup(InitializeDefault)

	Info("hidden")
	Warn("shown")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestInitializeBadPath(t *testing.T) {
	err := Initialize(Config{Level: "info", Format: "console", Output: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
