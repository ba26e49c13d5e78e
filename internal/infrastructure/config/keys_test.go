package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_UnknownKeys(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	content := "[paste]\nimage_staggr = 5\n\n[zzz]\nwhatever = 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))
	require.NoError(t, mgr.Load())

	warnings := mgr.UnknownKeys()

	require.Len(t, warnings, 2)
	assert.Equal(t, KeyWarning{Key: "paste.image_staggr", Suggestion: "paste.image_stagger"}, warnings[0])
	assert.Equal(t, "zzz.whatever", warnings[1].Key)
	assert.Empty(t, warnings[1].Suggestion)
	assert.Contains(t, warnings[0].String(), "did you mean")
}

func TestManager_UnknownKeys_DefaultFile(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	assert.Empty(t, mgr.UnknownKeys())
}

func TestClosestKey(t *testing.T) {
	known := []string{"probe.timeout_ms", "probe.max_bytes", "logging.level"}

	assert.Equal(t, "probe.timeout_ms", closestKey("probe.timeout", known))
	assert.Equal(t, "logging.level", closestKey("loging.level", known))
	assert.Empty(t, closestKey("completely.unrelated", known))
}
