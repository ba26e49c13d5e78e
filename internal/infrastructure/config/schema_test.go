package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSchema(t *testing.T) {
	data, err := json.Marshal(ConfigSchema())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"image_stagger"`)
	assert.Contains(t, s, `"allow_insecure_http"`)
	assert.Contains(t, s, `"uuid7"`)
}

func TestCardsSchema(t *testing.T) {
	data, err := json.Marshal(CardsSchema())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "array", doc["type"])
	assert.Contains(t, string(data), `"structured"`)
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.schema.json")

	require.NoError(t, WriteSchemaFile(path, CardsSchema()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
