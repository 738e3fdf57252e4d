package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
title: "Test Monitors"
zoom: 9
sites:
  - id: 1
    lat: 41.6
    lon: -87.3
    datum: WGS84
    name: One
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Monitors", cfg.Title)
	assert.Equal(t, 9, cfg.Zoom)
	assert.Equal(t, DefaultTileURL, cfg.TileURL)
	assert.Equal(t, DefaultTileSize, cfg.TileSize)
	require.Len(t, cfg.Sites, 1)
	assert.Equal(t, "One", cfg.Sites[0].Name)
}

func TestLoadEmptySitesFallsBack(t *testing.T) {
	path := writeConfig(t, `title: "No Sites"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Sites, 6)
}

func TestLoadRejectsBadCoordinates(t *testing.T) {
	path := writeConfig(t, `
sites:
  - id: 1
    lat: 120.0
    lon: -87.3
    name: Broken
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultTileURL, cfg.TileURL)
	assert.Equal(t, DefaultZoom, cfg.Zoom)
	assert.Len(t, cfg.Sites, 6)
}
