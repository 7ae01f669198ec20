package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiagoK-777/hass-abaco-finance/internal/config"
)

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abaco.yaml")

	err := runInit(path, "https://staging.abacofinance.com.br", "tok-123")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.abacofinance.com.br", cfg.API.URL)
	assert.Equal(t, "tok-123", cfg.API.Token)
	assert.Equal(t, "@every 5m", cfg.Polling.Interval)
}

func TestRunInit_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abaco.yaml")
	require.NoError(t, runInit(path, config.DefaultAPIURL, "tok"))

	err := runInit(path, config.DefaultAPIURL, "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "abaco", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "test")
	assert.Contains(t, names, "sensors")
	assert.Contains(t, names, "watch")
	assert.Contains(t, names, "tx")
}
