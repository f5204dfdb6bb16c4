package stakewire

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	staking "github.com/stakewire/stakewire/staking/types"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, tomlConfigVersion, config.Version)
	assert.Equal(t, staking.DefaultMinTake, config.MinDelegateTake())
}

func TestConfigRoundTrip(t *testing.T) {
	config := DefaultConfig()
	config.General.DataDir = "/var/lib/stakewire"
	config.Staking.MinDelegateTake = 500

	file := filepath.Join(t.TempDir(), "stakewire.toml")
	require.NoError(t, WriteConfigToFile(config, file))

	loaded, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
	assert.Equal(t, staking.Take(500), loaded.MinDelegateTake())
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "stakewire.toml")
	require.NoError(t, writeFile(file, "[General]\nDataDir = \"/data\"\n"))

	loaded, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "/data", loaded.General.DataDir)
	assert.Equal(t, staking.DefaultMinTake, loaded.MinDelegateTake())
}

func writeFile(file, content string) error {
	return ioutil.WriteFile(file, []byte(content), 0644)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
