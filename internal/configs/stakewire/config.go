package stakewire

import (
	"io/ioutil"

	"github.com/pelletier/go-toml"

	staking "github.com/stakewire/stakewire/staking/types"
)

const tomlConfigVersion = "1.0.0"

// DefaultConfig returns the config used when no file or flags are given.
func DefaultConfig() StakewireConfig {
	return StakewireConfig{
		Version: tomlConfigVersion,
		General: GeneralConfig{
			DataDir: "./",
		},
		Staking: StakingConfig{
			MinDelegateTake: uint16(staking.DefaultMinTake),
		},
		Log: LogConfig{
			Folder:     "./latest",
			FileName:   "stakewire.log",
			RotateSize: 100,
			Verbosity:  3,
		},
	}
}

// LoadConfig reads a toml config file on top of the defaults.
func LoadConfig(file string) (StakewireConfig, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return StakewireConfig{}, err
	}
	config := DefaultConfig()
	if err := toml.Unmarshal(b, &config); err != nil {
		return StakewireConfig{}, err
	}
	return config, nil
}

// WriteConfigToFile persists config as toml at file.
func WriteConfigToFile(config StakewireConfig, file string) error {
	b, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(file, b, 0644)
}
