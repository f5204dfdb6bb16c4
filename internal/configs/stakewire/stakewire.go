package stakewire

import (
	staking "github.com/stakewire/stakewire/staking/types"
)

// StakewireConfig contains all the configs a user can set for running the
// stakewire tooling. Can be persisted to a toml file to avoid inputting all
// arguments.
type StakewireConfig struct {
	Version string
	General GeneralConfig
	Staking StakingConfig
	Log     LogConfig
}

type GeneralConfig struct {
	DataDir string
}

type StakingConfig struct {
	// MinDelegateTake is the numerator of the global take floor, over
	// staking.MaxTake. No delegate's take may fall below it.
	MinDelegateTake uint16
}

type LogConfig struct {
	Folder     string
	FileName   string
	RotateSize int
	Verbosity  int // zerolog level
}

// MinDelegateTake returns the configured global take floor.
func (c StakewireConfig) MinDelegateTake() staking.Take {
	return staking.Take(c.Staking.MinDelegateTake)
}
