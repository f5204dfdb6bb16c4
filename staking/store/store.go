package store

import (
	"github.com/ethereum/go-ethereum/common"

	staking "github.com/stakewire/stakewire/staking/types"
)

// TakeStore is the shared delegate take mapping: at most one take per hotkey.
// The boolean result distinguishes "no take set" from a stored take of zero.
type TakeStore interface {
	GetDelegateTake(hotkey common.Address) (staking.Take, bool, error)
	SetDelegateTake(hotkey common.Address, take staking.Take) error
}

// OwnerStore persists which coldkey controls each registered hotkey.
type OwnerStore interface {
	GetHotkeyOwner(hotkey common.Address) (common.Address, bool, error)
	SetHotkeyOwner(hotkey common.Address, coldkey common.Address) error
}

// Store combines the take ledger with the ownership records backing it.
type Store interface {
	TakeStore
	OwnerStore
}
