package registry

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/stakewire/stakewire/internal/utils"
	"github.com/stakewire/stakewire/staking/store"
)

var (
	// ErrNotRegistered is returned when the target hotkey has no
	// registration record.
	ErrNotRegistered = errors.New("hotkey is not registered")

	// ErrNonAssociatedColdKey is returned when the acting coldkey does not
	// control the target hotkey.
	ErrNonAssociatedColdKey = errors.New("coldkey does not own the hotkey")
)

// Registry tracks which coldkey controls each delegate hotkey. It is the
// ownership authority consulted before any take mutation.
type Registry struct {
	owners store.OwnerStore
	log    zerolog.Logger
}

// New returns a registry over the given ownership records.
func New(owners store.OwnerStore) *Registry {
	return &Registry{
		owners: owners,
		log:    utils.Logger().With().Str("module", "registry").Logger(),
	}
}

// Register associates hotkey with the controlling coldkey. Registering the
// same pair again is a no-op; a hotkey already owned by a different coldkey
// is rejected.
func (r *Registry) Register(hotkey, coldkey common.Address) error {
	owner, ok, err := r.owners.GetHotkeyOwner(hotkey)
	if err != nil {
		return err
	}
	if ok {
		if owner == coldkey {
			return nil
		}
		return errors.Wrapf(
			ErrNonAssociatedColdKey, "hotkey %s is already owned by %s",
			hotkey.Hex(), owner.Hex(),
		)
	}
	if err := r.owners.SetHotkeyOwner(hotkey, coldkey); err != nil {
		return err
	}
	r.log.Info().
		Str("hotkey", hotkey.Hex()).
		Str("coldkey", coldkey.Hex()).
		Msg("Registered delegate hotkey")
	return nil
}

// CheckHotkeyOwner asserts that hotkey is registered and that coldkey is its
// controller.
func (r *Registry) CheckHotkeyOwner(coldkey, hotkey common.Address) error {
	owner, ok, err := r.owners.GetHotkeyOwner(hotkey)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrNotRegistered, "hotkey %s", hotkey.Hex())
	}
	if owner != coldkey {
		return errors.Wrapf(
			ErrNonAssociatedColdKey, "hotkey %s is owned by %s",
			hotkey.Hex(), owner.Hex(),
		)
	}
	return nil
}
