package core

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/stakewire/stakewire/staking/store"
	staking "github.com/stakewire/stakewire/staking/types"
)

var (
	errTakeStoreIsMissing   = errors.New("no take store was provided")
	errAuthCheckerIsMissing = errors.New("no authorization checker was provided")
	errMsgIsMissing         = errors.New("no decrease take message was provided")

	// ErrTakeNotDecreasing is returned when the requested take is not
	// strictly lower than the stored take.
	ErrTakeNotDecreasing = errors.New("take must be strictly lower than the current take")

	// ErrTakeBelowMinimum is returned when the requested take is below the
	// global minimum take.
	ErrTakeBelowMinimum = errors.New("take is below the global minimum take")
)

// AuthChecker confirms the acting coldkey legitimately controls a delegate
// hotkey. Implementations also reject hotkeys that are not registered.
type AuthChecker interface {
	CheckHotkeyOwner(coldkey, hotkey common.Address) error
}

// VerifyDecreaseTakeFromMsg verifies the decrease take message against the
// take store. Check order is fixed: ownership first, then strict decrease,
// then the floor; authorization failures are surfaced unchanged.
//
// Note that this function never updates the store, it only reads from it.
func VerifyDecreaseTakeFromMsg(
	takes store.TakeStore, auth AuthChecker, minTake staking.Take, msg *staking.DecreaseTake,
) error {
	if takes == nil {
		return errTakeStoreIsMissing
	}
	if auth == nil {
		return errAuthCheckerIsMissing
	}
	if msg == nil {
		return errMsgIsMissing
	}
	if err := auth.CheckHotkeyOwner(msg.Coldkey, msg.Hotkey); err != nil {
		return err
	}
	currentTake, ok, err := takes.GetDelegateTake(msg.Hotkey)
	if err != nil {
		return err
	}
	// A hotkey without a take record has no baseline to decrease from; only
	// the floor applies and the write establishes its first take.
	if ok && msg.Take >= currentTake {
		return errors.Wrapf(
			ErrTakeNotDecreasing, "requested %s current %s", msg.Take, currentTake,
		)
	}
	if msg.Take < minTake {
		return errors.Wrapf(
			ErrTakeBelowMinimum, "requested %s minimum %s", msg.Take, minTake,
		)
	}
	return nil
}
