package registry

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakewire/stakewire/staking/store"
)

var (
	hotkey       = makeTestAddr("hotkey")
	coldkey      = makeTestAddr("coldkey")
	otherColdkey = makeTestAddr("other-coldkey")
)

func makeTestAddr(item interface{}) common.Address {
	s := fmt.Sprintf("stakewire-test-addr-%v", item)
	return common.BytesToAddress([]byte(s))
}

func TestRegister(t *testing.T) {
	r := New(store.NewMemStore())

	require.NoError(t, r.Register(hotkey, coldkey))
	require.NoError(t, r.CheckHotkeyOwner(coldkey, hotkey))
}

func TestRegisterSamePairIsNoOp(t *testing.T) {
	r := New(store.NewMemStore())

	require.NoError(t, r.Register(hotkey, coldkey))
	require.NoError(t, r.Register(hotkey, coldkey))
	require.NoError(t, r.CheckHotkeyOwner(coldkey, hotkey))
}

func TestRegisterOwnedByOtherColdkey(t *testing.T) {
	r := New(store.NewMemStore())

	require.NoError(t, r.Register(hotkey, coldkey))
	err := r.Register(hotkey, otherColdkey)
	assert.ErrorIs(t, err, ErrNonAssociatedColdKey)

	// ownership is unchanged
	require.NoError(t, r.CheckHotkeyOwner(coldkey, hotkey))
}

func TestCheckHotkeyOwnerNotRegistered(t *testing.T) {
	r := New(store.NewMemStore())

	err := r.CheckHotkeyOwner(coldkey, hotkey)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestCheckHotkeyOwnerWrongColdkey(t *testing.T) {
	r := New(store.NewMemStore())

	require.NoError(t, r.Register(hotkey, coldkey))
	err := r.CheckHotkeyOwner(otherColdkey, hotkey)
	assert.ErrorIs(t, err, ErrNonAssociatedColdKey)
}
