package store

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"

	staking "github.com/stakewire/stakewire/staking/types"
)

var _ Store = (*MemStore)(nil)

// MemStore is an in-memory Store used in tests and tooling dry runs.
type MemStore struct {
	lock   sync.RWMutex
	takes  map[common.Address]staking.Take
	owners map[common.Address]common.Address
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		takes:  make(map[common.Address]staking.Take),
		owners: make(map[common.Address]common.Address),
	}
}

// GetDelegateTake reads the stored take for hotkey.
func (s *MemStore) GetDelegateTake(hotkey common.Address) (staking.Take, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	take, ok := s.takes[hotkey]
	return take, ok, nil
}

// SetDelegateTake writes the take for hotkey, overwriting any prior value.
func (s *MemStore) SetDelegateTake(hotkey common.Address, take staking.Take) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.takes[hotkey] = take
	return nil
}

// GetHotkeyOwner reads the coldkey controlling hotkey.
func (s *MemStore) GetHotkeyOwner(hotkey common.Address) (common.Address, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	owner, ok := s.owners[hotkey]
	return owner, ok, nil
}

// SetHotkeyOwner records coldkey as the controller of hotkey.
func (s *MemStore) SetHotkeyOwner(hotkey common.Address, coldkey common.Address) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.owners[hotkey] = coldkey
	return nil
}
