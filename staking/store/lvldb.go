package store

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/stakewire/stakewire/internal/utils"
	staking "github.com/stakewire/stakewire/staking/types"
)

var _ Store = (*LvlDBStore)(nil)

// Key prefixes in the ledger database.
var (
	delegateTakePrefix = []byte("dt")
	hotkeyOwnerPrefix  = []byte("ho")
)

// LvlDBStore keeps delegate takes and hotkey ownership in leveldb.
//
// The mutex only guards the db handle against concurrent tooling access;
// per-hotkey ordering of mutations is the caller's responsibility, the
// surrounding ledger pipeline applies one request at a time.
type LvlDBStore struct {
	db   *leveldb.DB
	lock sync.Mutex
}

// NewLvlDBStore opens (or creates) the ledger database under dbPath.
func NewLvlDBStore(dbPath string) (*LvlDBStore, error) {
	db, err := leveldb.OpenFile(dbPath, nil)
	if err != nil {
		utils.Logger().Error().Err(err).Str("path", dbPath).Msg("Failed to open take ledger database")
		return nil, errors.Wrap(err, "failed to open take ledger database")
	}
	return &LvlDBStore{db: db}, nil
}

// Close releases the underlying database.
func (s *LvlDBStore) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.db.Close()
}

// GetDelegateTake reads the stored take for hotkey. The second result is
// false when the hotkey has no take set.
func (s *LvlDBStore) GetDelegateTake(hotkey common.Address) (staking.Take, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	val, err := s.db.Get(delegateTakeKey(hotkey), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(err, "failed to read delegate take")
	}
	take, err := staking.TakeFromBytes(val)
	if err != nil {
		return 0, false, err
	}
	return take, true, nil
}

// SetDelegateTake writes the take for hotkey, overwriting any prior value.
func (s *LvlDBStore) SetDelegateTake(hotkey common.Address, take staking.Take) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.db.Put(delegateTakeKey(hotkey), take.Bytes(), nil); err != nil {
		return errors.Wrap(err, "failed to write delegate take")
	}
	return nil
}

// GetHotkeyOwner reads the coldkey controlling hotkey. The second result is
// false when the hotkey is not registered.
func (s *LvlDBStore) GetHotkeyOwner(hotkey common.Address) (common.Address, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	val, err := s.db.Get(hotkeyOwnerKey(hotkey), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return common.Address{}, false, nil
		}
		return common.Address{}, false, errors.Wrap(err, "failed to read hotkey owner")
	}
	if len(val) != common.AddressLength {
		return common.Address{}, false, errors.Errorf(
			"corrupt hotkey owner record: %v bytes", len(val),
		)
	}
	return common.BytesToAddress(val), true, nil
}

// SetHotkeyOwner records coldkey as the controller of hotkey.
func (s *LvlDBStore) SetHotkeyOwner(hotkey common.Address, coldkey common.Address) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.db.Put(hotkeyOwnerKey(hotkey), coldkey.Bytes(), nil); err != nil {
		return errors.Wrap(err, "failed to write hotkey owner")
	}
	return nil
}

func delegateTakeKey(hotkey common.Address) []byte {
	return prefixedKey(delegateTakePrefix, hotkey)
}

func hotkeyOwnerKey(hotkey common.Address) []byte {
	return prefixedKey(hotkeyOwnerPrefix, hotkey)
}

func prefixedKey(prefix []byte, addr common.Address) []byte {
	key := make([]byte, 0, len(prefix)+common.AddressLength)
	key = append(key, prefix...)
	key = append(key, addr.Bytes()...)
	return key
}
