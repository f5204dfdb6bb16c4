package core

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/stakewire/stakewire/internal/utils"
	"github.com/stakewire/stakewire/staking/store"
	staking "github.com/stakewire/stakewire/staking/types"
)

// StakingParams exposes the chain-level staking parameters the mutator reads.
type StakingParams interface {
	MinDelegateTake() staking.Take
}

// StaticParams is a fixed-value StakingParams, used by tooling and tests.
type StaticParams struct {
	MinTake staking.Take
}

// MinDelegateTake returns the configured global take floor.
func (p StaticParams) MinDelegateTake() staking.Take { return p.MinTake }

// TakeMutator applies take mutations to the delegate take ledger.
//
// Callers must guarantee invocations are serialized per hotkey: the mutator
// performs a read-then-write with no internal locking, relying on the
// surrounding ledger pipeline applying one request at a time.
type TakeMutator struct {
	takes  store.TakeStore
	auth   AuthChecker
	params StakingParams
	sink   EventSink
	log    zerolog.Logger
}

// NewTakeMutator wires a mutator over the given collaborators. A nil sink
// disables event emission.
func NewTakeMutator(
	takes store.TakeStore, auth AuthChecker, params StakingParams, sink EventSink,
) *TakeMutator {
	if sink == nil {
		sink = NopSink{}
	}
	return &TakeMutator{
		takes:  takes,
		auth:   auth,
		params: params,
		sink:   sink,
		log:    utils.Logger().With().Str("module", "take mutator").Logger(),
	}
}

// DecreaseTake lowers the take of the message's hotkey to the requested
// value. The requested take must be strictly lower than the current take when
// one exists, and never below the global minimum. On success exactly one
// write and one event emission happen; on failure the ledger is untouched
// and no event is emitted.
func (m *TakeMutator) DecreaseTake(msg *staking.DecreaseTake) error {
	if err := VerifyDecreaseTakeFromMsg(
		m.takes, m.auth, m.params.MinDelegateTake(), msg,
	); err != nil {
		countTakeRejection(err)
		return err
	}
	if err := m.takes.SetDelegateTake(msg.Hotkey, msg.Take); err != nil {
		return errors.Wrap(err, "failed to write delegate take")
	}
	takeDecreasedCounter.Inc()
	m.log.Info().
		Str("coldkey", msg.Coldkey.Hex()).
		Str("hotkey", msg.Hotkey.Hex()).
		Str("take", msg.Take.String()).
		Msg("TakeDecreased")
	m.sink.TakeDecreased(staking.TakeDecreasedEvent{
		Coldkey: msg.Coldkey,
		Hotkey:  msg.Hotkey,
		Take:    msg.Take,
	})
	return nil
}
