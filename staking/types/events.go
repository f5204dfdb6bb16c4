package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// TakeDecreasedEvent is emitted once per successful take decrease, carrying
// the acting coldkey, the delegate hotkey and the new take.
type TakeDecreasedEvent struct {
	Coldkey common.Address
	Hotkey  common.Address
	Take    Take
}
