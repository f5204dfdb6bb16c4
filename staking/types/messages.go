package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// DecreaseTake - type for lowering the take a delegate hotkey charges on
// delegated stake. The coldkey must own the hotkey.
type DecreaseTake struct {
	Coldkey common.Address `json:"coldkey"`
	Hotkey  common.Address `json:"hotkey"`
	Take    Take           `json:"take"`
}

// MarshalDecreaseTake marshals the decrease take message
func MarshalDecreaseTake(msg DecreaseTake) ([]byte, error) {
	return rlp.EncodeToBytes(msg)
}

// UnmarshalDecreaseTake unmarshal binary into a DecreaseTake message
func UnmarshalDecreaseTake(by []byte) (*DecreaseTake, error) {
	decoded := &DecreaseTake{}
	err := rlp.DecodeBytes(by, decoded)
	return decoded, err
}

// Copy deep copy of the message
func (d DecreaseTake) Copy() DecreaseTake {
	d1 := d
	return d1
}
