package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func makeTestAddr(item interface{}) common.Address {
	s := fmt.Sprintf("stakewire-test-addr-%v", item)
	return common.BytesToAddress([]byte(s))
}
