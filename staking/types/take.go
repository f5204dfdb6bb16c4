package types

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

// Take is the fraction of delegated-stake rewards a delegate hotkey keeps,
// expressed as a numerator over the fixed denominator MaxTake.
type Take uint16

const (
	// MaxTake is the fixed denominator of the take fraction.
	MaxTake Take = 65535

	// DefaultMinTake is the default global floor for delegate takes,
	// one eleventh of MaxTake (~9.09%).
	DefaultMinTake Take = 5957

	takeByteLen = 2
)

var errTakeWrongByteLen = errors.Errorf("take must be %v bytes", takeByteLen)

// Percentage returns the take as a percentage of rewards.
func (t Take) Percentage() float64 {
	return float64(t) / float64(MaxTake) * 100
}

// Bytes returns the big endian byte encoding of the take.
func (t Take) Bytes() []byte {
	b := make([]byte, takeByteLen)
	binary.BigEndian.PutUint16(b, uint16(t))
	return b
}

// TakeFromBytes decodes a take from its big endian byte encoding.
func TakeFromBytes(b []byte) (Take, error) {
	if len(b) != takeByteLen {
		return 0, errors.Wrapf(errTakeWrongByteLen, "have %v", len(b))
	}
	return Take(binary.BigEndian.Uint16(b)), nil
}

// String returns a human readable string representation of the take.
func (t Take) String() string {
	return fmt.Sprintf("%d/%d (%.2f%%)", uint16(t), uint16(MaxTake), t.Percentage())
}
