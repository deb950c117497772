package huffman

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest code a Code can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is bit (Size-1) of Bits, the last bit is bit 0.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | (bit & 1)}
}

// Bit returns the i'th bit of the sequence, counting from the first.
func (hc Code) Bit(i byte) uint64 {
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// HasPrefix reports whether p is a prefix of hc.
func (hc Code) HasPrefix(p Code) bool {
	if p.Size > hc.Size {
		return false
	}
	if p.Size == 0 {
		return true
	}
	return hc.Bits>>(hc.Size-p.Size) == p.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
