package encoding

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/harlequix/hamming84/hamming"
)

const ONE byte = 49
const ZERO byte = 48

// ErrLength is wrapped by the parse functions when the input has the wrong
// number of bits.
var ErrLength = errors.New("wrong number of bits")

// ToBits converts a '0'/'1' string into bits. Any character other than '0'
// counts as a one.
func ToBits(s string) []hamming.Bit {
	out := make([]hamming.Bit, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ZERO {
			out[i] = 1
		}
	}
	return out
}

func FromBits(bits []hamming.Bit) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		if b == 0 {
			sb.WriteByte(ZERO)
		} else {
			sb.WriteByte(ONE)
		}
	}
	return sb.String()
}

func ParseDataBlock(s string) (hamming.DataBlock, error) {
	var data hamming.DataBlock
	s = strings.TrimSpace(s)
	if len(s) != hamming.DataLen {
		return data, fmt.Errorf("data block %q: %w: want %d, got %d", s, ErrLength, hamming.DataLen, len(s))
	}
	copy(data[:], ToBits(s))
	return data, nil
}

func ParseCodeword(s string) (hamming.Codeword, error) {
	var cw hamming.Codeword
	s = strings.TrimSpace(s)
	if len(s) != hamming.CodewordLen {
		return cw, fmt.Errorf("codeword %q: %w: want %d, got %d", s, ErrLength, hamming.CodewordLen, len(s))
	}
	copy(cw[:], ToBits(s))
	return cw, nil
}

// ParseCodewordHex reads a codeword packed into one hex byte, e.g. "66".
func ParseCodewordHex(s string) (hamming.Codeword, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return hamming.Codeword{}, fmt.Errorf("codeword %q: %w", s, err)
	}
	if len(raw) != 1 {
		return hamming.Codeword{}, fmt.Errorf("codeword %q: %w: want 1 byte, got %d", s, ErrLength, len(raw))
	}
	return hamming.CodewordFromByte(raw[0]), nil
}
