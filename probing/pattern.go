package probing

import (
	"strconv"
	"strings"

	"github.com/harlequix/hamming84/hamming"
)

// Pattern lists the codeword positions to flip.
type Pattern struct {
	Positions []int
}

func NewPattern(positions ...int) Pattern {
	return Pattern{Positions: positions}
}

func (p Pattern) Apply(cw hamming.Codeword) hamming.Codeword {
	return cw.Flip(p.Positions...)
}

func (p Pattern) Len() int {
	return len(p.Positions)
}

func (p Pattern) String() string {
	parts := make([]string, len(p.Positions))
	for i, pos := range p.Positions {
		parts[i] = strconv.Itoa(pos)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
