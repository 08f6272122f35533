package probing

import "github.com/harlequix/hamming84/hamming"

// StrategyDouble flips every unordered pair of codeword bits.
type StrategyDouble struct {
	patternLen int
}

func NewDoubleProbing() *StrategyDouble {
	return &StrategyDouble{
		patternLen: hamming.CodewordLen,
	}
}

func (s *StrategyDouble) Name() string {
	return "double"
}

func (s *StrategyDouble) Patterns() []Pattern {
	out := make([]Pattern, 0, s.patternLen*(s.patternLen-1)/2)
	for i := 0; i < s.patternLen; i++ {
		for j := i + 1; j < s.patternLen; j++ {
			out = append(out, NewPattern(i, j))
		}
	}
	return out
}
