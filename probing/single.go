package probing

import "github.com/harlequix/hamming84/hamming"

// StrategySingle flips each codeword bit on its own.
type StrategySingle struct {
	patternLen int
}

func NewSingleProbing() *StrategySingle {
	return &StrategySingle{
		patternLen: hamming.CodewordLen,
	}
}

func (s *StrategySingle) Name() string {
	return "single"
}

func (s *StrategySingle) Patterns() []Pattern {
	out := make([]Pattern, 0, s.patternLen)
	for pos := 0; pos < s.patternLen; pos++ {
		out = append(out, NewPattern(pos))
	}
	return out
}
