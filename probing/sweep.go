package probing

import (
	"errors"

	"github.com/harlequix/hamming84/hamming"
)

// Verdict is what a corrupted codeword did to the data it carried.
type Verdict int

const (
	Recovered Verdict = iota
	Detected
	Miscorrected
)

func (v Verdict) String() string {
	switch v {
	case Recovered:
		return "recovered"
	case Detected:
		return "detected"
	case Miscorrected:
		return "miscorrected"
	default:
		return "unknown"
	}
}

// Miss records a corruption the decoder turned into wrong data.
type Miss struct {
	Data    hamming.DataBlock
	Pattern Pattern
	Got     hamming.DataBlock
}

type Stats struct {
	Strategy     string
	Total        int
	Recovered    int
	Detected     int
	Miscorrected int
	// decoder outcomes, independent of the verdict
	Outcomes map[hamming.Outcome]int
	// codeword positions the syndrome pointed at
	Positions map[int]int
	FirstMiss *Miss
}

// Classify encodes data, applies pattern and decodes the result.
func Classify(data hamming.DataBlock, pattern Pattern) (Verdict, hamming.Report) {
	report := hamming.Inspect(pattern.Apply(hamming.Encode(data)))
	switch {
	case errors.Is(report.Err, hamming.ErrTwoErrorsDetected):
		return Detected, report
	case report.Data == data:
		return Recovered, report
	default:
		return Miscorrected, report
	}
}

// Sweep runs every pattern of s against all 16 data blocks.
func Sweep(s Strategy) Stats {
	stats := Stats{
		Strategy: s.Name(),
		Outcomes:  make(map[hamming.Outcome]int),
		Positions: make(map[int]int),
	}
	patterns := s.Patterns()
	for n := uint8(0); n < 1<<hamming.DataLen; n++ {
		data := hamming.DataBlockFromNibble(n)
		for _, pattern := range patterns {
			verdict, report := Classify(data, pattern)
			stats.Total++
			stats.Outcomes[report.Outcome]++
			if report.Position != hamming.NoPosition {
				stats.Positions[report.Position]++
			}
			switch verdict {
			case Recovered:
				stats.Recovered++
			case Detected:
				stats.Detected++
			case Miscorrected:
				stats.Miscorrected++
				if stats.FirstMiss == nil {
					stats.FirstMiss = &Miss{Data: data, Pattern: pattern, Got: report.Data}
				}
			}
		}
	}
	return stats
}
