// Package hamming implements the extended Hamming(8,4) code: 4 data bits are
// protected by 3 positional parity bits and one overall parity bit, which is
// enough to correct any single flipped bit and to detect any two.
package hamming

// Codeword positions.
const (
	PosP1 = iota
	PosP2
	PosD1
	PosP3
	PosD2
	PosD3
	PosD4
	PosOverall

	NoPosition = -1
)

const (
	DataLen     = 4
	CodewordLen = 8
)

// DataBlock holds d1..d4.
type DataBlock [DataLen]Bit

// Codeword is laid out as p1, p2, d1, p3, d2, d3, d4, p_overall.
type Codeword [CodewordLen]Bit

// ParityTriple holds p1, p2, p3.
type ParityTriple [3]Bit

// data bits covered by p1, p2, p3
var parityCovers = [3][3]int{
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

// codeword positions of d1..d4 and p1..p3
var (
	dataPlaces   = [DataLen]int{PosD1, PosD2, PosD3, PosD4}
	parityPlaces = [3]int{PosP1, PosP2, PosP3}
)

// syndrome (p1 mismatch as the low bit) to faulty codeword position
var syndromePosition = [8]int{
	NoPosition,
	PosP1,
	PosP2,
	PosD1,
	PosP3,
	PosD2,
	PosD3,
	PosD4,
}

// ComputeParity returns the three positional parity bits for data.
func ComputeParity(data DataBlock) ParityTriple {
	var parity ParityTriple
	for i, covers := range parityCovers {
		var sum Bit
		for _, d := range covers {
			sum ^= norm(data[d])
		}
		parity[i] = sum
	}
	return parity
}

// Encode builds the codeword for data. The overall parity bit makes the
// number of ones in the codeword even.
func Encode(data DataBlock) Codeword {
	data = data.normalized()
	parity := ComputeParity(data)
	cw := Codeword{parity[0], parity[1], data[0], parity[2], data[1], data[2], data[3], 0}
	cw[PosOverall] = Bit(cw.Weight() % 2)
	return cw
}

// Decode recovers the data block from cw, correcting a single flipped bit.
// Two flipped bits yield ErrTwoErrorsDetected and a zero DataBlock.
//
// The overall parity bit is only consulted after a correction. A codeword
// whose first seven bits are consistent decodes cleanly even if bit 7 alone
// is wrong, so a lone flip of the overall parity bit is never reported.
func Decode(cw Codeword) (DataBlock, error) {
	report := Inspect(cw)
	return report.Data, report.Err
}

// Outcome classifies what the decoder did with a codeword.
type Outcome int

const (
	Clean Outcome = iota
	Corrected
	Uncorrectable
)

func (o Outcome) String() string {
	switch o {
	case Clean:
		return "clean"
	case Corrected:
		return "corrected"
	case Uncorrectable:
		return "uncorrectable"
	default:
		return "unknown"
	}
}

// Report is the full result of decoding one codeword.
type Report struct {
	Received  Codeword
	Corrected Codeword
	Syndrome  uint8
	// Position is the bit the syndrome points at, NoPosition for syndrome 0.
	Position int
	Outcome  Outcome
	Data     DataBlock
	Err      error
}

// Inspect decodes cw like Decode and returns every intermediate result.
func Inspect(cw Codeword) Report {
	cw = cw.normalized()
	report := Report{
		Received:  cw,
		Corrected: cw,
		Position:  NoPosition,
	}

	received := cw.Data()
	expected := ComputeParity(received)
	for i, place := range parityPlaces {
		if cw[place] != expected[i] {
			report.Syndrome |= 1 << uint(i)
		}
	}

	report.Position = syndromePosition[report.Syndrome]
	if report.Position == NoPosition {
		report.Outcome = Clean
		report.Data = received
		return report
	}

	report.Corrected = cw.Flip(report.Position)
	if report.Corrected.Weight()%2 != 0 {
		report.Outcome = Uncorrectable
		report.Err = ErrTwoErrorsDetected
		return report
	}
	report.Outcome = Corrected
	report.Data = report.Corrected.Data()
	return report
}

// Data returns the data bits carried by cw, uncorrected.
func (cw Codeword) Data() DataBlock {
	var data DataBlock
	for i, place := range dataPlaces {
		data[i] = norm(cw[place])
	}
	return data
}

// Parity returns the positional parity bits carried by cw.
func (cw Codeword) Parity() ParityTriple {
	var parity ParityTriple
	for i, place := range parityPlaces {
		parity[i] = norm(cw[place])
	}
	return parity
}

// Flip returns a copy of cw with the given positions inverted. Positions
// outside the codeword are ignored.
func (cw Codeword) Flip(positions ...int) Codeword {
	for _, pos := range positions {
		if pos < 0 || pos >= CodewordLen {
			continue
		}
		cw[pos] = cw[pos].Flip()
	}
	return cw
}

// Weight counts the ones in cw.
func (cw Codeword) Weight() int {
	n := 0
	for _, b := range cw {
		if norm(b) == 1 {
			n++
		}
	}
	return n
}

// Byte packs cw with bit 0 as the most significant bit.
func (cw Codeword) Byte() byte {
	var out byte
	for i, b := range cw {
		if norm(b) == 1 {
			out |= 1 << uint(CodewordLen-1-i)
		}
	}
	return out
}

func (cw Codeword) normalized() Codeword {
	for i, b := range cw {
		cw[i] = norm(b)
	}
	return cw
}

func (cw Codeword) String() string {
	return bitsString(cw[:])
}

// CodewordFromByte is the inverse of Codeword.Byte.
func CodewordFromByte(b byte) Codeword {
	var cw Codeword
	for i := range cw {
		cw[i] = Bit(b>>uint(CodewordLen-1-i)) & 0x01
	}
	return cw
}

// Nibble packs data with d1 as the most significant bit.
func (data DataBlock) Nibble() uint8 {
	var out uint8
	for i, b := range data {
		if norm(b) == 1 {
			out |= 1 << uint(DataLen-1-i)
		}
	}
	return out
}

func (data DataBlock) normalized() DataBlock {
	for i, b := range data {
		data[i] = norm(b)
	}
	return data
}

func (data DataBlock) String() string {
	return bitsString(data[:])
}

// DataBlockFromNibble unpacks the low four bits of n, d1 first.
func DataBlockFromNibble(n uint8) DataBlock {
	var data DataBlock
	for i := range data {
		data[i] = Bit(n>>uint(DataLen-1-i)) & 0x01
	}
	return data
}

func (p ParityTriple) String() string {
	return bitsString(p[:])
}
