package hamming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allBlocks() []DataBlock {
	out := make([]DataBlock, 0, 16)
	for n := uint8(0); n < 16; n++ {
		out = append(out, DataBlockFromNibble(n))
	}
	return out
}

func TestComputeParity(t *testing.T) {
	tests := []struct {
		data DataBlock
		want ParityTriple
	}{
		{DataBlock{0, 0, 0, 0}, ParityTriple{0, 0, 0}},
		{DataBlock{1, 0, 1, 1}, ParityTriple{0, 1, 0}},
		{DataBlock{0, 1, 0, 1}, ParityTriple{0, 1, 0}},
		{DataBlock{1, 0, 0, 0}, ParityTriple{1, 1, 0}},
		{DataBlock{0, 1, 0, 0}, ParityTriple{1, 0, 1}},
		{DataBlock{0, 0, 1, 0}, ParityTriple{0, 1, 1}},
		{DataBlock{0, 0, 0, 1}, ParityTriple{1, 1, 1}},
		{DataBlock{1, 1, 1, 1}, ParityTriple{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.data.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeParity(tt.data))
		})
	}
}

func TestEncodeLiteral(t *testing.T) {
	require.Equal(t, Codeword{0, 1, 1, 0, 0, 1, 1, 0}, Encode(DataBlock{1, 0, 1, 1}))
	require.Equal(t, Codeword{0, 1, 0, 0, 1, 0, 1, 1}, Encode(DataBlock{0, 1, 0, 1}))
}

func TestDecodeLiteral(t *testing.T) {
	tests := []struct {
		name    string
		cw      Codeword
		want    DataBlock
		wantErr error
	}{
		{"clean 1011", Codeword{0, 1, 1, 0, 0, 1, 1, 0}, DataBlock{1, 0, 1, 1}, nil},
		{"bit 0 flipped", Codeword{1, 1, 1, 0, 0, 1, 1, 0}, DataBlock{1, 0, 1, 1}, nil},
		{"bits 0 and 1 flipped", Codeword{1, 0, 1, 0, 0, 1, 1, 0}, DataBlock{}, ErrTwoErrorsDetected},
		{"bits 0 and 3 flipped", Codeword{1, 1, 1, 1, 0, 1, 1, 0}, DataBlock{}, ErrTwoErrorsDetected},
		{"clean 0101", Codeword{0, 1, 0, 0, 1, 0, 1, 1}, DataBlock{0, 1, 0, 1}, nil},
		{"0101 bit 0 flipped", Codeword{1, 1, 0, 0, 1, 0, 1, 1}, DataBlock{0, 1, 0, 1}, nil},
		{"0101 bits 0 and 1 flipped", Codeword{1, 0, 0, 0, 1, 0, 1, 1}, DataBlock{}, ErrTwoErrorsDetected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.cw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, data := range allBlocks() {
		got, err := Decode(Encode(data))
		require.NoError(t, err, data.String())
		assert.Equal(t, data, got)
	}
}

func TestEvenWeight(t *testing.T) {
	for _, data := range allBlocks() {
		assert.Equal(t, 0, Encode(data).Weight()%2, data.String())
	}
}

func TestSingleBitCorrection(t *testing.T) {
	for _, data := range allBlocks() {
		cw := Encode(data)
		for pos := 0; pos < CodewordLen; pos++ {
			got, err := Decode(cw.Flip(pos))
			require.NoError(t, err, "data %s pos %d", data, pos)
			assert.Equal(t, data, got, "data %s pos %d", data, pos)
		}
	}
}

func TestDoubleBitDetection(t *testing.T) {
	for _, data := range allBlocks() {
		cw := Encode(data)
		for i := 0; i < CodewordLen; i++ {
			for j := i + 1; j < CodewordLen; j++ {
				got, err := Decode(cw.Flip(i, j))
				require.True(t, errors.Is(err, ErrTwoErrorsDetected), "data %s flips %d,%d", data, i, j)
				assert.Equal(t, DataBlock{}, got)
			}
		}
	}
}

func TestDecodeDoesNotMutateInput(t *testing.T) {
	cw := Codeword{1, 1, 1, 0, 0, 1, 1, 0}
	before := cw
	_, err := Decode(cw)
	require.NoError(t, err)
	assert.Equal(t, before, cw)
}

func TestInspect(t *testing.T) {
	cw := Encode(DataBlock{1, 0, 1, 1})

	t.Run("clean", func(t *testing.T) {
		r := Inspect(cw)
		assert.Equal(t, Clean, r.Outcome)
		assert.Equal(t, uint8(0), r.Syndrome)
		assert.Equal(t, NoPosition, r.Position)
		assert.Equal(t, cw, r.Corrected)
		assert.NoError(t, r.Err)
	})

	t.Run("overall parity flip is silent", func(t *testing.T) {
		r := Inspect(cw.Flip(PosOverall))
		assert.Equal(t, Clean, r.Outcome)
		assert.Equal(t, NoPosition, r.Position)
		assert.Equal(t, DataBlock{1, 0, 1, 1}, r.Data)
	})

	for pos := PosP1; pos <= PosD4; pos++ {
		r := Inspect(cw.Flip(pos))
		assert.Equal(t, Corrected, r.Outcome, "pos %d", pos)
		assert.Equal(t, uint8(pos+1), r.Syndrome, "pos %d", pos)
		assert.Equal(t, pos, r.Position)
		assert.Equal(t, cw, r.Corrected)
	}

	t.Run("uncorrectable", func(t *testing.T) {
		r := Inspect(cw.Flip(PosP1, PosP2))
		assert.Equal(t, Uncorrectable, r.Outcome)
		assert.Equal(t, uint8(3), r.Syndrome)
		assert.Equal(t, PosD1, r.Position)
		assert.ErrorIs(t, r.Err, ErrTwoErrorsDetected)
		assert.Equal(t, "uncorrectable", r.Outcome.String())
	})
}

func TestPacking(t *testing.T) {
	cw := Codeword{0, 1, 1, 0, 0, 1, 1, 0}
	assert.Equal(t, byte(0x66), cw.Byte())
	assert.Equal(t, cw, CodewordFromByte(0x66))
	assert.Equal(t, "01100110", cw.String())
	assert.Equal(t, DataBlock{1, 0, 1, 1}, cw.Data())
	assert.Equal(t, ParityTriple{0, 1, 0}, cw.Parity())
	assert.Equal(t, "010", cw.Parity().String())

	for n := uint8(0); n < 16; n++ {
		assert.Equal(t, n, DataBlockFromNibble(n).Nibble())
	}
	assert.Equal(t, DataBlock{1, 0, 1, 1}, DataBlockFromNibble(0xb))
}

func TestFlipIgnoresOutOfRange(t *testing.T) {
	cw := Encode(DataBlock{0, 1, 0, 1})
	assert.Equal(t, cw, cw.Flip(-1, 8, 100))
	assert.Equal(t, cw, cw.Flip(3, 3))
}

func TestNonBinaryBitsReadAsOne(t *testing.T) {
	raw := DataBlock{2, 0, 0, 0}
	cw := Encode(raw)
	assert.Equal(t, Encode(DataBlock{1, 0, 0, 0}), cw)
	assert.Equal(t, "11100001", cw.String())
	assert.Equal(t, byte(0xe1), cw.Byte())
	assert.Equal(t, 0, cw.Weight()%2)

	// the printed form decodes to the same data as the codeword itself
	reparsed := CodewordFromByte(cw.Byte())
	want, err := Decode(cw)
	require.NoError(t, err)
	got, err := Decode(reparsed)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, DataBlock{1, 0, 0, 0}, got)

	wide := Codeword{0, 7, 2, 0, 0, 255, 9, 0}
	assert.Equal(t, "01100110", wide.String())
	assert.Equal(t, byte(0x66), wide.Byte())
	assert.Equal(t, 4, wide.Weight())
	assert.Equal(t, "11100110", wide.Flip(PosP1).String())

	r := Inspect(wide)
	assert.Equal(t, Clean, r.Outcome)
	assert.Equal(t, Codeword{0, 1, 1, 0, 0, 1, 1, 0}, r.Received)
	assert.Equal(t, DataBlock{1, 0, 1, 1}, r.Data)
	assert.Equal(t, Bit(0), Bit(5).Flip())
}
