package hamming

// Bit is a single binary digit. Any nonzero value reads as 1.
type Bit byte

func norm(b Bit) Bit {
	if b != 0 {
		return 1
	}
	return 0
}

func (b Bit) Flip() Bit {
	return norm(b) ^ 0x01
}

func (b Bit) String() string {
	if b == 0 {
		return "0"
	}
	return "1"
}

func bitsString(bits []Bit) string {
	out := make([]byte, len(bits))
	for i, b := range bits {
		if b == 0 {
			out[i] = '0'
		} else {
			out[i] = '1'
		}
	}
	return string(out)
}
