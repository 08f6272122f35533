package hamming

import "errors"

// ErrTwoErrorsDetected is returned by Decode when the codeword carries two
// flipped bits. The data cannot be recovered and must be discarded.
var ErrTwoErrorsDetected = errors.New("hamming: two errors detected, codeword is not correctable")
