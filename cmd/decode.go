package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/harlequix/hamming84/hamming"
	"github.com/harlequix/hamming84/internal/encoding"
)

// ErrFlipPosition is returned when --flip names a bit outside the codeword.
var ErrFlipPosition = errors.New("flip position out of range")

type reportRow struct {
	Received  hamming.Codeword
	Corrected hamming.Codeword
	Syndrome  uint8
	Position  int
	Outcome   hamming.Outcome
	Data      hamming.DataBlock
	Error     string
}

func newReportRow(report hamming.Report) (reportRow, error) {
	var row reportRow
	if err := copier.Copy(&row, &report); err != nil {
		return row, err
	}
	if report.Err != nil {
		row.Error = report.Err.Error()
	}
	return row, nil
}

func (row reportRow) print(w io.Writer) {
	fmt.Fprintf(w, "received:  %s (0x%02x)\n", row.Received, row.Received.Byte())
	fmt.Fprintf(w, "parity:    %s (expected %s)\n", row.Received.Parity(), hamming.ComputeParity(row.Received.Data()))
	fmt.Fprintf(w, "syndrome:  %d\n", row.Syndrome)
	if row.Position == hamming.NoPosition {
		fmt.Fprintln(w, "position:  none")
	} else {
		fmt.Fprintf(w, "position:  %d\n", row.Position)
	}
	fmt.Fprintf(w, "corrected: %s\n", row.Corrected)
	fmt.Fprintf(w, "outcome:   %s\n", row.Outcome)
	if row.Error != "" {
		fmt.Fprintf(w, "error:     %s\n", row.Error)
	} else {
		fmt.Fprintf(w, "data:      %s\n", row.Data)
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	var (
		asHex  bool
		flips  []int
		report bool
	)
	cmd := &cobra.Command{
		Use:   "decode <codeword>...",
		Short: "Decode 8-bit codewords, correcting single errors",
		Example: `  hamming84 decode 01100110
  hamming84 decode --flip 0,3 01100110
  hamming84 decode --hex --report 66`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFlips(flips); err != nil {
				return err
			}
			if !cmd.Flags().Changed("hex") {
				asHex = a.config.Hex
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				var (
					cw  hamming.Codeword
					err error
				)
				if asHex {
					cw, err = encoding.ParseCodewordHex(arg)
				} else {
					cw, err = encoding.ParseCodeword(arg)
				}
				if err != nil {
					return err
				}
				cw = cw.Flip(flips...)

				r := hamming.Inspect(cw)
				logDecode(a, r)
				if report {
					row, err := newReportRow(r)
					if err != nil {
						return err
					}
					row.print(out)
				} else if r.Err == nil {
					fmt.Fprintln(out, r.Data)
				}
				if errors.Is(r.Err, hamming.ErrTwoErrorsDetected) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d codewords: %w", failed, len(args), hamming.ErrTwoErrorsDetected)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHex, "hex", false, "read codewords as a hex byte (default from config)")
	cmd.Flags().IntSliceVar(&flips, "flip", nil, "flip these bit positions before decoding")
	cmd.Flags().BoolVar(&report, "report", false, "print the syndrome and correction for each codeword")
	return cmd
}

func checkFlips(flips []int) error {
	for _, pos := range flips {
		if pos < 0 || pos >= hamming.CodewordLen {
			return fmt.Errorf("--flip %d: %w: want 0..%d", pos, ErrFlipPosition, hamming.CodewordLen-1)
		}
	}
	return nil
}

func logDecode(a *app, r hamming.Report) {
	entry := a.logger.WithFields(logrus.Fields{
		"codeword": r.Received.String(),
		"syndrome": r.Syndrome,
		"outcome":  r.Outcome.String(),
	})
	switch r.Outcome {
	case hamming.Clean:
		entry.Debug("decoded")
	case hamming.Corrected:
		entry.WithField("position", r.Position).Info("corrected single error")
	case hamming.Uncorrectable:
		entry.Warn("two errors detected, discarding codeword")
	}
}
