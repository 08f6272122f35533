package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming84/hamming"
	"github.com/harlequix/hamming84/internal/encoding"
)

type demoCase struct {
	data      string
	codewords []string
}

var demoCases = []demoCase{
	{
		data: "1011",
		codewords: []string{
			"01100110",
			"11100110", "00100110", "01000110", "01110110",
			"01101110", "01100010", "01100100", "01100111",
			"00000110", "10100110", "01100000", "01100011", "01000111",
		},
	},
	{
		data:      "0101",
		codewords: []string{"01001011", "11001011", "10001011"},
	},
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Encode two sample blocks and decode corrupted copies of them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range demoCases {
				if err := runDemo(a, cmd.OutOrStdout(), c); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func runDemo(a *app, out io.Writer, c demoCase) error {
	data, err := encoding.ParseDataBlock(c.data)
	if err != nil {
		return err
	}
	cw := hamming.Encode(data)
	fmt.Fprintf(out, "\nencode %s -> %s\n", data, cw)

	for _, s := range c.codewords {
		received, err := encoding.ParseCodeword(s)
		if err != nil {
			return err
		}
		r := hamming.Inspect(received)
		logDecode(a, r)
		switch r.Outcome {
		case hamming.Clean:
			fmt.Fprintf(out, "decode %s -> %s\n", received, r.Data)
		case hamming.Corrected:
			fmt.Fprintf(out, "decode %s -> %s (corrected bit %d)\n", received, r.Data, r.Position)
		default:
			fmt.Fprintf(out, "decode %s -> %v\n", received, r.Err)
		}
	}
	return nil
}
