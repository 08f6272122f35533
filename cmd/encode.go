package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming84/hamming"
	"github.com/harlequix/hamming84/internal/encoding"
)

func newEncodeCmd(a *app) *cobra.Command {
	var asHex bool
	cmd := &cobra.Command{
		Use:   "encode <bits>...",
		Short: "Encode 4-bit data blocks into 8-bit codewords",
		Example: `  hamming84 encode 1011
  hamming84 encode --hex 1011 0101`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("hex") {
				asHex = a.config.Hex
			}
			for _, arg := range args {
				data, err := encoding.ParseDataBlock(arg)
				if err != nil {
					return err
				}
				cw := hamming.Encode(data)
				a.logger.WithField("data", data.String()).WithField("codeword", cw.String()).Debug("encoded")
				if asHex {
					fmt.Fprintf(cmd.OutOrStdout(), "%02x\n", cw.Byte())
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), encoding.FromBits(cw[:]))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHex, "hex", false, "print codewords as a hex byte (default from config)")
	return cmd
}
