package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming84/hamming"
	"github.com/harlequix/hamming84/probing"
)

func newCheckCmd(a *app) *cobra.Command {
	var strategies []string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Sweep injected bit errors over every data block",
		Long: `check encodes all 16 data blocks, injects every error pattern of the chosen
strategies and reports how the decoder handled them. It fails if any pattern
decodes to wrong data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strategy") {
				strategies = a.config.Strategies
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %6s %10s %9s %13s\n", "strategy", "total", "recovered", "detected", "miscorrected")

			var miss *probing.Miss
			for _, name := range strategies {
				strategy, err := probing.FromName(name)
				if err != nil {
					return err
				}
				stats := probing.Sweep(strategy)
				a.logger.WithField("strategy", stats.Strategy).
					WithField("clean", stats.Outcomes[hamming.Clean]).
					WithField("corrected", stats.Outcomes[hamming.Corrected]).
					WithField("uncorrectable", stats.Outcomes[hamming.Uncorrectable]).
					Debug("sweep done")
				fmt.Fprintf(out, "%-8s %6d %10d %9d %13d\n",
					stats.Strategy, stats.Total, stats.Recovered, stats.Detected, stats.Miscorrected)
				fmt.Fprintln(out, "  positions:"+formatPositions(stats.Positions))
				if miss == nil && stats.FirstMiss != nil {
					miss = stats.FirstMiss
				}
			}
			if miss != nil {
				return fmt.Errorf("data %s with flips %s decoded to %s", miss.Data, miss.Pattern, miss.Got)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&strategies, "strategy", nil, "error patterns to sweep: single, double (default from config)")
	return cmd
}

func formatPositions(positions map[int]int) string {
	var sb strings.Builder
	for pos := 0; pos < hamming.CodewordLen; pos++ {
		if n := positions[pos]; n > 0 {
			fmt.Fprintf(&sb, " %d=%d", pos, n)
		}
	}
	if sb.Len() == 0 {
		return " none"
	}
	return sb.String()
}
