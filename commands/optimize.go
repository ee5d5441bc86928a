package commands

import (
	"github.com/spf13/cobra"

	"designopt/calculator"
	"designopt/optimizer"
)

func optimizeCmd() *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "optimize <model>",
		Short: "Sample a model and print its non-dominated designs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := calculator.NewCalculator(args[0], cfg)
			if err != nil {
				return err
			}
			if samples == 0 {
				samples = cfg.Samples
			}
			if err := cfg.CheckSamples(samples); err != nil {
				return err
			}
			front, err := optimizer.NewSampler(samples).Optimize(cmd.Context(), c)
			if err != nil {
				return err
			}
			return printFront(cmd.OutOrStdout(), c.Bounds(), front)
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "number of sampled designs (default from [optimizer] samples)")
	return cmd
}
