package commands

import (
	"github.com/spf13/cobra"

	"designopt/calculator"
	"designopt/model"
)

func boundsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounds [model]",
		Short: "List the models, or the design variables of one model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				var infos []model.ModelInfo
				for _, name := range calculator.Names() {
					c, err := calculator.NewCalculator(name, cfg)
					if err != nil {
						return err
					}
					infos = append(infos, calculator.Info(c))
				}
				return printModels(cmd.OutOrStdout(), infos)
			}
			c, err := calculator.NewCalculator(args[0], cfg)
			if err != nil {
				return err
			}
			return printBounds(cmd.OutOrStdout(), c.Bounds())
		},
	}
	return cmd
}
