package commands

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"designopt/calculator"
	"designopt/model"
)

type loadEvaluator interface {
	EvaluateLoad(x []float64, heatLoad float64) model.Result
}

func evalCmd() *cobra.Command {
	var heatLoad float64
	cmd := &cobra.Command{
		Use:   "eval <model> <x1> [x2 ...]",
		Short: "Evaluate one design vector",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := calculator.NewCalculator(args[0], cfg)
			if err != nil {
				return err
			}
			x, err := parseVector(args[1:])
			if err != nil {
				return err
			}
			if err := calculator.Validate(c, x); err != nil {
				return err
			}

			var r model.Result
			if cmd.Flags().Changed("heat-load") {
				le, ok := c.(loadEvaluator)
				if !ok {
					return fmt.Errorf("%w: %s does not take a heat load", calculator.ErrInvalidInput, c.Name())
				}
				r = le.EvaluateLoad(x, heatLoad)
			} else {
				r = c.Evaluate(x)
			}
			log.WithFields(log.Fields{
				"model":    c.Name(),
				"feasible": r.Feasible(),
			}).Debug("评估完成")
			return printResult(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().Float64Var(&heatLoad, "heat-load", 0, "heat load in W for the dual-side models")
	return cmd
}

func parseVector(args []string) ([]float64, error) {
	x := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: x[%d]=%q", calculator.ErrInvalidInput, i, a)
		}
		x[i] = v
	}
	return x, nil
}
