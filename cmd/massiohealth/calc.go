package main

import (
	"encoding/json"
	"fmt"

	"massiohealth/internal/bmi"
	"massiohealth/internal/calculator"
	"massiohealth/internal/observability"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalcCmd() *cobra.Command {
	var (
		weight float64
		height float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute BMI once and print the category",
		Example: `  massiohealth calc --weight 70 --height 1.75
  massiohealth calc -w 90 -H 1.70 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := calculator.BMIRequest{Weight: weight, Height: height}

			res, err := bmi.Calculate(bmi.Measurement{Weight: weight, Height: height})
			if err != nil {
				return err
			}

			observability.Logger.Debug("bmi computed",
				zap.Float64("raw", res.Raw),
				zap.String("category", res.Category.String()),
			)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(calculator.NewBMIResponse(req, res))
			}

			fmt.Fprintf(out, "BMI:      %.1f\n", res.Value)
			fmt.Fprintf(out, "Category: %s\n", res.Category.Label())
			fmt.Fprintf(out, "%s\n", res.Category.Description())
			return nil
		},
	}

	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "Weight in kilograms")
	cmd.Flags().Float64VarP(&height, "height", "H", 0, "Height in meters")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}
