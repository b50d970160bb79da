package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pspkit/internal/integrate"
	"pspkit/internal/stats"
)

// integrateCmd implements exercise 5A: numerical integration of the normal
// distribution using Simpson's rule.
var integrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Approximate integrals of the normal distribution",
	Long: `Approximates the integral of the normal distribution probability
density function using Simpson's rule and displays the results.`,
	Args: cobra.NoArgs,
	RunE: runIntegrate,
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	integrator, err := integrate.NewIntegrator(20, 0.0001)
	if err != nil {
		return err
	}

	fmt.Println("REPORT")
	fmt.Println("======")
	for _, upper := range []float64{2.5, 0.2, -1.1} {
		result := integrator.IntegrateMinusInfinityTo(stats.NormalPDF, upper)
		fmt.Printf("∫(-∞, %g] = %v\n", upper, result)
	}
	return nil
}
