package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pspkit/internal/console"
	"pspkit/internal/integrate"
	"pspkit/internal/stats"
)

// intervalCmd implements exercise 6A: 70% and 90% prediction intervals
// around a regression projection.
var intervalCmd = &cobra.Command{
	Use:   "interval CSVFILE ESTIMATE",
	Short: "Calculate 70% and 90% prediction intervals",
	Long: `Fits a linear regression to two CSV columns of historical data and
displays the projection and 70% and 90% prediction intervals for an
estimated value.`,
	Args: cobra.ExactArgs(2),
	RunE: runInterval,
}

func runInterval(cmd *cobra.Command, args []string) error {
	estimate, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid estimate %q: %w", args[1], err)
	}
	data, err := loadCSV(args[0])
	if err != nil {
		return err
	}
	xs, ys, err := chooseXY(console.Default(), data)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("X DATA: %v\n", xs)
	fmt.Printf("Y DATA: %v\n", ys)
	fmt.Println()

	beta0, err := stats.Beta0(xs, ys)
	if err != nil {
		return err
	}
	beta1, err := stats.Beta1(xs, ys)
	if err != nil {
		return err
	}
	fmt.Printf("β0: %v\n", beta0)
	fmt.Printf("β1: %v\n", beta1)

	stdDev, err := stats.StdDevAroundRegression(xs, ys)
	if err != nil {
		return err
	}
	fmt.Printf("StdDev: %v\n", stdDev)

	projection := beta0 + beta1*estimate
	fmt.Printf("Projection: %v\n", projection)

	integrator, err := integrate.NewIntegrator(20, 0.000001)
	if err != nil {
		return err
	}
	tdist := stats.TDistribution(float64(len(xs) - 2))
	tcdf := func(x float64) float64 {
		return integrator.IntegrateMinusInfinityTo(tdist, x)
	}
	fmt.Printf("t(70%%): %v\n", integrate.ApproximateInverse(tcdf, 0.85))
	fmt.Printf("t(90%%): %v\n", integrate.ApproximateInverse(tcdf, 0.95))

	for _, interval := range []struct {
		percent string
		alpha   float64
	}{
		{"70%", 0.85},
		{"90%", 0.95},
	} {
		r, err := stats.PredictionRange(estimate, interval.alpha, xs, ys)
		if err != nil {
			return err
		}
		fmt.Printf("Range(%s) = %v, UPI = %v, LPI = %v\n",
			interval.percent, r, projection+r, projection-r)
	}
	return nil
}
