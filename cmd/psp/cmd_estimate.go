package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pspkit/internal/probe"
	"pspkit/internal/report"
)

var estimateFull bool

// estimateCmd implements exercises 6B and 7B: PROBE size and time
// estimation from historical project data.
var estimateCmd = &cobra.Command{
	Use:   "estimate CSVFILE ESTIMATE",
	Short: "Estimate size and time using the PROBE method",
	Long: `Selects the most desirable PROBE estimation method whose
preconditions hold against historical project data and projects program
size and development time from a proxy size estimate.

With --full the report adds correlation, significance and the prediction
interval for each method.`,
	Args: cobra.ExactArgs(2),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().BoolVarP(&estimateFull, "full", "f", false,
		"include correlation, significance and prediction intervals")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	proxy, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid estimate %q: %w", args[1], err)
	}
	hist, err := probe.LoadCSV(args[0])
	if err != nil {
		return err
	}
	estimator := probe.NewEstimator(hist)

	sizeMethod, err := estimator.SizeMethod(proxy)
	if err != nil {
		return err
	}
	timeMethod, err := estimator.TimeMethod(proxy)
	if err != nil {
		return err
	}

	fmt.Println(report.Heading("REPORT", '='))
	fmt.Println()
	if err := printMethod("Size", sizeMethod, proxy); err != nil {
		return err
	}
	fmt.Println()
	return printMethod("Time", timeMethod, proxy)
}

// printMethod prints one section of the estimation report.
func printMethod(title string, m *probe.Method, proxy float64) error {
	fmt.Println(report.Heading(title, '-'))
	fmt.Println()

	regression, err := m.Regression()
	if err != nil {
		return err
	}
	projected := regression.Estimate(proxy)
	fmt.Printf("Method: %s\n", m.Name())
	fmt.Printf("β0: %v\n", regression.Beta0)
	fmt.Printf("β1: %v\n", regression.Beta1)
	fmt.Printf("Projection: %v\n", projected)
	if !estimateFull {
		return nil
	}

	r2, err := m.RSquared()
	if err != nil {
		return err
	}
	sig, err := m.Significance()
	if err != nil {
		return err
	}
	fmt.Printf("R²: %v\n", r2)
	fmt.Printf("Significance: %v\n", sig)

	interval, err := m.Interval(proxy)
	if err != nil {
		return err
	}
	if interval == nil {
		fmt.Println("Range: N/A")
		fmt.Println("UPI: N/A")
		fmt.Println("LPI: N/A")
		fmt.Println("Percent: N/A")
		return nil
	}
	if interval.HasRange {
		fmt.Printf("Range: %v\n", interval.Range)
	} else {
		fmt.Println("Range: N/A")
	}
	fmt.Printf("UPI: %v\n", interval.UPI)
	fmt.Printf("LPI: %v\n", interval.LPI)
	fmt.Printf("Percent: %s\n", interval.Percent)
	return nil
}
