package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pspkit/internal/console"
	"pspkit/internal/stats"
)

// correlateCmd implements exercise 7A: correlation and significance between
// two CSV columns.
var correlateCmd = &cobra.Command{
	Use:   "correlate CSVFILE",
	Short: "Calculate correlation and significance between two columns",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorrelate,
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	data, err := loadCSV(args[0])
	if err != nil {
		return err
	}
	xs, ys, err := chooseXY(console.Default(), data)
	if err != nil {
		return err
	}

	r, err := stats.Correlation(xs, ys)
	if err != nil {
		return err
	}
	t, err := stats.TValue(xs, ys)
	if err != nil {
		return err
	}
	sig, err := stats.Significance(xs, ys)
	if err != nil {
		return err
	}
	fmt.Printf("R: %v\n", r)
	fmt.Printf("T: %v\n", t)
	fmt.Printf("Significance: %v\n", sig)
	return nil
}
