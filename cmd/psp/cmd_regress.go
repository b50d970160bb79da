package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pspkit/internal/console"
	"pspkit/internal/stats"
)

// regressCmd implements exercise 4A: linear regression parameters for two
// CSV columns.
var regressCmd = &cobra.Command{
	Use:   "regress CSVFILE",
	Short: "Calculate and display linear regression parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegress,
}

func runRegress(cmd *cobra.Command, args []string) error {
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
	fmt.Printf("β0: %v\n", beta0)
	printWarnings(stats.Beta0Warnings(beta0))
	fmt.Println()

	beta1, err := stats.Beta1(xs, ys)
	if err != nil {
		return err
	}
	fmt.Printf("β1: %v\n", beta1)
	printWarnings(stats.Beta1Warnings(beta1))
	return nil
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("WARNINGS:")
	fmt.Println(strings.Join(warnings, "\n"))
}
