package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pspkit/internal/console"
	"pspkit/internal/fileio"
	"pspkit/internal/seq"
	"pspkit/internal/stats"
)

// statsCmd implements exercise 1A: descriptive statistics over one CSV
// column, collected through a linked list.
var statsCmd = &cobra.Command{
	Use:   "stats CSVFILE",
	Short: "Print the mean and standard deviation of a CSV column",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	data, err := fileio.ReadCSV(args[0])
	if err != nil {
		return err
	}
	if len(data.Records) == 0 {
		return fmt.Errorf("no data found in file %s", args[0])
	}

	con := console.Default()
	column, err := con.ChooseFromList("Which column would you like to use:", data.Columns)
	if err != nil {
		return err
	}
	logger.Debug("column selected", zap.String("column", column))

	values := &seq.LinkedList[float64]{}
	for _, record := range data.Records {
		cell := strings.TrimSpace(record[column])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("column %q contains non-numeric value %q", column, cell)
		}
		values.Insert(v)
	}

	for v := range values.All() {
		fmt.Println(v)
	}

	mean, err := stats.Mean(values.Slice())
	if err != nil {
		return err
	}
	stdDev, err := stats.StdDev(values.Slice())
	if err != nil {
		return err
	}
	fmt.Println("Mean: ", mean)
	fmt.Println("Std Dev: ", stdDev)
	return nil
}
