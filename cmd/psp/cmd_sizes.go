package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"pspkit/internal/report"
	"pspkit/internal/stats"
)

// Columns a relative size table input file must carry.
var sizeTableColumns = []string{"Name", "Category", "Parts", "Total LOC"}

// sizesCmd computes a relative size table: per-category size ranges from
// very small to very large, derived from historical object sizes.
var sizesCmd = &cobra.Command{
	Use:   "sizes CSVFILE",
	Short: "Compute and display a relative size table",
	Long: `Normalizes historical object sizes to LOC per part, groups them by
category and displays the log-normal size ranges (VS, S, M, L, VL) for
each category.`,
	Args: cobra.ExactArgs(1),
	RunE: runSizes,
}

func runSizes(cmd *cobra.Command, args []string) error {
	data, err := loadCSV(args[0])
	if err != nil {
		return err
	}
	if err := validateSizeColumns(data.Columns); err != nil {
		return err
	}

	// LOC per part, grouped by category.
	byCategory := make(map[string][]float64)
	for _, record := range data.Records {
		parts, err := strconv.ParseFloat(record["Parts"], 64)
		if err != nil {
			return fmt.Errorf("invalid Parts value %q", record["Parts"])
		}
		total, err := strconv.ParseFloat(record["Total LOC"], 64)
		if err != nil {
			return fmt.Errorf("invalid Total LOC value %q", record["Total LOC"])
		}
		if parts == 0 {
			return fmt.Errorf("object %s has zero parts", record["Name"])
		}
		category := record["Category"]
		byCategory[category] = append(byCategory[category], total/parts)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	table := report.NewTable("Category", "VS", "S", "M", "L", "VL")
	for _, category := range categories {
		items := byCategory[category]
		var ranges []float64
		if len(items) < 2 {
			ranges = []float64{items[0], items[0], items[0], items[0], items[0]}
		} else {
			ranges, err = stats.SizeRanges(items)
			if err != nil {
				return err
			}
		}
		row := []string{category}
		for _, r := range ranges {
			row = append(row, strconv.FormatFloat(r, 'f', 2, 64))
		}
		if err := table.AddRow(row...); err != nil {
			return err
		}
	}
	fmt.Println(table.Render())
	return nil
}

// validateSizeColumns checks the input carries exactly the expected columns.
func validateSizeColumns(columns []string) error {
	if len(columns) != len(sizeTableColumns) {
		return fmt.Errorf("invalid data columns %v", columns)
	}
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c] = true
	}
	for _, want := range sizeTableColumns {
		if !have[want] {
			return fmt.Errorf("invalid data columns %v", columns)
		}
	}
	return nil
}
