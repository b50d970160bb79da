package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pspkit/internal/console"
	"pspkit/internal/report"
	"pspkit/internal/seq"
)

// sortCmd implements exercise 8A: sort CSV rows by a selected integer
// column and display them as a table.
var sortCmd = &cobra.Command{
	Use:   "sort CSVFILE",
	Short: "Sort a CSV file by a selected integer column",
	Args:  cobra.ExactArgs(1),
	RunE:  runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	data, err := loadCSV(args[0])
	if err != nil {
		return err
	}
	con := console.Default()
	column, err := con.ChooseFromList("Column to sort on", data.Columns)
	if err != nil {
		return err
	}

	type keyedRecord struct {
		key    int
		record map[string]string
	}
	records := make([]keyedRecord, 0, len(data.Records))
	for _, record := range data.Records {
		key, err := strconv.Atoi(record[column])
		if err != nil {
			return fmt.Errorf("column %s contains non-integer value %q", column, record[column])
		}
		records = append(records, keyedRecord{key: key, record: record})
	}
	sorted := seq.MergeSort(records, func(r keyedRecord) int { return r.key })

	table := report.NewTable(data.Columns...)
	for _, r := range sorted {
		row := make([]string, len(data.Columns))
		for i, name := range data.Columns {
			row[i] = r.record[name]
		}
		if err := table.AddRow(row...); err != nil {
			return err
		}
	}
	fmt.Println(table.Render())
	return nil
}
