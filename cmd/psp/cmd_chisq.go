package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pspkit/internal/chisq"
	"pspkit/internal/console"
	"pspkit/internal/fileio"
)

var chisqGeneral bool

// chisqCmd implements exercises 9A and 9B: the chi-squared normality test
// on a selected CSV column.
var chisqCmd = &cobra.Command{
	Use:   "chisq [CSVFILE]",
	Short: "Perform the chi-squared normality test on a data column",
	Long: `Performs the chi-squared test against the normal distribution on a
selected column of a CSV file. The data set must hold at least 20 values
and the count must be an even multiple of 5.

With --general the report also shows the raw probability P alongside the
confidence 1-P.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChisq,
}

func init() {
	chisqCmd.Flags().BoolVarP(&chisqGeneral, "general", "g", false,
		"show the generalized report with P and 1-P")
}

func runChisq(cmd *cobra.Command, args []string) error {
	con := console.Default()
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		var err error
		path, err = pickFixture(con)
		if err != nil {
			return err
		}
	}
	data, err := loadCSV(path)
	if err != nil {
		return err
	}
	column, err := con.ChooseFromList("Choose test column", data.Columns)
	if err != nil {
		return err
	}
	values, err := data.Column(column)
	if err != nil {
		return err
	}

	result, err := chisq.Test(values)
	if err != nil {
		return err
	}
	fmt.Printf("Q: %v\n", result.Q)
	if chisqGeneral {
		fmt.Printf("P: %v\n", result.P)
	}
	fmt.Printf("1-P: %v\n", 1.0-result.P)
	return nil
}

// pickFixture offers the CSV files under the fixtures directory, falling
// back to a free-form prompt when there are none.
func pickFixture(con *console.Console) (string, error) {
	candidates, err := fileio.FindFiles(cfg.FixturesDir, "*.csv")
	if err != nil || len(candidates) == 0 {
		return con.ExistingFileName("Enter test data file: ")
	}
	return con.ChooseFromList("Choose a test data file", candidates)
}
