package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pspkit/internal/console"
	"pspkit/internal/fileio"
)

var (
	numbersLists  bool
	numbersMaxLen int
)

// numbersCmd implements the B-series exercises: an interactive editor for
// files holding one number per line, or one comma-separated list per line
// with --lists.
var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Read, write, add to, or modify a file of numbers",
	Long: `Interactive editor for text files of numerical values.

Modes:
  Read   - Read and display numbers in a file
  Write  - Input numbers to write to a file
  Add    - Go through a file line-by-line and add new numbers
  Modify - Go through a file line-by-line and modify numbers

With --lists each line holds a comma-separated list of values instead of a
single number.`,
	RunE: runNumbers,
}

func init() {
	numbersCmd.Flags().BoolVarP(&numbersLists, "lists", "l", false,
		"edit lines of comma-separated lists instead of single numbers")
	numbersCmd.Flags().IntVar(&numbersMaxLen, "max-list-length", 10,
		"maximum values per list in --lists mode")
}

func runNumbers(cmd *cobra.Command, args []string) error {
	con := console.Default()

	fmt.Println("This program will read or write numbers to or from a given file.")
	mode, err := con.ChooseFromList("Choose a mode", []string{"Read", "Write", "Add", "Modify"})
	if err != nil {
		return err
	}
	logger.Debug("mode selected", zap.String("mode", mode), zap.Bool("lists", numbersLists))

	if numbersLists {
		switch mode {
		case "Read":
			return readListsFile(con)
		case "Write":
			return writeListsFile(con)
		case "Add":
			return addToListsFile(con)
		case "Modify":
			return modifyListsFile(con)
		}
		return fmt.Errorf("invalid mode %q", mode)
	}

	switch mode {
	case "Read":
		return readNumbersFile(con)
	case "Write":
		return writeNumbersFile(con)
	case "Add":
		return addToNumbersFile(con)
	case "Modify":
		return modifyNumbersFile(con)
	}
	return fmt.Errorf("invalid mode %q", mode)
}

func readNumbersFile(con *console.Console) error {
	path, err := con.ExistingFileName("Please enter a file name: ")
	if err != nil {
		return err
	}
	numbers, err := fileio.ReadNumbers(path)
	if err != nil {
		return err
	}
	for _, n := range numbers {
		fmt.Println(n)
	}
	return nil
}

func writeNumbersFile(con *console.Console) error {
	path, err := con.ConfirmedString("Please enter a file name: ")
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		overwrite, err := con.YesNo(fmt.Sprintf("File %s exists. Overwrite?", path))
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborting: not overwriting existing file %s", path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if _, statErr := os.Stat(dir); statErr != nil {
			return fmt.Errorf("directory for file %s does not exist", path)
		}
	}

	total, err := con.ConfirmedInt("How many numbers will you enter: ")
	if err != nil {
		return err
	}

	values := make([]float64, 0, total)
	for i := 0; i < total; i++ {
		v, err := con.ConfirmedFloat(fmt.Sprintf("Entry #%d: ", i+1))
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	return fileio.WriteNumbers(path, values)
}

// outputFileName asks whether results should go back to the original file
// or to a new one.
func outputFileName(con *console.Console, original string) (string, error) {
	fmt.Printf("Original file: %s\n", original)
	choice, err := con.BinaryChoice("Output file (s)ame/(n)ew file? ", "s", "n")
	if err != nil {
		return "", err
	}
	if choice == "n" {
		return con.ConfirmedString("New file name: ")
	}
	return original, nil
}

func printNumbersSoFar(results []float64) {
	if len(results) == 0 {
		return
	}
	fmt.Println("Numbers So Far:")
	for _, n := range results {
		fmt.Println(n)
	}
}

func addToNumbersFile(con *console.Console) error {
	path, err := con.ExistingFileName("Please enter a file name: ")
	if err != nil {
		return err
	}
	numbers, err := fileio.ReadNumbers(path)
	if err != nil {
		return err
	}
	output, err := outputFileName(con, path)
	if err != nil {
		return err
	}

	var results []float64
	for idx, n := range numbers {
		printNumbersSoFar(results)
		fmt.Println("Next number:")
		fmt.Println(n)

		choice, err := con.ChooseFromList("What would you like to do:",
			[]string{"Keep", "Add Number After", "Keep Rest"})
		if err != nil {
			return err
		}
		switch choice {
		case "Keep":
			results = append(results, n)
		case "Add Number After":
			results = append(results, n)
			v, err := con.ConfirmedFloat("New number: ")
			if err != nil {
				return err
			}
			results = append(results, v)
		case "Keep Rest":
			results = append(results, numbers[idx:]...)
			return writeResults(output, results)
		}
	}
	return writeResults(output, results)
}

func modifyNumbersFile(con *console.Console) error {
	path, err := con.ExistingFileName("Please enter a file name: ")
	if err != nil {
		return err
	}
	numbers, err := fileio.ReadNumbers(path)
	if err != nil {
		return err
	}
	output, err := outputFileName(con, path)
	if err != nil {
		return err
	}

	var results []float64
	for idx, n := range numbers {
		printNumbersSoFar(results)
		fmt.Println("Next Number:")
		fmt.Println(n)

		choice, err := con.ChooseFromList("What would you like to do",
			[]string{"Keep", "Modify", "Delete", "Keep Rest"})
		if err != nil {
			return err
		}
		switch choice {
		case "Keep":
			results = append(results, n)
		case "Modify":
			v, err := con.ConfirmedFloat("New value: ")
			if err != nil {
				return err
			}
			results = append(results, v)
		case "Delete":
			// Drop the value.
		case "Keep Rest":
			results = append(results, numbers[idx:]...)
			return writeResults(output, results)
		}
	}
	return writeResults(output, results)
}

func writeResults(path string, results []float64) error {
	if err := fileio.WriteNumbers(path, results); err != nil {
		return err
	}
	fmt.Println("Results written to", path)
	return nil
}

func readListsFile(con *console.Console) error {
	path, err := con.ExistingFileName("Please enter a file name: ")
	if err != nil {
		return err
	}
	rows, err := fileio.ReadLists(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Println(row)
	}
	return nil
}

func writeListsFile(con *console.Console) error {
	path, err := con.ConfirmedString("Please enter a file name: ")
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		overwrite, err := con.YesNo(fmt.Sprintf("File %s exists. Overwrite?", path))
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborting: not overwriting existing file %s", path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if _, statErr := os.Stat(dir); statErr != nil {
			return fmt.Errorf("directory for file %s does not exist", path)
		}
	}

	total, err := con.ConfirmedInt("How many lists will you enter: ")
	if err != nil {
		return err
	}

	rows := make([][]float64, 0, total)
	for i := 0; i < total; i++ {
		row, err := con.ConfirmedList(fmt.Sprintf("Entry #%d: ", i+1), numbersMaxLen)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return writeListResults(path, rows)
}

func printListsSoFar(results [][]float64) {
	if len(results) == 0 {
		return
	}
	fmt.Println("Data so far:")
	for i, row := range results {
		fmt.Printf("%d: %v\n", i, row)
	}
}

func addToListsFile(con *console.Console) error {
	path, err := con.ExistingFileName("Please enter file to read from: ")
	if err != nil {
		return err
	}
	rows, err := fileio.ReadLists(path)
	if err != nil {
		return err
	}
	output, err := outputFileName(con, path)
	if err != nil {
		return err
	}

	var results [][]float64
	for idx, row := range rows {
		printListsSoFar(results)
		fmt.Println("Next Item:")
		fmt.Println(row)

		choice, err := con.ChooseFromList("What would you like to do",
			[]string{"Keep", "Add Item Before", "Add Item After", "Keep Rest"})
		if err != nil {
			return err
		}
		switch choice {
		case "Keep":
			results = append(results, row)
		case "Add Item Before":
			item, err := con.ConfirmedList("New item: ", numbersMaxLen)
			if err != nil {
				return err
			}
			results = append(results, item, row)
		case "Add Item After":
			item, err := con.ConfirmedList("New item: ", numbersMaxLen)
			if err != nil {
				return err
			}
			results = append(results, row, item)
		case "Keep Rest":
			results = append(results, rows[idx:]...)
			return writeListResults(output, results)
		}
	}
	return writeListResults(output, results)
}

func modifyListsFile(con *console.Console) error {
	path, err := con.ExistingFileName("Please enter file to modify: ")
	if err != nil {
		return err
	}
	rows, err := fileio.ReadLists(path)
	if err != nil {
		return err
	}
	output, err := outputFileName(con, path)
	if err != nil {
		return err
	}

	var results [][]float64
	for idx, row := range rows {
		printListsSoFar(results)
		fmt.Println("Next Item:")
		fmt.Println(row)

		choice, err := con.ChooseFromList("What would you like to do",
			[]string{"Keep", "Change", "Delete", "Keep Rest"})
		if err != nil {
			return err
		}
		switch choice {
		case "Keep":
			results = append(results, row)
		case "Change":
			item, err := con.ConfirmedList("New Item: ", numbersMaxLen)
			if err != nil {
				return err
			}
			results = append(results, item)
		case "Delete":
			// Drop the row.
		case "Keep Rest":
			results = append(results, rows[idx:]...)
			return writeListResults(output, results)
		}
	}
	return writeListResults(output, results)
}

func writeListResults(path string, results [][]float64) error {
	if err := fileio.WriteLists(path, results); err != nil {
		return err
	}
	fmt.Println("Results written to", path)
	return nil
}
