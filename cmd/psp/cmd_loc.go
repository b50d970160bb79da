package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pspkit/internal/loc"
	"pspkit/internal/report"
)

var locRecursive bool

// locCmd implements exercises 2A and 3A: LOC counting for a single file or
// a whole source tree.
var locCmd = &cobra.Command{
	Use:   "loc PATH",
	Short: "Count lines of code in Go source",
	Long: `Count logical lines of code in a Go file or in a set of Go files.

For a single file the report breaks the count down by struct, method, and
function. With --recursive every Go file under PATH is counted and the
results are shown in a table with a TOTAL row.`,
	Args: cobra.ExactArgs(1),
	RunE: runLOC,
}

func init() {
	locCmd.Flags().BoolVarP(&locRecursive, "recursive", "r", false,
		"recursively count lines in all Go files under PATH")
}

func runLOC(cmd *cobra.Command, args []string) error {
	if locRecursive {
		return runLOCRecursive(cmd, args[0])
	}
	return runLOCFile(args[0])
}

func runLOCFile(path string) error {
	count, err := loc.CountFile(path)
	if err != nil {
		return err
	}

	fmt.Println(report.Heading("REPORT", '='))
	fmt.Println()
	fmt.Println(report.Heading("Module Breakdown", '-'))
	fmt.Println()
	printBreakdown(count.Tree, 0)
	fmt.Println()
	fmt.Println(report.Heading("Module Totals", '-'))
	fmt.Println()

	methods := count.Tree.NumOfKind(loc.KindMethod)
	fmt.Println("Physical LOC", count.Physical)
	fmt.Println("Logical LOC", count.Tree.TotalLogical())
	fmt.Println("Structs", count.Tree.NumOfKind(loc.KindStruct))
	fmt.Println("Methods", methods)
	fmt.Println("Functions", count.Tree.NumOfKind(loc.KindFunction))
	if methods > 0 {
		fmt.Println("LOC / Method: ", count.Tree.LogicalOfKind(loc.KindMethod)/methods)
	}
	return nil
}

func printBreakdown(tree *loc.CountTree, indent int) {
	for i := 0; i < indent; i++ {
		fmt.Print("  ")
	}
	fmt.Printf("\\- %s: %d\n", tree.Name, tree.TotalLogical())
	for _, kid := range tree.Children {
		printBreakdown(kid, indent+1)
	}
}

func runLOCRecursive(cmd *cobra.Command, root string) error {
	counts, err := loc.CountDir(cmd.Context(), root)
	if err != nil {
		return err
	}
	logger.Debug("counted files", zap.Int("files", len(counts)))

	table := report.NewTable("File", "Logical LOC", "Structs", "Methods", "Functions")
	var totalLOC, totalStructs, totalMethods, totalFuncs int
	for _, c := range counts {
		logical := c.Tree.TotalLogical()
		structs := c.Tree.NumOfKind(loc.KindStruct)
		methods := c.Tree.NumOfKind(loc.KindMethod)
		funcs := c.Tree.NumOfKind(loc.KindFunction)
		totalLOC += logical
		totalStructs += structs
		totalMethods += methods
		totalFuncs += funcs
		if err := table.AddRow(c.Tree.Name, strconv.Itoa(logical),
			strconv.Itoa(structs), strconv.Itoa(methods), strconv.Itoa(funcs)); err != nil {
			return err
		}
	}
	if err := table.AddRow("TOTAL", strconv.Itoa(totalLOC), strconv.Itoa(totalStructs),
		strconv.Itoa(totalMethods), strconv.Itoa(totalFuncs)); err != nil {
		return err
	}
	fmt.Println(table.Render())
	return nil
}
