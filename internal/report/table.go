// Package report renders the tabular reports the exercises print.
package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table accumulates rows and renders them with headers and borders.
type Table struct {
	columns []string
	rows    [][]string
}

// NewTable returns a table with the given column names.
func NewTable(columns ...string) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. The number of values must match the number of
// columns.
func (t *Table) AddRow(values ...string) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("report: row has %d values for %d columns", len(values), len(t.columns))
	}
	t.rows = append(t.rows, values)
	return nil
}

// Render returns the bordered table as a string.
func (t *Table) Render() string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers(t.columns...).
		Rows(t.rows...).
		String()
}

// Heading returns a report heading underlined to its width.
func Heading(text string, underline rune) string {
	line := make([]rune, len([]rune(text)))
	for i := range line {
		line[i] = underline
	}
	return text + "\n" + string(line)
}
