package main

import (
	"fmt"

	"pspkit/internal/console"
	"pspkit/internal/fileio"
)

// loadCSV reads a CSV file and fails on empty data.
func loadCSV(path string) (*fileio.CSVData, error) {
	data, err := fileio.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	if len(data.Records) == 0 {
		return nil, fmt.Errorf("no data in file %s", path)
	}
	return data, nil
}

// chooseXY asks the user to pick X and Y columns and returns their values.
func chooseXY(con *console.Console, data *fileio.CSVData) (xs, ys []float64, err error) {
	xColumn, err := con.ChooseFromList("X Column:", data.Columns)
	if err != nil {
		return nil, nil, err
	}
	yColumn, err := con.ChooseFromList("Y Column:", data.Columns)
	if err != nil {
		return nil, nil, err
	}
	xs, err = data.Column(xColumn)
	if err != nil {
		return nil, nil, err
	}
	ys, err = data.Column(yColumn)
	if err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}
