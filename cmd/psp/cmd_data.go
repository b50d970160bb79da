package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pspkit/internal/console"
	"pspkit/internal/datastore"
	"pspkit/internal/probe"
	"pspkit/internal/report"
)

// dataCmd groups the process-metrics subcommands. Recorded metrics live in
// the data directory and feed the estimate command.
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage recorded process metrics",
}

var dataRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a finished project's size and time metrics",
	Args:  cobra.NoArgs,
	RunE:  runDataRecord,
}

var dataListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded projects",
	Args:  cobra.NoArgs,
	RunE:  runDataList,
}

var dataExportCmd = &cobra.Command{
	Use:   "export CSVFILE",
	Short: "Export recorded metrics as estimation input",
	Long: `Exports the recorded process metrics to a CSV file with the column
names the estimate command expects for historical data.`,
	Args: cobra.ExactArgs(1),
	RunE: runDataExport,
}

func init() {
	dataCmd.AddCommand(dataRecordCmd)
	dataCmd.AddCommand(dataListCmd)
	dataCmd.AddCommand(dataExportCmd)
}

func openStore() (*datastore.Store, error) {
	store, err := datastore.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened metrics store", zap.String("path", store.Path()))
	return store, nil
}

func runDataRecord(cmd *cobra.Command, args []string) error {
	con := console.Default()
	project := &datastore.Project{}

	var err error
	if project.Name, err = con.ConfirmedString("Project name: "); err != nil {
		return err
	}
	for _, field := range []struct {
		prompt string
		dst    *float64
	}{
		{"Planned A+M size (LOC): ", &project.PlannedSize},
		{"Proxy size estimate (LOC): ", &project.ProxySize},
		{"Actual A+M size (LOC): ", &project.ActualSize},
		{"Planned time (minutes): ", &project.PlannedTime},
		{"Actual time (minutes): ", &project.ActualTime},
	} {
		if *field.dst, err = con.ConfirmedFloat(field.prompt); err != nil {
			return err
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Record(project); err != nil {
		return err
	}
	fmt.Printf("Recorded project %s (%s)\n", project.Name, project.ID)
	return nil
}

func runDataList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	projects, err := store.List()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects recorded.")
		return nil
	}

	table := report.NewTable("Name", "Recorded",
		probe.ColPlannedSize, probe.ColProxySize, probe.ColActualSize,
		probe.ColPlannedTime, probe.ColActualTime)
	for _, p := range projects {
		err := table.AddRow(p.Name, p.CreatedAt.Format("2006-01-02"),
			formatMetric(p.PlannedSize), formatMetric(p.ProxySize),
			formatMetric(p.ActualSize), formatMetric(p.PlannedTime),
			formatMetric(p.ActualTime))
		if err != nil {
			return err
		}
	}
	fmt.Println(table.Render())
	return nil
}

func runDataExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	projects, err := store.List()
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{probe.ColPlannedSize, probe.ColProxySize,
		probe.ColActualSize, probe.ColPlannedTime, probe.ColActualTime}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range projects {
		row := []string{formatMetric(p.PlannedSize), formatMetric(p.ProxySize),
			formatMetric(p.ActualSize), formatMetric(p.PlannedTime),
			formatMetric(p.ActualTime)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	fmt.Printf("Exported %d projects to %s\n", len(projects), args[0])
	return nil
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
