package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/adapters/export"
	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/wire"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse and export record views",
	Long:  "List maintenance, failure, registry and scrap records, optionally exporting to CSV or Excel.",
}

var recordsMaintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "List maintenance records",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := wire.RecordsService().Maintenance(context.Background(), recordFilters(cmd))
		if err != nil {
			return err
		}
		return emitDataset(cmd, export.MaintenanceDataset(records))
	},
}

var recordsFailuresCmd = &cobra.Command{
	Use:   "failures",
	Short: "List damage records",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := wire.RecordsService().Failures(context.Background(), recordFilters(cmd))
		if err != nil {
			return err
		}
		return emitDataset(cmd, export.MaintenanceDataset(records))
	},
}

var recordsRegistryCmd = &cobra.Command{
	Use:   "registry",
	Short: "List trolley registry actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := wire.RecordsService().Registry(context.Background(), recordFilters(cmd))
		if err != nil {
			return err
		}
		return emitDataset(cmd, export.RegistryDataset(records))
	},
}

var recordsScrappedCmd = &cobra.Command{
	Use:   "scrapped",
	Short: "List scrapped trolleys",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := wire.RecordsService().Scrapped(context.Background(), recordFilters(cmd))
		if err != nil {
			return err
		}
		return emitDataset(cmd, export.ScrapDataset(records))
	},
}

func recordFilters(cmd *cobra.Command) primary.RecordFilters {
	trolleyID, _ := cmd.Flags().GetString("trolley")
	year, _ := cmd.Flags().GetString("year")
	month, _ := cmd.Flags().GetString("month")
	return primary.RecordFilters{TrolleyID: trolleyID, Year: year, Month: month}
}

// emitDataset renders the dataset as a table on stdout, or writes it
// to the file named by --csv / --xlsx.
func emitDataset(cmd *cobra.Command, ds export.Dataset) error {
	csvPath, _ := cmd.Flags().GetString("csv")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")

	if csvPath != "" {
		if err := writeDatasetFile(csvPath, ds, export.WriteCSV); err != nil {
			return err
		}
		fmt.Printf("✓ Exported %d record(s) to %s\n", len(ds.Rows), csvPath)
		return nil
	}
	if xlsxPath != "" {
		if err := writeDatasetFile(xlsxPath, ds, export.WriteXLSX); err != nil {
			return err
		}
		fmt.Printf("✓ Exported %d record(s) to %s\n", len(ds.Rows), xlsxPath)
		return nil
	}

	if len(ds.Rows) == 0 {
		fmt.Println("No records found.")
		return nil
	}

	w := newTable()
	for i, h := range ds.Headers {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)
	for _, row := range ds.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func writeDatasetFile(path string, ds export.Dataset, write func(w io.Writer, ds export.Dataset) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := write(f, ds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	for _, sub := range []*cobra.Command{recordsMaintenanceCmd, recordsFailuresCmd, recordsRegistryCmd, recordsScrappedCmd} {
		sub.Flags().String("trolley", "", "Filter by trolley ID")
		sub.Flags().String("year", "", "Filter by year (YYYY)")
		sub.Flags().String("month", "", "Filter by month (01-12)")
		sub.Flags().String("csv", "", "Export to CSV file")
		sub.Flags().String("xlsx", "", "Export to Excel file")
		recordsCmd.AddCommand(sub)
	}
}

func RecordsCmd() *cobra.Command {
	return recordsCmd
}
