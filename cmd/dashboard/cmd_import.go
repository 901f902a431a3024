package main

import (
	"fmt"
	"time"

	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/store"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var importFlags struct {
	list bool
}

var importCmd = &cobra.Command{
	Use:   "import [csv path or URL]",
	Short: "Snapshot the launch table into the sqlite store",
	Long: `Validates the launch table and stores it as a new snapshot. The dashboard
can then be served from it with --source=sqlite. Defaults to the configured
data path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlags.list, "list", false, "list stored snapshots instead of importing")
}

func runImport(cmd *cobra.Command, args []string) error {
	conf, err := loadConf()
	if err != nil {
		return err
	}
	if err := store.InitDB(conf.DBPath); err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if importFlags.list {
		imports, err := store.ListImports()
		if err != nil {
			return err
		}
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Source", "Records", "Created"})
		for _, imp := range imports {
			t.AppendRow(table.Row{imp.ID, imp.Source, imp.RecordCount, imp.CreatedAt.Format(time.RFC3339)})
		}
		fmt.Fprintln(out, t.Render())
		return nil
	}

	src := conf.DataPath
	if len(args) == 1 {
		src = args[0]
	}
	ds, err := dataset.LoadCSV(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	id, err := store.SaveImport(ds.Source(), ds.Records())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d launches from %s\n", ds.Len(), ds.Source())
	fmt.Fprintf(out, "Snapshot: %s\n", id)
	return nil
}
