package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/valuelink-ops/ipaudit/internal/config"
	"github.com/valuelink-ops/ipaudit/internal/report"
	"github.com/valuelink-ops/ipaudit/internal/workbook"
)

func newDumpCommand(cfg config.Config, console *report.Console) *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Render the full worksheet as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := workbookPath(cfg, args)
			if err != nil {
				console.Errorf("Error: %v", err)
				return err
			}

			wb, err := openValidated(console, path)
			if err != nil {
				return err
			}
			defer wb.Close()

			data, err := wb.Sheet(sheet)
			if err != nil {
				if errors.Is(err, workbook.ErrSheetNotFound) {
					console.Errorf("Error: Sheet '%s' not found", sheet)
					return nil
				}
				console.Errorf("Error processing file: %v", err)
				return err
			}

			report.SheetTable(console.Out, data)
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", cfg.Sheet, "worksheet name to dump")
	return cmd
}
