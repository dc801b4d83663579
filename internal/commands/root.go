// Package commands wires the ipaudit CLI.
package commands

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/valuelink-ops/ipaudit/internal/accesslog"
	"github.com/valuelink-ops/ipaudit/internal/config"
	"github.com/valuelink-ops/ipaudit/internal/logging"
	"github.com/valuelink-ops/ipaudit/internal/report"
	"github.com/valuelink-ops/ipaudit/internal/workbook"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	cfg := config.Load()
	logging.Init(logging.ParseLevel(cfg.LogLevel))

	console := report.NewConsole(os.Stdout, os.Stderr)
	if err := NewRootCommand(cfg, console).Execute(); err != nil {
		return 1
	}
	return 0
}

// NewRootCommand builds the root command. Running it without a subcommand
// audits the workbook: validate the path, open the named sheet, group access
// methods by IP, and print the summary.
func NewRootCommand(cfg config.Config, console *report.Console) *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "ipaudit [file]",
		Short: "List the distinct IP addresses in a SendGrid access-log workbook",
		Long: `ipaudit reads an Excel workbook of SendGrid IP access logs and reports
how many rows were processed together with the distinct source IP
addresses found in them.

The workbook path may be given as an argument or through IPAUDIT_FILE.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := workbookPath(cfg, args)
			if err != nil {
				console.Errorf("Error: %v", err)
				return err
			}
			return runAudit(console, path, sheet)
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", cfg.Sheet, "worksheet name to audit")

	cmd.AddCommand(newDumpCommand(cfg, console))
	cmd.AddCommand(newResolveCommand(console))
	return cmd
}

func runAudit(console *report.Console, path, sheet string) error {
	wb, err := openValidated(console, path)
	if err != nil {
		return err
	}
	defer wb.Close()

	rows, err := wb.Rows(sheet)
	if err != nil {
		if errors.Is(err, workbook.ErrSheetNotFound) {
			// Reported only; the process still exits zero.
			console.Errorf("Error: Sheet '%s' not found", sheet)
			return nil
		}
		console.Errorf("Error processing file: %v", err)
		return err
	}
	defer rows.Close()

	ix, count, err := accesslog.Aggregate(rows)
	if err != nil {
		console.Errorf("Error processing file: %v", err)
		return err
	}

	slog.Debug("aggregation complete", "rows", count, "distinct_ips", len(ix))
	report.Summary(console.Out, count, ix)
	return nil
}

// openValidated runs the advisory path checks, then opens the workbook,
// rendering a diagnostic for every failure.
func openValidated(console *report.Console, path string) (*workbook.Workbook, error) {
	if err := workbook.Validate(path); err != nil {
		switch {
		case errors.Is(err, workbook.ErrPathNotFound):
			console.Errorf("Error: File %s does not exist", path)
		case errors.Is(err, workbook.ErrUnsupportedExtension):
			console.Errorf("Error: File %s is not an Excel file", path)
		default:
			console.Errorf("Error: %v", err)
		}
		return nil, err
	}

	wb, err := workbook.Open(path)
	if err != nil {
		console.Errorf("Error processing file: %v", err)
		return nil, err
	}
	return wb, nil
}

// workbookPath resolves the workbook path from the positional argument,
// falling back to the configured default.
func workbookPath(cfg config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.File != "" {
		return cfg.File, nil
	}
	return "", errors.New("no workbook path given and IPAUDIT_FILE is not set")
}
