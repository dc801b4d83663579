package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valuelink-ops/ipaudit/internal/report"
	"github.com/valuelink-ops/ipaudit/internal/resolve"
)

func newResolveCommand(console *report.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <ip>...",
		Short: "Reverse-resolve IP addresses to hostnames",
		Long: `resolve looks up the PTR hostname for each given IP address. It is a
standalone helper and plays no part in the audit itself.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, ip := range args {
				name, err := resolve.Hostname(cmd.Context(), resolve.Default, ip)
				if err != nil {
					console.Errorf("Error: %v", err)
					failed++
					continue
				}
				fmt.Fprintf(console.Out, "%s\t%s\n", ip, name)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d lookups failed: %w", failed, len(args), errLookupFailed)
			}
			return nil
		},
	}
}

var errLookupFailed = errors.New("lookup failed")
