// Package report renders audit results and diagnostics to the console.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/valuelink-ops/ipaudit/internal/accesslog"
	"github.com/valuelink-ops/ipaudit/internal/workbook"
)

// Summary prints the processed row count, the distinct-IP count, and each
// distinct IP on its own line, sorted.
func Summary(w io.Writer, rows int, ix accesslog.Index) {
	fmt.Fprintf(w, "%d rows in worksheet processed\n", rows)
	fmt.Fprintf(w, "SendGrid has been accessed from %d distinct IP addresses:\n", len(ix))
	for _, ip := range ix.Keys() {
		fmt.Fprintln(w, ip)
	}
}

// SheetTable renders a captured sheet as a bordered table, one column per
// header cell.
func SheetTable(w io.Writer, data *workbook.SheetData) {
	fmt.Fprintf(w, "Sheet: %s\n", data.Name)

	t := tablewriter.NewWriter(w)
	t.SetHeader(data.Headers)
	for _, row := range data.Rows {
		t.Append(row)
	}
	t.Render()
}
