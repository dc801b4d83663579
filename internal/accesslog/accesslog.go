// Package accesslog groups access-log rows by source IP address.
package accesslog

import (
	"sort"
	"strings"
)

// Column positions in an access-log sheet. Only the IP address and the
// access method are consumed; the columns between them are ignored.
const (
	colIP     = 0
	colMethod = 3
)

// Index maps an IP-address string to the ordered access methods recorded
// against it. Keys are the literal trimmed cell text: no IP syntax
// validation is performed, and the empty string is a valid key.
type Index map[string][]string

// Keys returns the distinct IP addresses in sorted order.
func (ix Index) Keys() []string {
	keys := make([]string, 0, len(ix))
	for k := range ix {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RowSource yields sheet rows in order. workbook.Rows implements it.
type RowSource interface {
	Next() bool
	Columns() ([]string, error)
	Err() error
}

// Aggregate makes a single pass over src, skipping the first row as a
// header, and groups the access-method column under the IP-address column.
// A missing cell reads as an empty string, and both cells are
// whitespace-trimmed before use. It returns the index and the number of
// data rows visited; every data row contributes exactly one method entry
// to exactly one key.
func Aggregate(src RowSource) (Index, int, error) {
	ix := make(Index)
	rows := 0
	header := true
	for src.Next() {
		if header {
			// The header row is never inspected.
			header = false
			continue
		}
		cells, err := src.Columns()
		if err != nil {
			return nil, 0, err
		}
		ip := strings.TrimSpace(cell(cells, colIP))
		method := strings.TrimSpace(cell(cells, colMethod))

		rows++
		ix[ip] = append(ix[ip], method)
	}
	if err := src.Err(); err != nil {
		return nil, 0, err
	}
	return ix, rows, nil
}

// cell returns cells[i], or "" when the row is shorter than i+1 cells.
func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return cells[i]
}
