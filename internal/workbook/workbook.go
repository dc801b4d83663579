// Package workbook validates and reads spreadsheet workbooks.
package workbook

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

// Workbook is an open spreadsheet document. It is opened read-only and owned
// by a single caller for the duration of one pass.
type Workbook struct {
	path string
	f    *excelize.File
}

// Open opens the workbook at path. Any failure to parse the file is returned
// as a *ParseError; callers should run Validate first for the cheap checks.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &Workbook{path: path, f: f}, nil
}

// SheetNames returns the workbook's sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Rows returns a streaming iterator over all rows of the named sheet, header
// included. It returns ErrSheetNotFound when the name is absent from the
// workbook.
func (w *Workbook) Rows(sheet string) (*Rows, error) {
	if !slices.Contains(w.f.GetSheetList(), sheet) {
		return nil, fmt.Errorf("%q: %w", sheet, ErrSheetNotFound)
	}
	inner, err := w.f.Rows(sheet)
	if err != nil {
		return nil, &ParseError{Path: w.path, Err: err}
	}
	return &Rows{path: w.path, inner: inner}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}
