package workbook

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound reports a workbook path that does not exist.
	ErrPathNotFound = errors.New("file does not exist")

	// ErrUnsupportedExtension reports a path whose extension is not a
	// recognized spreadsheet type.
	ErrUnsupportedExtension = errors.New("not a supported spreadsheet file")

	// ErrSheetNotFound reports a sheet name absent from the workbook.
	ErrSheetNotFound = errors.New("sheet not found")
)

// ParseError wraps any lower-level failure while opening or reading a
// workbook: corruption, an unsupported internal format, or plain I/O.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("processing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
