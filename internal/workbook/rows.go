package workbook

import "github.com/xuri/excelize/v2"

// Rows iterates one sheet's rows in order. Trailing empty cells may be
// absent from the slice Columns returns; callers index defensively.
type Rows struct {
	path  string
	inner *excelize.Rows
	err   error
}

// Next advances to the next row. It returns false when no rows remain.
func (r *Rows) Next() bool {
	return r.inner.Next()
}

// Columns returns the current row's cell values.
func (r *Rows) Columns() ([]string, error) {
	cols, err := r.inner.Columns()
	if err != nil {
		r.err = &ParseError{Path: r.path, Err: err}
		return nil, r.err
	}
	return cols, nil
}

// Err returns the first error encountered during iteration, if any.
func (r *Rows) Err() error {
	if r.err != nil {
		return r.err
	}
	if err := r.inner.Error(); err != nil {
		return &ParseError{Path: r.path, Err: err}
	}
	return nil
}

// Close releases the iterator's resources.
func (r *Rows) Close() error {
	return r.inner.Close()
}
