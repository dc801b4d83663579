package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions accepted by Validate. Matching is case-insensitive.
var allowedExtensions = map[string]bool{
	".xls":  true,
	".xlsx": true,
	".xlsm": true,
}

// Validate reports whether path points to an existing file with a recognized
// spreadsheet extension. The check is advisory: it never opens the file, so a
// path that passes can still fail to parse as a workbook.
func Validate(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s: %w", path, ErrPathNotFound)
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(path))] {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedExtension)
	}
	return nil
}
