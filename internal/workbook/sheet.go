package workbook

// SheetData is a full in-memory capture of one sheet: the header row plus
// every data row, absent cells filled in as empty strings.
type SheetData struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Sheet reads the named sheet in full. The first row becomes Headers and the
// remainder Rows, each padded to the header width so display code can treat
// the grid as rectangular.
func (w *Workbook) Sheet(name string) (*SheetData, error) {
	rows, err := w.Rows(name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := &SheetData{Name: name}
	first := true
	for rows.Next() {
		cells, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if first {
			first = false
			data.Headers = cells
			continue
		}
		data.Rows = append(data.Rows, pad(cells, len(data.Headers)))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

func pad(cells []string, width int) []string {
	if len(cells) >= width {
		return cells
	}
	padded := make([]string, width)
	copy(padded, cells)
	return padded
}
