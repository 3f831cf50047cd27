package converter

// xlsx.go — spreadsheet → Markdown using excelize. Every non-empty sheet
// becomes a heading followed by a table.

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// convertWorkbook is the formatFn for .xlsx and .xls files.
func convertWorkbook(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %q in %s: %w", sheet, path, err)
		}
		if len(rows) == 0 {
			continue
		}
		sb.WriteString("## " + sheet + "\n\n")
		sb.WriteString(renderMarkdownTable(rows))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
