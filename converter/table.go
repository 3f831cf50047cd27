package converter

// table.go — shared Markdown table renderer. CSV, DOCX, and workbook
// conversion all route through renderMarkdownTable so tables look the same
// regardless of source format.

import "strings"

// renderMarkdownTable converts rows into a GitHub-Flavored Markdown table.
// The first row is the header. Ragged rows are padded to the widest row.
func renderMarkdownTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	if maxCols == 0 {
		return ""
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.ReplaceAll(row[i], "|", `\|`)
		}
		return ""
	}

	var sb strings.Builder

	sb.WriteString("|")
	for i := 0; i < maxCols; i++ {
		sb.WriteString(" " + cell(rows[0], i) + " |")
	}
	sb.WriteByte('\n')

	sb.WriteString("|")
	for i := 0; i < maxCols; i++ {
		sb.WriteString(" --- |")
	}
	sb.WriteByte('\n')

	for _, row := range rows[1:] {
		sb.WriteString("|")
		for i := 0; i < maxCols; i++ {
			sb.WriteString(" " + cell(row, i) + " |")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
