package docparse

import "strings"

// Row is one parsed table row keyed by header text. Column order lives
// in the owning Table's Headers slice.
type Row map[string]string

// Table is one parsed markdown table.
type Table struct {
	Headers []string
	Rows    []Row
}

// Tables parses every well-formed markdown table in text. A table
// starts with a header line shaped |...| followed immediately by a
// separator line of pipes, dashes, colons and whitespace. Data rows
// continue while lines keep the |...| shape. Rows shorter than the
// header are right-padded with empty strings; surplus cells are
// ignored. Tables that end up with zero data rows are discarded.
func Tables(text string) []Table {
	var tables []Table

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		header := strings.TrimSpace(lines[i])
		if !isTableLine(header) {
			continue
		}
		if i+1 >= len(lines) || !isSeparatorLine(strings.TrimSpace(lines[i+1])) {
			continue
		}

		headers := splitCells(header)

		var rows []Row
		j := i + 2
		for ; j < len(lines); j++ {
			line := strings.TrimSpace(lines[j])
			if !isTableLine(line) {
				break
			}
			cells := splitCells(line)
			row := make(Row, len(headers))
			for k, h := range headers {
				if k < len(cells) {
					row[h] = cells[k]
				} else {
					row[h] = ""
				}
			}
			rows = append(rows, row)
		}

		if len(rows) > 0 {
			tables = append(tables, Table{Headers: headers, Rows: rows})
		}
		i = j - 1
	}
	return tables
}

// isTableLine reports whether line is pipe-framed with at least one
// cell. The raw split count includes the empty fragments outside the
// frame, so the minimum is three parts.
func isTableLine(line string) bool {
	return strings.HasPrefix(line, "|") &&
		strings.HasSuffix(line, "|") &&
		len(strings.Split(line, "|")) >= 3
}

// isSeparatorLine reports whether line is a header separator: non-empty
// and built only from pipes, dashes, colons and whitespace.
func isSeparatorLine(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		switch r {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// splitCells splits a |...| line into trimmed cell values.
func splitCells(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
