package artifact

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// FlattenCSV renders CSV content as labeled plain-text records, one
// "header: value" pair per field, suitable for embedding in a prompt.
// The first row is treated as the header. Ragged rows are tolerated;
// short rows simply omit the trailing fields.
func FlattenCSV(r io.Reader) (string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parsing csv: %w", err)
	}
	if len(rows) < 2 {
		return "", ErrEmptyArtifact
	}

	header := rows[0]
	var b strings.Builder
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		fmt.Fprintf(&b, "Record %d:\n", i+1)
		for j, field := range row {
			if j >= len(header) {
				break
			}
			fmt.Fprintf(&b, "  %s: %s\n", strings.TrimSpace(header[j]), strings.TrimSpace(field))
		}
	}

	if b.Len() == 0 {
		return "", ErrEmptyArtifact
	}
	return b.String(), nil
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
