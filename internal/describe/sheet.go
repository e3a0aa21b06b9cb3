package describe

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadSheet reads a CSV sheet whose first line holds column names. Each
// record becomes a map from column name to trimmed value. Comma and
// semicolon separators are detected from the header.
func ReadSheet(r io.Reader) ([]map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	header, _, _ := strings.Cut(text, "\n")
	if strings.Count(header, ";") > strings.Count(header, ",") {
		reader.Comma = ';'
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse sheet: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	columns := make([]string, len(records[0]))
	for i, name := range records[0] {
		columns[i] = strings.TrimSpace(name)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		empty := true
		for i, name := range columns {
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			row[name] = value
			if value != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
