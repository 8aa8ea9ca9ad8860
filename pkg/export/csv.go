// Package export renders admin listings as downloadable CSV documents.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// Document is a rendered CSV file ready to be written to a response.
type Document struct {
	Filename string
	Content  []byte
}

// BuildCSV renders a header row plus data rows and names the file
// after the entity and the current date, e.g. "orders_2026-03-15.csv".
func BuildCSV(entity string, header []string, rows [][]string, now time.Time) (Document, error) {
	if entity == "" {
		return Document{}, fmt.Errorf("entity name is required")
	}
	if len(header) == 0 {
		return Document{}, fmt.Errorf("header row is required")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return Document{}, fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return Document{}, fmt.Errorf("row %d has %d columns, expected %d", i, len(row), len(header))
		}
		if err := w.Write(row); err != nil {
			return Document{}, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Document{}, fmt.Errorf("flush csv: %w", err)
	}

	return Document{
		Filename: fmt.Sprintf("%s_%s.csv", entity, now.Format("2006-01-02")),
		Content:  buf.Bytes(),
	}, nil
}
