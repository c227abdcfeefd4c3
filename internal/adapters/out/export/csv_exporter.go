// Package export renders revenue snapshots into transportable documents.
package export

import (
	"encoding/csv"
	"io"
	"time"

	"minishop/internal/core/domain/model/revenue"
)

// CSVExporter renders a revenue snapshot as comma separated values with a
// header row. Timestamps are emitted in RFC 3339 so snapshots stay sortable
// as plain text.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter() CSVExporter {
	return CSVExporter{}
}

// Export writes the rendered report for the given entries to w.
func (CSVExporter) Export(w io.Writer, entries []revenue.Entry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"code", "amount", "timestamp"}); err != nil {
		return err
	}

	for _, entry := range entries {
		record := []string{
			entry.OrderCode().String(),
			entry.Amount().String(),
			entry.RecordedAt().UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ContentType returns the MIME type of the rendered document.
func (CSVExporter) ContentType() string {
	return "text/csv"
}

// FileExtension returns the file extension without the leading dot.
func (CSVExporter) FileExtension() string {
	return "csv"
}
