package ports

import (
	"io"

	"minishop/internal/core/domain/model/revenue"
)

// ReportExporter renders a revenue snapshot into a transportable document.
// Implementations exist for CSV and PDF output.
type ReportExporter interface {
	// Export writes the rendered report for the given entries to w.
	// Entries are expected in recording order.
	Export(w io.Writer, entries []revenue.Entry) error

	// ContentType returns the MIME type of the rendered document.
	ContentType() string

	// FileExtension returns the file extension without the leading dot.
	FileExtension() string
}
