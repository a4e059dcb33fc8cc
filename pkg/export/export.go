// Package export renders tabular reports as CSV, PDF or XLSX downloads.
package export

import (
	"fmt"
	"strings"
	"time"
)

// Format names a rendered file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat normalises a user supplied format, defaulting to CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Table is a titled grid of string cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// File is a rendered download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Renderer produces the bytes of one format.
type Renderer interface {
	Render(table Table) ([]byte, error)
}

// Exporter dispatches tables to the renderer of the requested format.
type Exporter struct {
	csv  Renderer
	pdf  Renderer
	xlsx Renderer
	now  func() time.Time
}

// NewExporter wires the default renderers.
func NewExporter() *Exporter {
	return &Exporter{csv: CSVRenderer{}, pdf: PDFRenderer{}, xlsx: XLSXRenderer{}, now: time.Now}
}

// Export renders table and names the file after base and the current date.
func (e *Exporter) Export(format Format, base string, table Table) (*File, error) {
	var r Renderer
	switch format {
	case FormatCSV:
		r = e.csv
	case FormatPDF:
		r = e.pdf
	case FormatXLSX:
		r = e.xlsx
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	data, err := r.Render(table)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        fmt.Sprintf("%s-%s.%s", base, e.now().UTC().Format("20060102"), format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// Cell formats optional values for a table row.
func Cell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
