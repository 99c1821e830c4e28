package export

import (
	"fmt"
	"strings"
)

// Format is a supported export encoding.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat accepts "csv" or "pdf" in any case; empty means CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Filename builds a download name for base.
func (f Format) Filename(base string) string {
	return base + "." + string(f)
}

// Dataset is ordered tabular content. Each row holds one cell per header.
type Dataset struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Renderer turns a dataset into bytes.
type Renderer interface {
	Render(data Dataset) ([]byte, error)
}

// RendererFor returns the renderer for f.
func RendererFor(f Format) Renderer {
	if f == FormatPDF {
		return NewPDFExporter()
	}
	return NewCSVExporter()
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
