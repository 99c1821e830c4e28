package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "application/pdf", f.ContentType())
	assert.Equal(t, "departments.pdf", f.Filename("departments"))

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestCSVExporterPadsShortRows(t *testing.T) {
	data := Dataset{
		Headers: []string{"ID", "Name", "Building"},
		Rows:    [][]string{{"1", "Physics", "4"}, {"2", "Law"}},
	}
	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Building\n1,Physics,4\n2,Law,\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRendersDocument(t *testing.T) {
	rows := make([][]string, 80)
	for i := range rows {
		rows[i] = []string{"1", "Physics"}
	}
	out, err := RendererFor(FormatPDF).Render(Dataset{Title: "Departments", Headers: []string{"ID", "Name"}, Rows: rows})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
