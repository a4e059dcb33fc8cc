package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Title:   "Employee Directory",
		Headers: []string{"Email", "Role", "Department"},
		Rows: [][]string{
			{"ada@acme.test", "ADMIN", "Engineering"},
			{"grace@acme.test", "HR", ""},
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestCSVRenderer(t *testing.T) {
	data, err := CSVRenderer{}.Render(sampleTable())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Email,Role,Department", lines[0])
	assert.Equal(t, "grace@acme.test,HR,", lines[2])

	_, err = CSVRenderer{}.Render(Table{})
	assert.Error(t, err)

	_, err = CSVRenderer{}.Render(Table{Headers: []string{"a", "b"}, Rows: [][]string{{"only"}}})
	assert.Error(t, err)
}

func TestPDFRenderer(t *testing.T) {
	data, err := PDFRenderer{}.Render(sampleTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{strings.Repeat("long-value-", 10), "EMPLOYEE", "Ops"}
	}
	data, err = PDFRenderer{}.Render(Table{Headers: []string{"Email", "Role", "Department"}, Rows: rows})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestXLSXRenderer(t *testing.T) {
	data, err := XLSXRenderer{}.Render(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employee Directory")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Email", "Role", "Department"}, rows[0])
	assert.Equal(t, "ada@acme.test", rows[1][0])

	_, err = XLSXRenderer{}.Render(Table{})
	assert.Error(t, err)
	assert.Equal(t, "Export", sheetName(""))
	assert.Len(t, sheetName(strings.Repeat("x", 40)), 31)
}

func TestExporterNamesFile(t *testing.T) {
	e := NewExporter()
	e.now = func() time.Time { return time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC) }

	file, err := e.Export(FormatCSV, "employees", sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "employees-20260304.csv", file.Name)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	file, err = e.Export(FormatPDF, "tenants", sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "tenants-20260304.pdf", file.Name)
	assert.Equal(t, "application/pdf", file.ContentType)

	file, err = e.Export(FormatXLSX, "employees", sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "employees-20260304.xlsx", file.Name)

	_, err = e.Export(Format("doc"), "x", sampleTable())
	assert.Error(t, err)
}
