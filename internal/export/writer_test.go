package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ekthaa/internal/domain"
	"ekthaa/internal/export"
	"ekthaa/internal/invoice"
)

func sampleDraft() *invoice.Draft {
	d := invoice.NewDraft()
	d.Buyer.Name = "Ravi Stores"
	d.Items = []invoice.ItemInput{
		{Description: "Rice", HSNCode: "1006", Quantity: "2", Rate: "100", Unit: invoice.UnitKg},
		{Unit: invoice.UnitNos},
		{Description: "Oil", Quantity: "1", Rate: "50.5"},
	}
	return &d
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleDraft()))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, export.BOM))

	r := csv.NewReader(bytes.NewReader(raw[len(export.BOM):]))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"S.No", "Description", "HSN Code", "Quantity", "Unit", "Rate", "Amount"}, records[0])
	assert.Equal(t, []string{"1", "Rice", "1006", "2", "Kg", "100.00", "200.00"}, records[1])
	assert.Equal(t, []string{"2", "Oil", "", "1", "Nos", "50.50", "50.50"}, records[2], "blank row skipped and unit defaulted")

	last := records[len(records)-1]
	assert.Equal(t, "Grand Total", last[5])
	assert.Equal(t, "295.59", last[6])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, sampleDraft()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	desc, err := f.GetCellValue(export.SheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Rice", desc)

	amount, err := f.GetCellValue(export.SheetName, "G2")
	require.NoError(t, err)
	assert.Equal(t, "200", amount)

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	last := rows[len(rows)-1]
	assert.Equal(t, "Grand Total", last[5])
}

func TestParseFormat(t *testing.T) {
	f, err := export.ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, export.FormatXLSX, f)

	_, err = export.ParseFormat("pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExport)

	assert.ErrorIs(t, export.Write(&bytes.Buffer{}, sampleDraft(), "ods"), domain.ErrUnsupportedExport)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ravi Stores", "Ravi_Stores"},
		{"  A & B / C  ", "A_B_C"},
		{"---ok---", "---ok---"},
		{"!!!", "invoice"},
		{"", "invoice"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, export.SanitizeFilename(tt.in), "input %q", tt.in)
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Ravi_Stores_2025-03-09.csv", export.BuildFilename("Ravi Stores", export.FormatCSV, now))
}
