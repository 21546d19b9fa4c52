// Package export writes invoice drafts as CSV or XLSX spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"ekthaa/internal/domain"
	"ekthaa/internal/invoice"
)

// Format is a supported export file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat returns domain.ErrUnsupportedExport for anything but csv or xlsx.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedExport, s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var columns = []string{"S.No", "Description", "HSN Code", "Quantity", "Unit", "Rate", "Amount"}

// rows flattens the draft into the header, one row per non-blank item, a blank
// separator and the totals block.
func rows(d *invoice.Draft) [][]string {
	out := [][]string{columns}
	n := 0
	for _, it := range d.LineItems() {
		if strings.TrimSpace(it.Description) == "" && it.Quantity == 0 && it.Rate == 0 {
			continue
		}
		n++
		out = append(out, []string{
			strconv.Itoa(n),
			it.Description,
			it.HSNCode,
			invoice.FormatRate(it.Quantity),
			it.Unit,
			invoice.FormatMoney(it.Rate),
			invoice.FormatMoney(invoice.ItemAmount(it)),
		})
	}

	rates := d.TaxRates()
	disp := d.Totals().Display()
	out = append(out,
		[]string{},
		totalRow("Subtotal", disp.Subtotal),
		totalRow(fmt.Sprintf("CGST @ %s%%", invoice.FormatRate(rates.CGSTPercent)), disp.CGSTAmount),
		totalRow(fmt.Sprintf("SGST @ %s%%", invoice.FormatRate(rates.SGSTPercent)), disp.SGSTAmount),
		totalRow("Grand Total", disp.GrandTotal),
	)
	return out
}

func totalRow(label, value string) []string {
	row := make([]string, len(columns))
	row[len(columns)-2] = label
	row[len(columns)-1] = value
	return row
}

// WriteCSV writes the BOM followed by the draft's rows.
func WriteCSV(w io.Writer, d *invoice.Draft) error {
	if _, err := w.Write(BOM); err != nil {
		return fmt.Errorf("writing bom: %w", err)
	}
	cw := csv.NewWriter(w)
	for _, row := range rows(d) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SheetName is the worksheet the XLSX export writes to.
const SheetName = "Invoice"

// WriteXLSX writes the draft as a single-sheet workbook. Money and quantity
// cells are stored as numbers.
func WriteXLSX(w io.Writer, d *invoice.Draft) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, row := range rows(d) {
		for j, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			var val interface{} = v
			if i > 0 && j >= 3 && j != 4 {
				if num, perr := strconv.ParseFloat(v, 64); perr == nil {
					val = num
				}
			}
			if err := f.SetCellValue(SheetName, cell, val); err != nil {
				return fmt.Errorf("setting %s: %w", cell, err)
			}
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "B", 36); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

// Write dispatches on format.
func Write(w io.Writer, d *invoice.Draft, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, d)
	case FormatXLSX:
		return WriteXLSX(w, d)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedExport, format)
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename replaces non-alphanumeric chars (except - _) with _,
// collapses runs of underscores and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "invoice"
	}
	return s
}

// BuildFilename returns {buyer}_{YYYY-MM-DD}.{format} for Content-Disposition.
func BuildFilename(buyerName string, format Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(buyerName), now.Format("2006-01-02"), format)
}
