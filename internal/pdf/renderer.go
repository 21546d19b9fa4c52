// Package pdf renders invoice drafts to PDF with gofpdf.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"ekthaa/internal/config"
	"ekthaa/internal/domain"
	"ekthaa/internal/invoice"
)

// Renderer turns an invoice draft into a PDF document.
type Renderer interface {
	Render(d *invoice.Draft, t invoice.Totals) ([]byte, error)
}

type renderer struct {
	title      string
	fontFamily string
	logoPath   string
}

// NewRenderer creates a Renderer from the PDF config.
func NewRenderer(cfg *config.PDFConfig) Renderer {
	r := &renderer{title: "TAX INVOICE", fontFamily: "Arial"}
	if cfg != nil {
		if cfg.Title != "" {
			r.title = cfg.Title
		}
		if cfg.FontFamily != "" {
			r.fontFamily = cfg.FontFamily
		}
		r.logoPath = cfg.CompanyLogo
	}
	return r
}

// column widths in mm; they sum to the 190mm printable width of A4.
var itemColumns = []struct {
	title string
	width float64
	align string
}{
	{"#", 10, "C"},
	{"Description", 62, "L"},
	{"HSN", 22, "C"},
	{"Qty", 18, "R"},
	{"Unit", 16, "C"},
	{"Rate", 28, "R"},
	{"Amount", 34, "R"},
}

func (r *renderer) Render(d *invoice.Draft, t invoice.Totals) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if r.logoPath != "" {
		pdf.ImageOptions(r.logoPath, 10, 10, 25, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	pdf.SetFont(r.fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(r.title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	top := pdf.GetY()
	r.party(pdf, tr, "Seller", &d.Seller, 10, top, true)
	sellerBottom := pdf.GetY()
	r.party(pdf, tr, "Buyer", &d.Buyer, 105, top, false)
	if sellerBottom > pdf.GetY() {
		pdf.SetY(sellerBottom)
	}
	pdf.Ln(4)

	if d.VehicleNumber != "" {
		pdf.SetFont(r.fontFamily, "", 10)
		pdf.CellFormat(0, 6, tr("Vehicle No: "+d.VehicleNumber), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	r.items(pdf, tr, d.LineItems())
	r.totals(pdf, tr, d, t)

	if notes := strings.TrimSpace(d.Notes); notes != "" {
		pdf.Ln(6)
		pdf.SetFont(r.fontFamily, "B", 10)
		pdf.CellFormat(0, 6, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont(r.fontFamily, "", 10)
		pdf.MultiCell(0, 5, tr(notes), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) party(pdf *gofpdf.Fpdf, tr func(string) string, label string, p *invoice.Party, x, y float64, seller bool) {
	pdf.SetXY(x, y)
	pdf.SetFont(r.fontFamily, "B", 11)
	pdf.CellFormat(95, 6, label, "", 2, "L", false, 0, "")
	pdf.SetFont(r.fontFamily, "", 10)

	lines := []string{p.Name, p.Address}
	var place []string
	for _, s := range []string{p.City, p.State, p.Pincode} {
		if s != "" {
			place = append(place, s)
		}
	}
	lines = append(lines, strings.Join(place, ", "))
	if p.GSTIN != "" {
		lines = append(lines, "GSTIN: "+p.GSTIN)
	}
	if seller && (p.StateName != "" || p.StateCode != "") {
		lines = append(lines, fmt.Sprintf("State: %s Code: %s", p.StateName, p.StateCode))
	}
	for _, l := range lines {
		if l == "" {
			continue
		}
		pdf.SetX(x)
		pdf.CellFormat(95, 5, tr(l), "", 2, "L", false, 0, "")
	}
}

func (r *renderer) items(pdf *gofpdf.Fpdf, tr func(string) string, items []invoice.LineItem) {
	pdf.SetFont(r.fontFamily, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range itemColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(r.fontFamily, "", 10)
	n := 0
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" && it.Quantity == 0 && it.Rate == 0 {
			continue
		}
		n++
		cells := []string{
			fmt.Sprint(n),
			it.Description,
			it.HSNCode,
			invoice.FormatRate(it.Quantity),
			it.Unit,
			invoice.FormatMoney(it.Rate),
			invoice.FormatMoney(invoice.ItemAmount(it)),
		}
		for i, c := range itemColumns {
			pdf.CellFormat(c.width, 7, tr(cells[i]), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func (r *renderer) totals(pdf *gofpdf.Fpdf, tr func(string) string, d *invoice.Draft, t invoice.Totals) {
	disp := t.Display()
	rates := d.TaxRates()
	rows := [][2]string{
		{"Subtotal", disp.Subtotal},
		{fmt.Sprintf("CGST @ %s%%", invoice.FormatRate(rates.CGSTPercent)), disp.CGSTAmount},
		{fmt.Sprintf("SGST @ %s%%", invoice.FormatRate(rates.SGSTPercent)), disp.SGSTAmount},
		{"Grand Total", disp.GrandTotal},
	}
	pdf.Ln(2)
	for i, row := range rows {
		style := ""
		if i == len(rows)-1 {
			style = "B"
		}
		pdf.SetFont(r.fontFamily, style, 10)
		pdf.CellFormat(128, 7, "", "", 0, "", false, 0, "")
		pdf.CellFormat(28, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(34, 7, tr("Rs. "+row[1]), "1", 1, "R", false, 0, "")
	}
}
