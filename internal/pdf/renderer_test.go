package pdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekthaa/internal/config"
	"ekthaa/internal/domain"
	"ekthaa/internal/invoice"
	"ekthaa/internal/pdf"
)

func sampleDraft() *invoice.Draft {
	d := invoice.NewDraft()
	d.Seller = invoice.Party{Name: "Sri Lakshmi Traders", Address: "12 Market Road", City: "Guntur", State: "Andhra Pradesh", StateName: "Andhra Pradesh", StateCode: "37"}
	d.Buyer = invoice.Party{Name: "Ravi Stores", Address: "4 MG Road", City: "Vijayawada", State: "Andhra Pradesh", Pincode: "520001"}
	d.Items = []invoice.ItemInput{
		{Description: "Basmati Rice", HSNCode: "1006", Quantity: "2", Rate: "100", Unit: invoice.UnitKg},
		{Description: "Sunflower Oil", Quantity: "1.5", Rate: "180", Unit: invoice.UnitLtr},
	}
	d.VehicleNumber = "AP07 AB 1234"
	d.Notes = "Thank you for your business. ₹ payable within 7 days."
	return &d
}

func TestRender_ProducesPDF(t *testing.T) {
	r := pdf.NewRenderer(&config.PDFConfig{Title: "TAX INVOICE", FontFamily: "Arial"})
	d := sampleDraft()

	out, err := r.Render(d, d.Totals())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 500)
}

func TestRender_NilConfigUsesDefaults(t *testing.T) {
	d := invoice.NewDraft()
	out, err := pdf.NewRenderer(nil).Render(&d, d.Totals())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRender_MissingLogoFails(t *testing.T) {
	r := pdf.NewRenderer(&config.PDFConfig{CompanyLogo: "/nonexistent/logo.png"})
	d := sampleDraft()

	_, err := r.Render(d, d.Totals())
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
}
