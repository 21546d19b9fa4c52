package invoice_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekthaa/internal/domain"
	"ekthaa/internal/invoice"
)

func validDraft() *invoice.Draft {
	d := invoice.NewDraft()
	d.Seller = invoice.Party{Name: "Ekthaa Traders", GSTIN: "29ABCDE1234F1Z5"}
	d.Buyer = invoice.Party{
		Name:    "Ravi Kumar",
		Address: "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}
	d.Items = []invoice.ItemInput{{Description: "Rice 25kg", HSNCode: "1006", Quantity: "2", Rate: "1200", Unit: invoice.UnitKg}}
	return &d
}

func TestValidateDraft_Valid(t *testing.T) {
	assert.NoError(t, invoice.ValidateDraft(validDraft()))
}

func TestValidateDraft_MissingBuyerFields(t *testing.T) {
	d := validDraft()
	d.Buyer = invoice.Party{}

	err := invoice.ValidateDraft(d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "Please fill in: Buyer Name, Buyer Address, Buyer City, Buyer State, Buyer Pin Code", err.Error())
}

func TestValidateDraft_NoCompleteItem(t *testing.T) {
	d := validDraft()
	d.Items = []invoice.ItemInput{
		{Description: "only description"},
		{Quantity: "1", Rate: "10"},
	}

	err := invoice.ValidateDraft(d)
	require.Error(t, err)
	assert.Equal(t, "Please fill in: At least one item with description, quantity, and rate", err.Error())
}

func TestValidateDraft_AggregatesMissingAndInvalid(t *testing.T) {
	d := validDraft()
	d.Buyer.City = ""
	d.Items = append(d.Items, invoice.ItemInput{Description: "Dal", Quantity: "two", Rate: "80"})
	d.SGSTRate = "-1"

	err := invoice.ValidateDraft(d)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Buyer City"}, verr.Missing)
	assert.Equal(t, []string{"Item 2 Quantity", "SGST Rate"}, verr.Invalid)
	assert.Equal(t, "Please fill in: Buyer City; Invalid values: Item 2 Quantity, SGST Rate", err.Error())
}

func TestValidateDraft_ZeroQuantityCountsAsFilled(t *testing.T) {
	d := validDraft()
	d.Items = []invoice.ItemInput{{Description: "Free sample", Quantity: "0", Rate: "0"}}
	assert.NoError(t, invoice.ValidateDraft(d))
}

func TestPDFFilename(t *testing.T) {
	ts := time.UnixMilli(1717171717171)
	assert.Equal(t, "invoice_Ravi_Kumar___Sons_1717171717171.pdf", invoice.PDFFilename("Ravi Kumar & Sons", ts))
	assert.Equal(t, "invoice__1717171717171.pdf", invoice.PDFFilename("", ts))
}

func TestDraft_JSONShape(t *testing.T) {
	d := validDraft()
	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "Ravi Kumar", m["buyer_name"])
	assert.Equal(t, "560001", m["buyer_pincode"])
	assert.Equal(t, "Ekthaa Traders", m["seller_name"])
	assert.Equal(t, "9", m["cgst_rate"])
	items, ok := m["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)

	var back invoice.Draft
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, *d, back)
}

func TestValidateDraft_NegativeQuantityAndRate(t *testing.T) {
	d := validDraft()
	d.Items = []invoice.ItemInput{
		{Description: "Returned sack", Quantity: "-5", Rate: "100"},
		{Description: "Discount", Quantity: "1", Rate: "-20"},
	}

	err := invoice.ValidateDraft(d)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, verr.Missing)
	assert.Equal(t, []string{"Item 1 Quantity", "Item 2 Rate"}, verr.Invalid)
	assert.Equal(t, "Invalid values: Item 1 Quantity, Item 2 Rate", err.Error())
}

func TestDraft_UnmarshalNumericFields(t *testing.T) {
	raw := `{
		"buyer_name": "Ravi Kumar",
		"items": [
			{"description": "Rice", "quantity": 2, "rate": 100},
			{"description": "Dal", "quantity": "1.5", "rate": 80.25},
			{"description": "Blank", "quantity": null}
		],
		"cgst_rate": 2.5,
		"sgst_rate": "2.5"
	}`

	var d invoice.Draft
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	require.Len(t, d.Items, 3)
	assert.Equal(t, "2", d.Items[0].Quantity)
	assert.Equal(t, "100", d.Items[0].Rate)
	assert.Equal(t, "1.5", d.Items[1].Quantity)
	assert.Equal(t, "80.25", d.Items[1].Rate)
	assert.Empty(t, d.Items[2].Quantity)
	assert.Equal(t, "2.5", d.CGSTRate)
	assert.Equal(t, "2.5", d.SGSTRate)
	assert.InDelta(t, 320.375, d.Totals().Subtotal, 1e-9)
}

func TestDraft_UnmarshalRejectsNonNumericJSON(t *testing.T) {
	var d invoice.Draft
	err := json.Unmarshal([]byte(`{"items":[{"description":"x","quantity":true,"rate":1}]}`), &d)
	assert.Error(t, err)
}
