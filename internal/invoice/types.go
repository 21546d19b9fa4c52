package invoice

// Units a line item can be measured in. Nos is the default.
const (
	UnitNos = "Nos"
	UnitKg  = "Kg"
	UnitLtr = "Ltr"
	UnitMtr = "Mtr"
	UnitBox = "Box"
	UnitPkt = "Pkt"
)

// Units lists the line-item units in display order.
var Units = []string{UnitNos, UnitKg, UnitLtr, UnitMtr, UnitBox, UnitPkt}

// LineItem is a single numeric invoice row.
type LineItem struct {
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Unit        string  `json:"unit"`
}

// TaxRates holds the CGST and SGST percentages applied to the subtotal.
type TaxRates struct {
	CGSTPercent float64 `json:"cgst_percent"`
	SGSTPercent float64 `json:"sgst_percent"`
}

// DefaultTaxRates returns the 9% + 9% split used for new invoices.
func DefaultTaxRates() TaxRates {
	return TaxRates{CGSTPercent: 9, SGSTPercent: 9}
}

// Totals is derived from line items and tax rates and is never stored.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	CGSTAmount float64 `json:"cgst_amount"`
	SGSTAmount float64 `json:"sgst_amount"`
	GrandTotal float64 `json:"grand_total"`
}

// Party is the seller or buyer block of an invoice.
type Party struct {
	Name      string
	Address   string
	City      string
	State     string
	Pincode   string
	GSTIN     string
	StateName string
	StateCode string
}

// ItemInput is a line item as typed into the form. Numeric fields stay raw so
// partially typed values survive until submission.
type ItemInput struct {
	ProductID   string `json:"product_id,omitempty"`
	Description string `json:"description"`
	HSNCode     string `json:"hsn_code"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Unit        string `json:"unit"`
}

// Draft is the invoice form state. Its JSON shape is the payload accepted by
// the PDF generator.
type Draft struct {
	Seller        Party       `json:"-"`
	Buyer         Party       `json:"-"`
	Items         []ItemInput `json:"items"`
	CGSTRate      string      `json:"cgst_rate"`
	SGSTRate      string      `json:"sgst_rate"`
	VehicleNumber string      `json:"vehicle_number"`
	Notes         string      `json:"notes"`
}

// NewDraft returns an empty draft with one blank item and the default tax rates.
func NewDraft() Draft {
	return Draft{
		Items:    []ItemInput{{Unit: UnitNos}},
		CGSTRate: "9",
		SGSTRate: "9",
	}
}

// LineItems parses the draft rows leniently for live recomputation.
func (d *Draft) LineItems() []LineItem {
	items := make([]LineItem, 0, len(d.Items))
	for i := range d.Items {
		in := &d.Items[i]
		unit := in.Unit
		if unit == "" {
			unit = UnitNos
		}
		items = append(items, LineItem{
			Description: in.Description,
			HSNCode:     in.HSNCode,
			Quantity:    ParseAmount(in.Quantity),
			Rate:        ParseAmount(in.Rate),
			Unit:        unit,
		})
	}
	return items
}

// TaxRates parses the draft's tax percentages leniently.
func (d *Draft) TaxRates() TaxRates {
	return TaxRates{
		CGSTPercent: ParseAmount(d.CGSTRate),
		SGSTPercent: ParseAmount(d.SGSTRate),
	}
}

// Totals recomputes the draft totals from its current field values.
func (d *Draft) Totals() Totals {
	r := d.TaxRates()
	return ComputeTotals(d.LineItems(), r.CGSTPercent, r.SGSTPercent)
}

// AddItem appends a blank row.
func (d *Draft) AddItem() {
	d.Items = append(d.Items, ItemInput{Unit: UnitNos})
}

// RemoveItem drops row i. The last remaining row is never removed.
func (d *Draft) RemoveItem(i int) {
	if len(d.Items) <= 1 || i < 0 || i >= len(d.Items) {
		return
	}
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
}
