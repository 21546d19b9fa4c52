package invoice

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// numericText is a form number that arrives either as a JSON string, kept
// verbatim, or as a JSON number, kept in its literal form.
type numericText string

func (n *numericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = numericText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a number or numeric string, got %s", data)
	}
	*n = numericText(num.String())
	return nil
}

type itemWire struct {
	ProductID   string      `json:"product_id"`
	Description string      `json:"description"`
	HSNCode     string      `json:"hsn_code"`
	Quantity    numericText `json:"quantity"`
	Rate        numericText `json:"rate"`
	Unit        string      `json:"unit"`
}

func (it *ItemInput) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*it = ItemInput{
		ProductID:   w.ProductID,
		Description: w.Description,
		HSNCode:     w.HSNCode,
		Quantity:    string(w.Quantity),
		Rate:        string(w.Rate),
		Unit:        w.Unit,
	}
	return nil
}

// draftWire is the flat form shape with seller_* and buyer_* keys.
type draftWire struct {
	SellerName      string      `json:"seller_name"`
	SellerAddress   string      `json:"seller_address"`
	SellerCity      string      `json:"seller_city"`
	SellerState     string      `json:"seller_state"`
	SellerPincode   string      `json:"seller_pincode"`
	SellerGSTIN     string      `json:"seller_gstin"`
	SellerStateName string      `json:"seller_state_name"`
	SellerStateCode string      `json:"seller_state_code"`
	BuyerName       string      `json:"buyer_name"`
	BuyerAddress    string      `json:"buyer_address"`
	BuyerCity       string      `json:"buyer_city"`
	BuyerState      string      `json:"buyer_state"`
	BuyerPincode    string      `json:"buyer_pincode"`
	BuyerGSTIN      string      `json:"buyer_gstin"`
	BuyerStateCode  string      `json:"buyer_state_code"`
	Items           []ItemInput `json:"items"`
	CGSTRate        numericText `json:"cgst_rate"`
	SGSTRate        numericText `json:"sgst_rate"`
	VehicleNumber   string      `json:"vehicle_number"`
	Notes           string      `json:"notes"`
}

func (d Draft) MarshalJSON() ([]byte, error) {
	items := d.Items
	if items == nil {
		items = []ItemInput{}
	}
	return json.Marshal(draftWire{
		SellerName:      d.Seller.Name,
		SellerAddress:   d.Seller.Address,
		SellerCity:      d.Seller.City,
		SellerState:     d.Seller.State,
		SellerPincode:   d.Seller.Pincode,
		SellerGSTIN:     d.Seller.GSTIN,
		SellerStateName: d.Seller.StateName,
		SellerStateCode: d.Seller.StateCode,
		BuyerName:       d.Buyer.Name,
		BuyerAddress:    d.Buyer.Address,
		BuyerCity:       d.Buyer.City,
		BuyerState:      d.Buyer.State,
		BuyerPincode:    d.Buyer.Pincode,
		BuyerGSTIN:      d.Buyer.GSTIN,
		BuyerStateCode:  d.Buyer.StateCode,
		Items:           items,
		CGSTRate:        numericText(d.CGSTRate),
		SGSTRate:        numericText(d.SGSTRate),
		VehicleNumber:   d.VehicleNumber,
		Notes:           d.Notes,
	})
}

func (d *Draft) UnmarshalJSON(data []byte) error {
	var w draftWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*d = Draft{
		Seller: Party{
			Name:      w.SellerName,
			Address:   w.SellerAddress,
			City:      w.SellerCity,
			State:     w.SellerState,
			Pincode:   w.SellerPincode,
			GSTIN:     w.SellerGSTIN,
			StateName: w.SellerStateName,
			StateCode: w.SellerStateCode,
		},
		Buyer: Party{
			Name:      w.BuyerName,
			Address:   w.BuyerAddress,
			City:      w.BuyerCity,
			State:     w.BuyerState,
			Pincode:   w.BuyerPincode,
			GSTIN:     w.BuyerGSTIN,
			StateCode: w.BuyerStateCode,
		},
		Items:         w.Items,
		CGSTRate:      string(w.CGSTRate),
		SGSTRate:      string(w.SGSTRate),
		VehicleNumber: w.VehicleNumber,
		Notes:         w.Notes,
	}
	return nil
}
