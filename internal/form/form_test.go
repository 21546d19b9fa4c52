package form_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekthaa/internal/apiclient"
	"ekthaa/internal/catalog"
	"ekthaa/internal/domain"
	"ekthaa/internal/form"
)

func validProduct() form.ProductDraft {
	d := form.NewProductDraft()
	d.Name = " Assam Tea "
	d.Category = "Beverages"
	d.Subcategory = "Tea & Coffee"
	d.StockQuantity = "25"
	d.Unit = "packet"
	d.Price = "120.50"
	return d
}

func TestProductDraft_Valid(t *testing.T) {
	d := validProduct()
	require.NoError(t, d.Validate(catalog.Inventory()))

	req := d.ToRequest()
	assert.Equal(t, "Assam Tea", req.Name)
	assert.Equal(t, 25, req.StockQuantity)
	assert.InDelta(t, 120.5, req.Price, 1e-9)
	assert.Equal(t, 10, req.LowStockThreshold)
}

func TestProductDraft_MissingRequired(t *testing.T) {
	d := form.NewProductDraft()
	d.Category = "Beverages"

	err := d.Validate(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "Please fill all required fields: Name, Unit", err.Error())
}

func TestProductDraft_NumericChecks(t *testing.T) {
	tests := []struct {
		name, stock, price, want string
	}{
		{"blank stock", "", "1", "Stock quantity must be a valid non-negative number"},
		{"negative stock", "-1", "1", "Stock quantity must be a valid non-negative number"},
		{"fractional stock", "2.5", "1", "Stock quantity must be a valid non-negative number"},
		{"bad price", "1", "abc", "Price must be a valid non-negative number"},
		{"negative price", "1", "-0.01", "Price must be a valid non-negative number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validProduct()
			d.StockQuantity = tt.stock
			d.Price = tt.price
			err := d.Validate(nil)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestProductDraft_ZeroStockAndPriceAllowed(t *testing.T) {
	d := validProduct()
	d.StockQuantity = "0"
	d.Price = "0"
	assert.NoError(t, d.Validate(nil))
}

func TestProductDraft_SubcategoryMustMatchCategory(t *testing.T) {
	d := validProduct()
	d.Subcategory = "Power Banks"

	err := d.Validate(catalog.Inventory())
	var ferr *domain.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "subcategory", ferr.Field)

	assert.NoError(t, d.Validate(nil), "no table, no pair check")
}

func TestProductDraft_ThresholdFallback(t *testing.T) {
	d := validProduct()
	d.LowStockThreshold = "oops"
	assert.Equal(t, 10, d.ToRequest().LowStockThreshold)

	d.LowStockThreshold = "3"
	assert.Equal(t, 3, d.ToRequest().LowStockThreshold)
}

func TestProductDraftFrom(t *testing.T) {
	d := form.ProductDraftFrom(&domain.Product{Name: "Soap", Category: "Personal Care", StockQuantity: 4, Unit: "piece", Price: 35, LowStockThreshold: 5})
	assert.Equal(t, "4", d.StockQuantity)
	assert.Equal(t, "35", d.Price)
	assert.NoError(t, d.Validate(catalog.Inventory()))
}

func TestTransactionDraft(t *testing.T) {
	d := form.TransactionDraft{CustomerID: "c1", Type: "credit", Amount: "150"}
	require.NoError(t, d.Validate())
	req := d.ToRequest()
	assert.Equal(t, domain.TransactionCredit, req.Type)
	assert.InDelta(t, 150, req.Amount, 1e-9)

	for _, amount := range []string{"", "0", "-5", "ten"} {
		d.Amount = amount
		assert.EqualError(t, d.Validate(), "Please enter a valid amount", "amount %q", amount)
	}

	d.Amount = "10"
	d.Type = "refund"
	assert.EqualError(t, d.Validate(), "Type must be credit or payment")
}

func TestRecurringDraft(t *testing.T) {
	d := form.RecurringDraft{CustomerID: "c1", Amount: "500", Frequency: "monthly"}
	require.NoError(t, d.Validate())
	assert.Equal(t, domain.FrequencyMonthly, d.ToRequest().Frequency)

	d.Frequency = ""
	assert.EqualError(t, d.Validate(), "Customer, amount, and frequency are required")

	d.Frequency = "yearly"
	assert.EqualError(t, d.Validate(), "Frequency must be daily, weekly, or monthly")

	d.Frequency = "daily"
	d.Amount = "-1"
	assert.EqualError(t, d.Validate(), "Amount must be a positive number")
}

func TestCustomerDraft(t *testing.T) {
	d := form.CustomerDraft{Name: "Asha", Phone: "9876543210"}
	require.NoError(t, d.Validate())

	d.Phone = "98765"
	assert.EqualError(t, d.Validate(), "Phone number must be exactly 10 digits")

	d.Phone = "98765-43210"
	assert.EqualError(t, d.Validate(), "Phone number must be exactly 10 digits")

	d.Name = ""
	assert.EqualError(t, d.Validate(), "All fields are required")
}

func TestSubmitter_RejectsConcurrentSubmit(t *testing.T) {
	var s form.Submitter
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- s.Submit(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	assert.True(t, s.Pending())
	calls := 0
	err := s.Submit(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrSubmitInProgress)
	assert.Zero(t, calls)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, s.Pending())

	require.NoError(t, s.Submit(context.Background(), func(context.Context) error { return nil }))
}

func TestSubmitter_ReturnsFnError(t *testing.T) {
	var s form.Submitter
	boom := errors.New("boom")
	assert.ErrorIs(t, s.Submit(context.Background(), func(context.Context) error { return boom }), boom)
	assert.False(t, s.Pending())
}

func TestFlashFromError(t *testing.T) {
	apiErr := &apiclient.APIError{StatusCode: 400, Message: "Customer with this phone number already exists"}

	tests := []struct {
		name string
		err  error
		want form.Flash
	}{
		{"nil", nil, form.Flash{Type: form.FlashSuccess, Message: "Saved"}},
		{"validation", domain.NewValidationError([]string{"Buyer Name"}, nil), form.Flash{Type: form.FlashError, Message: "Please fill in: Buyer Name"}},
		{"field", &domain.FieldError{Message: "All fields are required"}, form.Flash{Type: form.FlashError, Message: "All fields are required"}},
		{"api", fmt.Errorf("adding customer: %w", apiErr), form.Flash{Type: form.FlashError, Message: apiErr.Message}},
		{"unauthorized", domain.ErrUnauthorized, form.Flash{Type: form.FlashError, Message: "Session expired. Please log in again."}},
		{"other", errors.New("dial tcp: refused"), form.Flash{Type: form.FlashError, Message: "Saved"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, form.FlashFromError(tt.err, "Saved"))
		})
	}
}
