package form

import (
	"regexp"
	"strings"

	"ekthaa/internal/domain"
	"ekthaa/internal/invoice"
)

// TransactionDraft is the add-transaction form.
type TransactionDraft struct {
	CustomerID string
	Type       string
	Amount     string
	Notes      string
	BillPhoto  *domain.FilePart
}

func (d *TransactionDraft) Validate() error {
	if amount, err := invoice.ParseStrict(d.Amount); err != nil || amount <= 0 {
		return &domain.FieldError{Field: "amount", Message: "Please enter a valid amount"}
	}
	if !domain.TransactionType(d.Type).Valid() {
		return &domain.FieldError{Field: "type", Message: "Type must be credit or payment"}
	}
	if strings.TrimSpace(d.CustomerID) == "" {
		return &domain.FieldError{Field: "customer_id", Message: "Please select a customer"}
	}
	return nil
}

func (d *TransactionDraft) ToRequest() domain.TransactionInput {
	return domain.TransactionInput{
		CustomerID: d.CustomerID,
		Type:       domain.TransactionType(d.Type),
		Amount:     invoice.ParseAmount(d.Amount),
		Notes:      d.Notes,
		BillPhoto:  d.BillPhoto,
	}
}

// RecurringDraft is the add-recurring-transaction form.
type RecurringDraft struct {
	CustomerID string
	Amount     string
	Frequency  string
	Notes      string
}

func (d *RecurringDraft) Validate() error {
	if strings.TrimSpace(d.CustomerID) == "" || strings.TrimSpace(d.Amount) == "" || d.Frequency == "" {
		return &domain.FieldError{Message: "Customer, amount, and frequency are required"}
	}
	if amount, err := invoice.ParseStrict(d.Amount); err != nil || amount <= 0 {
		return &domain.FieldError{Field: "amount", Message: "Amount must be a positive number"}
	}
	if !domain.Frequency(d.Frequency).Valid() {
		return &domain.FieldError{Field: "frequency", Message: "Frequency must be daily, weekly, or monthly"}
	}
	return nil
}

func (d *RecurringDraft) ToRequest() domain.RecurringInput {
	return domain.RecurringInput{
		CustomerID: d.CustomerID,
		Amount:     invoice.ParseAmount(d.Amount),
		Frequency:  domain.Frequency(d.Frequency),
		Notes:      d.Notes,
	}
}

var tenDigits = regexp.MustCompile(`^\d{10}$`)

// CustomerDraft is the add-customer form.
type CustomerDraft struct {
	Name  string
	Phone string
}

func (d *CustomerDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Phone) == "" {
		return &domain.FieldError{Message: "All fields are required"}
	}
	if !tenDigits.MatchString(strings.TrimSpace(d.Phone)) {
		return &domain.FieldError{Field: "phone", Message: "Phone number must be exactly 10 digits"}
	}
	return nil
}

func (d *CustomerDraft) ToRequest() domain.CustomerInput {
	return domain.CustomerInput{Name: strings.TrimSpace(d.Name), Phone: strings.TrimSpace(d.Phone)}
}
