package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ekthaa/internal/invoice"
	"ekthaa/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Totals(d *invoice.Draft) *service.TotalsResult {
	args := m.Called(d)
	return args.Get(0).(*service.TotalsResult)
}

func (m *MockInvoiceService) Validate(d *invoice.Draft) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockInvoiceService) GeneratePDF(ctx context.Context, d *invoice.Draft) (*service.GeneratedPDF, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GeneratedPDF), args.Error(1)
}

func (m *MockInvoiceService) Export(ctx context.Context, d *invoice.Draft, format string) (*service.ExportFile, error) {
	args := m.Called(ctx, d, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}
