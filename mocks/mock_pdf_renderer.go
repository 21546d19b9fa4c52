package mocks

import (
	"github.com/stretchr/testify/mock"

	"ekthaa/internal/invoice"
)

// MockPDFRenderer is a mock implementation of pdf.Renderer.
type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) Render(d *invoice.Draft, t invoice.Totals) ([]byte, error) {
	args := m.Called(d, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
