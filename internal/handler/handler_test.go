package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ekthaa/internal/catalog"
	"ekthaa/internal/domain"
	"ekthaa/internal/handler"
	"ekthaa/internal/invoice"
	"ekthaa/internal/service"
	"ekthaa/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(body string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestInvoiceHandler_Totals(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	svc.On("Totals", mock.MatchedBy(func(d *invoice.Draft) bool { return d.Buyer.Name == "Ravi" })).
		Return(&service.TotalsResult{Display: invoice.DisplayTotals{GrandTotal: "118.00"}, Warnings: []invoice.HSNWarning{}})

	w, c := postJSON(`{"buyer_name":"Ravi","items":[{"quantity":"1","rate":"100"}]}`)
	h.Totals(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"grand_total":"118.00"`)
	svc.AssertExpectations(t)
}

func TestInvoiceHandler_TotalsAcceptsNumericItems(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	svc.On("Totals", mock.MatchedBy(func(d *invoice.Draft) bool {
		return len(d.Items) == 1 && d.Items[0].Quantity == "2" && d.Items[0].Rate == "100"
	})).Return(&service.TotalsResult{Display: invoice.DisplayTotals{GrandTotal: "236.00"}, Warnings: []invoice.HSNWarning{}})

	w, c := postJSON(`{"buyer_name":"Ravi","items":[{"description":"Rice","quantity":2,"rate":100}]}`)
	h.Totals(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"grand_total":"236.00"`)
	svc.AssertExpectations(t)
}

func TestInvoiceHandler_InvalidJSON(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	w, c := postJSON(`{"items": "nope"`)
	h.Validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w).Error.Code)
}

func TestInvoiceHandler_ValidateAggregatesMessage(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)
	svc.On("Validate", mock.Anything).Return(domain.NewValidationError([]string{"Buyer Name", "Buyer City"}, []string{"Item 1 Rate"}))

	w, c := postJSON(`{}`)
	h.Validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Equal(t, "Please fill in: Buyer Name, Buyer City; Invalid values: Item 1 Rate", resp.Error.Message)
}

func TestInvoiceHandler_GeneratePDF(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)
	svc.On("GeneratePDF", mock.Anything, mock.Anything).Return(&service.GeneratedPDF{
		Filename:   "invoice_Ravi_1700000000000.pdf",
		Content:    []byte("%PDF-1.3"),
		ArchiveKey: "invoices/2025/01/01/x.pdf",
	}, nil)

	w, c := postJSON(`{}`)
	h.GeneratePDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoice_Ravi_1700000000000.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "invoices/2025/01/01/x.pdf", w.Header().Get("X-Archive-Key"))
	assert.Empty(t, w.Header().Get("X-Archive-URL"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestInvoiceHandler_GeneratePDF_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"archive", fmt.Errorf("%w: denied", domain.ErrArchiveFailed), http.StatusBadGateway, "ARCHIVE_FAILED"},
		{"render", domain.ErrRenderFailed, http.StatusInternalServerError, "RENDER_FAILED"},
		{"unknown", errors.New("disk full"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockInvoiceService)
			h := handler.NewInvoiceHandler(svc)
			svc.On("GeneratePDF", mock.Anything, mock.Anything).Return(nil, tt.err)

			w, c := postJSON(`{}`)
			h.GeneratePDF(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w).Error.Code)
		})
	}
}

func TestInvoiceHandler_Export(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)
	svc.On("Export", mock.Anything, mock.Anything, "xlsx").Return(&service.ExportFile{
		Filename:    "Ravi_2025-01-01.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     []byte("PK"),
	}, nil)

	w, c := postJSON(`{}`)
	c.Request.URL.RawQuery = "format=xlsx"
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Ravi_2025-01-01.xlsx")
}

func TestInvoiceHandler_ExportUnsupported(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)
	svc.On("Export", mock.Anything, mock.Anything, "ods").Return(nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedExport, "ods"))

	w, c := postJSON(`{}`)
	c.Request.URL.RawQuery = "format=ods"
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_EXPORT", decode(t, w).Error.Code)
}

func TestCatalogHandler_Categories(t *testing.T) {
	svc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(svc)
	svc.On("Categories", "inventory").Return([]catalog.Level1{{ID: "beverages", Name: "Beverages"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", http.NoBody)
	c.Params = gin.Params{{Key: "table", Value: "inventory"}}
	h.Categories(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestCatalogHandler_UnknownTable(t *testing.T) {
	svc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(svc)
	svc.On("Search", "vehicles", "car").Return(nil, fmt.Errorf("%w: %q", domain.ErrUnknownTable, "vehicles"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/?q=car", http.NoBody)
	c.Params = gin.Params{{Key: "table", Value: "vehicles"}}
	h.Search(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNKNOWN_TABLE", decode(t, w).Error.Code)
}

func TestCatalogHandler_SelectRequiresAction(t *testing.T) {
	svc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(svc)

	w, c := postJSON(`{"value":"beverages"}`)
	c.Params = gin.Params{{Key: "table", Value: "inventory"}}
	h.Select(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Select", mock.Anything, mock.Anything)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		db     handler.Pinger
		status int
	}{
		{"no database", nil, http.StatusOK},
		{"database up", stubPinger{}, http.StatusOK},
		{"database down", stubPinger{err: errors.New("refused")}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHealthHandler(tt.db)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			h.Readiness(c)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestMapDomainError_FieldError(t *testing.T) {
	status, code, msg := handler.MapDomainError(&domain.FieldError{Field: "action", Message: "bad action"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", code)
	assert.Equal(t, "bad action", msg)
}
