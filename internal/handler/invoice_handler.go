package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ekthaa/internal/invoice"
	"ekthaa/internal/service"
)

// InvoiceHandler handles invoice computation, PDF and export endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func bindDraft(c *gin.Context) (*invoice.Draft, bool) {
	var d invoice.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice payload")
		return nil, false
	}
	return &d, true
}

// Totals handles POST /api/v1/invoices/totals
// @Summary      Compute invoice totals
// @Description  Subtotal, CGST, SGST and grand total for a draft, with HSN rate warnings
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body body invoice.Draft true "Invoice draft"
// @Success      200 {object} APIResponse{data=service.TotalsResult}
// @Failure      400 {object} APIResponse
// @Router       /invoices/totals [post]
func (h *InvoiceHandler) Totals(c *gin.Context) {
	d, ok := bindDraft(c)
	if !ok {
		return
	}
	RespondOK(c, h.invoiceService.Totals(d))
}

// Validate handles POST /api/v1/invoices/validate
// @Summary      Validate an invoice draft
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body body invoice.Draft true "Invoice draft"
// @Success      200 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Router       /invoices/validate [post]
func (h *InvoiceHandler) Validate(c *gin.Context) {
	d, ok := bindDraft(c)
	if !ok {
		return
	}
	if err := h.invoiceService.Validate(d); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"valid": true})
}

// GeneratePDF handles POST /generate-invoice and POST /api/v1/invoices/pdf.
// The archive location, when there is one, is returned in headers.
// @Summary      Render an invoice PDF
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        body body invoice.Draft true "Invoice draft"
// @Success      200 {file} file
// @Header       200 {string} X-Archive-Key "Archive object key"
// @Header       200 {string} X-Archive-URL "Presigned archive URL"
// @Failure      400 {object} APIResponse
// @Failure      429 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /invoices/pdf [post]
func (h *InvoiceHandler) GeneratePDF(c *gin.Context) {
	d, ok := bindDraft(c)
	if !ok {
		return
	}

	out, err := h.invoiceService.GeneratePDF(c.Request.Context(), d)
	if err != nil {
		HandleError(c, err)
		return
	}

	requestID, _ := c.Get("request_id")
	for _, w := range out.Warnings {
		log.Printf("[%s] invoiceHandler.GeneratePDF: %s", requestID, w.Message)
	}
	if out.ArchiveKey != "" {
		c.Header("X-Archive-Key", out.ArchiveKey)
	}
	if out.ArchiveURL != "" {
		c.Header("X-Archive-URL", out.ArchiveURL)
	}
	RespondFile(c, out.Filename, "application/pdf", out.Content)
}

// Export handles POST /api/v1/invoices/export?format=csv|xlsx
// @Summary      Export invoice line items
// @Tags         invoices
// @Accept       json
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format query string false "csv or xlsx" default(csv)
// @Param        body body invoice.Draft true "Invoice draft"
// @Success      200 {file} file
// @Failure      400 {object} APIResponse
// @Router       /invoices/export [post]
func (h *InvoiceHandler) Export(c *gin.Context) {
	d, ok := bindDraft(c)
	if !ok {
		return
	}

	out, err := h.invoiceService.Export(c.Request.Context(), d, c.DefaultQuery("format", "csv"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondFile(c, out.Filename, out.ContentType, out.Content)
}
