// Package form holds the client-side form state for khata entities: raw field
// values, validation before submission and conversion to request payloads.
package form

import (
	"strconv"
	"strings"

	"ekthaa/internal/catalog"
	"ekthaa/internal/domain"
	"ekthaa/internal/invoice"
)

// DefaultLowStockThreshold applies when the threshold field is blank or invalid.
const DefaultLowStockThreshold = 10

// ProductDraft is the add/edit product form.
type ProductDraft struct {
	Name              string
	Description       string
	Category          string
	Subcategory       string
	StockQuantity     string
	Unit              string
	Price             string
	HSNCode           string
	LowStockThreshold string
	IsPublic          bool
	Image             *domain.FilePart
}

// NewProductDraft returns an empty draft with the default threshold filled in.
func NewProductDraft() ProductDraft {
	return ProductDraft{LowStockThreshold: strconv.Itoa(DefaultLowStockThreshold)}
}

// ProductDraftFrom loads an existing product into the form for editing.
func ProductDraftFrom(p *domain.Product) ProductDraft {
	return ProductDraft{
		Name:              p.Name,
		Description:       p.Description,
		Category:          p.Category,
		Subcategory:       p.Subcategory,
		StockQuantity:     strconv.Itoa(p.StockQuantity),
		Unit:              p.Unit,
		Price:             strconv.FormatFloat(p.Price, 'f', -1, 64),
		HSNCode:           p.HSNCode,
		LowStockThreshold: strconv.Itoa(p.LowStockThreshold),
		IsPublic:          p.IsPublic,
	}
}

// Validate checks the draft. When categories is non-nil a subcategory must
// belong to the chosen category.
func (d *ProductDraft) Validate(categories *catalog.Table) error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "Name")
	}
	if strings.TrimSpace(d.Category) == "" {
		missing = append(missing, "Category")
	}
	if strings.TrimSpace(d.Unit) == "" {
		missing = append(missing, "Unit")
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Missing: missing, Summary: "Please fill all required fields"}
	}

	if stock, err := strconv.Atoi(strings.TrimSpace(d.StockQuantity)); err != nil || stock < 0 {
		return &domain.FieldError{Field: "stock_quantity", Message: "Stock quantity must be a valid non-negative number"}
	}
	if price, err := invoice.ParseStrict(d.Price); err != nil || price < 0 {
		return &domain.FieldError{Field: "price", Message: "Price must be a valid non-negative number"}
	}

	if categories != nil && d.Subcategory != "" {
		c, ok := categories.ByName(d.Category)
		if !ok || !categories.HasOption(c.ID, d.Subcategory) {
			return &domain.FieldError{Field: "subcategory", Message: "Subcategory does not belong to the selected category"}
		}
	}
	return nil
}

// ToRequest converts a validated draft into the API payload.
func (d *ProductDraft) ToRequest() domain.ProductInput {
	stock, _ := strconv.Atoi(strings.TrimSpace(d.StockQuantity))
	threshold, err := strconv.Atoi(strings.TrimSpace(d.LowStockThreshold))
	if err != nil || threshold == 0 {
		threshold = DefaultLowStockThreshold
	}
	return domain.ProductInput{
		Name:              strings.TrimSpace(d.Name),
		Description:       strings.TrimSpace(d.Description),
		Category:          strings.TrimSpace(d.Category),
		Subcategory:       d.Subcategory,
		HSNCode:           strings.TrimSpace(d.HSNCode),
		StockQuantity:     stock,
		Unit:              strings.TrimSpace(d.Unit),
		Price:             invoice.ParseAmount(d.Price),
		IsPublic:          d.IsPublic,
		LowStockThreshold: threshold,
		Image:             d.Image,
	}
}
