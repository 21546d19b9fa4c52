package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ekthaa/internal/domain"
)

const missingItemField = "At least one item with description, quantity, and rate"

// ValidateDraft is the submission gate. It collects every missing and invalid
// field and returns them as a single *domain.ValidationError, or nil.
func ValidateDraft(d *Draft) error {
	var missing, invalid []string

	required := []struct {
		label, value string
	}{
		{"Buyer Name", d.Buyer.Name},
		{"Buyer Address", d.Buyer.Address},
		{"Buyer City", d.Buyer.City},
		{"Buyer State", d.Buyer.State},
		{"Buyer Pin Code", d.Buyer.Pincode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}

	hasValidItem := false
	for i := range d.Items {
		it := &d.Items[i]
		if it.Description != "" && it.Quantity != "" && it.Rate != "" {
			hasValidItem = true
		}
		if it.Quantity != "" && !nonNegative(it.Quantity) {
			invalid = append(invalid, fmt.Sprintf("Item %d Quantity", i+1))
		}
		if it.Rate != "" && !nonNegative(it.Rate) {
			invalid = append(invalid, fmt.Sprintf("Item %d Rate", i+1))
		}
	}
	if !hasValidItem {
		missing = append(missing, missingItemField)
	}

	if !validRate(d.CGSTRate) {
		invalid = append(invalid, "CGST Rate")
	}
	if !validRate(d.SGSTRate) {
		invalid = append(invalid, "SGST Rate")
	}

	if verr := domain.NewValidationError(missing, invalid); verr != nil {
		return verr
	}
	return nil
}

// A blank rate is treated as zero on the live path, so only a filled,
// non-numeric or negative rate is rejected.
func validRate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	return nonNegative(s)
}

func nonNegative(s string) bool {
	v, err := ParseStrict(s)
	return err == nil && v >= 0
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// PDFFilename names a downloaded invoice after its buyer and generation time.
func PDFFilename(buyerName string, t time.Time) string {
	return "invoice_" + unsafeFilenameChars.ReplaceAllString(buyerName, "_") + "_" +
		strconv.FormatInt(t.UnixMilli(), 10) + ".pdf"
}
