package invoice

import (
	"fmt"
	"strings"
)

// HSNWarning flags a line item whose HSN code is unknown or whose tax rate
// disagrees with the master. Warnings never block generation.
type HSNWarning struct {
	Item    int    `json:"item"`
	HSNCode string `json:"hsn_code"`
	Message string `json:"message"`
}

// CheckHSN compares each item's HSN code with the master. A nil lookup, or one
// with no codes loaded, yields no warnings.
func CheckHSN(lookup *HSNLookup, items []LineItem, rates TaxRates) []HSNWarning {
	if lookup.Len() == 0 {
		return nil
	}
	combined := rates.CGSTPercent + rates.SGSTPercent

	var warnings []HSNWarning
	for i := range items {
		code := strings.TrimSpace(items[i].HSNCode)
		if code == "" {
			continue
		}
		if !lookup.Exists(code) {
			warnings = append(warnings, HSNWarning{
				Item:    i + 1,
				HSNCode: code,
				Message: fmt.Sprintf("Item %d: HSN code %q not found in HSN master", i+1, code),
			})
			continue
		}
		matched, valid := lookup.RateMatches(code, combined)
		if matched {
			continue
		}
		expected := make([]string, 0, len(valid))
		for _, r := range valid {
			expected = append(expected, FormatRate(r.Rate))
		}
		warnings = append(warnings, HSNWarning{
			Item:    i + 1,
			HSNCode: code,
			Message: fmt.Sprintf("Item %d: GST %s%% does not match HSN %s rate (%s%%)",
				i+1, FormatRate(combined), code, strings.Join(expected, "%, ")),
		})
	}
	return warnings
}

// FormatRate renders a percentage without trailing zeros.
func FormatRate(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
