package invoice

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var errNotANumber = errors.New("not a number")

// leadingNumber matches the numeric prefix of a partially typed field.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount parses a display-path numeric field. Only the leading number
// counts, so "12abc" is 12 while the field is still being typed. Blank,
// unparseable and non-finite input all count as zero.
func ParseAmount(s string) float64 {
	v, err := ParseStrict(leadingNumber.FindString(strings.TrimLeft(s, " \t\r\n")))
	if err != nil {
		return 0
	}
	return v
}

// ParseStrict parses a submission-path numeric field and rejects blank or
// non-numeric input.
func ParseStrict(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errNotANumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errNotANumber
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotANumber
	}
	return v, nil
}

// RoundMoney rounds to two decimals, half away from zero.
func RoundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatMoney renders v with exactly two decimals.
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// DisplayTotals is Totals rendered for the UI and the PDF.
type DisplayTotals struct {
	Subtotal   string `json:"subtotal"`
	CGSTAmount string `json:"cgst_amount"`
	SGSTAmount string `json:"sgst_amount"`
	GrandTotal string `json:"grand_total"`
}

// Display formats every total to two decimals.
func (t Totals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal:   FormatMoney(t.Subtotal),
		CGSTAmount: FormatMoney(t.CGSTAmount),
		SGSTAmount: FormatMoney(t.SGSTAmount),
		GrandTotal: FormatMoney(t.GrandTotal),
	}
}
