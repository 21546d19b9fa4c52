// Package reminder composes WhatsApp payment reminders for khata customers.
package reminder

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"ekthaa/internal/domain"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone strips formatting and adds the India country code. Numbers
// already starting with 91 are kept as is; a leading 0 is replaced with 91 and
// a bare 10-digit number is prefixed with 91. Anything else is returned as digits.
func NormalizePhone(phone string) string {
	clean := nonDigits.ReplaceAllString(phone, "")
	if clean == "" || strings.HasPrefix(clean, "91") {
		return clean
	}
	if strings.HasPrefix(clean, "0") {
		return "91" + clean[1:]
	}
	if len(clean) == 10 {
		return "91" + clean
	}
	return clean
}

// Message builds the reminder text. A positive balance gets an outstanding
// balance reminder, anything else a thank-you note.
func Message(customerName, businessName string, balance float64) string {
	if customerName == "" {
		customerName = "Customer"
	}
	if businessName == "" {
		businessName = "Business"
	}
	if balance > 0 {
		return fmt.Sprintf("Hello %s,\n\nJust a reminder about your outstanding balance of ₹%s with %s.\n\nThank you!",
			customerName, FormatRupees(balance), businessName)
	}
	return fmt.Sprintf("Hello %s,\n\nThank you for keeping your account up to date with %s!", customerName, businessName)
}

// WhatsAppURL returns the wa.me deep link that opens a chat with message prefilled.
func WhatsAppURL(phone, message string) string {
	return "https://wa.me/" + NormalizePhone(phone) + "?text=" + escapeText(message)
}

// Build prepares the full reminder for one customer.
func Build(c *domain.Customer, businessName string) domain.Reminder {
	phone := c.PhoneNumber
	if phone == "" {
		phone = c.Phone
	}
	msg := Message(c.Name, businessName, c.Balance)
	return domain.Reminder{
		ID:           c.ID,
		Name:         c.Name,
		CustomerName: c.Name,
		PhoneNumber:  phone,
		Balance:      c.Balance,
		Message:      msg,
		WhatsAppURL:  WhatsAppURL(phone, msg),
	}
}

// Outstanding builds reminders for every customer with a positive balance,
// keeping the input order.
func Outstanding(customers []domain.Customer, businessName string) domain.BulkReminders {
	out := domain.BulkReminders{Customers: []domain.Reminder{}, BusinessName: businessName}
	for i := range customers {
		if customers[i].Balance > 0 {
			out.Customers = append(out.Customers, Build(&customers[i], businessName))
		}
	}
	out.Count = len(out.Customers)
	return out
}

// FormatRupees renders v with two decimals and comma thousands separators.
func FormatRupees(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// escapeText percent-encodes s for a query value, spaces as %20.
func escapeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
