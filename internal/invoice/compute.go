package invoice

// ItemAmount is the row amount quantity × rate, unrounded.
func ItemAmount(item LineItem) float64 {
	return item.Quantity * item.Rate
}

// ComputeTotals derives the subtotal, tax amounts and grand total. It has no
// domain restrictions: negative and zero values pass through the arithmetic
// unchanged, and no intermediate value is rounded.
func ComputeTotals(items []LineItem, cgstPercent, sgstPercent float64) Totals {
	var subtotal float64
	for i := range items {
		subtotal += ItemAmount(items[i])
	}
	cgst := subtotal * cgstPercent / 100
	sgst := subtotal * sgstPercent / 100
	return Totals{
		Subtotal:   subtotal,
		CGSTAmount: cgst,
		SGSTAmount: sgst,
		GrandTotal: subtotal + cgst + sgst,
	}
}

// Compute is ComputeTotals over a TaxRates value.
func Compute(items []LineItem, rates TaxRates) Totals {
	return ComputeTotals(items, rates.CGSTPercent, rates.SGSTPercent)
}
