package domain

// TransactionType distinguishes money given on credit from money received.
type TransactionType string

const (
	TransactionCredit  TransactionType = "credit"
	TransactionPayment TransactionType = "payment"
)

// ValidTransactionTypes lists every recognised transaction type.
var ValidTransactionTypes = []TransactionType{TransactionCredit, TransactionPayment}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	for _, v := range ValidTransactionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Frequency is the cadence of a recurring transaction.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

var ValidFrequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

func (f Frequency) Valid() bool {
	for _, v := range ValidFrequencies {
		if f == v {
			return true
		}
	}
	return false
}

// ProductUnits are the stock units a product can be measured in.
var ProductUnits = []string{"piece", "kg", "gram", "liter", "ml", "meter", "packet", "box", "dozen", "bag"}
