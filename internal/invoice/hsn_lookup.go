package invoice

import (
	"math"

	"ekthaa/internal/port"
)

// HSNRate is one GST rate the master lists for a code, with its condition if any.
type HSNRate struct {
	Rate          float64
	ConditionDesc string
}

// HSNLookup answers code existence and rate questions against the HSN master.
// It is immutable after construction and safe for concurrent use.
type HSNLookup struct {
	byCode map[string][]HSNRate
}

func NewHSNLookup(entries []port.HSNEntry) *HSNLookup {
	m := make(map[string][]HSNRate, len(entries))
	for i := range entries {
		e := &entries[i]
		m[e.Code] = append(m[e.Code], HSNRate{Rate: e.GSTRate, ConditionDesc: e.ConditionDesc})
	}
	return &HSNLookup{byCode: m}
}

// Len returns the number of distinct codes loaded.
func (h *HSNLookup) Len() int {
	if h == nil {
		return 0
	}
	return len(h.byCode)
}

// resolve finds the rates for code, falling back from 8 to 6 to 4 digit prefixes.
func (h *HSNLookup) resolve(code string) ([]HSNRate, bool) {
	if h == nil || len(h.byCode) == 0 || code == "" {
		return nil, false
	}
	if rates, ok := h.byCode[code]; ok {
		return rates, true
	}
	for _, n := range []int{6, 4} {
		if len(code) > n {
			if rates, ok := h.byCode[code[:n]]; ok {
				return rates, true
			}
		}
	}
	return nil, false
}

// Exists reports whether code, or one of its parent headings, is in the master.
func (h *HSNLookup) Exists(code string) bool {
	_, ok := h.resolve(code)
	return ok
}

// Rates returns the valid rates for code, with prefix fallback.
func (h *HSNLookup) Rates(code string) []HSNRate {
	rates, _ := h.resolve(code)
	return rates
}

// RateMatches checks gstRate (the combined CGST+SGST percentage) against the
// master rates for code.
func (h *HSNLookup) RateMatches(code string, gstRate float64) (matched bool, valid []HSNRate) {
	valid = h.Rates(code)
	for i := range valid {
		if math.Abs(valid[i].Rate-gstRate) < 0.01 {
			return true, valid
		}
	}
	return false, valid
}
