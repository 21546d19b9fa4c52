// Package hsnmaster reads the GST HSN/SAC rate workbook into HSN master rows.
package hsnmaster

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"ekthaa/internal/port"
)

// Layout of the government HSN/SAC summary workbook.
const (
	SACSheet = "SAC_Master"

	hsnFirstRow = 5
	sacFirstRow = 3
)

// ParseWorkbook reads the goods sheet (index 0) and the SAC sheet. A code is
// emitted once per distinct rate; 8 and 6 digit codes are listed before their
// 4 digit heading.
func ParseWorkbook(f *excelize.File) ([]port.HSNEntry, error) {
	seen := make(map[string]bool)

	goods, err := parseHSNSheet(f, seen)
	if err != nil {
		return nil, fmt.Errorf("parse HSN sheet: %w", err)
	}
	services, err := parseSACSheet(f, seen)
	if err != nil {
		return nil, fmt.Errorf("parse SAC sheet: %w", err)
	}
	return append(goods, services...), nil
}

// parseHSNSheet columns: F(5)=4-digit, H(7)=its description, I(8)=6-digit,
// J(9)=its description, K(10)=8-digit, M(12)=its description, N(13)=GST rate.
func parseHSNSheet(f *excelize.File, seen map[string]bool) ([]port.HSNEntry, error) {
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	var entries []port.HSNEntry
	for i := hsnFirstRow; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 14 {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(row[13]), "%"), 64)
		if err != nil {
			continue
		}
		for _, col := range [][2]int{{10, 12}, {8, 9}, {5, 7}} {
			entries = add(entries, seen, cell(row, col[0]), cell(row, col[1]), rate)
		}
	}
	return entries, nil
}

// parseSACSheet columns: A(0)=4-digit SAC, B(1)=its description, C(2)=6-digit,
// D(3)=its description, E(4)=free text rate.
func parseSACSheet(f *excelize.File, seen map[string]bool) ([]port.HSNEntry, error) {
	if idx, err := f.GetSheetIndex(SACSheet); err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(SACSheet)
	if err != nil {
		return nil, err
	}

	var entries []port.HSNEntry
	for i := sacFirstRow; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 5 {
			continue
		}
		for _, rate := range ParseSACRate(row[4]) {
			entries = add(entries, seen, cell(row, 2), cell(row, 3), rate)
			entries = add(entries, seen, cell(row, 0), cell(row, 1), rate)
		}
	}
	return entries, nil
}

var ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// ParseSACRate extracts the distinct rates from a free-text SAC rate:
//
//	"18%"                                   → [18]
//	"Exempt"                                → [0]
//	"12%-18%"                               → [12, 18]
//	"1% (without ITC) or 5% (without ITC)"  → [1, 5]
func ParseSACRate(s string) []float64 {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return nil
	case "exempt", "nil":
		return []float64{0}
	}

	seen := make(map[float64]bool)
	var rates []float64
	for _, m := range ratePattern.FindAllStringSubmatch(s, -1) {
		rate, err := strconv.ParseFloat(m[1], 64)
		if err == nil && !seen[rate] {
			seen[rate] = true
			rates = append(rates, rate)
		}
	}
	return rates
}

func add(entries []port.HSNEntry, seen map[string]bool, code, description string, rate float64) []port.HSNEntry {
	code = strings.TrimSpace(code)
	if !isNumeric(code) {
		return entries
	}
	key := fmt.Sprintf("%s|%.2f", code, rate)
	if seen[key] {
		return entries
	}
	seen[key] = true
	return append(entries, port.HSNEntry{Code: code, Description: strings.TrimSpace(description), GSTRate: rate})
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
