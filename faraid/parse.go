// Package faraid implements the inheritance share calculation: input
// normalization, the fixed-share/asaba/awl/radd distribution engine, and the
// text rendering of a computed case. Everything here is pure; shares are exact
// big.Rat fractions and money is exact decimal, no floating point anywhere.
package faraid

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyHint scans free text for a currency symbol or a currency-name
// substring (ru/en). Best effort, cosmetic only; empty string means unknown.
func CurrencyHint(raw string) string {
	lowered := strings.ToLower(raw)
	switch {
	case strings.Contains(raw, "₽"), strings.Contains(lowered, "руб"),
		strings.Contains(lowered, "rur"), strings.Contains(lowered, "rub"):
		return "₽"
	case strings.Contains(raw, "$"), strings.Contains(lowered, "usd"),
		strings.Contains(lowered, "дол"):
		return "$"
	case strings.Contains(raw, "€"), strings.Contains(lowered, "eur"):
		return "€"
	case strings.Contains(raw, "﷼"), strings.Contains(lowered, "rial"),
		strings.Contains(lowered, "риал"), strings.Contains(lowered, "sar"):
		return "﷼"
	}
	return ""
}

// ParseCount parses a relative count typed by the user. Only strings of one or
// two ASCII digits are accepted; zero is valid, values above maximum are not.
// The second return value is false for anything unparseable.
func ParseCount(text string, maximum int) (int, bool) {
	raw := strings.TrimSpace(text)
	if len(raw) == 0 || len(raw) > 2 {
		return 0, false
	}
	value := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		value = value*10 + int(c-'0')
	}
	if value > maximum {
		return 0, false
	}
	return value, true
}

// normalizeMoney strips everything except digits, separators and a sign, maps
// comma to the decimal point and collapses repeated separators by keeping the
// first and concatenating the remaining digits (the dialog historically
// tolerated inputs like "1.234.56").
func normalizeMoney(text string) (decimal.Decimal, bool) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return decimal.Decimal{}, false
	}
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9' || r == '-':
			b.WriteRune(r)
		case r == ',' || r == '.':
			b.WriteByte('.')
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	if strings.Count(cleaned, ".") > 1 {
		head, tail, _ := strings.Cut(cleaned, ".")
		cleaned = head + "." + strings.ReplaceAll(tail, ".", "")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// ParseMoney parses a positive monetary amount from free text. Zero and
// negative amounts are rejected.
func ParseMoney(text string) (decimal.Decimal, bool) {
	amount, ok := normalizeMoney(text)
	if !ok || amount.Sign() <= 0 {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// ParseMoneyAllowZero is ParseMoney but accepts exactly zero, for amounts that
// may legitimately be absent or unknown (debts).
func ParseMoneyAllowZero(text string) (decimal.Decimal, bool) {
	amount, ok := normalizeMoney(text)
	if !ok || amount.Sign() < 0 {
		return decimal.Decimal{}, false
	}
	return amount, true
}
