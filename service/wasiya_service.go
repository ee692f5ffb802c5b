package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"faraid-agent/domain"
	"faraid-agent/faraid"
)

var three = decimal.NewFromInt(3)

// WasiyaService checks a bequest to non-heirs against the 1/3-of-estate limit.
type WasiyaService struct{}

func NewWasiyaService() *WasiyaService {
	return &WasiyaService{}
}

// Check verifies that the bequest does not exceed one third of the estate.
// The comparison is exact (bequest × 3 vs estate); MaxAllowed is only a
// display value.
func (s *WasiyaService) Check(estate, bequest decimal.Decimal, currency string) (domain.WasiyaCheck, error) {
	if estate.Sign() <= 0 {
		return domain.WasiyaCheck{}, errors.New("estate amount must be positive")
	}
	if bequest.Sign() < 0 {
		return domain.WasiyaCheck{}, errors.New("bequest amount cannot be negative")
	}

	maxAllowed := estate.Div(three)
	allowed := bequest.Mul(three).Cmp(estate) <= 0

	var text string
	if allowed {
		text = fmt.Sprintf(
			"✅ Сумма васията не превышает 1/3.\nИмущество: %s\nВасият: %s",
			faraid.FormatMoney(estate, currency), faraid.FormatMoney(bequest, currency))
	} else {
		text = fmt.Sprintf(
			"⚠️ Нельзя завещать более 1/3 имущества посторонним.\nМаксимум: %s\nИмущество: %s\nВасият: %s",
			faraid.FormatMoney(maxAllowed, currency), faraid.FormatMoney(estate, currency), faraid.FormatMoney(bequest, currency))
	}

	return domain.WasiyaCheck{Allowed: allowed, MaxAllowed: maxAllowed, Text: text}, nil
}
