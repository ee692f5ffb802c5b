package faraid

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"faraid-agent/domain"
)

// FormatFraction renders an exact share as "n/d", or just "n" for integers.
func FormatFraction(r *big.Rat) string {
	return r.RatString()
}

// FormatMoney rounds to 2 decimal places (bankers rounding), groups thousands
// with spaces, uses a comma as decimal separator and drops the fractional part
// entirely for whole amounts. The currency symbol is appended when present.
func FormatMoney(amount decimal.Decimal, currency string) string {
	quantized := amount.RoundBank(2)
	var number string
	if quantized.Equal(quantized.Truncate(0)) {
		number = groupThousands(quantized.Truncate(0).String())
	} else {
		intPart, fracPart, _ := strings.Cut(quantized.StringFixed(2), ".")
		number = groupThousands(intPart) + "," + fracPart
	}
	return strings.TrimRight(number+" "+currency, " ")
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	out := strings.Join(groups, " ")
	if neg {
		out = "-" + out
	}
	return out
}

// ShareAmount converts an exact rational share of the estate into money.
func ShareAmount(estate decimal.Decimal, share *big.Rat) decimal.Decimal {
	num := decimal.NewFromBigInt(share.Num(), 0)
	den := decimal.NewFromBigInt(share.Denom(), 0)
	return estate.Mul(num).Div(den)
}

// Render produces the human-readable breakdown for a computed case: one line
// per inheriting class with its fraction and money amount, residue blocks with
// per-part values, advisory notes for awl/radd/unassigned leftover, and the
// standard reminders. estateAmount is the net estate after debts.
func Render(
	in domain.InheritanceInput,
	comp domain.InheritanceComputation,
	estateAmount decimal.Decimal,
	currency string,
	extraLines []string,
) string {
	lines := []string{
		"📊 Расчёт долей по Шариату (Коран 4:11–12, 4:176)",
		"Порядок: похороны → долги → васият (до 1/3 и не наследникам) → распределение остатка.",
		"",
	}
	if len(extraLines) > 0 {
		for _, item := range extraLines {
			if item != "" {
				lines = append(lines, item)
			}
		}
		lines = append(lines, "")
	}

	leftover := comp.LeftoverUnassigned.Sign() > 0
	if comp.AwlApplied {
		lines = append(lines, "ℹ️ Применён ‘awl (сумма обязательных долей > 100%).")
	}
	if comp.RaddApplied {
		lines = append(lines, "ℹ️ Применён radd (остаток возвращён наследникам, кроме супруга/супруги).")
	}
	if leftover {
		lines = append(lines, "⚠️ Остаток не распределён автоматически — лучше уточнить у учёного.")
	}
	if comp.AwlApplied || comp.RaddApplied || leftover {
		lines = append(lines, "")
	}

	fixed := comp.FixedShares
	moneyLine := func(label string, frac *big.Rat) string {
		amount := ShareAmount(estateAmount, frac)
		return fmt.Sprintf("%s: %s → %s", label, FormatFraction(frac), FormatMoney(amount, currency))
	}

	if frac := fixed[domain.HeirSpouse]; frac != nil && frac.Sign() > 0 {
		label := "🧔 Муж"
		if in.Spouse == domain.SpouseWife {
			label = "🧑‍🦱 Жена"
		}
		lines = append(lines, moneyLine(label, frac))
	}

	if frac := fixed[domain.HeirMother]; in.MotherAlive && frac != nil && frac.Sign() > 0 {
		lines = append(lines, moneyLine("👩 Мать", frac))
	}

	if frac := fixed[domain.HeirFather]; in.FatherAlive && frac != nil && frac.Sign() > 0 {
		lines = append(lines, moneyLine("👨 Отец", frac))
	}

	if frac := fixed[domain.HeirDaughters]; in.Sons == 0 && in.Daughters > 0 && frac != nil && frac.Sign() > 0 {
		label := "👧 Дочь"
		if in.Daughters > 1 {
			label = fmt.Sprintf("👧 Дочери (%d)", in.Daughters)
		}
		lines = append(lines, moneyLine(label, frac))
	}

	if frac := fixed[domain.HeirSisters]; in.Sons+in.Daughters == 0 && !in.FatherAlive && frac != nil && frac.Sign() > 0 {
		label := "👩‍🦱 Родная сестра"
		if in.Sisters > 1 {
			label = fmt.Sprintf("👩‍🦱 Родные сёстры (%d)", in.Sisters)
		}
		lines = append(lines, moneyLine(label, frac))
	}

	if comp.ChildrenAsabaShare.Sign() > 0 && comp.ChildrenParts > 0 {
		groupAmount := ShareAmount(estateAmount, comp.ChildrenAsabaShare)
		partValue := groupAmount.Div(decimal.NewFromInt(int64(comp.ChildrenParts)))
		lines = append(lines,
			"",
			"👶 Дети: остаток по правилу 2:1 (сын = 2 части, дочь = 1 часть)",
			fmt.Sprintf("Итого частей: %d", comp.ChildrenParts),
			fmt.Sprintf("Каждая часть: %s", FormatMoney(partValue, currency)),
		)
	}

	if comp.SiblingsAsabaShare.Sign() > 0 && comp.SiblingsParts > 0 {
		groupAmount := ShareAmount(estateAmount, comp.SiblingsAsabaShare)
		partValue := groupAmount.Div(decimal.NewFromInt(int64(comp.SiblingsParts)))
		lines = append(lines,
			"",
			"👥 Родные братья/сёстры: остаток по правилу 2:1 (брат = 2 части, сестра = 1 часть)",
			fmt.Sprintf("Итого частей: %d", comp.SiblingsParts),
			fmt.Sprintf("Каждая часть: %s", FormatMoney(partValue, currency)),
		)
	}

	lines = append(lines,
		"",
		"📌 Важно: если известны долги умершего, сначала их нужно погасить.",
		"📌 Важно: это общий автоматический расчёт, сложные случаи лучше уточнить у учёного.",
	)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
