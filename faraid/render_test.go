package faraid

import (
	"math/big"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faraid-agent/domain"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"whole with grouping", "1234567", "₽", "1 234 567 ₽"},
		{"fractional", "1234567.891", "₽", "1 234 567,89 ₽"},
		{"bankers rounding down", "2.345", "$", "2,34 $"},
		{"bankers rounding up", "2.355", "$", "2,36 $"},
		{"sub-ruble", "0.5", "₽", "0,50 ₽"},
		{"no currency", "1000", "", "1 000"},
		{"small whole", "42", "€", "42 €"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, FormatMoney(amount, tt.currency))
		})
	}
}

func TestFormatMoney_Deterministic(t *testing.T) {
	amount := decimal.RequireFromString("987654.321")
	first := FormatMoney(amount, "₽")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FormatMoney(amount, "₽"))
	}
}

func TestFormatFraction(t *testing.T) {
	assert.Equal(t, "1/8", FormatFraction(big.NewRat(1, 8)))
	assert.Equal(t, "7/8", FormatFraction(big.NewRat(7, 8)))
	assert.Equal(t, "1", FormatFraction(big.NewRat(1, 1)))
	assert.Equal(t, "2/3", FormatFraction(big.NewRat(4, 6)))
}

func TestShareAmount(t *testing.T) {
	estate := decimal.NewFromInt(800000)
	got := ShareAmount(estate, big.NewRat(1, 8))
	assert.True(t, got.Equal(decimal.NewFromInt(100000)), "got %s", got)

	got = ShareAmount(estate, big.NewRat(7, 8))
	assert.True(t, got.Equal(decimal.NewFromInt(700000)), "got %s", got)
}

func TestRender_SpouseAndChildren(t *testing.T) {
	in := domain.InheritanceInput{
		DeceasedGender: domain.GenderMale,
		Spouse:         domain.SpouseWife,
		Sons:           2,
		Daughters:      1,
	}
	comp := Compute(in)
	text := Render(in, comp, decimal.NewFromInt(800000), "₽", []string{
		"💰 Имущество: 800 000 ₽",
	})

	require.Contains(t, text, "📊 Расчёт долей по Шариату")
	assert.Contains(t, text, "💰 Имущество: 800 000 ₽")
	assert.Contains(t, text, "🧑‍🦱 Жена: 1/8 → 100 000 ₽")
	assert.Contains(t, text, "Итого частей: 5")
	assert.Contains(t, text, "Каждая часть: 140 000 ₽")
	assert.Contains(t, text, "сложные случаи лучше уточнить у учёного")
	assert.NotContains(t, text, "‘awl")
	assert.NotContains(t, text, "radd")
}

func TestRender_AwlNote(t *testing.T) {
	in := domain.InheritanceInput{
		DeceasedGender: domain.GenderFemale,
		Spouse:         domain.SpouseHusband,
		Daughters:      2,
		FatherAlive:    true,
		MotherAlive:    true,
	}
	comp := Compute(in)
	text := Render(in, comp, decimal.NewFromInt(150000), "₽", nil)

	assert.Contains(t, text, "ℹ️ Применён ‘awl")
	assert.Contains(t, text, "🧔 Муж: 1/5 → 30 000 ₽")
	assert.Contains(t, text, "👧 Дочери (2): 8/15 → 80 000 ₽")
}

func TestRender_LeftoverWarning(t *testing.T) {
	in := domain.InheritanceInput{
		DeceasedGender: domain.GenderFemale,
		Spouse:         domain.SpouseHusband,
	}
	comp := Compute(in)
	text := Render(in, comp, decimal.NewFromInt(100000), "", nil)

	assert.Contains(t, text, "🧔 Муж: 1/2 → 50 000")
	assert.Contains(t, text, "⚠️ Остаток не распределён автоматически")
}

func TestRender_SiblingsBlock(t *testing.T) {
	in := domain.InheritanceInput{
		DeceasedGender: domain.GenderMale,
		Spouse:         domain.SpouseNone,
		MotherAlive:    true,
		Brothers:       1,
		Sisters:        1,
	}
	comp := Compute(in)
	text := Render(in, comp, decimal.NewFromInt(600000), "₽", nil)

	assert.Contains(t, text, "👩 Мать: 1/6 → 100 000 ₽")
	assert.Contains(t, text, "👥 Родные братья/сёстры")
	assert.Contains(t, text, "Итого частей: 3")
	// 500 000 over three parts, bankers-rounded.
	assert.Contains(t, text, "Каждая часть: 166 666,67 ₽")
	assert.False(t, strings.HasSuffix(text, "\n"))
}
