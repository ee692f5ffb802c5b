package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"faraid-agent/domain"
	"faraid-agent/repository"
)

func newTestInheritanceService() (*InheritanceService, *repository.DocumentRepositoryMemory) {
	docs := repository.NewDocumentRepositoryMemory()
	cache := repository.NewMemoryCache()
	return NewInheritanceService(docs, cache, zap.NewNop()), docs
}

func validRequest() domain.CalculationRequest {
	return domain.CalculationRequest{
		Input: domain.InheritanceInput{
			DeceasedGender: domain.GenderMale,
			Spouse:         domain.SpouseWife,
			Sons:           2,
			Daughters:      1,
		},
		EstateAmount:   decimal.NewFromInt(800000),
		DebtsAmount:    decimal.Decimal{},
		Currency:       "₽",
		NonMuslimHeirs: domain.NonMuslimNo,
		UserID:         42,
	}
}

func TestCalculate_FullBreakdown(t *testing.T) {
	svc, _ := newTestInheritanceService()

	result, err := svc.Calculate(validRequest())
	require.NoError(t, err)

	assert.True(t, result.NetAmount.Equal(decimal.NewFromInt(800000)))
	assert.Contains(t, result.Text, "💰 Имущество: 800 000 ₽")
	assert.Contains(t, result.Text, "✅ К распределению: 800 000 ₽")
	assert.Contains(t, result.Text, "🧑‍🦱 Жена: 1/8 → 100 000 ₽")
	assert.Equal(t, 5, result.Computation.ChildrenParts)
}

func TestCalculate_DeductsDebts(t *testing.T) {
	svc, _ := newTestInheritanceService()

	req := validRequest()
	req.DebtsAmount = decimal.NewFromInt(300000)
	result, err := svc.Calculate(req)
	require.NoError(t, err)

	assert.True(t, result.NetAmount.Equal(decimal.NewFromInt(500000)))
	assert.Contains(t, result.Text, "📌 Долги: 300 000 ₽")
	assert.Contains(t, result.Text, "✅ К распределению: 500 000 ₽")
}

func TestCalculate_NonMuslimWarning(t *testing.T) {
	svc, _ := newTestInheritanceService()

	req := validRequest()
	req.NonMuslimHeirs = domain.NonMuslimUnknown
	result, err := svc.Calculate(req)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "наследство между мусульманином и неверующим не переходит")

	req.NonMuslimHeirs = domain.NonMuslimNo
	result, err = svc.Calculate(req)
	require.NoError(t, err)
	assert.NotContains(t, result.Text, "не переходит")
}

func TestCalculate_Rejections(t *testing.T) {
	svc, _ := newTestInheritanceService()

	tests := []struct {
		name   string
		mutate func(*domain.CalculationRequest)
	}{
		{"bad gender", func(r *domain.CalculationRequest) { r.Input.DeceasedGender = "other" }},
		{"bad spouse", func(r *domain.CalculationRequest) { r.Input.Spouse = "ex" }},
		{"negative sons", func(r *domain.CalculationRequest) { r.Input.Sons = -1 }},
		{"too many sisters", func(r *domain.CalculationRequest) { r.Input.Sisters = domain.MaxRelatives + 1 }},
		{"zero estate", func(r *domain.CalculationRequest) { r.EstateAmount = decimal.Decimal{} }},
		{"negative debts", func(r *domain.CalculationRequest) { r.DebtsAmount = decimal.NewFromInt(-1) }},
		{"debts swallow estate", func(r *domain.CalculationRequest) { r.DebtsAmount = decimal.NewFromInt(800000) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Calculate(req)
			assert.Error(t, err)
		})
	}
}

func TestLastCalculation(t *testing.T) {
	svc, _ := newTestInheritanceService()

	_, ok := svc.LastCalculation(42)
	assert.False(t, ok)

	result, err := svc.Calculate(validRequest())
	require.NoError(t, err)

	cached, ok := svc.LastCalculation(42)
	require.True(t, ok)
	assert.Equal(t, result.Text, cached)
}

func TestSaveLastCalculation(t *testing.T) {
	svc, docs := newTestInheritanceService()

	_, err := svc.SaveLastCalculation(42)
	assert.Error(t, err)

	result, err := svc.Calculate(validRequest())
	require.NoError(t, err)

	doc, err := svc.SaveLastCalculation(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), doc.UserID)
	assert.Equal(t, DocumentCategoryInheritance, doc.Category)
	assert.Equal(t, result.Text, string(doc.Content))

	saved := docs.ByUser(42)
	require.Len(t, saved, 1)
	assert.Equal(t, doc.Filename, saved[0].Filename)
}
