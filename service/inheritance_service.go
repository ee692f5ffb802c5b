package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"faraid-agent/domain"
	"faraid-agent/faraid"
	"faraid-agent/repository"
)

// InheritanceService runs complete calculation requests: validation, net
// estate, share computation, rendering, and the follow-up actions (caching the
// last result per user, saving it as a document).
type InheritanceService struct {
	docs   repository.DocumentRepository
	cache  repository.CacheRepository
	logger *zap.Logger
}

func NewInheritanceService(
	docs repository.DocumentRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *InheritanceService {
	return &InheritanceService{docs: docs, cache: cache, logger: logger}
}

func lastCalcKey(userID int64) string {
	return fmt.Sprintf("%s%d", lastCalcKeyPrefix, userID)
}

func validateInput(in domain.InheritanceInput) error {
	if in.DeceasedGender != domain.GenderMale && in.DeceasedGender != domain.GenderFemale {
		return errors.New("invalid deceased gender")
	}
	switch in.Spouse {
	case domain.SpouseNone, domain.SpouseWife, domain.SpouseHusband:
	default:
		return errors.New("invalid spouse value")
	}
	for _, count := range []int{in.Sons, in.Daughters, in.Brothers, in.Sisters} {
		if count < 0 {
			return errors.New("relative count cannot be negative")
		}
		if count > domain.MaxRelatives {
			return fmt.Errorf("relative count exceeds the maximum of %d", domain.MaxRelatives)
		}
	}
	return nil
}

// Calculate validates the request, deducts debts from the estate, computes the
// distribution and renders the breakdown. The rendered text is cached per user
// so the save/download/ask follow-ups can pick it up later.
func (s *InheritanceService) Calculate(req domain.CalculationRequest) (domain.CalculationResult, error) {
	if err := validateInput(req.Input); err != nil {
		return domain.CalculationResult{}, err
	}
	if req.EstateAmount.Sign() <= 0 {
		return domain.CalculationResult{}, errors.New("estate amount must be positive")
	}
	if req.DebtsAmount.Sign() < 0 {
		return domain.CalculationResult{}, errors.New("debts amount cannot be negative")
	}

	net := req.EstateAmount.Sub(req.DebtsAmount)
	if net.Sign() <= 0 {
		return domain.CalculationResult{}, errors.New("estate is not positive after deducting debts")
	}

	extraLines := []string{
		fmt.Sprintf("💰 Имущество: %s", faraid.FormatMoney(req.EstateAmount, req.Currency)),
		fmt.Sprintf("📌 Долги: %s", faraid.FormatMoney(req.DebtsAmount, req.Currency)),
		fmt.Sprintf("✅ К распределению: %s", faraid.FormatMoney(net, req.Currency)),
	}
	if req.NonMuslimHeirs == domain.NonMuslimYes || req.NonMuslimHeirs == domain.NonMuslimUnknown {
		extraLines = append(extraLines,
			"⚠️ Важно: наследство между мусульманином и неверующим не переходит; нужна консультация учёного.")
	}

	comp := faraid.Compute(req.Input)
	text := faraid.Render(req.Input, comp, net, req.Currency, extraLines)

	if req.UserID != 0 {
		// Not critical if caching fails; the calculation itself succeeded.
		if err := s.cache.Set(lastCalcKey(req.UserID), text); err != nil {
			s.logger.Warn("failed to cache last calculation",
				zap.Int64("user_id", req.UserID), zap.Error(err))
		}
	}

	return domain.CalculationResult{Text: text, NetAmount: net, Computation: comp}, nil
}

// LastCalculation returns the most recent rendered breakdown for the user.
func (s *InheritanceService) LastCalculation(userID int64) (string, bool) {
	return s.cache.Get(lastCalcKey(userID))
}

// SaveLastCalculation persists the cached breakdown as an opaque document.
func (s *InheritanceService) SaveLastCalculation(userID int64) (domain.Document, error) {
	text, ok := s.cache.Get(lastCalcKey(userID))
	if !ok {
		return domain.Document{}, errors.New("no calculation to save")
	}

	now := time.Now()
	doc := domain.Document{
		Filename:  fmt.Sprintf("inheritance_%d_%s.txt", userID, strings.ReplaceAll(uuid.NewString(), "-", "")),
		UserID:    userID,
		Category:  DocumentCategoryInheritance,
		Name:      fmt.Sprintf("Расчёт наследства %s", now.Format("2006-01-02")),
		Content:   []byte(text),
		DocType:   DocumentTypeInheritance,
		CreatedAt: now,
	}
	if err := s.docs.Save(doc); err != nil {
		s.logger.Error("failed to save inheritance calculation",
			zap.Int64("user_id", userID), zap.Error(err))
		return domain.Document{}, err
	}
	return doc, nil
}
