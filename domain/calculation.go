package domain

import "github.com/shopspring/decimal"

// NonMuslimHeirs answer values collected by the dialog.
const (
	NonMuslimYes     = "yes"
	NonMuslimNo      = "no"
	NonMuslimUnknown = "unknown"
)

// CalculationRequest is one complete inheritance calculation as assembled by a
// transport layer (bot dialog or HTTP handler) after input normalization.
type CalculationRequest struct {
	Input          InheritanceInput
	EstateAmount   decimal.Decimal
	DebtsAmount    decimal.Decimal
	Currency       string
	NonMuslimHeirs string
	// UserID keys the last-calculation cache; zero skips caching.
	UserID int64
}

type CalculationResult struct {
	Text        string
	NetAmount   decimal.Decimal
	Computation InheritanceComputation
}

// WasiyaCheck is the outcome of the bequest 1/3-limit verification.
type WasiyaCheck struct {
	Allowed    bool
	MaxAllowed decimal.Decimal
	Text       string
}
