package http

import (
	"net/http"

	"github.com/goccy/go-json"

	"faraid-agent/domain"
	"faraid-agent/faraid"
	"faraid-agent/service"
)

// InheritanceHandler exposes the calculation over JSON. Counts and amounts
// arrive as raw text exactly as a user would type them and go through the same
// normalizer as the bot dialog; currency is auto-detected from the estate
// field.
type InheritanceHandler struct {
	service *service.InheritanceService
}

func NewInheritanceHandler(service *service.InheritanceService) *InheritanceHandler {
	return &InheritanceHandler{service: service}
}

type calculateRequest struct {
	DeceasedGender string `json:"deceased_gender"`
	Spouse         string `json:"spouse"`
	Sons           string `json:"sons"`
	Daughters      string `json:"daughters"`
	FatherAlive    bool   `json:"father_alive"`
	MotherAlive    bool   `json:"mother_alive"`
	Brothers       string `json:"brothers"`
	Sisters        string `json:"sisters"`
	EstateAmount   string `json:"estate_amount"`
	DebtsAmount    string `json:"debts_amount"`
	NonMuslimHeirs string `json:"non_muslim_heirs,omitempty"`
	UserID         int64  `json:"user_id,omitempty"`
}

type shareLine struct {
	Heir     string `json:"heir"`
	Fraction string `json:"fraction"`
	Amount   string `json:"amount"`
}

type calculateResponse struct {
	Text               string      `json:"text"`
	NetAmount          string      `json:"net_amount"`
	Shares             []shareLine `json:"shares"`
	ChildrenParts      int         `json:"children_parts,omitempty"`
	SiblingsParts      int         `json:"siblings_parts,omitempty"`
	AwlApplied         bool        `json:"awl_applied"`
	RaddApplied        bool        `json:"radd_applied"`
	LeftoverUnassigned string      `json:"leftover_unassigned,omitempty"`
}

// fixedShareOrder keeps the response share table in the classical listing
// order regardless of map iteration.
var fixedShareOrder = []domain.HeirClass{
	domain.HeirSpouse,
	domain.HeirMother,
	domain.HeirFather,
	domain.HeirDaughters,
	domain.HeirSisters,
}

func (h *InheritanceHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sons, ok := faraid.ParseCount(body.Sons, domain.MaxRelatives)
	if !ok {
		http.Error(w, "invalid sons count", http.StatusBadRequest)
		return
	}
	daughters, ok := faraid.ParseCount(body.Daughters, domain.MaxRelatives)
	if !ok {
		http.Error(w, "invalid daughters count", http.StatusBadRequest)
		return
	}
	brothers, ok := faraid.ParseCount(body.Brothers, domain.MaxRelatives)
	if !ok {
		http.Error(w, "invalid brothers count", http.StatusBadRequest)
		return
	}
	sisters, ok := faraid.ParseCount(body.Sisters, domain.MaxRelatives)
	if !ok {
		http.Error(w, "invalid sisters count", http.StatusBadRequest)
		return
	}
	estate, ok := faraid.ParseMoney(body.EstateAmount)
	if !ok {
		http.Error(w, "invalid estate amount", http.StatusBadRequest)
		return
	}
	debts, ok := faraid.ParseMoneyAllowZero(body.DebtsAmount)
	if !ok {
		http.Error(w, "invalid debts amount", http.StatusBadRequest)
		return
	}

	req := domain.CalculationRequest{
		Input: domain.InheritanceInput{
			DeceasedGender: domain.Gender(body.DeceasedGender),
			Spouse:         domain.Spouse(body.Spouse),
			Sons:           sons,
			Daughters:      daughters,
			FatherAlive:    body.FatherAlive,
			MotherAlive:    body.MotherAlive,
			Brothers:       brothers,
			Sisters:        sisters,
		},
		EstateAmount:   estate,
		DebtsAmount:    debts,
		Currency:       faraid.CurrencyHint(body.EstateAmount),
		NonMuslimHeirs: body.NonMuslimHeirs,
		UserID:         body.UserID,
	}

	result, err := h.service.Calculate(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	comp := result.Computation
	resp := calculateResponse{
		Text:          result.Text,
		NetAmount:     result.NetAmount.String(),
		ChildrenParts: comp.ChildrenParts,
		SiblingsParts: comp.SiblingsParts,
		AwlApplied:    comp.AwlApplied,
		RaddApplied:   comp.RaddApplied,
	}
	for _, class := range fixedShareOrder {
		frac := comp.FixedShares[class]
		if frac == nil || frac.Sign() <= 0 {
			continue
		}
		amount := faraid.ShareAmount(result.NetAmount, frac)
		resp.Shares = append(resp.Shares, shareLine{
			Heir:     string(class),
			Fraction: faraid.FormatFraction(frac),
			Amount:   faraid.FormatMoney(amount, req.Currency),
		})
	}
	if comp.ChildrenAsabaShare.Sign() > 0 {
		amount := faraid.ShareAmount(result.NetAmount, comp.ChildrenAsabaShare)
		resp.Shares = append(resp.Shares, shareLine{
			Heir:     "children",
			Fraction: faraid.FormatFraction(comp.ChildrenAsabaShare),
			Amount:   faraid.FormatMoney(amount, req.Currency),
		})
	}
	if comp.SiblingsAsabaShare.Sign() > 0 {
		amount := faraid.ShareAmount(result.NetAmount, comp.SiblingsAsabaShare)
		resp.Shares = append(resp.Shares, shareLine{
			Heir:     "siblings",
			Fraction: faraid.FormatFraction(comp.SiblingsAsabaShare),
			Amount:   faraid.FormatMoney(amount, req.Currency),
		})
	}
	if comp.LeftoverUnassigned.Sign() > 0 {
		resp.LeftoverUnassigned = faraid.FormatFraction(comp.LeftoverUnassigned)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
