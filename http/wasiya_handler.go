package http

import (
	"net/http"

	"github.com/goccy/go-json"

	"faraid-agent/faraid"
	"faraid-agent/service"
)

type WasiyaHandler struct {
	service *service.WasiyaService
}

func NewWasiyaHandler(service *service.WasiyaService) *WasiyaHandler {
	return &WasiyaHandler{service: service}
}

type wasiyaRequest struct {
	EstateAmount  string `json:"estate_amount"`
	BequestAmount string `json:"bequest_amount"`
}

type wasiyaResponse struct {
	Allowed    bool   `json:"allowed"`
	MaxAllowed string `json:"max_allowed"`
	Text       string `json:"text"`
}

func (h *WasiyaHandler) Check(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body wasiyaRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	estate, ok := faraid.ParseMoney(body.EstateAmount)
	if !ok {
		http.Error(w, "invalid estate amount", http.StatusBadRequest)
		return
	}
	bequest, ok := faraid.ParseMoneyAllowZero(body.BequestAmount)
	if !ok {
		http.Error(w, "invalid bequest amount", http.StatusBadRequest)
		return
	}

	currency := faraid.CurrencyHint(body.EstateAmount)
	result, err := h.service.Check(estate, bequest, currency)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wasiyaResponse{
		Allowed:    result.Allowed,
		MaxAllowed: faraid.FormatMoney(result.MaxAllowed, currency),
		Text:       result.Text,
	})
}
