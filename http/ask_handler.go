package http

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"faraid-agent/service"
)

type AskHandler struct {
	service *service.AIService
}

func NewAskHandler(service *service.AIService) *AskHandler {
	return &AskHandler{service: service}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body askRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Question) == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	answer := h.service.AskScholar(body.Question)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(askResponse{Answer: answer})
}
