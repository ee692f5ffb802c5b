package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"faraid-agent/service"
)

func TestAskHandler_FallbackWhenDisabled(t *testing.T) {
	// No API key keeps the AI client disabled; the handler still answers.
	handler := NewAskHandler(service.NewAIService("", "", "", "", zap.NewNop()))

	body := `{"question": "Как делится наследство между сыном и дочерью?"}`
	req := httptest.NewRequest(http.MethodPost, "/scholar/ask", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp askResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Answer)
}

func TestAskHandler_EmptyQuestion(t *testing.T) {
	handler := NewAskHandler(service.NewAIService("", "", "", "", zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/scholar/ask", strings.NewReader(`{"question": "   "}`))
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskHandler_MethodNotAllowed(t *testing.T) {
	handler := NewAskHandler(service.NewAIService("", "", "", "", zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/scholar/ask", nil)
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
