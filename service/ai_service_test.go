package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAskScholar_DisabledWithoutKey(t *testing.T) {
	svc := NewAIService("", "", "", "", zap.NewNop())
	assert.Equal(t, scholarFallback, svc.AskScholar("Можно ли завещать всё одному сыну?"))
}

func TestAskScholar_ReturnsAnswer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/chat/completions", r.URL.Path)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		resp := chatResponse{}
		resp.Choices = []struct {
			Message chatMessage `json:"message"`
		}{
			{Message: chatMessage{Role: "assistant", Content: "<think>взвешиваю мнения</think>Нет, доли наследников фиксированы."}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	svc := NewAIService("test-key", server.URL, "test-model", "", zap.NewNop())
	answer := svc.AskScholar("Можно ли завещать всё одному сыну?")

	assert.Equal(t, "Нет, доли наследников фиксированы.", answer)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestAskScholar_FallbackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewAIService("test-key", server.URL, "test-model", "", zap.NewNop())
	assert.Equal(t, scholarFallback, svc.AskScholar("вопрос"))
}

func TestAskScholar_FallbackOnEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"<think>only thoughts</think>"}}]}`))
	}))
	defer server.Close()

	svc := NewAIService("test-key", server.URL, "test-model", "", zap.NewNop())
	assert.Equal(t, scholarFallback, svc.AskScholar("вопрос"))
}
