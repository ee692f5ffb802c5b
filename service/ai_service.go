package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	defaultAIBaseURL = "https://api.openai.com/v1"
	defaultAIModel   = "gpt-4o-mini"

	defaultSystemPrompt = "Ты помощник по вопросам фикха и шариатского наследственного права. " +
		"Отвечай кратко и по существу, опираясь на Коран и Сунну. " +
		"Если вопрос сложный или спорный, советуй обратиться к учёному напрямую."

	scholarFallback = "ИИ-помощник сейчас недоступен. Ваш вопрос сохранён и будет передан учёным."
)

// Reasoning models wrap chain-of-thought in <think> tags; users never see it.
var thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// AIService is a thin client for an OpenAI-compatible chat-completions
// endpoint, used to draft scholar answers. Without an API key it stays
// disabled and every ask returns the deterministic fallback text.
type AIService struct {
	apiKey       string
	baseURL      string
	model        string
	systemPrompt string
	enabled      bool
	httpClient   *http.Client
	logger       *zap.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewAIService(apiKey, baseURL, model, systemPrompt string, logger *zap.Logger) *AIService {
	if baseURL == "" {
		baseURL = defaultAIBaseURL
	}
	if model == "" {
		model = defaultAIModel
	}
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}
	enabled := apiKey != ""
	if !enabled {
		logger.Warn("AI API key is not configured, scholar responses are disabled")
	}
	return &AIService{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		model:        model,
		systemPrompt: systemPrompt,
		enabled:      enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// AskScholar forwards a free-text question and returns the drafted answer, or
// the fallback text when the client is disabled or the call fails.
func (s *AIService) AskScholar(question string) string {
	if !s.enabled {
		return scholarFallback
	}
	answer, err := s.callLLM(question)
	if err != nil {
		s.logger.Error("failed to generate AI response", zap.Error(err))
		return scholarFallback
	}
	return answer
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: s.systemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	content := strings.TrimSpace(thinkBlockRe.ReplaceAllString(chatResp.Choices[0].Message.Content, ""))
	if content == "" {
		return "", fmt.Errorf("empty response from AI")
	}
	return content, nil
}
