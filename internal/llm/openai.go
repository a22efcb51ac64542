package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// openaiClient talks to any OpenAI-compatible chat completion endpoint
type openaiClient struct {
	cfg        config.LLMConfig
	logger     logger.Logger
	baseURL    string
	httpClient *http.Client
}

func newOpenAIClient(cfg config.LLMConfig, log logger.Logger) *openaiClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &openaiClient{
		cfg:        cfg,
		logger:     log,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens,omitempty"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *openaiClient) FormatItem(ctx context.Context, raw string) (Record, error) {
	content, err := c.complete(ctx, formatSystemPrompt, fmt.Sprintf(formatPrompt, raw), c.cfg.MaxTokens, true)
	if err != nil {
		return Record{}, fmt.Errorf("format news item: %w", err)
	}
	return decodeRecord(content)
}

func (c *openaiClient) Summary(ctx context.Context, records []Record) (string, error) {
	content, err := c.complete(ctx, summarySystemPrompt, fmt.Sprintf(summaryPrompt, recordsJSON(records)), 200, false)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return strings.TrimSpace(content), nil
}

func (c *openaiClient) Introduction(ctx context.Context, record Record) (string, error) {
	content, err := c.complete(ctx, introductionSystemPrompt, fmt.Sprintf(introductionPrompt, recordJSON(record)), 150, false)
	if err != nil {
		return "", fmt.Errorf("generate introduction: %w", err)
	}
	return strings.TrimSpace(content), nil
}

// complete performs one chat completion round trip
func (c *openaiClient) complete(ctx context.Context, system, user string, maxTokens int, jsonMode bool) (string, error) {
	request := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   maxTokens,
	}
	if jsonMode {
		request.ResponseFormat = &struct {
			Type string `json:"type"`
		}{Type: "json_object"}
	}

	encoded, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("parse chat response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("chat api error: %s", decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("chat api returned no choices")
	}

	return decoded.Choices[0].Message.Content, nil
}
