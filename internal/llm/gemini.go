package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
)

// geminiClient generates content through the Gemini API, rotating API keys
// when one is rate limited.
type geminiClient struct {
	cfg        config.LLMConfig
	logger     logger.Logger
	apiKeys    []string
	currentKey int
}

func newGeminiClient(cfg config.LLMConfig, log logger.Logger) *geminiClient {
	return &geminiClient{
		cfg:     cfg,
		logger:  log,
		apiKeys: cfg.APIKeys,
	}
}

func (c *geminiClient) FormatItem(ctx context.Context, raw string) (Record, error) {
	content, err := c.generate(ctx, formatSystemPrompt+"\n\n"+fmt.Sprintf(formatPrompt, raw))
	if err != nil {
		return Record{}, fmt.Errorf("format news item: %w", err)
	}
	return decodeRecord(content)
}

func (c *geminiClient) Summary(ctx context.Context, records []Record) (string, error) {
	content, err := c.generate(ctx, summarySystemPrompt+"\n\n"+fmt.Sprintf(summaryPrompt, recordsJSON(records)))
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return strings.TrimSpace(content), nil
}

func (c *geminiClient) Introduction(ctx context.Context, record Record) (string, error) {
	content, err := c.generate(ctx, introductionSystemPrompt+"\n\n"+fmt.Sprintf(introductionPrompt, recordJSON(record)))
	if err != nil {
		return "", fmt.Errorf("generate introduction: %w", err)
	}
	return strings.TrimSpace(content), nil
}

// generate sends the prompt to Gemini. Rotates API keys on 429 / quota errors.
func (c *geminiClient) generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.apiKeys[c.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", c.currentKey+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *geminiClient) rotateKey() {
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
