package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
)

// apiSynthesizer streams speech from an OpenAI-compatible /audio/speech endpoint
type apiSynthesizer struct {
	cfg        config.TTSConfig
	logger     logger.Logger
	httpClient *http.Client
}

func newAPISynthesizer(cfg config.TTSConfig, log logger.Logger) *apiSynthesizer {
	return &apiSynthesizer{
		cfg:        cfg,
		logger:     log,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type speechRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format"`
}

func (s *apiSynthesizer) Synthesize(ctx context.Context, text, outputPath string) (string, error) {
	request := speechRequest{
		Model:          s.cfg.Model,
		Voice:          s.cfg.Voice,
		Input:          text,
		ResponseFormat: "mp3",
	}

	encoded, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("encode speech request: %w", err)
	}

	url := strings.TrimRight(s.cfg.BaseURL, "/") + "/audio/speech"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("build speech request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("speech request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("speech api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("stream audio to file: %w", err)
	}

	s.logger.Info(ctx, "Generated audio with speech api: %s", outputPath)
	return outputPath, nil
}
