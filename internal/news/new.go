package news

import (
	"net/http"
	"time"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
)

type implFetcher struct {
	cfg    config.NewsConfig
	logger logger.Logger
	client *http.Client
}

// New creates a Fetcher backed by the Whyta general news API
func New(cfg config.NewsConfig, log logger.Logger) Fetcher {
	return &implFetcher{
		cfg:    cfg,
		logger: log,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}
