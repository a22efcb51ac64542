package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/llm"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
	"github.com/NebulaMao/AutoNewsVideo/internal/news"
	"github.com/NebulaMao/AutoNewsVideo/internal/pipeline"
	"github.com/NebulaMao/AutoNewsVideo/internal/render"
	"github.com/NebulaMao/AutoNewsVideo/internal/script"
	"github.com/NebulaMao/AutoNewsVideo/internal/tts"
	"github.com/NebulaMao/AutoNewsVideo/internal/video"
	"github.com/NebulaMao/AutoNewsVideo/internal/watcher"
	"github.com/NebulaMao/AutoNewsVideo/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	watchMode := flag.Bool("watch", false, "watch the inbox directory for news list files instead of fetching once")
	outputPath := flag.String("output", "", "output video path (default: timestamped file under the output directory)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "AutoNewsVideo")
	log.Info(ctx, "========================================")
	log.Info(ctx, "LLM provider: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)
	log.Info(ctx, "TTS provider: %s (voice %s)", cfg.TTS.Provider, cfg.TTS.Voice)
	log.Info(ctx, "Video: %dx%d @ %d fps", cfg.Video.Width, cfg.Video.Height, cfg.Video.FPS)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	p, err := buildPipeline(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize pipeline: %v", err)
		os.Exit(1)
	}

	if *watchMode {
		runWatch(ctx, cfg, p, log)
		return
	}

	if err := runOnce(ctx, cfg, p, log, *outputPath); err != nil {
		log.Error(ctx, "Run failed: %v", err)
		os.Exit(1)
	}
}

// buildPipeline wires the configured providers into a Pipeline
func buildPipeline(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	exec := executor.New()

	llmClient, err := llm.New(cfg.LLM, log)
	if err != nil {
		return nil, err
	}

	renderer, err := render.New(cfg.Video, cfg.Render, log)
	if err != nil {
		return nil, err
	}

	synthesizer, err := tts.New(cfg.TTS, exec, log)
	if err != nil {
		return nil, err
	}

	generator, err := video.New(cfg.Video, cfg.Paths, exec, log)
	if err != nil {
		return nil, err
	}

	var scriptWriter script.Writer
	if cfg.Script.Enabled {
		scriptWriter = script.New(log)
	}

	return pipeline.New(cfg, llmClient, renderer, synthesizer, generator, scriptWriter, log), nil
}

// runOnce fetches today's news and produces a single video
func runOnce(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger, outputPath string) error {
	fetcher := news.New(cfg.News, log)
	items, err := fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch news: %w", err)
	}
	log.Info(ctx, "Fetched %d news items", len(items))

	videoPath, err := p.Run(ctx, items, outputPath)
	if err != nil {
		return err
	}

	log.Info(ctx, "Done: %s", videoPath)
	return nil
}

// runWatch processes news list files dropped into the inbox until interrupted
func runWatch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) {
	handler := func(ctx context.Context, filePath string) error {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read news list: %w", err)
		}
		var items []news.Item
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("parse news list %s: %w", filePath, err)
		}
		_, err = p.Run(ctx, items, "")
		return err
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching inbox: %s (Ctrl+C to stop)", cfg.Paths.Inbox)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Output,
		cfg.Paths.Temp,
		cfg.Paths.Inbox,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
