package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NebulaMao/AutoNewsVideo/internal/llm"
	"github.com/NebulaMao/AutoNewsVideo/internal/news"
	"github.com/NebulaMao/AutoNewsVideo/internal/render"
	"github.com/NebulaMao/AutoNewsVideo/internal/script"
)

// Run orchestrates the full news-to-video pipeline
func (p *implPipeline) Run(ctx context.Context, items []news.Item, outputPath string) (string, error) {
	p.setState(ctx, StateFetched)
	if len(items) == 0 {
		return "", ErrNoUsableItems
	}

	records := p.normalize(ctx, items)
	p.setState(ctx, StateProcessed)
	if len(records) == 0 {
		return "", fmt.Errorf("%w: all %d items failed normalization", ErrNoUsableItems, len(items))
	}

	return p.RunRecords(ctx, records, outputPath)
}

// RunRecords produces a video from already-normalized records
func (p *implPipeline) RunRecords(ctx context.Context, records []llm.Record, outputPath string) (string, error) {
	if len(records) == 0 {
		return "", ErrNoUsableItems
	}

	startTime := time.Now()
	timestamp := p.now().Format("20060102_150405")

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting video generation for %d news items", len(records))
	p.logger.Info(ctx, "========================================")

	imagesDir := filepath.Join(p.cfg.Paths.Output, "images")
	audioDir := filepath.Join(p.cfg.Paths.Output, "audio")
	if outputPath == "" {
		outputPath = filepath.Join(p.cfg.Paths.Output, "video", "news_"+timestamp+".mp4")
	}
	for _, dir := range []string{imagesDir, audioDir, filepath.Dir(outputPath)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}

	// Step 1: overview summary (fatal: it opens the video)
	summary, err := p.llm.Summary(ctx, records)
	if err != nil {
		return "", wrapSummary(err)
	}
	p.setState(ctx, StateSummarized)

	// Step 2: per-item narration, with a deterministic fallback
	introductions := p.introduce(ctx, records)
	p.setState(ctx, StateIntroduced)

	// Step 3: render images. The overview image is fatal; a failed item
	// image only drops that item from the final cut.
	overviewImage := filepath.Join(imagesDir, timestamp+"_overview.jpg")
	if _, err := p.renderer.Overview(ctx, render.OverviewData{
		Date:      p.now().Format("2006-01-02"),
		Summary:   summary,
		NewsCount: len(records),
	}, overviewImage); err != nil {
		return "", fmt.Errorf("render overview image: %w", err)
	}

	itemImages := make(map[int]string, len(records))
	for i, record := range records {
		imagePath := filepath.Join(imagesDir, fmt.Sprintf("%s_item_%d.jpg", timestamp, i+1))
		if _, err := p.renderer.NewsItem(ctx, render.ItemData{
			Record:     record,
			ItemNumber: i + 1,
			TotalItems: len(records),
		}, imagePath); err != nil {
			p.logger.Warn(ctx, "Failed to render image for item %d (%s), dropping it: %v", i+1, record.Title, err)
			continue
		}
		itemImages[i] = imagePath
	}
	p.setState(ctx, StateImaged)

	// Step 4: synthesize narration, same fatality rules as images
	overviewAudio := filepath.Join(audioDir, timestamp+"_overview.mp3")
	if _, err := p.tts.Synthesize(ctx, summary, overviewAudio); err != nil {
		return "", fmt.Errorf("synthesize overview narration: %w", err)
	}

	itemAudios := make(map[int]string, len(records))
	for i := range records {
		audioPath := filepath.Join(audioDir, fmt.Sprintf("%s_item_%d.mp3", timestamp, i+1))
		if _, err := p.tts.Synthesize(ctx, introductions[i], audioPath); err != nil {
			p.logger.Warn(ctx, "Failed to synthesize narration for item %d (%s), dropping it: %v", i+1, records[i].Title, err)
			continue
		}
		itemAudios[i] = audioPath
	}
	p.setState(ctx, StateNarrated)

	// Step 5: keep only items that have both an image and narration, in the
	// original order, so every segment stays a matched pair
	var (
		newsImages  []string
		newsAudios  []string
		keptRecords []llm.Record
		keptIntros  []string
	)
	for i := range records {
		imagePath, hasImage := itemImages[i]
		audioPath, hasAudio := itemAudios[i]
		if !hasImage || !hasAudio {
			continue
		}
		newsImages = append(newsImages, imagePath)
		newsAudios = append(newsAudios, audioPath)
		keptRecords = append(keptRecords, records[i])
		keptIntros = append(keptIntros, introductions[i])
	}
	if dropped := len(records) - len(keptRecords); dropped > 0 {
		p.logger.Warn(ctx, "Proceeding with %d/%d items (%d dropped)", len(keptRecords), len(records), dropped)
	}

	// Step 6: assemble the final video
	if _, err := p.video.CreateFinalVideo(ctx, overviewImage, overviewAudio, newsImages, newsAudios, outputPath); err != nil {
		return "", fmt.Errorf("assemble video: %w", err)
	}
	p.setState(ctx, StateAssembled)

	// Step 7: export the narration script alongside the video
	if p.script != nil {
		scriptPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".docx"
		if err := p.script.Write(ctx, script.Document{
			Date:          p.now().Format("2006-01-02"),
			Summary:       summary,
			Records:       keptRecords,
			Introductions: keptIntros,
		}, scriptPath); err != nil {
			p.logger.Warn(ctx, "Failed to write narration script: %v", err)
		}
	}

	p.setState(ctx, StateFinished)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Video generated: %s (%d items, took %s)", outputPath, len(keptRecords), time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return outputPath, nil
}

// normalize runs each raw item through the language model. Items the model
// cannot turn into a valid record are dropped with a warning.
func (p *implPipeline) normalize(ctx context.Context, items []news.Item) []llm.Record {
	records := make([]llm.Record, 0, len(items))
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			p.logger.Warn(ctx, "Failed to encode item %d (%s), dropping it: %v", i+1, item.Title, err)
			continue
		}
		record, err := p.llm.FormatItem(ctx, string(raw))
		if err != nil {
			p.logger.Warn(ctx, "Failed to normalize item %d (%s), dropping it: %v", i+1, item.Title, err)
			continue
		}
		records = append(records, record)
	}
	return records
}

// introduce generates the per-item narration. When the model fails for an
// item, the record's own title and summary stand in so the item still makes
// it into the video.
func (p *implPipeline) introduce(ctx context.Context, records []llm.Record) []string {
	introductions := make([]string, len(records))
	for i, record := range records {
		text, err := p.llm.Introduction(ctx, record)
		if err != nil {
			p.logger.Warn(ctx, "Failed to generate introduction for item %d (%s), using title and summary: %v", i+1, record.Title, err)
			text = record.Title + "。" + record.Summary
		}
		introductions[i] = text
	}
	return introductions
}

func (p *implPipeline) setState(ctx context.Context, state State) {
	p.logger.Debug(ctx, "Pipeline state: %s", state)
}
