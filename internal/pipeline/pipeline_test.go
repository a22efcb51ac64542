package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/llm"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
	"github.com/NebulaMao/AutoNewsVideo/internal/news"
	"github.com/NebulaMao/AutoNewsVideo/internal/render"
	"github.com/NebulaMao/AutoNewsVideo/internal/script"
)

type fakeLLM struct {
	formatCalls  int
	failFormatOn map[int]bool // 1-based call index
	summaryErr   error
	failIntroFor map[string]bool // record title
}

func (f *fakeLLM) FormatItem(ctx context.Context, raw string) (llm.Record, error) {
	f.formatCalls++
	if f.failFormatOn[f.formatCalls] {
		return llm.Record{}, errors.New("model returned garbage")
	}
	var item news.Item
	title := fmt.Sprintf("item-%d", f.formatCalls)
	if err := json.Unmarshal([]byte(raw), &item); err == nil && item.Title != "" {
		title = item.Title
	}
	return llm.Record{Title: title, Summary: "summary of " + title}, nil
}

func (f *fakeLLM) Summary(ctx context.Context, records []llm.Record) (string, error) {
	if f.summaryErr != nil {
		return "", f.summaryErr
	}
	return fmt.Sprintf("overview of %d items", len(records)), nil
}

func (f *fakeLLM) Introduction(ctx context.Context, record llm.Record) (string, error) {
	if f.failIntroFor[record.Title] {
		return "", errors.New("model timed out")
	}
	return "introducing " + record.Title, nil
}

type fakeRenderer struct {
	overviewErr error
	failItemOn  map[int]bool // ItemNumber
	overview    render.OverviewData
	items       []render.ItemData
}

func (f *fakeRenderer) Overview(ctx context.Context, data render.OverviewData, outputPath string) (string, error) {
	if f.overviewErr != nil {
		return "", f.overviewErr
	}
	f.overview = data
	return outputPath, nil
}

func (f *fakeRenderer) NewsItem(ctx context.Context, data render.ItemData, outputPath string) (string, error) {
	if f.failItemOn[data.ItemNumber] {
		return "", errors.New("browser crashed")
	}
	f.items = append(f.items, data)
	return outputPath, nil
}

type fakeTTS struct {
	texts      []string
	failOnText string
}

func (f *fakeTTS) Synthesize(ctx context.Context, text, outputPath string) (string, error) {
	if f.failOnText != "" && strings.Contains(text, f.failOnText) {
		return "", errors.New("synthesis failed")
	}
	f.texts = append(f.texts, text)
	return outputPath, nil
}

type fakeVideo struct {
	newsImages []string
	newsAudios []string
	outputPath string
	err        error
}

func (f *fakeVideo) AudioDuration(ctx context.Context, path string) float64 { return 5.0 }
func (f *fakeVideo) VideoDuration(ctx context.Context, path string) float64 { return 10.0 }
func (f *fakeVideo) CreateSegment(ctx context.Context, imagePath, audioPath, outputPath string, duration float64) (string, error) {
	return outputPath, nil
}
func (f *fakeVideo) Concat(ctx context.Context, segmentPaths []string, outputPath string) (string, error) {
	return outputPath, nil
}
func (f *fakeVideo) CreateFromPairs(ctx context.Context, imagePaths, audioPaths []string, outputPath string) (string, error) {
	return outputPath, nil
}
func (f *fakeVideo) AddTransition(ctx context.Context, videoPath, outputPath, kind string) (string, error) {
	return outputPath, nil
}
func (f *fakeVideo) CreateFinalVideo(ctx context.Context, overviewImage, overviewAudio string, newsImages, newsAudios []string, outputPath string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.newsImages = newsImages
	f.newsAudios = newsAudios
	f.outputPath = outputPath
	return outputPath, nil
}

type fakeScript struct {
	doc    script.Document
	called bool
	err    error
}

func (f *fakeScript) Write(ctx context.Context, doc script.Document, outputPath string) error {
	f.called = true
	if f.err != nil {
		return f.err
	}
	f.doc = doc
	return nil
}

type fixture struct {
	llm      *fakeLLM
	renderer *fakeRenderer
	tts      *fakeTTS
	video    *fakeVideo
	script   *fakeScript
	pipeline *implPipeline
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		llm:      &fakeLLM{failFormatOn: map[int]bool{}, failIntroFor: map[string]bool{}},
		renderer: &fakeRenderer{failItemOn: map[int]bool{}},
		tts:      &fakeTTS{},
		video:    &fakeVideo{},
		script:   &fakeScript{},
	}

	cfg := &config.Config{}
	cfg.Paths.Output = t.TempDir()

	f.pipeline = &implPipeline{
		cfg:      cfg,
		llm:      f.llm,
		renderer: f.renderer,
		tts:      f.tts,
		video:    f.video,
		script:   f.script,
		logger:   logger.New("error"),
		now:      func() time.Time { return time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC) },
	}
	return f
}

func threeItems() []news.Item {
	return []news.Item{
		{Title: "first", Description: "d1"},
		{Title: "second", Description: "d2"},
		{Title: "third", Description: "d3"},
	}
}

func TestRunProducesVideo(t *testing.T) {
	f := newFixture(t)

	out, err := f.pipeline.Run(context.Background(), threeItems(), "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if filepath.Base(out) != "news_20250115_093000.mp4" {
		t.Errorf("derived output name = %s", filepath.Base(out))
	}
	if len(f.video.newsImages) != 3 || len(f.video.newsAudios) != 3 {
		t.Errorf("got %d images, %d audios, want 3 each", len(f.video.newsImages), len(f.video.newsAudios))
	}
	if f.renderer.overview.NewsCount != 3 {
		t.Errorf("overview NewsCount = %d, want 3", f.renderer.overview.NewsCount)
	}
	if f.renderer.overview.Date != "2025-01-15" {
		t.Errorf("overview Date = %s", f.renderer.overview.Date)
	}
	// overview narration plus one per item
	if len(f.tts.texts) != 4 {
		t.Errorf("got %d narrations, want 4", len(f.tts.texts))
	}
	if !f.script.called {
		t.Error("narration script should be written")
	}
	if len(f.script.doc.Records) != 3 {
		t.Errorf("script records = %d, want 3", len(f.script.doc.Records))
	}
}

func TestRunDropsUnparsableItems(t *testing.T) {
	f := newFixture(t)
	f.llm.failFormatOn[2] = true

	if _, err := f.pipeline.Run(context.Background(), threeItems(), ""); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(f.video.newsImages) != 2 {
		t.Errorf("got %d item segments, want 2 after dropping one item", len(f.video.newsImages))
	}
	if f.renderer.overview.NewsCount != 2 {
		t.Errorf("overview NewsCount = %d, want 2", f.renderer.overview.NewsCount)
	}
}

func TestRunAllItemsUnparsable(t *testing.T) {
	f := newFixture(t)
	f.llm.failFormatOn[1] = true
	f.llm.failFormatOn[2] = true
	f.llm.failFormatOn[3] = true

	_, err := f.pipeline.Run(context.Background(), threeItems(), "")
	if !errors.Is(err, ErrNoUsableItems) {
		t.Fatalf("Run() error = %v, want ErrNoUsableItems", err)
	}
}

func TestRunEmptyInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.pipeline.Run(context.Background(), nil, "")
	if !errors.Is(err, ErrNoUsableItems) {
		t.Fatalf("Run() error = %v, want ErrNoUsableItems", err)
	}
}

func TestRunSummaryFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.llm.summaryErr = errors.New("quota exhausted")

	_, err := f.pipeline.Run(context.Background(), threeItems(), "")
	if !errors.Is(err, ErrSummary) {
		t.Fatalf("Run() error = %v, want ErrSummary", err)
	}
	if f.video.outputPath != "" {
		t.Error("no video should be assembled after a summary failure")
	}
}

func TestRunIntroductionFallsBackToRecordText(t *testing.T) {
	f := newFixture(t)
	f.llm.failIntroFor["second"] = true

	if _, err := f.pipeline.Run(context.Background(), threeItems(), ""); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "second。summary of second"
	found := false
	for _, text := range f.tts.texts {
		if text == want {
			found = true
		}
	}
	if !found {
		t.Errorf("fallback narration %q not synthesized, got %v", want, f.tts.texts)
	}
	// the item itself is kept
	if len(f.video.newsImages) != 3 {
		t.Errorf("got %d item segments, want 3", len(f.video.newsImages))
	}
}

func TestRunSkipsItemsWithFailedAssets(t *testing.T) {
	f := newFixture(t)
	// second item loses its image, third loses its narration
	f.renderer.failItemOn[2] = true
	f.tts.failOnText = "introducing third"

	if _, err := f.pipeline.Run(context.Background(), threeItems(), ""); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(f.video.newsImages) != 1 || len(f.video.newsAudios) != 1 {
		t.Errorf("got %d images, %d audios, want 1 each", len(f.video.newsImages), len(f.video.newsAudios))
	}
	if len(f.script.doc.Records) != 1 || f.script.doc.Records[0].Title != "first" {
		t.Errorf("script should only contain the surviving item, got %+v", f.script.doc.Records)
	}
}

func TestRunOverviewRenderFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.renderer.overviewErr = errors.New("browser unavailable")

	if _, err := f.pipeline.Run(context.Background(), threeItems(), ""); err == nil {
		t.Fatal("Run() should fail when the overview image cannot be rendered")
	}
}

func TestRunOverviewNarrationFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.tts.failOnText = "overview of"

	if _, err := f.pipeline.Run(context.Background(), threeItems(), ""); err == nil {
		t.Fatal("Run() should fail when the overview narration cannot be synthesized")
	}
}

func TestRunScriptFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.script.err = errors.New("disk full")

	if _, err := f.pipeline.Run(context.Background(), threeItems(), ""); err != nil {
		t.Fatalf("Run() error = %v, script export must not block delivery", err)
	}
}

func TestRunRecordsHonorsExplicitOutputPath(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(t.TempDir(), "daily.mp4")

	got, err := f.pipeline.RunRecords(context.Background(), []llm.Record{{Title: "only", Summary: "s"}}, out)
	if err != nil {
		t.Fatalf("RunRecords() error = %v", err)
	}
	if got != out {
		t.Errorf("output = %s, want %s", got, out)
	}
	if f.video.outputPath != out {
		t.Errorf("video assembled at %s, want %s", f.video.outputPath, out)
	}
}
