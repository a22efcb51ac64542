package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// Overview renders the overview template and captures it as an image
func (r *implRenderer) Overview(ctx context.Context, data OverviewData, outputPath string) (string, error) {
	if data.Date == "" {
		data.Date = time.Now().Format("2006年01月02日")
	}

	html, err := r.renderTemplate("overview.html", data)
	if err != nil {
		return "", fmt.Errorf("render overview template: %w", err)
	}

	if err := r.capture(ctx, html, outputPath); err != nil {
		return "", fmt.Errorf("capture overview image: %w", err)
	}

	r.logger.Info(ctx, "Generated overview image: %s", outputPath)
	return outputPath, nil
}

// NewsItem renders one news item template and captures it as an image
func (r *implRenderer) NewsItem(ctx context.Context, data ItemData, outputPath string) (string, error) {
	html, err := r.renderTemplate("news_item.html", data)
	if err != nil {
		return "", fmt.Errorf("render news item template: %w", err)
	}

	if err := r.capture(ctx, html, outputPath); err != nil {
		return "", fmt.Errorf("capture news item image: %w", err)
	}

	r.logger.Info(ctx, "Generated news item image: %s", outputPath)
	return outputPath, nil
}

func (r *implRenderer) renderTemplate(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// capture loads the HTML in headless Chrome at the configured viewport and
// writes a full-frame JPEG screenshot to outputPath.
func (r *implRenderer) capture(ctx context.Context, html, outputPath string) error {
	tmpFile, err := os.CreateTemp("", "autovideo-page-*.html")
	if err != nil {
		return fmt.Errorf("create temp html: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(html); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write temp html: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp html: %w", err)
	}

	absPath, err := filepath.Abs(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("resolve temp html path: %w", err)
	}

	timeout := time.Duration(r.render.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	browserCtx, cancelBrowser := chromedp.NewContext(ctx)
	defer cancelBrowser()

	var buf []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(r.video.Width), int64(r.video.Height)),
		chromedp.Navigate("file://"+absPath),
		chromedp.FullScreenshot(&buf, 90),
	)
	if err != nil {
		return fmt.Errorf("chrome screenshot: %w", err)
	}

	if err := os.WriteFile(outputPath, buf, 0644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	return nil
}
