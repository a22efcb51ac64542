package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jaytaylor/html2text"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"

// apiResponse matches the Whyta general news envelope
type apiResponse struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Result struct {
		NewsList []Item `json:"newslist"`
	} `json:"result"`
}

// Fetch retrieves the current news list and, when enabled, downloads each
// article body and converts it to plain text for the formatting step.
func (f *implFetcher) Fetch(ctx context.Context) ([]Item, error) {
	url := fmt.Sprintf("%s/api/tx/generalnews?key=%s", f.cfg.BaseURL, f.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news list: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read news response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news api returned status %d", resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("parse news response: %w", err)
	}
	if decoded.Code != 200 {
		return nil, fmt.Errorf("news api error %d: %s", decoded.Code, decoded.Msg)
	}

	items := decoded.Result.NewsList
	f.logger.Info(ctx, "Fetched %d news items", len(items))

	if f.cfg.FetchContent {
		for i := range items {
			if items[i].URL == "" {
				continue
			}
			content, err := f.fetchArticleText(ctx, items[i].URL)
			if err != nil {
				// Missing article text only degrades formatting quality
				f.logger.Warn(ctx, "Failed to fetch article content %s: %v", items[i].URL, err)
				continue
			}
			items[i].RawContent = content
		}
	}

	return items, nil
}

// fetchArticleText downloads an article page and strips it down to plain text
func (f *implFetcher) fetchArticleText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build article request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("article returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read article body: %w", err)
	}

	text, err := html2text.FromString(string(body), html2text.Options{TextOnly: true, OmitLinks: true})
	if err != nil {
		return "", fmt.Errorf("convert article html: %w", err)
	}

	return text, nil
}
