package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/NebulaMao/AutoNewsVideo/internal/llm"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
)

func TestWriteProducesDocument(t *testing.T) {
	w := New(logger.New("error"))

	out := filepath.Join(t.TempDir(), "script.docx")
	doc := Document{
		Date:    "2025-01-15",
		Summary: "今日共有两条科技新闻。",
		Records: []llm.Record{
			{Title: "新型电池发布", Summary: "能量密度提升百分之三十。", Category: "科技", Keywords: []string{"电池", "能源"}},
			{Title: "开源框架更新", Summary: "性能与易用性改进。"},
		},
		Introductions: []string{"第一条：新型电池正式发布。", ""},
	}

	if err := w.Write(context.Background(), doc, out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestWriteEmptyRecords(t *testing.T) {
	w := New(logger.New("error"))

	out := filepath.Join(t.TempDir(), "script.docx")
	doc := Document{Date: "2025-01-15", Summary: "今日无新闻。"}

	if err := w.Write(context.Background(), doc, out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestRecordMeta(t *testing.T) {
	tests := []struct {
		name   string
		record llm.Record
		want   string
	}{
		{
			name:   "category and keywords",
			record: llm.Record{Category: "科技", Keywords: []string{"电池", "能源"}},
			want:   "分类：科技　关键词：电池、能源",
		},
		{
			name:   "category only",
			record: llm.Record{Category: "财经"},
			want:   "分类：财经",
		},
		{
			name:   "empty",
			record: llm.Record{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recordMeta(tt.record); got != tt.want {
				t.Errorf("recordMeta() = %q, want %q", got, tt.want)
			}
		})
	}
}
