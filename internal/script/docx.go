package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/NebulaMao/AutoNewsVideo/internal/llm"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// Write renders the narration script into a styled docx file so the narration
// can be reviewed or re-recorded without replaying the video.
func (w *implWriter) Write(ctx context.Context, document Document, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), fmt.Sprintf("新闻日报 %s", document.Date), true, 16)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "今日概览", true, 15)
	addPlainRun(doc.AddParagraph(""), document.Summary)
	doc.AddParagraph("")

	for i, record := range document.Records {
		addStyledRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, record.Title), true, 14)

		if i < len(document.Introductions) && document.Introductions[i] != "" {
			addPlainRun(doc.AddParagraph(""), document.Introductions[i])
		} else {
			addPlainRun(doc.AddParagraph(""), record.Summary)
		}

		if meta := recordMeta(record); meta != "" {
			addPlainRun(doc.AddParagraph(""), meta)
		}
		doc.AddParagraph("")
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}

	w.logger.Info(ctx, "Narration script written: %s", outputPath)
	return nil
}

// recordMeta renders the category/keywords footer line for one item
func recordMeta(record llm.Record) string {
	var parts []string
	if record.Category != "" {
		parts = append(parts, "分类："+record.Category)
	}
	if len(record.Keywords) > 0 {
		parts = append(parts, "关键词："+strings.Join(record.Keywords, "、"))
	}
	return strings.Join(parts, "　")
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addPlainRun(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
