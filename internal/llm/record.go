package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// decodeRecord parses a model response into a Record. Responses are expected
// to be a single JSON object, optionally wrapped in markdown code fences.
func decodeRecord(content string) (Record, error) {
	cleaned := stripCodeFences(content)

	var record Record
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		return Record{}, fmt.Errorf("parse record json: %w", err)
	}
	if record.Title == "" {
		return Record{}, fmt.Errorf("record json missing title")
	}
	if record.CreatedAt == "" {
		record.CreatedAt = time.Now().Format("2006-01-02 15:04:05")
	}
	return record, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block if present
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// recordsJSON renders records for prompt interpolation
func recordsJSON(records []Record) string {
	encoded, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// recordJSON renders a single record for prompt interpolation
func recordJSON(record Record) string {
	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(encoded)
}
