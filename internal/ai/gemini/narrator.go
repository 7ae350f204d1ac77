package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/hh-assessor/internal/ai"
	"github.com/spigell/hh-assessor/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
}

type Narrator struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewNarrator(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Narrator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Narrator{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (n *Narrator) Narrate(ctx context.Context, brief *ai.Brief) (*ai.Narrative, error) {
	if brief == nil {
		return nil, errors.New("brief is required")
	}

	payload, err := json.MarshalIndent(brief, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal brief: %w", err)
	}

	system := buildPrompt(brief.Language)
	message := string(payload)

	n.logger.Debug("gemini narrative request",
		zap.String("top_strength", brief.TopStrength),
		zap.Int("prompt_length", utf8.RuneCountInString(system)+utf8.RuneCountInString(message)),
		zap.String("message_preview", utils.TruncateForLog(message, n.maxLogLen)),
	)

	raw, err := n.generator.GenerateContent(ctx, system, message)
	if err != nil {
		return nil, err
	}

	n.logger.Debug("gemini narrative response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, n.maxLogLen)),
	)

	narrative, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}
	narrative.Raw = raw

	return narrative, nil
}

func buildPrompt(language string) string {
	name, ok := languageNames[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		name = languageNames["en"]
	}

	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Summarize the assessment profile in {{LANGUAGE}}. Respond with JSON: {\"summary\": \"\", \"focus\": []}"
	}
	return strings.ReplaceAll(template, "{{LANGUAGE}}", name)
}

func parseResponse(raw string) (*ai.Narrative, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	summary := coerceString(data["summary"])
	if summary == "" {
		return nil, errors.New("gemini response has no summary")
	}

	return &ai.Narrative{
		Summary: summary,
		Focus:   coerceStrings(data["focus"]),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

// coerceStrings accepts a list or a single newline separated string.
func coerceStrings(v any) []string {
	var items []string
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			items = append(items, coerceString(item))
		}
	case string:
		items = strings.Split(val, "\n")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(item), "-*"))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
