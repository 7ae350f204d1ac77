package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/hh-assessor/internal/ai"
	"github.com/spigell/hh-assessor/internal/ai/gemini"
	"github.com/spigell/hh-assessor/internal/assessment"
	"github.com/spigell/hh-assessor/internal/logger"
	"github.com/spigell/hh-assessor/internal/secrets"
)

const narrativeTimeout = 90 * time.Second

// newNarrator returns nil when the narrative is disabled.
func newNarrator(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Narrator, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithAIFields(log, "gemini", cfg.Gemini.Model).With(
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewNarrator(generator, cfg.Gemini.MaxLogLength, logger.WithAIFields(log, "gemini", generator.Model())), nil
}

// narrate never fails the assessment: errors are logged and the result is
// shown without a narrative.
func narrate(ctx context.Context, narrator ai.Narrator, result *assessment.Result, log *zap.Logger) *ai.Narrative {
	if narrator == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()

	narrative, err := narrator.Narrate(ctx, result.Brief())
	if err != nil {
		log.Warn("skipping ai narrative", zap.String("result_id", result.ID), zap.Error(err))
		return nil
	}

	return narrative
}
