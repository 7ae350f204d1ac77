package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldRole is the structured log field key for the assessed role.
	FieldRole = "role"
	// FieldLanguage is the structured log field key for the presentation language.
	FieldLanguage = "language"
	// FieldProvider is the structured log field key for the AI provider name.
	FieldProvider = "ai_provider"
	// FieldModel is the structured log field key for the AI model identifier.
	FieldModel = "ai_model"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger, defaulting to a
// no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields describes an assessment session. Empty values are dropped.
func CommonFields(role, language string) []zap.Field {
	return StringFields(
		StringField{Key: FieldRole, Value: role},
		StringField{Key: FieldLanguage, Value: language},
	)
}

// WithCommonFields attaches the session fields to the provided logger.
func WithCommonFields(logger *zap.Logger, role, language string) *zap.Logger {
	return WithFields(logger, CommonFields(role, language)...)
}

// AIFields describes the narrative provider and model.
func AIFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

func WithAIFields(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, AIFields(provider, model)...)
}
