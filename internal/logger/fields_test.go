package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  role  ", Value: "  program-manager  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "role" || fields[0].String != "program-manager" {
		t.Fatalf("unexpected role field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if ctx := entries[0].ContextMap(); ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	enriched.Info("another log")
}

func TestCommonFields(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		language string
		want     map[string]string
	}{
		{
			name:     "both",
			role:     " care-coordinator ",
			language: "es",
			want:     map[string]string{FieldRole: "care-coordinator", FieldLanguage: "es"},
		},
		{
			name: "language missing",
			role: "program-manager",
			want: map[string]string{FieldRole: "program-manager"},
		},
		{
			name: "empty",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := CommonFields(tt.role, tt.language)
			if len(fields) != len(tt.want) {
				t.Fatalf("expected %d fields, got %d", len(tt.want), len(fields))
			}
			for _, f := range fields {
				if tt.want[f.Key] != f.String {
					t.Fatalf("unexpected field %s=%q", f.Key, f.String)
				}
			}
		})
	}
}

func TestWithAIFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithAIFields(zap.New(core), "gemini", "model-x").Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldProvider] != "gemini" || ctx[FieldModel] != "model-x" {
		t.Fatalf("unexpected fields: %v", ctx)
	}

	// Nil loggers fall back to a no-op logger.
	WithAIFields(nil, "gemini", "").Info("another log")
}
