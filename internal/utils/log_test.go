package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	payload := "{\n  \"role\": \"Gerente de programa\",\n  \"top_growth_area\": \"execution\"\n}"

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{name: "non-positive limit drops everything", input: payload, limit: 0, expect: ""},
		{name: "short payload is kept", input: "{}", limit: 200, expect: "{}"},
		{name: "exact length is kept", input: "hello", limit: 5, expect: "hello"},
		{name: "preview of a brief", input: payload, limit: 12, expect: "{\n  \"role\": ..."},
		{name: "counts runes, not bytes", input: "Señal fuerte de misión", limit: 5, expect: "Señal..."},
		{name: "surrounding whitespace is ignored", input: "\n  ```json {} ```  \n", limit: 7, expect: "```json..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TruncateForLog(tt.input, tt.limit)
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("preview is not valid utf-8: %q", got)
			}
			if tt.limit > 0 && utf8.RuneCountInString(strings.TrimSuffix(got, "...")) > tt.limit {
				t.Fatalf("preview longer than %d runes: %q", tt.limit, got)
			}
		})
	}
}
