package structured

import (
	"encoding/json"
	"testing"
)

func TestCleanModelOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json unchanged",
			input: `{"Items":[]}`,
			want:  `{"Items":[]}`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  {\"Items\":[]}\n",
			want:  `{"Items":[]}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  "",
		},
		{
			name:  "fence with language tag",
			input: "```json\n{\"Items\":[]}\n```",
			want:  `{"Items":[]}`,
		},
		{
			name:  "fence without language tag or trailing newline",
			input: "```\n{\"Items\":[]}```",
			want:  `{"Items":[]}`,
		},
		{
			name:  "fence with no newline only loses backticks",
			input: "```{\"Items\":[]}```",
			want:  `{"Items":[]}`,
		},
		{
			name:  "multiple fence markers all stripped",
			input: "```json\n{\"Items\":[]}\n```\n```\n",
			want:  `{"Items":[]}`,
		},
		{
			name:  "fence around garbage stays garbage",
			input: "```\nnot json\n```",
			want:  "not json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanModelOutput(tt.input)
			if got != tt.want {
				t.Fatalf("CleanModelOutput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanModelOutputIdempotent(t *testing.T) {
	inputs := []string{
		`{"Items":[]}`,
		"```json\n{\"Items\":[{\"Department\":\"Engineering\",\"AverageSalary\":95000.5}]}\n```",
	}
	for _, input := range inputs {
		once := CleanModelOutput(input)
		twice := CleanModelOutput(once)
		if once != twice {
			t.Fatalf("CleanModelOutput not idempotent: %q -> %q -> %q", input, once, twice)
		}
	}
}

func TestCleanModelOutputFencedPayloadParses(t *testing.T) {
	got := CleanModelOutput("```json\n{\"Items\":[]}\n```")

	var parsed map[string]any
	if err := json.Unmarshal([]byte(got), &parsed); err != nil {
		t.Fatalf("sanitized output does not parse: %v (%q)", err, got)
	}
	items, ok := parsed["Items"].([]any)
	if !ok || len(items) != 0 {
		t.Fatalf("expected empty Items array, got %#v", parsed)
	}
}
