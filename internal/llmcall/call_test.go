package llmcall

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/schroedermarius/salaryscope/internal/providers"
)

func TestFromChatResult(t *testing.T) {
	result := &providers.ChatResult{
		Content:          `{"Items":[]}`,
		PromptTokens:     120,
		CompletionTokens: 30,
		TotalTokens:      150,
		ExecutionTime:    842 * time.Millisecond,
		Provider:         "openai",
		ModelUsed:        "gpt-4o-mini",
		Success:          true,
	}

	call := FromChatResult(result, "analyze.salary_by_department")
	if call == nil {
		t.Fatal("FromChatResult() = nil")
	}
	if call.ID == "" {
		t.Fatal("expected generated call ID")
	}
	if call.LatencyMs != 842 {
		t.Fatalf("unexpected latency: %d", call.LatencyMs)
	}
	if call.InputTokens != 120 || call.OutputTokens != 30 || call.TotalTokens != 150 {
		t.Fatalf("unexpected token counts: %+v", call)
	}
	if call.PromptKey != "analyze.salary_by_department" {
		t.Fatalf("unexpected prompt key: %q", call.PromptKey)
	}
	if !call.Success || call.Error != "" {
		t.Fatalf("unexpected status: %+v", call)
	}
}

func TestFromChatResultFailure(t *testing.T) {
	result := &providers.ChatResult{
		Success:      false,
		ErrorMessage: "no choices in response",
	}

	call := FromChatResult(result, "analyze.salary_by_department")
	if call.Success {
		t.Fatal("expected failed call record")
	}
	if call.Error != "no choices in response" {
		t.Fatalf("unexpected error: %q", call.Error)
	}
}

func TestFromChatResultNil(t *testing.T) {
	if call := FromChatResult(nil, "key"); call != nil {
		t.Fatalf("FromChatResult(nil) = %+v, want nil", call)
	}
}

func TestAppendWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "calls.jsonl")

	for i := 0; i < 2; i++ {
		call := FromChatResult(&providers.ChatResult{Success: true}, "key")
		if err := call.Append(path); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var call Call
		if err := json.Unmarshal(scanner.Bytes(), &call); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines+1, err)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("expected 2 log lines, got %d", lines)
	}
}

func TestAppendEmptyPathIsNoop(t *testing.T) {
	call := FromChatResult(&providers.ChatResult{Success: true}, "key")
	if err := call.Append(""); err != nil {
		t.Fatalf("Append(\"\") error = %v", err)
	}
}
