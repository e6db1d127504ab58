package providers

import (
	"context"
	"testing"
)

func TestMockClientSuccess(t *testing.T) {
	client := NewMockClient()
	client.ResponseText = `{"Items":[]}`

	result, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
		Model:    "test-model",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if !result.Success {
		t.Fatal("expected success result")
	}
	if result.Content != `{"Items":[]}` {
		t.Fatalf("unexpected content: %q", result.Content)
	}
	if result.ModelUsed != "test-model" {
		t.Fatalf("unexpected model: %q", result.ModelUsed)
	}
	if client.RequestCount() != 1 {
		t.Fatalf("expected 1 request, got %d", client.RequestCount())
	}
}

func TestMockClientFailure(t *testing.T) {
	client := NewMockClient()
	client.ShouldFail = true

	result, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if result.Success {
		t.Fatal("expected failed result")
	}
	if result.ErrorType != "mock_failure" {
		t.Fatalf("unexpected error type: %q", result.ErrorType)
	}
}
