// internal/services/llm_service_test.go
package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCleanJSONStringStripsMarkdownFences(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"name\": \"Ravi\"}\n```\nHope this helps!"
	got := cleanJSONString(raw)
	if got != `{"name": "Ravi"}` {
		t.Errorf("got %q", got)
	}
}

func TestCleanJSONStringHandlesFullWidthPunctuation(t *testing.T) {
	raw := `{"title"："复仇"，"count"：2}`
	got := cleanJSONString(raw)
	if !strings.Contains(got, `"title":`) || !strings.Contains(got, `"count":`) {
		t.Errorf("full-width punctuation not normalized: %q", got)
	}
}

func TestCleanJSONStringTruncatesTrailingNoise(t *testing.T) {
	raw := `{"a": 1} and some trailing explanation`
	got := cleanJSONString(raw)
	if got != `{"a": 1}` {
		t.Errorf("got %q", got)
	}
}

func TestCleanJSONStringArray(t *testing.T) {
	raw := "```json\n[{\"n\": 1}, {\"n\": 2}]\n```"
	got := cleanJSONString(raw)
	if got != `[{"n": 1}, {"n": 2}]` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONArrayRejectsNonArray(t *testing.T) {
	if _, err := ExtractJSONArray("no json here"); !errors.Is(err, ErrResponseParse) {
		t.Errorf("want ErrResponseParse, got %v", err)
	}
	if got, err := ExtractJSONArray("noise [1, 2, 3] tail"); err != nil || !strings.HasPrefix(got, "[") {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestExtractJSONObjectRejectsNonObject(t *testing.T) {
	if _, err := ExtractJSONObject("plain text"); !errors.Is(err, ErrResponseParse) {
		t.Errorf("want ErrResponseParse, got %v", err)
	}
}

func TestResolveModelPrefersRequestedModel(t *testing.T) {
	s := NewEmptyLLMService()
	if got := s.resolveModel("  gpt-4o-mini  "); got != "gpt-4o-mini" {
		t.Errorf("got %q", got)
	}
}

func TestResolveModelFallsBackToDefault(t *testing.T) {
	setTestEnvDirs(t)
	s := NewEmptyLLMService()
	if got := s.resolveModel(""); got == "" {
		t.Error("resolveModel must always return a model")
	}
}

func TestChatCompletionFailsWhenNotReady(t *testing.T) {
	s := NewEmptyLLMService()

	_, err := s.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Messages: []ChatCompletionMessage{{Role: RoleUser, Content: "hello"}},
	})
	if !errors.Is(err, ErrLLMNotReady) {
		t.Errorf("want ErrLLMNotReady, got %v", err)
	}
}

func TestStreamingCompletionFailsWhenNotReady(t *testing.T) {
	s := NewEmptyLLMService()

	_, err := s.CreateStreamingChatCompletion(context.Background(), ChatCompletionRequest{
		Messages: []ChatCompletionMessage{{Role: RoleUser, Content: "hello"}},
	})
	if !errors.Is(err, ErrLLMNotReady) {
		t.Errorf("want ErrLLMNotReady, got %v", err)
	}
}

func TestStructuredCompletionFailsWhenNotReady(t *testing.T) {
	s := NewEmptyLLMService()

	var out struct{}
	err := s.CreateStructuredCompletion(context.Background(), "prompt", "system", &out)
	if !errors.Is(err, ErrLLMNotReady) {
		t.Errorf("want ErrLLMNotReady, got %v", err)
	}
}
