package web

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"toolbelt-go/pkg/search"
	"toolbelt-go/pkg/tools/core"
)

type failingProvider struct{}

func (failingProvider) Name() string              { return "failing" }
func (failingProvider) Type() search.ProviderType { return search.ProviderType("failing") }
func (failingProvider) Close() error              { return nil }

func (failingProvider) Search(context.Context, string, int) ([]search.Result, error) {
	return nil, search.NewProviderError(search.ErrCodeNetwork, "connection reset", nil)
}

func newMockSearchTool(t *testing.T) *SearchTool {
	t.Helper()
	provider, err := search.NewProvider(search.Config{Type: search.ProviderMock})
	if err != nil {
		t.Fatalf("Failed to create mock provider: %v", err)
	}
	return NewSearchTool(provider)
}

func TestSearchToolFormatsResults(t *testing.T) {
	tool := newMockSearchTool(t)

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"golang"}`))
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	text, ok := result.(string)
	if !ok {
		t.Fatalf("Expected string result, got %T", result)
	}

	if !strings.HasPrefix(text, "Search results for 'golang':") {
		t.Errorf("Expected result header, got %q", text)
	}
	if !strings.Contains(text, "1. golang - Overview") {
		t.Errorf("Expected first numbered hit, got %q", text)
	}
	if !strings.Contains(text, "https://en.wikipedia.org/wiki/golang") {
		t.Errorf("Expected result URL, got %q", text)
	}
}

func TestSearchToolMaxResults(t *testing.T) {
	tool := newMockSearchTool(t)

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"golang","max_results":1}`))
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	text := result.(string)
	if strings.Contains(text, "\n2. ") {
		t.Errorf("Expected a single result, got %q", text)
	}
}

func TestSearchToolEmptyQuery(t *testing.T) {
	tool := newMockSearchTool(t)

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"   "}`))
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for blank query, got %v", err)
	}
}

func TestSearchToolNilProvider(t *testing.T) {
	tool := NewSearchTool(nil)

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"golang"}`))
	if !errors.Is(err, core.ErrRemoteCall) {
		t.Errorf("Expected ErrRemoteCall with no provider, got %v", err)
	}
}

func TestSearchToolProviderError(t *testing.T) {
	tool := NewSearchTool(failingProvider{})

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"golang"}`))
	if err == nil {
		t.Fatal("Expected error from failing provider")
	}
	if !strings.Contains(err.Error(), `searching the web for "golang"`) {
		t.Errorf("Expected query in error, got %v", err)
	}

	var perr *search.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ProviderError in chain, got %v", err)
	}
	if perr.Code != search.ErrCodeNetwork {
		t.Errorf("Expected network error code, got %s", perr.Code)
	}
}
