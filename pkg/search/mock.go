package search

import (
	"context"
	"fmt"
	"net/url"
)

func init() {
	RegisterProvider(ProviderMock, NewMockProvider)
}

// MockProvider is a simple offline implementation of the Provider interface
// for tests and demos
type MockProvider struct {
	config Config
}

// NewMockProvider creates a new mock provider
func NewMockProvider(config Config) (Provider, error) {
	return &MockProvider{config: config}, nil
}

// Name returns the name of the provider
func (p *MockProvider) Name() string {
	return "Mock Search"
}

// Type returns the type of the provider
func (p *MockProvider) Type() ProviderType {
	return ProviderMock
}

// Search returns canned results derived from the query
func (p *MockProvider) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewProviderError(ErrCodeNetwork, "search cancelled", err)
	}
	if query == "" {
		return nil, NewProviderError(ErrCodeInvalidRequest, "empty search query", nil)
	}
	if maxResults <= 0 {
		maxResults = 3
	}

	results := []Result{
		{
			Title:   fmt.Sprintf("%s - Overview", query),
			URL:     "https://en.wikipedia.org/wiki/" + url.PathEscape(query),
			Snippet: fmt.Sprintf("An encyclopedia-style overview of %s.", query),
		},
		{
			Title:   fmt.Sprintf("Latest news about %s", query),
			URL:     "https://news.example.com/search?q=" + url.QueryEscape(query),
			Snippet: fmt.Sprintf("Recent stories and developments regarding %s.", query),
		},
		{
			Title:   fmt.Sprintf("%s - discussion", query),
			URL:     "https://forum.example.com/t/" + url.PathEscape(query),
			Snippet: fmt.Sprintf("Community discussion threads mentioning %s.", query),
		},
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// Close closes any resources held by the provider
func (p *MockProvider) Close() error {
	return nil
}
