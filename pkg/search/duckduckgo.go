package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

func init() {
	RegisterProvider(ProviderDuckDuckGo, NewDuckDuckGoProvider)
}

const (
	duckDuckGoBaseURL = "https://api.duckduckgo.com"
	defaultTimeout    = 30 * time.Second
	userAgent         = "toolbelt/1.0"
)

// DuckDuckGoProvider queries the DuckDuckGo Instant Answer API. The API
// needs no key; it answers with an abstract plus related topics, which map
// onto search results here.
type DuckDuckGoProvider struct {
	baseURL    string
	maxResults int
	client     *http.Client
}

// NewDuckDuckGoProvider creates a DuckDuckGo-backed search provider
func NewDuckDuckGoProvider(config Config) (Provider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = duckDuckGoBaseURL
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxResults := config.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	return &DuckDuckGoProvider{
		baseURL:    baseURL,
		maxResults: maxResults,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the name of the provider
func (p *DuckDuckGoProvider) Name() string {
	return "DuckDuckGo Instant Answers"
}

// Type returns the type of the provider
func (p *DuckDuckGoProvider) Type() ProviderType {
	return ProviderDuckDuckGo
}

// instantAnswer is the subset of the Instant Answer response consumed here
type instantAnswer struct {
	Heading       string  `json:"Heading"`
	AbstractText  string  `json:"AbstractText"`
	AbstractURL   string  `json:"AbstractURL"`
	RelatedTopics []topic `json:"RelatedTopics"`
}

// topic is either a direct hit or a named group of nested topics
type topic struct {
	Text     string  `json:"Text"`
	FirstURL string  `json:"FirstURL"`
	Topics   []topic `json:"Topics"`
}

// Search runs a query against the Instant Answer API
func (p *DuckDuckGoProvider) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if query == "" {
		return nil, NewProviderError(ErrCodeInvalidRequest, "empty search query", nil)
	}
	if maxResults <= 0 {
		maxResults = p.maxResults
	}

	reqURL := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1",
		p.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, NewProviderError(ErrCodeInvalidRequest, "building search request", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, NewProviderError(ErrCodeNetwork, "search request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewProviderError(ErrCodeRateLimited, "search backend rate limited the request", nil)
	case resp.StatusCode >= 500:
		return nil, NewProviderError(ErrCodeServiceUnavailable,
			fmt.Sprintf("search backend returned status %d", resp.StatusCode), nil)
	case resp.StatusCode != http.StatusOK:
		return nil, NewProviderError(ErrCodeUnknown,
			fmt.Sprintf("search backend returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewProviderError(ErrCodeNetwork, "reading search response", err)
	}

	var answer instantAnswer
	if err := json.Unmarshal(body, &answer); err != nil {
		return nil, NewProviderError(ErrCodeUnknown, "parsing search response", err)
	}

	return flattenAnswer(answer, maxResults), nil
}

// flattenAnswer converts an instant answer into a flat result list: the
// abstract first, then related topics with nested groups expanded, capped
// at maxResults
func flattenAnswer(answer instantAnswer, maxResults int) []Result {
	results := make([]Result, 0, maxResults)

	if answer.AbstractText != "" {
		results = append(results, Result{
			Title:   answer.Heading,
			URL:     answer.AbstractURL,
			Snippet: answer.AbstractText,
		})
	}

	var addTopics func(topics []topic)
	addTopics = func(topics []topic) {
		for _, t := range topics {
			if len(results) >= maxResults {
				return
			}
			if len(t.Topics) > 0 {
				addTopics(t.Topics)
				continue
			}
			if t.Text == "" {
				continue
			}
			results = append(results, Result{
				Title:   t.Text,
				URL:     t.FirstURL,
				Snippet: t.Text,
			})
		}
	}
	addTopics(answer.RelatedTopics)

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// Close closes any resources held by the provider
func (p *DuckDuckGoProvider) Close() error {
	return nil
}
