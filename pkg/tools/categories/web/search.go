package web

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"toolbelt-go/pkg/search"
	"toolbelt-go/pkg/tools/core"
)

// SearchInput represents parameters for the search_web tool
type SearchInput struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

// SearchTool searches the web through the configured search provider
type SearchTool struct {
	core.BaseToolImpl
	provider search.Provider
}

// NewSearchTool creates a new web search tool backed by the given provider
func NewSearchTool(provider search.Provider) *SearchTool {
	tool := &SearchTool{provider: provider}
	tool.BaseToolImpl = *core.NewBaseTool(
		"search_web",
		"Search the web for current information",
		"web",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "The search query",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return",
				},
			},
			"required": []string{"query"},
		},
	)
	return tool
}

// Execute runs the query and formats the hits as numbered text
func (t *SearchTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var params SearchInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input for search_web tool: %w", err)
	}

	query := strings.TrimSpace(params.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", core.ErrInvalidInput)
	}
	if t.provider == nil {
		return nil, fmt.Errorf("%w: no search provider configured", core.ErrRemoteCall)
	}

	results, err := t.provider.Search(ctx, query, params.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("searching the web for %q: %w", query, err)
	}
	if len(results) == 0 {
		return fmt.Sprintf("No results found for '%s'.", query), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Search results for '%s':\n", query)
	for i, r := range results {
		fmt.Fprintf(&sb, "\n%d. %s\n   %s\n", i+1, r.Title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&sb, "   %s\n", r.Snippet)
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
