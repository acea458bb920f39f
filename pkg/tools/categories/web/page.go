package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"toolbelt-go/pkg/tools/core"
)

const (
	pageTimeout = 15 * time.Second

	// Cap the fetched body and the converted output so one page cannot
	// flood the conversation
	pageBodyLimit   = 1024 * 1024
	pageOutputLimit = 20000
)

// PageInput represents parameters for the read_webpage tool
type PageInput struct {
	URL string `json:"url"`
}

// PageTool fetches a web page and converts its content to markdown
type PageTool struct {
	core.BaseToolImpl
	client *http.Client
}

// NewPageTool creates a new page reader tool
func NewPageTool() *PageTool {
	tool := &PageTool{
		client: &http.Client{Timeout: pageTimeout},
	}
	tool.BaseToolImpl = *core.NewBaseTool(
		"read_webpage",
		"Fetch a web page and return its content as markdown",
		"web",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "Absolute http or https URL to fetch",
				},
			},
			"required": []string{"url"},
		},
	)
	return tool
}

// Execute fetches the page and returns its content as markdown
func (t *PageTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var params PageInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input for read_webpage tool: %w", err)
	}

	u, err := url.Parse(params.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: url must be an absolute http or https URL", core.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", core.ErrRemoteCall, params.URL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", core.ErrRemoteCall, params.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s returned status %d", core.ErrRemoteCall, params.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, pageBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", core.ErrRemoteCall, params.URL, err)
	}

	converter := md.NewConverter(u.Host, true, nil)
	text, err := converter.ConvertString(string(body))
	if err != nil {
		return nil, fmt.Errorf("converting %s to markdown: %w", params.URL, err)
	}

	if len(text) > pageOutputLimit {
		text = text[:pageOutputLimit] + "\n...[Truncated]..."
	}

	return fmt.Sprintf("Content of %s:\n\n%s", params.URL, text), nil
}
