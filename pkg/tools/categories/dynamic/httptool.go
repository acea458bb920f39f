package dynamic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"toolbelt-go/pkg/registrar"
	"toolbelt-go/pkg/tools/core"
)

const (
	requestTimeout = 10 * time.Second
	bodyLimit      = 1024 * 1024
	userAgent      = "toolbelt/1.0"
)

// QueryInput represents parameters for a registered dynamic tool
type QueryInput struct {
	Query string `json:"query"`
}

// HTTPTool executes a stored tool definition as an HTTP GET against its
// API endpoint, with RapidAPI-style header authentication
type HTTPTool struct {
	core.BaseToolImpl
	def    registrar.Definition
	client *http.Client
}

// NewHTTPTool creates an executable tool from a stored definition
func NewHTTPTool(def registrar.Definition) *HTTPTool {
	tool := &HTTPTool{
		def:    def,
		client: &http.Client{Timeout: requestTimeout},
	}
	tool.BaseToolImpl = *core.NewBaseTool(
		def.Name,
		def.Purpose,
		"dynamic",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Query string forwarded to the API",
				},
			},
			"required": []string{"query"},
		},
	)
	return tool
}

// Definition returns the stored definition backing this tool
func (t *HTTPTool) Definition() registrar.Definition {
	return t.def
}

// Execute calls the remote API and returns the JSON response body
func (t *HTTPTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var params QueryInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input for %s tool: %w", t.def.Name, err)
	}

	apiKey := os.Getenv(t.def.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key not found in environment variable %q", core.ErrCredentialMissing, t.def.APIKeyEnv)
	}

	endpoint, err := url.Parse(t.def.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing endpoint for %s: %v", core.ErrRemoteCall, t.def.Name, err)
	}
	if params.Query != "" {
		q := endpoint.Query()
		q.Set("q", params.Query)
		endpoint.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", core.ErrRemoteCall, t.def.Name, err)
	}
	req.Header.Set("X-RapidAPI-Key", apiKey)
	req.Header.Set("X-RapidAPI-Host", t.def.APIHost)
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling %s: %v", core.ErrRemoteCall, t.def.Name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, bodyLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response from %s: %v", core.ErrRemoteCall, t.def.Name, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", core.ErrRemoteCall, t.def.Name, resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned a non-JSON response", core.ErrRemoteCall, t.def.Name)
	}

	return strings.TrimSpace(string(body)), nil
}
