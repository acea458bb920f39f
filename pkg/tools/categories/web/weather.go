package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"toolbelt-go/pkg/tools/core"
)

const (
	defaultWeatherBaseURL = "https://wttr.in"
	defaultWeatherFormat  = "3"
	weatherTimeout        = 15 * time.Second
	userAgent             = "toolbelt/1.0"

	// One-line wttr.in reports are tiny, anything bigger is not a report
	weatherBodyLimit = 64 * 1024
)

// WeatherInput represents parameters for the get_weather tool
type WeatherInput struct {
	City string `json:"city"`
}

// WeatherTool reports current weather conditions for a city
type WeatherTool struct {
	core.BaseToolImpl
	baseURL string
	format  string
	client  *http.Client
}

// NewWeatherTool creates a new weather tool. An empty baseURL or format
// falls back to the wttr.in one-line report.
func NewWeatherTool(baseURL, format string) *WeatherTool {
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}
	if format == "" {
		format = defaultWeatherFormat
	}
	tool := &WeatherTool{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		format:  format,
		client:  &http.Client{Timeout: weatherTimeout},
	}
	tool.BaseToolImpl = *core.NewBaseTool(
		"get_weather",
		"Get the current weather for a given city",
		"web",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"city": map[string]interface{}{
					"type":        "string",
					"description": "Name of the city to get the weather for",
				},
			},
			"required": []string{"city"},
		},
	)
	return tool
}

// Execute fetches a weather report for the requested city
func (t *WeatherTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var params WeatherInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input for get_weather tool: %w", err)
	}

	city := strings.TrimSpace(params.City)
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", core.ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("%s/%s?format=%s", t.baseURL, url.PathEscape(city), url.QueryEscape(t.format))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building weather request for %s: %v", core.ErrRemoteCall, city, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: retrieving weather for %s: %v", core.ErrRemoteCall, city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: could not retrieve weather for %s (status %d)", core.ErrRemoteCall, city, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, weatherBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: reading weather response for %s: %v", core.ErrRemoteCall, city, err)
	}

	return strings.TrimSpace(string(body)), nil
}
