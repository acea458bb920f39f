package web

import (
	"toolbelt-go/pkg/search"
	"toolbelt-go/pkg/tools/core"
)

// Options configures the web tools at registration time
type Options struct {
	// WeatherBaseURL overrides the weather service endpoint
	WeatherBaseURL string

	// WeatherFormat selects the wttr.in report format
	WeatherFormat string

	// Provider executes web searches
	Provider search.Provider
}

// Register registers web tools with the registry
func Register(registry core.ToolRegistrar, opts Options) error {
	// Register weather tool
	if err := registry.RegisterTool("web", NewWeatherTool(opts.WeatherBaseURL, opts.WeatherFormat)); err != nil {
		return err
	}

	// Register search tool
	if err := registry.RegisterTool("web", NewSearchTool(opts.Provider)); err != nil {
		return err
	}

	// Register page reader tool
	if err := registry.RegisterTool("web", NewPageTool()); err != nil {
		return err
	}

	return nil
}
