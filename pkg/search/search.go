package search

import (
	"context"
	"time"
)

// Result is a single search hit
type Result struct {
	Title   string `json:"title"`   // Human-readable result title
	URL     string `json:"url"`     // Link to the result
	Snippet string `json:"snippet"` // Short text summary
}

// ProviderType represents the type of search backend
type ProviderType string

const (
	ProviderDuckDuckGo ProviderType = "duckduckgo"
	ProviderMock       ProviderType = "mock"
)

// Provider is the interface all search backends must implement
type Provider interface {
	// Name returns the name of the provider
	Name() string

	// Type returns the type of the provider
	Type() ProviderType

	// Search runs a query and returns up to maxResults hits
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)

	// Close closes any resources held by the provider
	Close() error
}

// Config represents the configuration for a search provider
type Config struct {
	Type       ProviderType  // The provider type
	BaseURL    string        // Endpoint override, mainly for tests
	MaxResults int           // Default result cap
	Timeout    time.Duration // HTTP timeout, zero means a sensible default
}

// Factory creates a new provider based on the provided configuration
type Factory func(config Config) (Provider, error)

// registry of provider factories
var providerFactories = make(map[ProviderType]Factory)

// RegisterProvider registers a provider factory for a specific provider type
func RegisterProvider(providerType ProviderType, factory Factory) {
	providerFactories[providerType] = factory
}

// NewProvider creates a new provider based on the provided configuration
func NewProvider(config Config) (Provider, error) {
	factory, ok := providerFactories[config.Type]
	if !ok {
		return nil, &ProviderError{
			Code:    ErrCodeUnsupportedProvider,
			Message: "unsupported search provider: " + string(config.Type),
		}
	}

	return factory(config)
}
