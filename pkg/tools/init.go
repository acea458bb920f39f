package tools

import (
	"fmt"

	"toolbelt-go/pkg/registrar"
	"toolbelt-go/pkg/search"
	"toolbelt-go/pkg/tools/categories/messaging"
)

// Options carries the dependencies and settings the tool categories
// need at startup
type Options struct {
	// DataDir is where the dynamic tool store lives
	DataDir string

	// Categories lists the category IDs to enable. Nil keeps the
	// registry defaults.
	Categories []string

	// WeatherBaseURL and WeatherFormat configure the weather tool
	WeatherBaseURL string
	WeatherFormat  string

	// Search configures the web search provider
	Search search.Config

	// Email configures the SMTP tool
	Email messaging.EmailConfig
}

// InitializeTools registers all builtin tools plus the stored dynamic
// tools with the manager's registry
func InitializeTools(manager *ToolManager, opts Options) error {
	if opts.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}

	provider, err := search.NewProvider(opts.Search)
	if err != nil {
		return fmt.Errorf("failed to create search provider: %w", err)
	}

	// Load web tools
	if err := registerWebTools(manager.registry, provider, opts); err != nil {
		return fmt.Errorf("failed to register web tools: %w", err)
	}

	// Load productivity tools
	if err := registerProductivityTools(manager); err != nil {
		return fmt.Errorf("failed to register productivity tools: %w", err)
	}

	// Load messaging tools
	if err := registerMessagingTools(manager.registry, opts.Email); err != nil {
		return fmt.Errorf("failed to register messaging tools: %w", err)
	}

	// Dynamic tools go last so the reserved-name check sees every
	// builtin registered above
	store, err := registrar.NewStore(opts.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open tool store: %w", err)
	}
	reg := registrar.New(store, registrar.WithReservedNames(manager.registry.HasTool))
	manager.mu.Lock()
	manager.reg = reg
	manager.mu.Unlock()

	if err := registerDynamicTools(manager, reg); err != nil {
		return fmt.Errorf("failed to register dynamic tools: %w", err)
	}

	return nil
}

// Initialize creates a fully initialized tool manager with all tools registered
func Initialize(opts Options) (*ToolManager, error) {
	manager := NewToolManager()

	// Register all tools
	if err := InitializeTools(manager, opts); err != nil {
		return nil, fmt.Errorf("failed to initialize tools: %w", err)
	}

	// Apply the configured category selection
	if len(opts.Categories) > 0 {
		if err := manager.EnableCategoriesByIDs(opts.Categories); err != nil {
			return nil, err
		}
	}

	return manager, nil
}
