package tools

import (
	"toolbelt-go/pkg/registrar"
	"toolbelt-go/pkg/search"
	"toolbelt-go/pkg/tools/categories/dynamic"
	"toolbelt-go/pkg/tools/categories/messaging"
	"toolbelt-go/pkg/tools/categories/productivity"
	"toolbelt-go/pkg/tools/categories/web"
)

// registerWebTools registers web tools
func registerWebTools(registry *Registry, provider search.Provider, opts Options) error {
	return web.Register(registry, web.Options{
		WeatherBaseURL: opts.WeatherBaseURL,
		WeatherFormat:  opts.WeatherFormat,
		Provider:       provider,
	})
}

// registerProductivityTools registers productivity tools against the
// manager's shared note and to-do lists
func registerProductivityTools(manager *ToolManager) error {
	return productivity.Register(manager.registry, manager.notes, manager.todos)
}

// registerMessagingTools registers messaging tools
func registerMessagingTools(registry *Registry, config messaging.EmailConfig) error {
	return messaging.Register(registry, config)
}

// registerDynamicTools registers the create_tool builtin and installs
// every definition already in the store
func registerDynamicTools(manager *ToolManager, reg *registrar.Registrar) error {
	return dynamic.Register(manager.registry, reg, manager)
}
