package tools

import (
	"fmt"
	"sort"
	"sync"

	"toolbelt-go/pkg/tools/core"
)

// Category represents a group of related tools
type Category struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Permission  core.PermissionLevel
	Tools       []core.Tool
}

// Registry manages all tool categories and their tools
// It implements the core.ToolRegistrar interface
type Registry struct {
	mu         sync.RWMutex
	Categories map[string]*Category
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	r := &Registry{
		Categories: make(map[string]*Category),
	}

	// Register default categories
	r.RegisterCategory(&Category{
		ID:          "web",
		Name:        "Web Tools",
		Description: "Tools for retrieving information from the web",
		Enabled:     true,
		Permission:  core.PermissionReadOnly,
		Tools:       []core.Tool{},
	})

	r.RegisterCategory(&Category{
		ID:          "productivity",
		Name:        "Productivity Tools",
		Description: "Tools for managing session notes and tasks",
		Enabled:     true,
		Permission:  core.PermissionReadWrite,
		Tools:       []core.Tool{},
	})

	r.RegisterCategory(&Category{
		ID:          "messaging",
		Name:        "Messaging Tools",
		Description: "Tools that send messages on the user's behalf",
		Enabled:     false, // Disabled by default
		Permission:  core.PermissionExecute,
		Tools:       []core.Tool{},
	})

	r.RegisterCategory(&Category{
		ID:          "dynamic",
		Name:        "Dynamic Tools",
		Description: "User-registered tools backed by remote APIs",
		Enabled:     true,
		Permission:  core.PermissionReadWrite,
		Tools:       []core.Tool{},
	})

	return r
}

// RegisterCategory adds a new category to the registry
func (r *Registry) RegisterCategory(cat *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.Categories[cat.ID]; exists {
		return fmt.Errorf("category with ID %s already exists", cat.ID)
	}

	r.Categories[cat.ID] = cat
	return nil
}

// RegisterTool adds a tool to a specific category. Tool names are
// unique across the whole registry, not just within a category.
func (r *Registry) RegisterTool(categoryID string, tool core.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, exists := r.Categories[categoryID]
	if !exists {
		return fmt.Errorf("category with ID %s does not exist", categoryID)
	}

	for _, existing := range r.Categories {
		for _, existingTool := range existing.Tools {
			if existingTool.Name() == tool.Name() {
				return fmt.Errorf("%w: tool with name %s already exists in category %s",
					core.ErrToolExists, tool.Name(), existing.ID)
			}
		}
	}

	cat.Tools = append(cat.Tools, tool)
	return nil
}

// GetEnabledTools returns specs for all tools from enabled categories
func (r *Registry) GetEnabledTools() []core.ToolSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []core.ToolSpec

	for _, cat := range r.sortedCategories() {
		if !cat.Enabled {
			continue
		}

		for _, tool := range cat.Tools {
			result = append(result, core.ToolSpec{
				Name:        tool.Name(),
				Description: tool.Description(),
				InputSchema: tool.InputSchema(),
			})
		}
	}

	return result
}

// GetTool finds a tool by name across all enabled categories
func (r *Registry) GetTool(name string) (core.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cat := range r.Categories {
		if !cat.Enabled {
			continue
		}

		for _, tool := range cat.Tools {
			if tool.Name() == name {
				return tool, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: tool %s not found or not enabled", core.ErrToolNotFound, name)
}

// HasTool reports whether any category, enabled or not, holds a tool
// with the given name. Used to reserve builtin names against dynamic
// registration.
func (r *Registry) HasTool(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cat := range r.Categories {
		for _, tool := range cat.Tools {
			if tool.Name() == name {
				return true
			}
		}
	}
	return false
}

// CategoryList returns the categories sorted by ID for stable display
func (r *Registry) CategoryList() []*Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedCategories()
}

// sortedCategories returns categories ordered by ID. Callers must hold
// at least a read lock.
func (r *Registry) sortedCategories() []*Category {
	ids := make([]string, 0, len(r.Categories))
	for id := range r.Categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cats := make([]*Category, 0, len(ids))
	for _, id := range ids {
		cats = append(cats, r.Categories[id])
	}
	return cats
}

// SetCategoryEnabled enables or disables an entire category
func (r *Registry) SetCategoryEnabled(categoryID string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, exists := r.Categories[categoryID]
	if !exists {
		return fmt.Errorf("category with ID %s does not exist", categoryID)
	}

	cat.Enabled = enabled
	return nil
}

// SetAllCategoriesEnabled enables or disables all categories
func (r *Registry) SetAllCategoriesEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cat := range r.Categories {
		cat.Enabled = enabled
	}
}
