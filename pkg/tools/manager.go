package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"toolbelt-go/pkg/logging"
	"toolbelt-go/pkg/registrar"
	"toolbelt-go/pkg/tools/categories/dynamic"
	"toolbelt-go/pkg/tools/categories/productivity"
	"toolbelt-go/pkg/tools/core"
)

// maxExecutionHistory bounds the in-memory execution record ring
const maxExecutionHistory = 100

// Execution records a single tool invocation
type Execution struct {
	ID       string        `json:"id"`
	Tool     string        `json:"tool"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

// ToolManager handles tool execution and permissions
type ToolManager struct {
	mu             sync.RWMutex
	registry       *Registry
	log            *zap.Logger
	notes          *productivity.NoteList
	todos          *productivity.TodoList
	reg            *registrar.Registrar
	executions     []Execution
	enabledCats    map[string]bool
	toolsEnabled   bool
	maxToolsPerMsg int
}

// NewToolManager creates a new tool manager with default settings
func NewToolManager() *ToolManager {
	return &ToolManager{
		registry:       NewRegistry(),
		log:            logging.Named("tools"),
		notes:          productivity.NewNoteList(),
		todos:          productivity.NewTodoList(),
		enabledCats:    make(map[string]bool),
		toolsEnabled:   true, // Enabled by default
		maxToolsPerMsg: 10,   // Default limit
	}
}

// Registry returns the underlying tool registry
func (tm *ToolManager) Registry() *Registry {
	return tm.registry
}

// Registrar returns the dynamic tool registrar, nil until tools have
// been initialized
func (tm *ToolManager) Registrar() *registrar.Registrar {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	return tm.reg
}

// Notes returns the shared note list
func (tm *ToolManager) Notes() *productivity.NoteList {
	return tm.notes
}

// Todos returns the shared to-do list
func (tm *ToolManager) Todos() *productivity.TodoList {
	return tm.todos
}

// EnableTools enables or disables all tools
func (tm *ToolManager) EnableTools(enabled bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.toolsEnabled = enabled
}

// IsToolsEnabled returns whether tools are enabled
func (tm *ToolManager) IsToolsEnabled() bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	return tm.toolsEnabled
}

// EnableCategory enables a specific tool category
func (tm *ToolManager) EnableCategory(categoryID string, enabled bool) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	err := tm.registry.SetCategoryEnabled(categoryID, enabled)
	if err != nil {
		return err
	}

	tm.enabledCats[categoryID] = enabled
	return nil
}

// EnableCategoriesByIDs enables specific categories by their IDs
func (tm *ToolManager) EnableCategoriesByIDs(categoryIDs []string) error {
	// First disable all categories
	tm.registry.SetAllCategoriesEnabled(false)

	// Enable only the specified categories
	for _, catID := range categoryIDs {
		if err := tm.EnableCategory(strings.TrimSpace(catID), true); err != nil {
			return err
		}
	}

	return nil
}

// EnableCategories parses a comma-separated list of category IDs and enables them
func (tm *ToolManager) EnableCategories(categoriesStr string) error {
	if categoriesStr == "" {
		return nil
	}

	categories := strings.Split(categoriesStr, ",")
	return tm.EnableCategoriesByIDs(categories)
}

// EnableAllCategories enables or disables all tool categories
func (tm *ToolManager) EnableAllCategories(enabled bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.registry.SetAllCategoriesEnabled(enabled)

	// Update the enabled categories map
	for id := range tm.registry.Categories {
		tm.enabledCats[id] = enabled
	}
}

// GetTools returns tool specs for all enabled tools
func (tm *ToolManager) GetTools() []core.ToolSpec {
	if !tm.IsToolsEnabled() {
		return nil
	}

	return tm.registry.GetEnabledTools()
}

// InstallDynamicTool makes a stored definition callable in the running
// session. It implements the dynamic.Installer interface.
func (tm *ToolManager) InstallDynamicTool(def registrar.Definition) error {
	if err := tm.registry.RegisterTool("dynamic", dynamic.NewHTTPTool(def)); err != nil {
		return err
	}

	tm.log.Info("dynamic tool installed",
		zap.String("tool", def.Name),
		zap.String("api_host", def.APIHost))
	return nil
}

// HandleToolUse processes a tool use request
func (tm *ToolManager) HandleToolUse(ctx context.Context, toolUse *core.ToolUse) (*core.ToolResult, error) {
	if !tm.IsToolsEnabled() {
		return nil, fmt.Errorf("tool use is disabled")
	}

	if toolUse == nil {
		return nil, fmt.Errorf("no tool use request provided")
	}

	execID := uuid.New().String()
	start := time.Now()

	// Get the tool from the registry
	tool, err := tm.registry.GetTool(toolUse.Name)
	if err != nil {
		return nil, fmt.Errorf("error finding tool %s: %w", toolUse.Name, err)
	}

	tm.log.Info("executing tool",
		zap.String("execution_id", execID),
		zap.String("tool", toolUse.Name))

	// Execute the tool
	result, err := tool.Execute(ctx, toolUse.Input)
	duration := time.Since(start)
	tm.record(Execution{
		ID:       execID,
		Tool:     toolUse.Name,
		Started:  start,
		Duration: duration,
		Error:    errString(err),
	})

	if err != nil {
		tm.log.Warn("tool execution failed",
			zap.String("execution_id", execID),
			zap.String("tool", toolUse.Name),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, fmt.Errorf("error executing tool %s: %w", toolUse.Name, err)
	}

	tm.log.Info("tool execution complete",
		zap.String("execution_id", execID),
		zap.String("tool", toolUse.Name),
		zap.Duration("duration", duration))

	// Convert result to JSON
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("error marshaling tool result: %w", err)
	}

	// Return as tool result
	return &core.ToolResult{
		Name:   toolUse.Name,
		Result: resultJSON,
	}, nil
}

// record appends an execution to the bounded history ring
func (tm *ToolManager) record(exec Execution) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.executions = append(tm.executions, exec)
	if len(tm.executions) > maxExecutionHistory {
		tm.executions = tm.executions[len(tm.executions)-maxExecutionHistory:]
	}
}

// Executions returns a copy of the recorded execution history, oldest
// first
func (tm *ToolManager) Executions() []Execution {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	execs := make([]Execution, len(tm.executions))
	copy(execs, tm.executions)
	return execs
}

// SetMaxToolsPerMsg sets the maximum number of tool calls allowed per message
func (tm *ToolManager) SetMaxToolsPerMsg(max int) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if max > 0 {
		tm.maxToolsPerMsg = max
	}
}

// GetMaxToolsPerMsg gets the maximum number of tool calls allowed per message
func (tm *ToolManager) GetMaxToolsPerMsg() int {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	return tm.maxToolsPerMsg
}

// RegisterTool registers a new tool with the manager
func (tm *ToolManager) RegisterTool(categoryID string, tool core.Tool) error {
	return tm.registry.RegisterTool(categoryID, tool)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
