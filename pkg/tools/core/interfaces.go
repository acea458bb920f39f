package core

import (
	"context"
	"encoding/json"
)

// PermissionLevel defines access rights for a tool category
type PermissionLevel string

const (
	PermissionReadOnly  PermissionLevel = "read-only"  // Can only read data
	PermissionReadWrite PermissionLevel = "read-write" // Can read and write data
	PermissionExecute   PermissionLevel = "execute"    // Can cause external side effects
)

// Tool represents a capability that can be exposed to the agent runtime
type Tool interface {
	// Name returns the name of the tool as seen by the agent
	Name() string

	// Description returns the description of the tool as seen by the agent
	Description() string

	// Category returns the category this tool belongs to
	Category() string

	// InputSchema returns the JSON schema for the tool's input
	InputSchema() map[string]interface{}

	// Execute performs the tool operation with given input
	Execute(ctx context.Context, input json.RawMessage) (interface{}, error)
}

// BaseToolImpl provides common functionality for tool implementations
type BaseToolImpl struct {
	name        string
	description string
	category    string
	inputSchema map[string]interface{}
}

// Name returns the name of the tool
func (t *BaseToolImpl) Name() string { return t.name }

// Description returns the description of the tool
func (t *BaseToolImpl) Description() string { return t.description }

// Category returns the category this tool belongs to
func (t *BaseToolImpl) Category() string { return t.category }

// InputSchema returns the JSON schema for the tool's input
func (t *BaseToolImpl) InputSchema() map[string]interface{} { return t.inputSchema }

// NewBaseTool creates a new basic tool implementation
func NewBaseTool(name, description, category string, schema map[string]interface{}) *BaseToolImpl {
	return &BaseToolImpl{
		name:        name,
		description: description,
		category:    category,
		inputSchema: schema,
	}
}

// ToolUse represents a tool invocation request from the orchestrator
type ToolUse struct {
	Name  string          // Name of the tool to use
	Input json.RawMessage // Raw JSON input to the tool
}

// ToolResult represents the result of a tool execution
type ToolResult struct {
	Name   string          // Name of the tool that was used
	Result json.RawMessage // Raw JSON result from the tool
}

// ToolSpec is the wire-facing description of a tool handed to the
// orchestrator at startup
type ToolSpec struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}
