package productivity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"toolbelt-go/pkg/tools/core"
)

// TodoInput represents parameters for the manage_todo tool
type TodoInput struct {
	Action string `json:"action"`
	Task   string `json:"task,omitempty"`
}

// TodoTool manages a shared in-memory to-do list with task status
type TodoTool struct {
	core.BaseToolImpl
	todos *TodoList
}

// NewTodoTool creates a new to-do tool backed by the given list
func NewTodoTool(todos *TodoList) *TodoTool {
	tool := &TodoTool{todos: todos}
	tool.BaseToolImpl = *core.NewBaseTool(
		"manage_todo",
		"Add, remove, complete, list, or clear tasks on a session to-do list",
		"productivity",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"add", "remove", "complete", "list", "clear"},
					"description": "Action to perform on the to-do list",
				},
				"task": map[string]interface{}{
					"type":        "string",
					"description": "Task description, required for add, remove, and complete",
				},
			},
			"required": []string{"action"},
		},
	)
	return tool
}

// Execute applies the requested action to the to-do list
func (t *TodoTool) Execute(_ context.Context, input json.RawMessage) (interface{}, error) {
	var params TodoInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input for manage_todo tool: %w", err)
	}

	switch params.Action {
	case "add":
		if params.Task == "" {
			return nil, fmt.Errorf("%w: task is required for add", core.ErrInvalidInput)
		}
		if !t.todos.Add(params.Task) {
			return nil, fmt.Errorf("%w: task %q is already on the list", core.ErrInvalidInput, params.Task)
		}
		return fmt.Sprintf("✅ Task added: '%s'", params.Task), nil

	case "remove":
		if params.Task == "" {
			return nil, fmt.Errorf("%w: task is required for remove", core.ErrInvalidInput)
		}
		if !t.todos.Remove(params.Task) {
			return nil, fmt.Errorf("%w: no task matching %q", core.ErrNotFound, params.Task)
		}
		return fmt.Sprintf("🗑️ Task removed: '%s'", params.Task), nil

	case "complete":
		if params.Task == "" {
			return nil, fmt.Errorf("%w: task is required for complete", core.ErrInvalidInput)
		}
		if !t.todos.Complete(params.Task) {
			return nil, fmt.Errorf("%w: no task matching %q", core.ErrNotFound, params.Task)
		}
		return fmt.Sprintf("✅ Task completed: '%s'", params.Task), nil

	case "list":
		items := t.todos.Items()
		if len(items) == 0 {
			return "📝 Your to-do list is empty.", nil
		}
		var b strings.Builder
		b.WriteString("📋 Your To-Do List:")
		for i, item := range items {
			mark := "❌"
			if item.Done {
				mark = "✔️"
			}
			fmt.Fprintf(&b, "\n%d. [%s] %s", i+1, mark, item.Task)
		}
		return b.String(), nil

	case "clear":
		t.todos.Clear()
		return "🧹 All tasks cleared.", nil

	default:
		return nil, fmt.Errorf("%w: unknown action %q, use add, remove, complete, list, or clear", core.ErrInvalidInput, params.Action)
	}
}
