package productivity

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"toolbelt-go/pkg/tools/core"
)

func runTodo(t *testing.T, tool *TodoTool, input string) (string, error) {
	t.Helper()
	result, err := tool.Execute(context.Background(), json.RawMessage(input))
	if err != nil {
		return "", err
	}
	text, ok := result.(string)
	if !ok {
		t.Fatalf("Expected string result, got %T", result)
	}
	return text, nil
}

func TestTodoLifecycle(t *testing.T) {
	tool := NewTodoTool(NewTodoList())

	text, err := runTodo(t, tool, `{"action":"add","task":"buy milk"}`)
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}
	if text != "✅ Task added: 'buy milk'" {
		t.Errorf("Expected add message, got %q", text)
	}

	text, err = runTodo(t, tool, `{"action":"list"}`)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if text != "📋 Your To-Do List:\n1. [❌] buy milk" {
		t.Errorf("Expected pending task in list, got %q", text)
	}

	text, err = runTodo(t, tool, `{"action":"complete","task":"buy milk"}`)
	if err != nil {
		t.Fatalf("Failed to complete task: %v", err)
	}
	if text != "✅ Task completed: 'buy milk'" {
		t.Errorf("Expected completion message, got %q", text)
	}

	text, err = runTodo(t, tool, `{"action":"list"}`)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if text != "📋 Your To-Do List:\n1. [✔️] buy milk" {
		t.Errorf("Expected completed task in list, got %q", text)
	}

	text, err = runTodo(t, tool, `{"action":"remove","task":"buy milk"}`)
	if err != nil {
		t.Fatalf("Failed to remove task: %v", err)
	}
	if text != "🗑️ Task removed: 'buy milk'" {
		t.Errorf("Expected removal message, got %q", text)
	}

	text, err = runTodo(t, tool, `{"action":"list"}`)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if text != "📝 Your to-do list is empty." {
		t.Errorf("Expected empty-list message, got %q", text)
	}
}

func TestTodoDuplicateAdd(t *testing.T) {
	tool := NewTodoTool(NewTodoList())

	if _, err := runTodo(t, tool, `{"action":"add","task":"buy milk"}`); err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	_, err := runTodo(t, tool, `{"action":"add","task":"buy milk"}`)
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for duplicate task, got %v", err)
	}

	// The list should still hold a single entry
	items := tool.todos.Items()
	if len(items) != 1 {
		t.Errorf("Expected 1 task after duplicate add, got %d", len(items))
	}
}

func TestTodoMissingTask(t *testing.T) {
	tool := NewTodoTool(NewTodoList())

	tests := []struct {
		name  string
		input string
	}{
		{"complete unknown task", `{"action":"complete","task":"nope"}`},
		{"remove unknown task", `{"action":"remove","task":"nope"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runTodo(t, tool, tc.input)
			if !errors.Is(err, core.ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestTodoOrderPreserved(t *testing.T) {
	tool := NewTodoTool(NewTodoList())

	for _, task := range []string{"first", "second", "third"} {
		if _, err := runTodo(t, tool, `{"action":"add","task":"`+task+`"}`); err != nil {
			t.Fatalf("Failed to add task: %v", err)
		}
	}
	if _, err := runTodo(t, tool, `{"action":"complete","task":"second"}`); err != nil {
		t.Fatalf("Failed to complete task: %v", err)
	}

	text, err := runTodo(t, tool, `{"action":"list"}`)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	expected := "📋 Your To-Do List:\n1. [❌] first\n2. [✔️] second\n3. [❌] third"
	if text != expected {
		t.Errorf("Expected %q, got %q", expected, text)
	}
}

func TestTodoClear(t *testing.T) {
	tool := NewTodoTool(NewTodoList())

	if _, err := runTodo(t, tool, `{"action":"add","task":"one"}`); err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	text, err := runTodo(t, tool, `{"action":"clear"}`)
	if err != nil {
		t.Fatalf("Failed to clear tasks: %v", err)
	}
	if text != "🧹 All tasks cleared." {
		t.Errorf("Expected clear message, got %q", text)
	}

	if items := tool.todos.Items(); len(items) != 0 {
		t.Errorf("Expected empty list after clear, got %d tasks", len(items))
	}
}

func TestTodoInvalidAction(t *testing.T) {
	tool := NewTodoTool(NewTodoList())

	_, err := runTodo(t, tool, `{"action":"archive","task":"x"}`)
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for unknown action, got %v", err)
	}
}
