package tools

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"toolbelt-go/pkg/registrar"
	"toolbelt-go/pkg/search"
	"toolbelt-go/pkg/tools/core"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	dir, err := os.MkdirTemp("", "toolbelt-init-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	return Options{
		DataDir: dir,
		Search:  search.Config{Type: search.ProviderMock},
	}
}

func toolNames(specs []core.ToolSpec) map[string]bool {
	names := make(map[string]bool, len(specs))
	for _, spec := range specs {
		names[spec.Name] = true
	}
	return names
}

func TestInitializeRegistersBuiltins(t *testing.T) {
	manager, err := Initialize(testOptions(t))
	if err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	names := toolNames(manager.GetTools())
	for _, expected := range []string{"get_weather", "search_web", "read_webpage", "manage_notes", "manage_todo", "create_tool"} {
		if !names[expected] {
			t.Errorf("Expected builtin %s in enabled tools", expected)
		}
	}

	// Messaging is disabled by default, but its names stay reserved
	if names["send_email"] {
		t.Error("Expected send_email to be disabled by default")
	}
	if !manager.registry.HasTool("send_email") {
		t.Error("Expected send_email to be registered even while disabled")
	}
}

func TestInitializeCreateToolEndToEnd(t *testing.T) {
	opts := testOptions(t)
	manager, err := Initialize(opts)
	if err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	input := `{"function_name":"stock_price","purpose":"Get stock prices","api_url":"https://stocks.example.com/v1/quote"}`
	result, err := manager.HandleToolUse(context.Background(), &core.ToolUse{
		Name:  "create_tool",
		Input: json.RawMessage(input),
	})
	if err != nil {
		t.Fatalf("Failed to create tool: %v", err)
	}
	var message string
	if err := json.Unmarshal(result.Result, &message); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if message != "✅ Tool `stock_price` created and registered successfully." {
		t.Errorf("Expected confirmation, got %q", message)
	}

	// The new tool must be live in this session
	if _, err := manager.registry.GetTool("stock_price"); err != nil {
		t.Errorf("Expected stock_price to be callable: %v", err)
	}

	// Registering the same name again must fail
	_, err = manager.HandleToolUse(context.Background(), &core.ToolUse{
		Name:  "create_tool",
		Input: json.RawMessage(input),
	})
	if !errors.Is(err, registrar.ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}

	// A fresh manager over the same data dir sees the stored tool
	manager2, err := Initialize(opts)
	if err != nil {
		t.Fatalf("Failed to re-initialize: %v", err)
	}
	if !toolNames(manager2.GetTools())["stock_price"] {
		t.Error("Expected stored tool after restart")
	}
}

func TestInitializeRejectsBuiltinName(t *testing.T) {
	manager, err := Initialize(testOptions(t))
	if err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	input := `{"function_name":"get_weather","purpose":"Shadow a builtin"}`
	_, err = manager.HandleToolUse(context.Background(), &core.ToolUse{
		Name:  "create_tool",
		Input: json.RawMessage(input),
	})
	if !errors.Is(err, registrar.ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName for builtin name, got %v", err)
	}
}

func TestInitializeWithCategories(t *testing.T) {
	opts := testOptions(t)
	opts.Categories = []string{"web"}

	manager, err := Initialize(opts)
	if err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	names := toolNames(manager.GetTools())
	if !names["get_weather"] {
		t.Error("Expected web tools enabled")
	}
	if names["manage_notes"] || names["create_tool"] {
		t.Errorf("Expected only web tools, got %v", names)
	}
}

func TestInitializeRequiresDataDir(t *testing.T) {
	_, err := Initialize(Options{Search: search.Config{Type: search.ProviderMock}})
	if err == nil {
		t.Error("Expected error without a data directory")
	}
}

func TestInitializeUnknownSearchProvider(t *testing.T) {
	opts := testOptions(t)
	opts.Search = search.Config{Type: search.ProviderType("bogus")}

	_, err := Initialize(opts)
	if err == nil {
		t.Error("Expected error for unknown search provider")
	}
}
