package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"toolbelt-go/pkg/registrar"
	"toolbelt-go/pkg/tools/core"
)

func TestManagerHandleToolUse(t *testing.T) {
	manager := NewToolManager()
	if err := manager.RegisterTool("web", newStubTool("echo_stub", "web")); err != nil {
		t.Fatalf("Failed to register tool: %v", err)
	}

	result, err := manager.HandleToolUse(context.Background(), &core.ToolUse{
		Name:  "echo_stub",
		Input: []byte(`{}`),
	})
	if err != nil {
		t.Fatalf("Failed to handle tool use: %v", err)
	}
	if result.Name != "echo_stub" {
		t.Errorf("Expected result for echo_stub, got %s", result.Name)
	}
	if string(result.Result) != `"ok"` {
		t.Errorf("Expected JSON string result, got %s", result.Result)
	}

	execs := manager.Executions()
	if len(execs) != 1 {
		t.Fatalf("Expected 1 recorded execution, got %d", len(execs))
	}
	if execs[0].Tool != "echo_stub" || execs[0].Error != "" {
		t.Errorf("Expected clean execution record, got %+v", execs[0])
	}
	if execs[0].ID == "" {
		t.Error("Expected execution record to carry an ID")
	}
}

func TestManagerHandleToolUseDisabled(t *testing.T) {
	manager := NewToolManager()
	manager.EnableTools(false)

	_, err := manager.HandleToolUse(context.Background(), &core.ToolUse{Name: "anything"})
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Errorf("Expected disabled error, got %v", err)
	}
}

func TestManagerHandleToolUseUnknownTool(t *testing.T) {
	manager := NewToolManager()

	_, err := manager.HandleToolUse(context.Background(), &core.ToolUse{
		Name:  "missing_tool",
		Input: []byte(`{}`),
	})
	if !errors.Is(err, core.ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound, got %v", err)
	}
}

func TestManagerExecutionHistoryBounded(t *testing.T) {
	manager := NewToolManager()
	if err := manager.RegisterTool("web", newStubTool("echo_stub", "web")); err != nil {
		t.Fatalf("Failed to register tool: %v", err)
	}

	for i := 0; i < maxExecutionHistory+10; i++ {
		if _, err := manager.HandleToolUse(context.Background(), &core.ToolUse{
			Name:  "echo_stub",
			Input: []byte(`{}`),
		}); err != nil {
			t.Fatalf("Failed to handle tool use: %v", err)
		}
	}

	if got := len(manager.Executions()); got != maxExecutionHistory {
		t.Errorf("Expected history capped at %d, got %d", maxExecutionHistory, got)
	}
}

func TestManagerInstallDynamicTool(t *testing.T) {
	manager := NewToolManager()

	def := registrar.Definition{
		Name:      "stock_price",
		Purpose:   "Get stock prices",
		APIURL:    "https://stocks.example.com/v1/quote",
		APIHost:   "stocks.example.com",
		APIKeyEnv: "RAPIDAPI_KEY",
	}
	if err := manager.InstallDynamicTool(def); err != nil {
		t.Fatalf("Failed to install dynamic tool: %v", err)
	}

	tool, err := manager.registry.GetTool("stock_price")
	if err != nil {
		t.Fatalf("Expected installed tool to be callable: %v", err)
	}
	if tool.Description() != "Get stock prices" {
		t.Errorf("Expected purpose as description, got %q", tool.Description())
	}

	// A second install of the same name must collide
	if err := manager.InstallDynamicTool(def); !errors.Is(err, core.ErrToolExists) {
		t.Errorf("Expected ErrToolExists on duplicate install, got %v", err)
	}
}

func TestManagerEnableCategories(t *testing.T) {
	manager := NewToolManager()

	if err := manager.EnableCategories("web, dynamic"); err != nil {
		t.Fatalf("Failed to enable categories: %v", err)
	}

	tests := []struct {
		id      string
		enabled bool
	}{
		{"web", true},
		{"dynamic", true},
		{"productivity", false},
		{"messaging", false},
	}
	for _, tc := range tests {
		if got := manager.registry.Categories[tc.id].Enabled; got != tc.enabled {
			t.Errorf("Expected category %s enabled=%v, got %v", tc.id, tc.enabled, got)
		}
	}
}

func TestManagerGetToolsDisabled(t *testing.T) {
	manager := NewToolManager()
	if err := manager.RegisterTool("web", newStubTool("echo_stub", "web")); err != nil {
		t.Fatalf("Failed to register tool: %v", err)
	}

	manager.EnableTools(false)
	if specs := manager.GetTools(); specs != nil {
		t.Errorf("Expected nil specs with tools disabled, got %v", specs)
	}
}
