package productivity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"toolbelt-go/pkg/tools/core"
)

func runNotes(t *testing.T, tool *NotesTool, input string) (string, error) {
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

func TestNotesAddAndList(t *testing.T) {
	tool := NewNotesTool(NewNoteList())

	for _, note := range []string{"buy milk", "call the dentist"} {
		text, err := runNotes(t, tool, fmt.Sprintf(`{"action":"add","note":%q}`, note))
		if err != nil {
			t.Fatalf("Failed to add note: %v", err)
		}
		expected := fmt.Sprintf("✅ Note added: '%s'", note)
		if text != expected {
			t.Errorf("Expected %q, got %q", expected, text)
		}
	}

	text, err := runNotes(t, tool, `{"action":"list"}`)
	if err != nil {
		t.Fatalf("Failed to list notes: %v", err)
	}
	expected := "📋 Your notes:\n1. buy milk\n2. call the dentist"
	if text != expected {
		t.Errorf("Expected %q, got %q", expected, text)
	}
}

func TestNotesListEmpty(t *testing.T) {
	tool := NewNotesTool(NewNoteList())

	text, err := runNotes(t, tool, `{"action":"list"}`)
	if err != nil {
		t.Fatalf("Failed to list notes: %v", err)
	}
	if text != "📝 You have no notes saved." {
		t.Errorf("Expected empty-list message, got %q", text)
	}
}

func TestNotesRemove(t *testing.T) {
	tool := NewNotesTool(NewNoteList())

	if _, err := runNotes(t, tool, `{"action":"add","note":"buy milk"}`); err != nil {
		t.Fatalf("Failed to add note: %v", err)
	}

	text, err := runNotes(t, tool, `{"action":"remove","note":"buy milk"}`)
	if err != nil {
		t.Fatalf("Failed to remove note: %v", err)
	}
	if text != "🗑️ Note removed: 'buy milk'" {
		t.Errorf("Expected removal message, got %q", text)
	}

	// Removing it again should report a miss
	_, err = runNotes(t, tool, `{"action":"remove","note":"buy milk"}`)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing note, got %v", err)
	}
}

func TestNotesRemoveFirstMatch(t *testing.T) {
	notes := NewNoteList()
	notes.Add("dup")
	notes.Add("keep")
	notes.Add("dup")

	if !notes.Remove("dup") {
		t.Fatal("Expected Remove to find a note")
	}

	items := notes.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 notes after removal, got %d", len(items))
	}
	if items[0] != "keep" || items[1] != "dup" {
		t.Errorf("Expected first match removed, got %v", items)
	}
}

func TestNotesClear(t *testing.T) {
	tool := NewNotesTool(NewNoteList())

	if _, err := runNotes(t, tool, `{"action":"add","note":"one"}`); err != nil {
		t.Fatalf("Failed to add note: %v", err)
	}
	if _, err := runNotes(t, tool, `{"action":"add","note":"two"}`); err != nil {
		t.Fatalf("Failed to add note: %v", err)
	}

	text, err := runNotes(t, tool, `{"action":"clear"}`)
	if err != nil {
		t.Fatalf("Failed to clear notes: %v", err)
	}
	if text != "🧹 All notes cleared." {
		t.Errorf("Expected clear message, got %q", text)
	}

	text, err = runNotes(t, tool, `{"action":"list"}`)
	if err != nil {
		t.Fatalf("Failed to list notes: %v", err)
	}
	if text != "📝 You have no notes saved." {
		t.Errorf("Expected empty list after clear, got %q", text)
	}
}

func TestNotesInvalidInput(t *testing.T) {
	tool := NewNotesTool(NewNoteList())

	tests := []struct {
		name  string
		input string
	}{
		{"missing note on add", `{"action":"add"}`},
		{"missing note on remove", `{"action":"remove"}`},
		{"unknown action", `{"action":"archive"}`},
		{"empty action", `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runNotes(t, tool, tc.input)
			if !errors.Is(err, core.ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestNotesMalformedJSON(t *testing.T) {
	tool := NewNotesTool(NewNoteList())

	_, err := tool.Execute(context.Background(), json.RawMessage(`{not json`))
	if err == nil {
		t.Error("Expected error for malformed JSON input")
	}
}
