package productivity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"toolbelt-go/pkg/tools/core"
)

// NotesInput represents parameters for the manage_notes tool
type NotesInput struct {
	Action string `json:"action"`
	Note   string `json:"note,omitempty"`
}

// NotesTool manages a shared in-memory list of notes
type NotesTool struct {
	core.BaseToolImpl
	notes *NoteList
}

// NewNotesTool creates a new notes tool backed by the given list
func NewNotesTool(notes *NoteList) *NotesTool {
	tool := &NotesTool{notes: notes}
	tool.BaseToolImpl = *core.NewBaseTool(
		"manage_notes",
		"Add, remove, list, or clear short free-form notes kept for this session",
		"productivity",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"add", "remove", "list", "clear"},
					"description": "Action to perform on the note list",
				},
				"note": map[string]interface{}{
					"type":        "string",
					"description": "Note text, required for add and remove",
				},
			},
			"required": []string{"action"},
		},
	)
	return tool
}

// Execute applies the requested action to the note list
func (t *NotesTool) Execute(_ context.Context, input json.RawMessage) (interface{}, error) {
	var params NotesInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input for manage_notes tool: %w", err)
	}

	switch params.Action {
	case "add":
		if params.Note == "" {
			return nil, fmt.Errorf("%w: note is required for add", core.ErrInvalidInput)
		}
		t.notes.Add(params.Note)
		return fmt.Sprintf("✅ Note added: '%s'", params.Note), nil

	case "remove":
		if params.Note == "" {
			return nil, fmt.Errorf("%w: note is required for remove", core.ErrInvalidInput)
		}
		if !t.notes.Remove(params.Note) {
			return nil, fmt.Errorf("%w: no note matching %q", core.ErrNotFound, params.Note)
		}
		return fmt.Sprintf("🗑️ Note removed: '%s'", params.Note), nil

	case "list":
		items := t.notes.Items()
		if len(items) == 0 {
			return "📝 You have no notes saved.", nil
		}
		var b strings.Builder
		b.WriteString("📋 Your notes:")
		for i, note := range items {
			fmt.Fprintf(&b, "\n%d. %s", i+1, note)
		}
		return b.String(), nil

	case "clear":
		t.notes.Clear()
		return "🧹 All notes cleared.", nil

	default:
		return nil, fmt.Errorf("%w: unknown action %q, use add, remove, list, or clear", core.ErrInvalidInput, params.Action)
	}
}
