package productivity

import (
	"toolbelt-go/pkg/tools/core"
)

// Register registers productivity tools with the registry. The note and
// to-do lists are passed in so callers can share them with other
// surfaces, such as a UI panel.
func Register(registry core.ToolRegistrar, notes *NoteList, todos *TodoList) error {
	// Register notes tool
	if err := registry.RegisterTool("productivity", NewNotesTool(notes)); err != nil {
		return err
	}

	// Register to-do tool
	if err := registry.RegisterTool("productivity", NewTodoTool(todos)); err != nil {
		return err
	}

	return nil
}
