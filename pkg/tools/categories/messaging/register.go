package messaging

import (
	"toolbelt-go/pkg/tools/core"
)

// Register registers messaging tools with the registry
func Register(registry core.ToolRegistrar, config EmailConfig) error {
	// Register email tool
	if err := registry.RegisterTool("messaging", NewEmailTool(config)); err != nil {
		return err
	}

	return nil
}
