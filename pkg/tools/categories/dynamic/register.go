package dynamic

import (
	"toolbelt-go/pkg/registrar"
	"toolbelt-go/pkg/tools/core"
)

// Register registers the create_tool builtin plus every tool definition
// already present in the store
func Register(registry core.ToolRegistrar, reg *registrar.Registrar, installer Installer) error {
	// Register the tool factory itself
	if err := registry.RegisterTool("dynamic", NewCreateTool(reg, installer)); err != nil {
		return err
	}

	// Install previously registered tools from the store
	defs, err := reg.Store().Load()
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := registry.RegisterTool("dynamic", NewHTTPTool(def)); err != nil {
			return err
		}
	}

	return nil
}
