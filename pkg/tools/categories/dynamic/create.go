package dynamic

import (
	"context"
	"encoding/json"
	"fmt"

	"toolbelt-go/pkg/registrar"
	"toolbelt-go/pkg/tools/core"
)

// CreateInput represents parameters for the create_tool tool
type CreateInput struct {
	FunctionName string `json:"function_name"`
	Purpose      string `json:"purpose"`
	APIURL       string `json:"api_url,omitempty"`
	APIHost      string `json:"api_host,omitempty"`
	APIKeyEnv    string `json:"api_key_env,omitempty"`
}

// Installer receives newly registered tools so they become callable in
// the running session without a restart
type Installer interface {
	InstallDynamicTool(def registrar.Definition) error
}

// CreateTool registers new dynamic tools through the registrar
type CreateTool struct {
	core.BaseToolImpl
	reg       *registrar.Registrar
	installer Installer
}

// NewCreateTool creates the create_tool builtin. The installer may be
// nil, in which case new tools only become callable after a restart.
func NewCreateTool(reg *registrar.Registrar, installer Installer) *CreateTool {
	tool := &CreateTool{reg: reg, installer: installer}
	tool.BaseToolImpl = *core.NewBaseTool(
		"create_tool",
		"Create and register a new tool that calls a remote API",
		"dynamic",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"function_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the new tool, lowercase with underscores",
				},
				"purpose": map[string]interface{}{
					"type":        "string",
					"description": "Description of what the tool does",
				},
				"api_url": map[string]interface{}{
					"type":        "string",
					"description": "API URL the tool will call",
				},
				"api_host": map[string]interface{}{
					"type":        "string",
					"description": "RapidAPI host header, derived from the URL when omitted",
				},
				"api_key_env": map[string]interface{}{
					"type":        "string",
					"description": "Environment variable holding the API key, defaults to RAPIDAPI_KEY",
				},
			},
			"required": []string{"function_name", "purpose"},
		},
	)
	return tool
}

// Execute validates, persists, and installs a new tool definition
func (t *CreateTool) Execute(_ context.Context, input json.RawMessage) (interface{}, error) {
	var params CreateInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input for create_tool tool: %w", err)
	}

	if params.Purpose == "" {
		return nil, fmt.Errorf("%w: purpose is required", core.ErrInvalidInput)
	}

	def, err := t.reg.Register(registrar.Request{
		Name:      params.FunctionName,
		Purpose:   params.Purpose,
		APIURL:    params.APIURL,
		APIHost:   params.APIHost,
		APIKeyEnv: params.APIKeyEnv,
	})
	if err != nil {
		return nil, err
	}

	if t.installer != nil {
		if err := t.installer.InstallDynamicTool(*def); err != nil {
			return nil, fmt.Errorf("tool %s was saved but could not be installed: %w", def.Name, err)
		}
	}

	return fmt.Sprintf("✅ Tool `%s` created and registered successfully.", def.Name), nil
}
