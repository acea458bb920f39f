package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"toolbelt-go/pkg/search"
	"toolbelt-go/pkg/tools"
	"toolbelt-go/pkg/tools/categories/messaging"
)

// Config represents the application configuration
type Config struct {
	// Tool settings
	Tools ToolsConfig `json:"tools"`

	// Weather tool settings
	Weather WeatherConfig `json:"weather"`

	// Web search settings
	Search SearchConfig `json:"search"`

	// Email settings
	Email EmailConfig `json:"email"`

	// UI settings
	UI UIConfig `json:"ui"`

	// App settings
	App AppConfig `json:"app"`
}

// ToolsConfig represents tool-related configuration
type ToolsConfig struct {
	// Directory holding the dynamic tool store
	DataDir string `json:"data_dir"`

	// Category IDs to enable, empty keeps the defaults
	EnabledCategories []string `json:"enabled_categories"`

	// Maximum number of tool calls allowed per message
	MaxToolsPerMsg int `json:"max_tools_per_msg"`
}

// WeatherConfig represents weather tool configuration
type WeatherConfig struct {
	// Weather service endpoint
	BaseURL string `json:"base_url"`

	// wttr.in report format
	Format string `json:"format"`
}

// SearchConfig represents web search configuration
type SearchConfig struct {
	// Provider type (duckduckgo, mock)
	Provider string `json:"provider"`

	// Endpoint override, mainly for tests
	BaseURL string `json:"base_url"`

	// Default result cap
	MaxResults int `json:"max_results"`

	// HTTP timeout in seconds
	TimeoutSeconds int `json:"timeout_seconds"`
}

// EmailConfig represents SMTP configuration for the email tool
type EmailConfig struct {
	// SMTP server host
	SMTPHost string `json:"smtp_host"`

	// SMTP server port
	SMTPPort int `json:"smtp_port"`

	// Environment variable holding the SMTP username
	UserEnv string `json:"user_env"`

	// Environment variable holding the SMTP password
	PassEnv string `json:"pass_env"`
}

// UIConfig represents UI-related configuration
type UIConfig struct {
	// Show registration timestamps in the tool browser
	ShowTimestamps bool `json:"show_timestamps"`

	// Syntax highlighting theme
	SyntaxTheme string `json:"syntax_theme"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	// Debug mode
	Debug bool `json:"debug"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level"`

	// Log format (console, json)
	LogFormat string `json:"log_format"`

	// Log file, empty logs to stderr
	LogFile string `json:"log_file"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	email := messaging.DefaultEmailConfig()

	return Config{
		Tools: ToolsConfig{
			DataDir:           "", // Resolved to ~/.config/toolbelt on load
			EnabledCategories: nil,
			MaxToolsPerMsg:    10,
		},
		Weather: WeatherConfig{
			BaseURL: "https://wttr.in",
			Format:  "3",
		},
		Search: SearchConfig{
			Provider:       "duckduckgo",
			BaseURL:        "",
			MaxResults:     5,
			TimeoutSeconds: 30,
		},
		Email: EmailConfig{
			SMTPHost: email.SMTPHost,
			SMTPPort: email.SMTPPort,
			UserEnv:  email.UserEnv,
			PassEnv:  email.PassEnv,
		},
		UI: UIConfig{
			ShowTimestamps: false,
			SyntaxTheme:    "dracula",
		},
		App: AppConfig{
			Debug:     false,
			LogLevel:  "info",
			LogFormat: "console",
			LogFile:   "",
		},
	}
}

// LoadConfig loads the configuration from the specified file
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		// If no path specified, use default location
		home, err := os.UserHomeDir()
		if err != nil {
			return config, fmt.Errorf("failed to get user home directory: %w", err)
		}

		configPath = filepath.Join(home, ".config", "toolbelt", "config.json")
	}

	// Check if the file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Config file doesn't exist, create directory and save default config
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return config, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := SaveConfig(config, configPath); err != nil {
			return config, fmt.Errorf("failed to save default config: %w", err)
		}

		return resolveDataDir(config)
	}

	// Read and parse the config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}

	return resolveDataDir(config)
}

// SaveConfig saves the configuration to the specified file
func SaveConfig(config Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// resolveDataDir fills in the default data directory when none is set
func resolveDataDir(config Config) (Config, error) {
	if config.Tools.DataDir != "" {
		return config, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return config, fmt.Errorf("failed to get user home directory: %w", err)
	}

	config.Tools.DataDir = filepath.Join(home, ".config", "toolbelt")
	return config, nil
}

// GetToolOptions converts the configuration to tool manager options
func (c *Config) GetToolOptions() tools.Options {
	providerType := search.ProviderDuckDuckGo
	switch c.Search.Provider {
	case "mock":
		providerType = search.ProviderMock
	case "duckduckgo", "":
		providerType = search.ProviderDuckDuckGo
	}

	return tools.Options{
		DataDir:        c.Tools.DataDir,
		Categories:     c.Tools.EnabledCategories,
		WeatherBaseURL: c.Weather.BaseURL,
		WeatherFormat:  c.Weather.Format,
		Search: search.Config{
			Type:       providerType,
			BaseURL:    c.Search.BaseURL,
			MaxResults: c.Search.MaxResults,
			Timeout:    time.Duration(c.Search.TimeoutSeconds) * time.Second,
		},
		Email: messaging.EmailConfig{
			SMTPHost: c.Email.SMTPHost,
			SMTPPort: c.Email.SMTPPort,
			UserEnv:  c.Email.UserEnv,
			PassEnv:  c.Email.PassEnv,
		},
	}
}
