package toolbelt

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"toolbelt-go/pkg/config"
	"toolbelt-go/pkg/logging"
	"toolbelt-go/pkg/tools"
	"toolbelt-go/pkg/ui"
)

func startTUI() {
	manager, cfg, err := initToolManager()
	if err != nil {
		fmt.Printf("Error initializing tools: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	// Initialize the TUI model over the live roster
	m := ui.NewModel(manager, ui.Options{
		ShowTimestamps: cfg.UI.ShowTimestamps,
		SyntaxTheme:    cfg.UI.SyntaxTheme,
	})

	// Run the Bubble Tea program
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// initToolManager loads configuration, starts logging, and brings up the
// tool manager shared by every command
func initToolManager() (*tools.ToolManager, config.Config, error) {
	cfg, err := loadAndMergeConfig()
	if err != nil {
		fmt.Printf("Warning: Could not load configuration: %v\nUsing defaults\n", err)
	}

	if err := logging.Init(cfg.App.LogLevel, cfg.App.LogFormat, cfg.App.LogFile); err != nil {
		return nil, cfg, fmt.Errorf("initializing logging: %w", err)
	}

	manager, err := tools.Initialize(cfg.GetToolOptions())
	if err != nil {
		return nil, cfg, err
	}
	manager.SetMaxToolsPerMsg(cfg.Tools.MaxToolsPerMsg)

	return manager, cfg, nil
}

// loadAndMergeConfig loads the configuration file and merges it with command line flags
func loadAndMergeConfig() (config.Config, error) {
	// Load config from file
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return cfg, err
	}

	// Override with command line flags if provided
	if dataDir != "" {
		cfg.Tools.DataDir = dataDir
	}

	if mockMode {
		cfg.Search.Provider = "mock"
	} else if provider != "" {
		cfg.Search.Provider = provider
	}

	if categories != "" {
		var ids []string
		for _, id := range strings.Split(categories, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		cfg.Tools.EnabledCategories = ids
	}

	// App flags
	if logFormat != "" {
		cfg.App.LogFormat = logFormat
	}
	if debugMode {
		cfg.App.Debug = true
		cfg.App.LogLevel = "debug"
	}

	return cfg, nil
}
