package toolbelt

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	configFile string
	dataDir    string
	provider   string
	categories string
	logFormat  string
	mockMode   bool
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "toolbelt",
	Short: "A tool registry for conversational agents, with dynamic HTTP tools",
	Long: `A terminal-based tool registry built with Go.

Toolbelt hosts a roster of built-in tools (weather, web search, page
reader, notes, to-do list, email) plus dynamic tools registered at
runtime against HTTP APIs. Registered tools are persisted as JSON
definitions and reloaded on every start.

Run with no arguments to browse the roster in a TUI, or use the
subcommands to register, inspect, and invoke tools from scripts:

  toolbelt register --name stock_price --purpose "Get a stock quote" \
      --url https://example-finance.p.rapidapi.com/price
  toolbelt list
  toolbelt show stock_price
  toolbelt invoke get_weather --input '{"city":"London"}'`,
	Run: func(cmd *cobra.Command, args []string) {
		// Start the TUI with the provided configuration
		startTUI()
	},
}

func Execute() {
	// A missing .env is not an error; keys may come from the environment
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Configuration flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (default is $HOME/.config/toolbelt/config.json)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding tool definitions and the roster manifest")

	// Tool-related flags
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "Search provider (duckduckgo, mock)")
	rootCmd.PersistentFlags().StringVar(&categories, "categories", "", "Comma-separated categories to enable (web, productivity, messaging, dynamic)")
	rootCmd.PersistentFlags().BoolVar(&mockMode, "mock", false, "Use the mock search provider (for testing)")

	// App flags
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}
