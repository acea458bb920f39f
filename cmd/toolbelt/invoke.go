package toolbelt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"toolbelt-go/pkg/logging"
	"toolbelt-go/pkg/tools/core"
)

var invokeInput string

var invokeCmd = &cobra.Command{
	Use:   "invoke <name>",
	Short: "Invoke a tool once and print its result",
	Long: `Invoke a tool by name with a JSON input and print the result. The
tool's category must be enabled. Useful for trying a freshly registered
dynamic tool without going through an agent:

  toolbelt invoke get_weather --input '{"city":"London"}'
  toolbelt invoke manage_todo --input '{"action":"add","task":"ship it"}'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager, _, err := initToolManager()
		if err != nil {
			fmt.Printf("Error initializing tools: %v\n", err)
			os.Exit(1)
		}
		defer logging.Sync()

		if !json.Valid([]byte(invokeInput)) {
			fmt.Printf("Invalid --input, expected JSON: %s\n", invokeInput)
			os.Exit(1)
		}

		result, err := manager.HandleToolUse(context.Background(), &core.ToolUse{
			Name:  args[0],
			Input: json.RawMessage(invokeInput),
		})
		if err != nil {
			fmt.Printf("Tool execution failed: %v\n", err)
			os.Exit(1)
		}

		// Tool results are JSON; string results print as plain text
		var text string
		if err := json.Unmarshal(result.Result, &text); err != nil {
			text = string(result.Result)
		}
		fmt.Println(text)
	},
}

func init() {
	invokeCmd.Flags().StringVar(&invokeInput, "input", "{}", "JSON input passed to the tool")

	rootCmd.AddCommand(invokeCmd)
}
