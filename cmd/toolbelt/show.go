package toolbelt

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"toolbelt-go/pkg/logging"
	"toolbelt-go/pkg/registrar"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one tool's full descriptor",
	Long: `Show a tool's descriptor as JSON: name, category, description, and
input schema. For dynamic tools the stored definition (API URL, host,
key environment variable, registration time) is included.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager, _, err := initToolManager()
		if err != nil {
			fmt.Printf("Error initializing tools: %v\n", err)
			os.Exit(1)
		}
		defer logging.Sync()

		name := args[0]
		for _, cat := range manager.Registry().CategoryList() {
			for _, tool := range cat.Tools {
				if tool.Name() != name {
					continue
				}

				descriptor := map[string]interface{}{
					"name":         tool.Name(),
					"category":     cat.ID,
					"enabled":      cat.Enabled,
					"description":  tool.Description(),
					"input_schema": tool.InputSchema(),
				}
				if dt, ok := tool.(interface{ Definition() registrar.Definition }); ok {
					descriptor["definition"] = dt.Definition()
				}

				data, err := json.MarshalIndent(descriptor, "", "  ")
				if err != nil {
					fmt.Printf("Error encoding descriptor: %v\n", err)
					os.Exit(1)
				}
				fmt.Println(string(data))
				return
			}
		}

		fmt.Printf("Tool not found: %s\n", name)
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
