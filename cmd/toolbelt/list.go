package toolbelt

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"toolbelt-go/pkg/logging"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every tool in the roster",
	Long: `List every registered tool grouped by category, including tools in
disabled categories. Dynamic tools registered with the register command
appear under the dynamic category.`,
	Run: func(cmd *cobra.Command, args []string) {
		manager, _, err := initToolManager()
		if err != nil {
			fmt.Printf("Error initializing tools: %v\n", err)
			os.Exit(1)
		}
		defer logging.Sync()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, cat := range manager.Registry().CategoryList() {
			suffix := ""
			if !cat.Enabled {
				suffix = " (disabled)"
			}
			fmt.Fprintf(w, "%s%s\n", cat.ID, suffix)

			for _, tool := range cat.Tools {
				fmt.Fprintf(w, "  %s\t%s\n", tool.Name(), truncate(tool.Description(), 70))
			}
		}
		w.Flush()
	},
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

func init() {
	rootCmd.AddCommand(listCmd)
}
