package toolbelt

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"toolbelt-go/pkg/logging"
	"toolbelt-go/pkg/registrar"
)

var (
	registerName    string
	registerPurpose string
	registerURL     string
	registerHost    string
	registerKeyEnv  string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new HTTP-backed tool",
	Long: `Register a new dynamic tool backed by an HTTP API.

The definition is persisted under the data directory and the tool joins
the roster on the next start. Names must start with a lowercase letter
and may contain lowercase letters, digits, and underscores. When --host
is omitted it is derived from the URL; when --url is omitted a
placeholder is stored so the definition can be edited later.`,
	Run: func(cmd *cobra.Command, args []string) {
		manager, _, err := initToolManager()
		if err != nil {
			fmt.Printf("Error initializing tools: %v\n", err)
			os.Exit(1)
		}
		defer logging.Sync()

		def, err := manager.Registrar().Register(registrar.Request{
			Name:      registerName,
			Purpose:   registerPurpose,
			APIURL:    registerURL,
			APIHost:   registerHost,
			APIKeyEnv: registerKeyEnv,
		})
		if err != nil {
			fmt.Printf("Registration failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Tool `%s` created and registered successfully.\n", def.Name)
		fmt.Printf("   definition: %s\n", manager.Registrar().Store().DefinitionPath(def.Name))
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Tool name (required)")
	registerCmd.Flags().StringVar(&registerPurpose, "purpose", "", "What the tool does, shown to the agent (required)")
	registerCmd.Flags().StringVar(&registerURL, "url", "", "HTTP API endpoint the tool calls")
	registerCmd.Flags().StringVar(&registerHost, "host", "", "API host header value (derived from --url when omitted)")
	registerCmd.Flags().StringVar(&registerKeyEnv, "key-env", "", "Environment variable holding the API key (default RAPIDAPI_KEY)")

	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("purpose")

	rootCmd.AddCommand(registerCmd)
}
