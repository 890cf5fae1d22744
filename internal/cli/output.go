package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// renderOutput prints v in the requested format; the text callback handles
// the human-readable form.
func renderOutput(outputFormat string, v interface{}, text func()) error {
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format as JSON: %v", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to format as YAML: %v", err)
		}
		fmt.Print(string(data))
	case "text":
		text()
	default:
		return fmt.Errorf("invalid output format %q (must be text, json or yaml)", outputFormat)
	}
	return nil
}

// registerOutputCompletion wires shell completion for the --output flag
func registerOutputCompletion(cmd *cobra.Command) {
	cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
}
