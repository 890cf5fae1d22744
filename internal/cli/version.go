package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/lazedo/yxa/internal/version"
	model "github.com/lazedo/yxa/pkg/hostaddr"
)

// VersionOptions holds command options
type VersionOptions struct {
	OutputFormat string
	ShortFormat  bool
	Remote       string
}

// NewVersionCommand creates a new version command
func NewVersionCommand() *cobra.Command {
	opts := &VersionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the client and daemon version information",
		Long: `Display detailed version information about the hostip client and, when
--remote is given, about a running hostipd daemon`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.OutputFormat, "output", "text", "Output format (json or text)")
	flags.BoolVarP(&opts.ShortFormat, "short", "s", false, "Print only the client version number")
	flags.StringVar(&opts.Remote, "remote", "", "Endpoint of a running hostipd to include in the report")

	cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "text"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runVersion executes the version command logic
func runVersion(opts *VersionOptions) error {
	clientInfo := version.Info()

	// If short format requested, just print the version and exit
	if opts.ShortFormat {
		fmt.Printf("hostip version %s, build %s\n", clientInfo.Version, clientInfo.GitCommit)
		return nil
	}

	// Query the daemon only when asked; its absence is not a failure
	var daemonInfo *model.VersionInfo
	var daemonErr error
	if opts.Remote != "" {
		daemonInfo = &model.VersionInfo{}
		daemonErr = fetchJSON(opts.Remote, "/version", daemonInfo)
	}

	if opts.OutputFormat == "json" {
		result := map[string]interface{}{
			"Client": clientInfo,
		}
		if opts.Remote != "" {
			if daemonErr == nil {
				result["Daemon"] = daemonInfo
			} else {
				result["Daemon"] = map[string]string{
					"Error": daemonErr.Error(),
				}
			}
		}

		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format version as JSON: %v", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	// Text template for client version output
	const clientTemplate = `Client:
 Version:           {{.Version}}
 API version:       {{.APIVersion}}
 Go version:        {{.GoVersion}}
 Git commit:        {{.GitCommit}}
 Built:             {{.FormattedTime}}
 OS/Arch:           {{.OS}}/{{.Arch}}
`

	tmpl, err := template.New("version").Parse(clientTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse version template: %v", err)
	}
	if err := tmpl.Execute(os.Stdout, clientInfo); err != nil {
		return err
	}

	if opts.Remote == "" {
		return nil
	}

	if daemonErr != nil {
		fmt.Printf("\n%s\n", daemonErr)
		return nil
	}

	fmt.Println()

	const daemonTemplate = `Daemon:
 Version:           {{.Version}}
 API version:       {{.APIVersion}}
 Go version:        {{.GoVersion}}
 Git commit:        {{.GitCommit}}
 Built:             {{.FormattedTime}}
 OS/Arch:           {{.OS}}/{{.Arch}}
 Hostname:          {{.Hostname}}
`

	tmpl, err = template.New("daemon").Parse(daemonTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse daemon template: %v", err)
	}
	return tmpl.Execute(os.Stdout, daemonInfo)
}
